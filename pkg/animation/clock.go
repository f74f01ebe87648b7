package animation

import "time"

// Clock is a time source that can be pulsed with system time or stepped to
// an absolute position, and broadcasts its time to subscribers.
//
// All clock methods are expected to be called from a single event loop.
// Subscribers observe ticks in subscription order.
type Clock interface {
	// Pulse feeds a system time sample to the clock.
	Pulse(systemTime time.Duration)
	// Step moves the clock to t and emits it regardless of play state.
	Step(t time.Duration)
	// Subscribe registers an observer. Disposing the returned handle
	// removes it.
	Subscribe(o Observer) *Subscription
	// PlayState returns the current play state.
	PlayState() PlayState
	// SetPlayState changes the play state. Stop takes effect on the next
	// pulse or step.
	SetPlayState(s PlayState)
}

// TimeSource provides wall time to a [GlobalClock]. Tests can supply a
// fake implementation to control frame timing deterministically.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// SystemTime is the real wall clock.
var SystemTime TimeSource = systemTime{}

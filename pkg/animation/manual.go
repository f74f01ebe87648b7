package animation

import "time"

// ManualClock has no passive ticking. It moves only when pulsed with a
// relative delta or stepped to an absolute time, which makes it suitable
// for driving playback from a scrub control.
type ManualClock struct {
	current  time.Duration
	state    PlayState
	subs     observers
	disposed bool
}

// NewManualClock returns a manual clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Pulse adds d to the accumulated time and emits the sum.
func (m *ManualClock) Pulse(d time.Duration) {
	if m.disposed {
		return
	}
	m.current += d
	m.subs.emit(m.current)
}

// Step emits t as-is. The accumulated time is left unchanged.
func (m *ManualClock) Step(t time.Duration) {
	if m.disposed {
		return
	}
	m.subs.emit(t)
}

// Subscribe registers an observer.
func (m *ManualClock) Subscribe(o Observer) *Subscription {
	return m.subs.add(o)
}

// PlayState returns the stored play state. It never gates emission.
func (m *ManualClock) PlayState() PlayState {
	return m.state
}

// SetPlayState stores s.
func (m *ManualClock) SetPlayState(s PlayState) {
	m.state = s
}

// Time returns the accumulated time.
func (m *ManualClock) Time() time.Duration {
	return m.current
}

// Dispose notifies every subscriber that the clock is done. Later calls
// are no-ops.
func (m *ManualClock) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.state = PlayStateStop
	m.subs.done()
}

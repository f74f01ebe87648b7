package animation

import "time"

// GlobalClock is the root time source of an application. The host calls
// [GlobalClock.Frame] once per frame; the elapsed time since the first
// frame is broadcast to subscribers, typically [ChainedClock] instances.
//
// Create one GlobalClock when wiring the application and pass it to the
// clocks that depend on it.
type GlobalClock struct {
	source  TimeSource
	epoch   time.Time
	started bool
	state   PlayState
	subs    observers
	frames  int
}

// NewGlobalClock returns a global clock reading from source. A nil source
// falls back to [SystemTime].
func NewGlobalClock(source TimeSource) *GlobalClock {
	if source == nil {
		source = SystemTime
	}
	return &GlobalClock{source: source}
}

// Frame samples the time source and pulses subscribers with the time
// elapsed since the first frame.
func (g *GlobalClock) Frame() {
	now := g.source.Now()
	if !g.started {
		g.started = true
		g.epoch = now
	}
	g.frames++
	g.Pulse(now.Sub(g.epoch))
}

// Pulse broadcasts systemTime unchanged.
func (g *GlobalClock) Pulse(systemTime time.Duration) {
	if g.state == PlayStateStop {
		return
	}
	g.subs.emit(systemTime)
}

// Step broadcasts t unchanged.
func (g *GlobalClock) Step(t time.Duration) {
	g.Pulse(t)
}

// Subscribe registers an observer.
func (g *GlobalClock) Subscribe(o Observer) *Subscription {
	return g.subs.add(o)
}

// PlayState returns the current play state.
func (g *GlobalClock) PlayState() PlayState {
	return g.state
}

// SetPlayState changes the play state. Stopping notifies every
// subscriber that the clock is done.
func (g *GlobalClock) SetPlayState(s PlayState) {
	if g.state == PlayStateStop {
		return
	}
	g.state = s
	if s == PlayStateStop {
		g.subs.done()
	}
}

// Active reports whether any clock is subscribed.
func (g *GlobalClock) Active() bool {
	return g.subs.len() > 0
}

// Frames returns the number of frames pumped so far.
func (g *GlobalClock) Frames() int {
	return g.frames
}

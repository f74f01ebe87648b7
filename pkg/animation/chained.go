package animation

import "time"

// ChainedClock is a clock driven by the ticks of a parent clock. It owns
// its parent subscription and releases it when it stops.
type ChainedClock struct {
	acc    accumulator
	state  PlayState
	subs   observers
	parent *Subscription
	torn   bool
}

// NewChainedClock returns a clock subscribed to parent. Every parent tick
// is forwarded to [ChainedClock.Pulse]. A nil parent yields a clock that
// only moves on explicit Pulse and Step calls.
func NewChainedClock(parent Clock) *ChainedClock {
	c := &ChainedClock{}
	if parent != nil {
		c.parent = parent.Subscribe(ObserverFunc(c.Pulse))
	}
	return c
}

// Pulse advances the clock by the system time elapsed since the previous
// pulse and emits the result. Paused clocks emit their frozen time.
func (c *ChainedClock) Pulse(systemTime time.Duration) {
	if c.torn {
		return
	}
	t := c.acc.advance(systemTime, c.state != PlayStateRun)
	c.subs.emit(t)
	if c.state == PlayStateStop {
		c.teardown()
	}
}

// Step sets the clock to t and emits it.
func (c *ChainedClock) Step(t time.Duration) {
	if c.torn {
		return
	}
	c.acc.set(t)
	c.subs.emit(t)
	if c.state == PlayStateStop {
		c.teardown()
	}
}

// Subscribe registers an observer.
func (c *ChainedClock) Subscribe(o Observer) *Subscription {
	return c.subs.add(o)
}

// PlayState returns the current play state.
func (c *ChainedClock) PlayState() PlayState {
	return c.state
}

// SetPlayState changes the play state. A stopped clock stays stopped.
func (c *ChainedClock) SetPlayState(s PlayState) {
	if c.state == PlayStateStop {
		return
	}
	c.state = s
}

// Time returns the accumulated playback time.
func (c *ChainedClock) Time() time.Duration {
	return c.acc.time
}

// Stopped reports whether the clock has been torn down.
func (c *ChainedClock) Stopped() bool {
	return c.torn
}

// Dispose stops the clock and tears it down immediately.
func (c *ChainedClock) Dispose() {
	c.state = PlayStateStop
	c.teardown()
}

func (c *ChainedClock) teardown() {
	if c.torn {
		return
	}
	c.torn = true
	c.parent.Dispose()
	c.subs.done()
}

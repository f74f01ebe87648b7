package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ticks []time.Duration
	done  int
}

func (r *recorder) Tick(t time.Duration) { r.ticks = append(r.ticks, t) }
func (r *recorder) Done()                { r.done++ }

const ms = time.Millisecond

func TestChainedClockAccumulatesDeltas(t *testing.T) {
	c := NewChainedClock(nil)
	rec := &recorder{}
	c.Subscribe(rec)

	for _, st := range []time.Duration{1000 * ms, 1016 * ms, 1032 * ms, 1100 * ms} {
		c.Pulse(st)
	}

	assert.Equal(t, []time.Duration{0, 16 * ms, 32 * ms, 100 * ms}, rec.ticks)
	assert.Equal(t, 100*ms, c.Time())
}

func TestChainedClockPauseFreezesTime(t *testing.T) {
	c := NewChainedClock(nil)
	rec := &recorder{}
	c.Subscribe(rec)

	c.Pulse(0)
	c.Pulse(10 * ms)
	c.SetPlayState(PlayStatePause)
	c.Pulse(500 * ms)
	c.Pulse(900 * ms)
	c.SetPlayState(PlayStateRun)
	c.Pulse(920 * ms)

	// Paused pulses emit the frozen time; the paused interval never counts.
	assert.Equal(t, []time.Duration{0, 10 * ms, 10 * ms, 10 * ms, 30 * ms}, rec.ticks)
}

func TestChainedClockIgnoresBackwardSystemTime(t *testing.T) {
	c := NewChainedClock(nil)
	c.Pulse(100 * ms)
	c.Pulse(150 * ms)
	c.Pulse(120 * ms)
	c.Pulse(130 * ms)
	assert.Equal(t, 60*ms, c.Time())
}

func TestChainedClockStepIgnoresPlayState(t *testing.T) {
	for _, state := range []PlayState{PlayStateRun, PlayStatePause} {
		t.Run(state.String(), func(t *testing.T) {
			c := NewChainedClock(nil)
			rec := &recorder{}
			c.Subscribe(rec)
			c.SetPlayState(state)

			c.Step(1500 * ms)

			assert.Equal(t, []time.Duration{1500 * ms}, rec.ticks)
			assert.Equal(t, 1500*ms, c.Time())
		})
	}
}

func TestChainedClockStepThenPulseContinuesFromStep(t *testing.T) {
	c := NewChainedClock(nil)
	c.Pulse(0)
	c.Step(time.Second)
	c.Pulse(20 * ms)
	assert.Equal(t, time.Second+20*ms, c.Time())
}

func TestChainedClockFirstPulseResetsTime(t *testing.T) {
	c := NewChainedClock(nil)
	c.Step(time.Second)
	c.Pulse(500 * ms)
	assert.Equal(t, time.Duration(0), c.Time())
}

func TestChainedClockForwardsParentTicks(t *testing.T) {
	parent := NewManualClock()
	c := NewChainedClock(parent)
	rec := &recorder{}
	c.Subscribe(rec)

	parent.Step(5 * ms)
	parent.Step(25 * ms)

	assert.Equal(t, []time.Duration{0, 20 * ms}, rec.ticks)
}

// countingParent counts how often its subscriptions are released.
type countingParent struct {
	ManualClock
	disposed int
}

func (p *countingParent) Subscribe(o Observer) *Subscription {
	inner := p.ManualClock.Subscribe(o)
	return NewSubscription(func() {
		p.disposed++
		inner.Dispose()
	})
}

func TestChainedClockStopReleasesParentOnce(t *testing.T) {
	parent := &countingParent{}
	c := NewChainedClock(parent)
	rec := &recorder{}
	c.Subscribe(rec)

	c.SetPlayState(PlayStateStop)
	c.Pulse(0)
	c.Step(10 * ms)
	c.Dispose()
	parent.Step(20 * ms)

	assert.Equal(t, 1, parent.disposed)
	assert.Equal(t, 1, rec.done)
	assert.Equal(t, []time.Duration{0}, rec.ticks, "stopped clock must not emit again")
	assert.True(t, c.Stopped())
	assert.Equal(t, PlayStateStop, c.PlayState())
}

func TestChainedClockStopIsTerminal(t *testing.T) {
	c := NewChainedClock(nil)
	c.Dispose()
	c.SetPlayState(PlayStateRun)
	assert.Equal(t, PlayStateStop, c.PlayState())
}

func TestSubscriptionOrderAndDisposal(t *testing.T) {
	c := NewManualClock()
	var got []string
	subA := c.Subscribe(ObserverFunc(func(time.Duration) { got = append(got, "a") }))
	c.Subscribe(ObserverFunc(func(time.Duration) { got = append(got, "b") }))
	c.Subscribe(ObserverFunc(func(time.Duration) { got = append(got, "c") }))

	c.Step(0)
	subA.Dispose()
	subA.Dispose()
	c.Step(0)

	assert.Equal(t, []string{"a", "b", "c", "b", "c"}, got)
	assert.True(t, subA.Disposed())
}

func TestSubscriptionDisposeDuringTick(t *testing.T) {
	c := NewManualClock()
	var sub *Subscription
	calls := 0
	sub = c.Subscribe(ObserverFunc(func(time.Duration) {
		calls++
		sub.Dispose()
	}))
	other := &recorder{}
	c.Subscribe(other)

	c.Step(0)
	c.Step(0)

	assert.Equal(t, 1, calls)
	assert.Len(t, other.ticks, 2)
}

func TestNilSubscriptionDispose(t *testing.T) {
	var sub *Subscription
	require.NotPanics(t, sub.Dispose)
	assert.True(t, sub.Disposed())
}

func TestManualClockDisposeCallsDoneOnce(t *testing.T) {
	c := NewManualClock()
	rec := &recorder{}
	c.Subscribe(rec)

	c.Dispose()
	c.Dispose()
	c.Pulse(ms)

	assert.Equal(t, 1, rec.done)
	assert.Empty(t, rec.ticks)
	assert.Equal(t, PlayStateStop, c.PlayState())
}

func TestManualClockPlayStateDoesNotGate(t *testing.T) {
	c := NewManualClock()
	rec := &recorder{}
	c.Subscribe(rec)
	c.SetPlayState(PlayStatePause)

	c.Pulse(5 * ms)

	assert.Equal(t, []time.Duration{5 * ms}, rec.ticks)
	assert.Equal(t, 5*ms, c.Time())
}

type stepSource struct {
	now time.Time
}

func (s *stepSource) Now() time.Time { return s.now }

func TestGlobalClockFrame(t *testing.T) {
	src := &stepSource{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	g := NewGlobalClock(src)
	assert.False(t, g.Active())

	chained := NewChainedClock(g)
	assert.True(t, g.Active())
	rec := &recorder{}
	chained.Subscribe(rec)

	g.Frame()
	src.now = src.now.Add(16 * ms)
	g.Frame()
	src.now = src.now.Add(16 * ms)
	g.Frame()

	assert.Equal(t, []time.Duration{0, 16 * ms, 32 * ms}, rec.ticks)
	assert.Equal(t, 3, g.Frames())

	chained.Dispose()
	assert.False(t, g.Active())
}

func TestGlobalClockStopNotifiesSubscribers(t *testing.T) {
	g := NewGlobalClock(&stepSource{})
	rec := &recorder{}
	g.Subscribe(rec)

	g.SetPlayState(PlayStateStop)
	g.SetPlayState(PlayStateStop)
	g.Pulse(ms)

	assert.Equal(t, 1, rec.done)
	assert.Empty(t, rec.ticks)
}

func TestPlayStateString(t *testing.T) {
	assert.Equal(t, "run", PlayStateRun.String())
	assert.Equal(t, "pause", PlayStatePause.String())
	assert.Equal(t, "stop", PlayStateStop.String())
	assert.Equal(t, "PlayState(9)", PlayState(9).String())
}

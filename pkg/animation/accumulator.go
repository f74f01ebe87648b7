package animation

import "time"

// accumulator turns a stream of system times into elapsed playback time.
// It is shared by the clock variants that honor pausing.
type accumulator struct {
	time     time.Duration
	previous time.Duration
	started  bool
}

// advance folds one system time sample into the accumulated time and
// returns it. The first sample only establishes the baseline. While
// paused the baseline moves with the system time so that resuming does
// not count the paused interval.
func (a *accumulator) advance(systemTime time.Duration, paused bool) time.Duration {
	if !a.started {
		a.started = true
		a.time = 0
		a.previous = systemTime
		return a.time
	}
	if paused {
		a.previous = systemTime
		return a.time
	}
	delta := systemTime - a.previous
	if delta < 0 {
		delta = 0
	}
	a.time += delta
	a.previous = systemTime
	return a.time
}

// set positions the accumulated time without touching the baseline.
func (a *accumulator) set(t time.Duration) {
	a.time = t
}

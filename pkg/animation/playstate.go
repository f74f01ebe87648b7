package animation

import "fmt"

// PlayState governs whether a clock's pulses advance its time.
type PlayState int

const (
	// PlayStateRun advances time on every pulse.
	PlayStateRun PlayState = iota
	// PlayStatePause freezes time; pulses only move the system time baseline.
	PlayStatePause
	// PlayStateStop is terminal. The next pulse or step tears the clock down.
	PlayStateStop
)

// String returns a human-readable representation of the play state.
func (s PlayState) String() string {
	switch s {
	case PlayStateRun:
		return "run"
	case PlayStatePause:
		return "pause"
	case PlayStateStop:
		return "stop"
	default:
		return fmt.Sprintf("PlayState(%d)", int(s))
	}
}

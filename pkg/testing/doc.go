// Package testing provides helpers for deterministic tests of the
// animator: a fake time source for clock-driven playback, and a pointer
// driver plus recording host for timeline widget tests.
//
// # Animation Testing
//
// Control frame time for deterministic playback tests:
//
//	clock := animtest.NewFakeClock()
//	global := animation.NewGlobalClock(clock)
//	clock.Pump(global, 10, 16*time.Millisecond)
//
// # Timeline Testing
//
// Drive a widget with pointer gestures in parent coordinates:
//
//	host := &animtest.RecordingHost{}
//	w := timeline.NewWidget(timeline.DefaultConfig(), timeline.NewCues(), host)
//	w.SetBounds(rendering.Size{Width: 220, Height: 40})
//	p := animtest.NewPointerDriver(w)
//	p.CtrlClick(120)
//	p.Drag(120, 220)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import animtest "github.com/go-drift/animator/pkg/testing"
package testing

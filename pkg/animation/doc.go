// Package animation provides the timing and interpolation primitives of
// the animation editor.
//
// # Core Components
//
//   - [Clock]: a time source that can be pulsed with system time or stepped
//     to an absolute position, and broadcasts its time to subscribers in
//     subscription order. Variants are [GlobalClock] (root, host-driven),
//     [ChainedClock] (driven by a parent, supports pause) and [ManualClock]
//     (moves only when told to).
//
//   - [Definition] and [Animation]: a named keyframe sequence and its
//     compiled form. [Animation.Evaluate] maps clock time to property
//     values, honoring delay, iterations, direction, fill and easing.
//
//   - [Controller]: owns a playback clock, binds animations to targets and
//     keeps a playback slider in sync with the clock.
//
//   - [Curve]: easing functions, resolved by name with [ParseEasing].
//
// # Basic Usage
//
//	global := animation.NewGlobalClock(animation.SystemTime)
//	ctrl := animation.NewController(global)
//	if err := ctrl.Add(def); err != nil {
//	    return err
//	}
//	ctrl.Bind(def.Name, target)
//	ctrl.Play()
//
//	// once per host frame
//	global.Frame()
//
//	// on teardown
//	ctrl.Dispose()
//
// All clock and controller methods are meant to be called from a single
// event loop; none of them lock.
package animation

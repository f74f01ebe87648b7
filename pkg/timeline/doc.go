// Package timeline implements the interactive keyframe timeline: an
// ordered cue model, pure geometry and hit-testing, a pointer-driven drag
// state machine and a painter.
//
// Geometry never depends on painting. [ComputeLayout] is a pure function
// of the configuration, the widget size and the cue values, so hit-testing
// can be exercised without a drawing surface. [Widget] owns the drag state
// and reports cursor, redraw and placement changes to its [Host].
package timeline

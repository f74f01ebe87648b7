package testing

import (
	"github.com/go-drift/animator/pkg/rendering"
	"github.com/go-drift/animator/pkg/timeline"
)

// PointerDriver sends pointer gestures to a timeline widget. Positions
// are given in parent coordinates and converted to widget-local ones with
// the widget's current Left, as a host would when the widget moves under
// the pointer.
type PointerDriver struct {
	Widget *timeline.Widget
	// Y is the widget-local y of every event. NewPointerDriver centers it
	// on the cue markers.
	Y float64
	// Modifiers are held for every event.
	Modifiers timeline.Modifiers

	buttons timeline.Buttons
}

// NewPointerDriver returns a driver for w.
func NewPointerDriver(w *timeline.Widget) *PointerDriver {
	cfg := w.Config()
	top := 0.0
	if cfg.DrawLabels {
		top = cfg.LabelsHeight
	}
	return &PointerDriver{Widget: w, Y: (top + w.Layout().Size.Height) / 2}
}

func (p *PointerDriver) send(kind timeline.PointerKind, x float64) {
	p.Widget.HandlePointer(timeline.PointerEvent{
		Kind:      kind,
		Position:  rendering.Offset{X: x - p.Widget.Left(), Y: p.Y},
		Buttons:   p.buttons,
		Modifiers: p.Modifiers,
	})
}

// Press presses buttons at x.
func (p *PointerDriver) Press(x float64, buttons timeline.Buttons) {
	p.buttons = buttons
	p.send(timeline.PointerPressed, x)
}

// Move moves the pointer to x with the currently pressed buttons.
func (p *PointerDriver) Move(x float64) {
	p.send(timeline.PointerMoved, x)
}

// Release releases all buttons at x.
func (p *PointerDriver) Release(x float64) {
	p.send(timeline.PointerReleased, x)
	p.buttons = 0
}

// Leave moves the pointer out of the widget.
func (p *PointerDriver) Leave() {
	p.Widget.HandlePointer(timeline.PointerEvent{Kind: timeline.PointerLeft, Buttons: p.buttons})
}

// Click presses and releases buttons at x.
func (p *PointerDriver) Click(x float64, buttons timeline.Buttons) {
	p.Press(x, buttons)
	p.Release(x)
}

// CtrlClick clicks the primary button at x with Control held, which
// creates a cue over the background.
func (p *PointerDriver) CtrlClick(x float64) {
	prev := p.Modifiers
	p.Modifiers |= timeline.ModControl
	p.Click(x, timeline.ButtonPrimary)
	p.Modifiers = prev
}

// Drag presses the primary button at from, moves to to in one step and
// releases there.
func (p *PointerDriver) Drag(from, to float64) {
	p.DragSteps(from, to, 1)
}

// DragSteps is like Drag but moves in steps equal increments.
func (p *PointerDriver) DragSteps(from, to float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	p.Press(from, timeline.ButtonPrimary)
	for i := 1; i <= steps; i++ {
		p.Move(from + (to-from)*float64(i)/float64(steps))
	}
	p.Release(to)
}

// RecordingHost is a [timeline.Host] that records what the widget asks of
// it.
type RecordingHost struct {
	Cursor        timeline.Cursor
	Cursors       []timeline.Cursor
	Invalidations int
	Placements    []Placement
}

// Placement is one recorded [timeline.Host.Place] call.
type Placement struct {
	Left, Width float64
}

// SetCursor records c.
func (h *RecordingHost) SetCursor(c timeline.Cursor) {
	h.Cursor = c
	h.Cursors = append(h.Cursors, c)
}

// Invalidate counts a repaint request.
func (h *RecordingHost) Invalidate() {
	h.Invalidations++
}

// Place records a placement.
func (h *RecordingHost) Place(left, width float64) {
	h.Placements = append(h.Placements, Placement{Left: left, Width: width})
}

package timeline

import (
	"math"

	"github.com/go-drift/animator/pkg/errors"
	"github.com/go-drift/animator/pkg/rendering"
)

// Host is the GUI surface a [Widget] lives in.
type Host interface {
	// SetCursor changes the pointer cursor over the widget.
	SetCursor(c Cursor)
	// Invalidate requests a repaint.
	Invalidate()
	// Place moves or resizes the widget inside its parent.
	Place(left, width float64)
}

type nopHost struct{}

func (nopHost) SetCursor(Cursor)       {}
func (nopHost) Invalidate()            {}
func (nopHost) Place(float64, float64) {}

// dragState is the Dragging state of the widget. Idle is active == false.
type dragState struct {
	active bool
	region Region
	index  int
	// lastX is the pointer x in parent coordinates at the previous event.
	lastX float64
}

// Widget is the interactive timeline. It turns pointer events into cue
// edits and placement changes and keeps its [Layout] current.
//
// Pointer positions are widget-local. Placement deltas are measured in
// parent coordinates (local x plus Left) because the widget moves under
// the pointer while a grip or the background is dragged.
type Widget struct {
	cfg    Config
	cues   *Cues
	host   Host
	size   rendering.Size
	left   float64
	layout Layout
	drag   dragState

	unsubscribe func()
}

// NewWidget returns a widget editing cues. A nil host is allowed.
func NewWidget(cfg Config, cues *Cues, host Host) *Widget {
	if host == nil {
		host = nopHost{}
	}
	if cues == nil {
		cues = NewCues()
	}
	w := &Widget{cfg: cfg, cues: cues, host: host}
	w.unsubscribe = cues.OnChange(func() {
		w.relayout()
		w.host.Invalidate()
	})
	w.relayout()
	return w
}

// Config returns the widget configuration.
func (w *Widget) Config() Config { return w.cfg }

// Cues returns the edited cue collection.
func (w *Widget) Cues() *Cues { return w.cues }

// Layout returns the current geometry.
func (w *Widget) Layout() Layout { return w.layout }

// Left returns the widget's x offset inside its parent.
func (w *Widget) Left() float64 { return w.left }

// Size returns the widget bounds.
func (w *Widget) Size() rendering.Size { return w.size }

// Dragging reports the region being dragged, if any.
func (w *Widget) Dragging() (Region, bool) {
	return w.drag.region, w.drag.active
}

// SetBounds updates the widget size and recomputes the layout.
func (w *Widget) SetBounds(size rendering.Size) {
	w.size = size
	w.relayout()
	w.host.Invalidate()
}

// SetLeft updates the widget's x offset inside its parent.
func (w *Widget) SetLeft(left float64) {
	w.left = math.Max(left, 0)
}

// Dispose detaches the widget from its cue collection.
func (w *Widget) Dispose() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}

func (w *Widget) relayout() {
	w.layout = ComputeLayout(w.cfg, w.size, w.cues.Values())
}

func (w *Widget) width() float64 {
	return w.layout.Size.Width
}

// HandlePointer feeds one pointer event into the drag state machine.
func (w *Widget) HandlePointer(ev PointerEvent) {
	defer errors.Recover("timeline.Widget.HandlePointer")

	switch ev.Kind {
	case PointerPressed:
		w.press(ev)
	case PointerMoved:
		w.move(ev)
	case PointerReleased:
		if w.drag.active {
			w.drag = dragState{}
			w.host.SetCursor(CursorDefault)
		}
	case PointerLeft:
		if !w.drag.active {
			w.host.SetCursor(CursorDefault)
		}
	}
}

func (w *Widget) press(ev PointerEvent) {
	hit := w.layout.HitTest(ev.Position)
	parentX := ev.Position.X + w.left
	primary := ev.Buttons.Has(ButtonPrimary)

	switch hit.Region {
	case RegionCue:
		if primary {
			w.begin(RegionCue, hit.Index, parentX)
			w.host.SetCursor(CursorSizeWestEast)
		} else if ev.Buttons.Has(ButtonSecondary) {
			w.cues.Remove(hit.Index)
			w.host.SetCursor(CursorDefault)
		}
	case RegionBackground:
		create := (primary && ev.Modifiers.Has(w.cfg.CreateModifier)) ||
			(!primary && ev.Buttons.Has(ButtonMiddle))
		if create {
			index := w.cues.Add(CalculateCue(w.cfg, ev.Position.X, w.width()))
			w.begin(RegionCue, index, parentX)
			w.host.SetCursor(CursorSizeWestEast)
		} else if primary {
			w.begin(RegionBackground, -1, parentX)
			w.host.SetCursor(w.cursorFor(hit, ev.Modifiers))
		}
	case RegionLeftGrip, RegionRightGrip:
		if primary {
			w.begin(hit.Region, -1, parentX)
			w.host.SetCursor(CursorHand)
		}
	}
}

func (w *Widget) begin(region Region, index int, parentX float64) {
	w.drag = dragState{active: true, region: region, index: index, lastX: parentX}
}

func (w *Widget) move(ev PointerEvent) {
	if !w.drag.active {
		w.host.SetCursor(w.cursorFor(w.layout.HitTest(ev.Position), ev.Modifiers))
		return
	}

	parentX := ev.Position.X + w.left
	dx := parentX - w.drag.lastX
	w.drag.lastX = parentX

	switch w.drag.region {
	case RegionCue:
		index := w.cues.Move(w.drag.index, CalculateCue(w.cfg, ev.Position.X, w.width()))
		if index < 0 {
			w.drag = dragState{}
			return
		}
		w.drag.index = index
	case RegionBackground:
		left := math.Round(w.left + dx)
		if left >= 0 {
			w.place(left, w.size.Width)
		}
	case RegionLeftGrip:
		// The right edge stays fixed.
		left := math.Round(w.left + dx)
		width := w.left + w.size.Width - left
		if left >= 0 && width >= w.cfg.MinWidth() {
			w.place(left, width)
		}
	case RegionRightGrip:
		width := math.Round(w.size.Width + dx)
		if width >= w.cfg.MinWidth() {
			w.place(w.left, width)
		}
	}
}

func (w *Widget) place(left, width float64) {
	w.left = left
	if width != w.size.Width {
		w.size.Width = width
		w.relayout()
	}
	w.host.Place(left, width)
	w.host.Invalidate()
}

// cursorFor maps a hit region to the idle cursor. Over the background the
// cursor shows whether a press would create a cue or pan the timeline.
func (w *Widget) cursorFor(hit Hit, mods Modifiers) Cursor {
	switch hit.Region {
	case RegionCue:
		return CursorSizeWestEast
	case RegionBackground:
		if mods.Has(w.cfg.CreateModifier) {
			return CursorCross
		}
		return CursorHand
	case RegionLeftGrip, RegionRightGrip:
		return CursorHand
	default:
		return CursorDefault
	}
}

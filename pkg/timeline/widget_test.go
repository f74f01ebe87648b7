package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/animator/pkg/animation"
	"github.com/go-drift/animator/pkg/errors"
	"github.com/go-drift/animator/pkg/rendering"
	animtest "github.com/go-drift/animator/pkg/testing"
	"github.com/go-drift/animator/pkg/timeline"
)

func newWidget(t *testing.T, cues ...float64) (*timeline.Widget, *animtest.RecordingHost, *animtest.PointerDriver) {
	t.Helper()
	model := timeline.NewCues()
	for _, c := range cues {
		model.Add(c)
	}
	host := &animtest.RecordingHost{}
	w := timeline.NewWidget(timeline.DefaultConfig(), model, host)
	w.SetBounds(rendering.Size{Width: 220, Height: 40})
	t.Cleanup(w.Dispose)
	return w, host, animtest.NewPointerDriver(w)
}

func TestWidgetEndToEnd(t *testing.T) {
	w, _, p := newWidget(t)

	p.CtrlClick(20)
	require.Equal(t, []float64{0}, w.Cues().Values())

	p.CtrlClick(120)
	require.Equal(t, []float64{0, 0.56}, w.Cues().Values())

	p.Drag(120, 220)
	assert.Equal(t, []float64{0, 1}, w.Cues().Values())
	assert.Equal(t, rendering.RectFromLTWH(195, 0, 10, 40), w.Layout().Cues[1])
}

func TestWidgetCreateThenDragInOneGesture(t *testing.T) {
	w, host, p := newWidget(t, 0.5)

	p.Modifiers = timeline.ModControl
	p.Press(60, timeline.ButtonPrimary)
	region, dragging := w.Dragging()
	require.True(t, dragging)
	assert.Equal(t, timeline.RegionCue, region)
	assert.Equal(t, timeline.CursorSizeWestEast, host.Cursor)

	p.Move(160)
	p.Release(160)

	assert.Equal(t, []float64{0.5, 0.78}, w.Cues().Values())
}

func TestWidgetMiddleButtonCreatesCue(t *testing.T) {
	w, _, p := newWidget(t)

	p.Click(110, timeline.ButtonMiddle)

	assert.Equal(t, []float64{0.5}, w.Cues().Values())
}

func TestWidgetPrimaryWithoutModifierDoesNotCreate(t *testing.T) {
	w, host, p := newWidget(t)

	p.Press(110, timeline.ButtonPrimary)

	assert.Zero(t, w.Cues().Len())
	region, _ := w.Dragging()
	assert.Equal(t, timeline.RegionBackground, region)
	assert.Equal(t, timeline.CursorHand, host.Cursor)
}

func TestWidgetDragAcrossOtherCueReorders(t *testing.T) {
	model := timeline.NewCues(
		animation.KeyFrame{Cue: 0.2, Setters: []animation.Setter{{Property: "Opacity", Value: "1"}}},
		animation.KeyFrame{Cue: 0.5},
		animation.KeyFrame{Cue: 0.8},
	)
	host := &animtest.RecordingHost{}
	w := timeline.NewWidget(timeline.DefaultConfig(), model, host)
	w.SetBounds(rendering.Size{Width: 220, Height: 40})
	p := animtest.NewPointerDriver(w)

	// Cue 0.2 sits at x 56. Drag it past 0.5 and then past 0.8.
	p.Press(56, timeline.ButtonPrimary)
	p.Move(119) // 0.55
	_, dragging := w.Dragging()
	require.True(t, dragging)
	assert.Equal(t, []float64{0.5, 0.55, 0.8}, model.Values())

	p.Move(173) // 0.85
	assert.Equal(t, []float64{0.5, 0.8, 0.85}, model.Values())

	p.Release(173)
	kf, _ := model.KeyFrame(2)
	assert.Equal(t, "1", kf.Setters[0].Value, "the same logical cue was tracked")
}

func TestWidgetSecondaryRemovesCue(t *testing.T) {
	w, host, p := newWidget(t, 0.25, 0.5)

	p.Press(110, timeline.ButtonSecondary)

	assert.Equal(t, []float64{0.25}, w.Cues().Values())
	_, dragging := w.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, timeline.CursorDefault, host.Cursor)

	// Secondary over the background does nothing.
	p.Press(150, timeline.ButtonSecondary)
	assert.Equal(t, []float64{0.25}, w.Cues().Values())
}

func TestWidgetBackgroundDragPans(t *testing.T) {
	w, host, p := newWidget(t)
	w.SetLeft(50)

	p.DragSteps(100, 79.6, 2)

	// Rounded per move: 50 - 10.2 -> 40, then -10.2 more -> 30.
	assert.Equal(t, 30.0, w.Left())
	assert.Equal(t, []animtest.Placement{{Left: 40, Width: 220}, {Left: 30, Width: 220}}, host.Placements)

	// Never goes negative.
	p.Drag(100, 0)
	assert.Equal(t, 30.0, w.Left())
}

func TestWidgetLeftGripResizes(t *testing.T) {
	w, host, p := newWidget(t)
	w.SetLeft(100)

	// Parent x 110 is local x 10, inside the left grip.
	p.Drag(110, 90)

	assert.Equal(t, 80.0, w.Left())
	assert.Equal(t, 240.0, w.Size().Width)
	assert.Equal(t, 240.0, w.Layout().Size.Width)
	assert.Equal(t, animtest.Placement{Left: 80, Width: 240}, host.Placements[0])

	// Left edge cannot cross the parent origin.
	p.Drag(90, -100)
	assert.Equal(t, 80.0, w.Left())
}

func TestWidgetLeftGripKeepsRightEdgeOnFractionalMoves(t *testing.T) {
	w, host, p := newWidget(t)
	w.SetLeft(10)

	p.Drag(15, 15.5)

	assert.Equal(t, 11.0, w.Left())
	assert.Equal(t, 219.0, w.Size().Width)
	assert.Equal(t, 230.0, w.Left()+w.Size().Width)
	assert.Equal(t, animtest.Placement{Left: 11, Width: 219}, host.Placements[0])
}

func TestWidgetGripWidthFloor(t *testing.T) {
	w, _, p := newWidget(t)
	cfg := w.Config()

	p.Drag(210, 20)
	assert.Equal(t, 220.0, w.Size().Width, "a single move below the floor is rejected")

	p.DragSteps(210, 70, 2)
	assert.Equal(t, 80.0, w.Size().Width)
	assert.GreaterOrEqual(t, w.Size().Width, cfg.MinWidth())
}

func TestWidgetRightGripResizes(t *testing.T) {
	w, host, p := newWidget(t, 1)

	p.Drag(210, 250.4)

	assert.Equal(t, 260.0, w.Size().Width)
	assert.Equal(t, 0.0, w.Left())
	// The cue at 1 follows the right edge.
	assert.Equal(t, rendering.RectFromLTWH(235, 0, 10, 40), w.Layout().Cues[0])
	assert.NotEmpty(t, host.Placements)
}

func TestWidgetIdleCursor(t *testing.T) {
	_, host, p := newWidget(t, 0.5)

	tests := []struct {
		name string
		x    float64
		mods timeline.Modifiers
		want timeline.Cursor
	}{
		{"cue", 110, 0, timeline.CursorSizeWestEast},
		{"background", 60, 0, timeline.CursorHand},
		{"background with create modifier", 60, timeline.ModControl, timeline.CursorCross},
		{"left grip", 5, 0, timeline.CursorHand},
		{"right grip", 215, 0, timeline.CursorHand},
		{"outside", 300, 0, timeline.CursorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Modifiers = tt.mods
			p.Move(tt.x)
			assert.Equal(t, tt.want, host.Cursor)
		})
	}
}

func TestWidgetLeaveKeepsDrag(t *testing.T) {
	w, host, p := newWidget(t, 0.5)

	p.Press(110, timeline.ButtonPrimary)
	p.Leave()
	_, dragging := w.Dragging()
	assert.True(t, dragging)
	assert.Equal(t, timeline.CursorSizeWestEast, host.Cursor)

	p.Move(200)
	p.Release(200)
	p.Leave()
	assert.Equal(t, []float64{1}, w.Cues().Values())
	assert.Equal(t, timeline.CursorDefault, host.Cursor)
}

func TestWidgetInvalidatesOnEdits(t *testing.T) {
	w, host, p := newWidget(t)
	before := host.Invalidations

	p.CtrlClick(120)
	assert.Greater(t, host.Invalidations, before)

	// Edits made directly on the model also relayout the widget.
	w.Cues().Add(0.25)
	assert.Len(t, w.Layout().Cues, 2)
}

type panicHost struct{ animtest.RecordingHost }

func (panicHost) SetCursor(timeline.Cursor) { panic("host gone") }

type panicCapture struct{ panics []*errors.PanicError }

func (h *panicCapture) HandleError(*errors.AnimatorError)  {}
func (h *panicCapture) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func TestWidgetRecoversHostPanics(t *testing.T) {
	h := &panicCapture{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	w := timeline.NewWidget(timeline.DefaultConfig(), nil, &panicHost{})
	w.SetBounds(rendering.Size{Width: 220, Height: 40})

	assert.NotPanics(t, func() {
		animtest.NewPointerDriver(w).Move(60)
	})
	require.Len(t, h.panics, 1)
	assert.Equal(t, "timeline.Widget.HandlePointer", h.panics[0].Op)
}

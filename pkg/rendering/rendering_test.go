package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := RectFromLTWH(20, 0, 180, 40)

	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"left edge", Offset{X: 20, Y: 10}, true},
		{"inside", Offset{X: 120, Y: 39.9}, true},
		{"right edge", Offset{X: 200, Y: 10}, false},
		{"bottom edge", Offset{X: 120, Y: 40}, false},
		{"left of rect", Offset{X: 19.99, Y: 10}, false},
		{"above", Offset{X: 120, Y: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectFromLTWH(10, 5, 20, 10)
	assert.Equal(t, 20.0, r.Width())
	assert.Equal(t, 10.0, r.Height())
	assert.Equal(t, Offset{X: 20, Y: 10}, r.Center())
	assert.Equal(t, Size{Width: 20, Height: 10}, r.Size())
	assert.Equal(t, RectFromLTWH(15, 5, 20, 10), r.Translate(5, 0))
	assert.False(t, r.IsEmpty())
	assert.True(t, RectFromLTWH(0, 0, 0, 10).IsEmpty())
	assert.True(t, RRectFromRectAndRadius(r, Radius{}).IsRect())
	assert.False(t, RRectFromRectAndRadius(r, CircularRadius(2)).IsRect())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#f5f5f5")
	require.NoError(t, err)
	assert.Equal(t, ColorWhiteSmoke, c)
	assert.Equal(t, "#f5f5f5", c.Hex())

	c, err = ParseColor("#00f")
	require.NoError(t, err)
	assert.Equal(t, ColorBlue, c)

	_, err = ParseColor("blue")
	assert.Error(t, err)
}

func TestColorAlpha(t *testing.T) {
	c := ColorWhiteSmoke.WithOpacity(0.6)
	assert.Equal(t, uint8(153), uint8(c>>24))
	assert.InDelta(t, 0.6, c.Alpha(), 0.01)
	assert.Equal(t, ColorWhiteSmoke.Hex(), c.Hex())

	assert.Equal(t, ColorTransparent, ColorBlack.WithOpacity(-1).WithAlpha(0))
	assert.Equal(t, ColorBlue, ColorBlue.WithOpacity(2))
}

func TestColorfulRoundTrip(t *testing.T) {
	c := RGB(12, 200, 99)
	assert.Equal(t, c, FromColorful(c.Colorful()))
}

func TestLayoutText(t *testing.T) {
	l := LayoutText("50%", TextStyle{})
	// 7px advance per glyph in the 13px face.
	assert.InDelta(t, 21.0, l.Size.Width, 0.001)
	assert.InDelta(t, 13.0, l.Size.Height, 0.001)

	small := LayoutText("50%", TextStyle{FontSize: 10})
	assert.InDelta(t, 21.0*10/13, small.Size.Width, 0.001)
	assert.Less(t, small.Size.Height, l.Size.Height)

	assert.Equal(t, "a b", LayoutText("a\nb", TextStyle{}).Text)
}

func TestPictureRecorderReplays(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 100, Height: 40})
	assert.Equal(t, Size{Width: 100, Height: 40}, canvas.Size())

	canvas.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorBlue))
	canvas.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(5, 0, 10, 40), CircularRadius(2)), FillPaint(ColorBlue))
	canvas.DrawText(LayoutText("x", TextStyle{}), Offset{X: 1, Y: 2})
	list := rec.EndRecording()
	require.Equal(t, 3, list.Len())

	// Drawing after EndRecording is dropped.
	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorBlue))
	assert.Equal(t, 3, list.Len())

	target := &countingCanvas{}
	list.Paint(target)
	assert.Equal(t, 1, target.rects)
	assert.Equal(t, 1, target.rrects)
	assert.Equal(t, 1, target.texts)

	var nilList *DisplayList
	nilList.Paint(target)
	assert.Equal(t, 0, nilList.Len())
}

type countingCanvas struct {
	rects, rrects, texts int
}

func (c *countingCanvas) DrawRect(Rect, Paint)         { c.rects++ }
func (c *countingCanvas) DrawRRect(RRect, Paint)       { c.rrects++ }
func (c *countingCanvas) DrawText(*TextLayout, Offset) { c.texts++ }
func (c *countingCanvas) Size() Size                   { return Size{} }

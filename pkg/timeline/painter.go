package timeline

import (
	"fmt"

	"github.com/go-drift/animator/pkg/rendering"
)

// Style holds the timeline colors.
type Style struct {
	Background    rendering.Color
	Grip          rendering.Color
	Cue           rendering.Color
	Label         rendering.Color
	LabelFontSize float64
}

// DefaultStyle returns the stock timeline colors: a white smoke background
// with translucent grips and blue cues.
func DefaultStyle() Style {
	return Style{
		Background:    rendering.ColorWhiteSmoke,
		Grip:          rendering.ColorWhiteSmoke.WithOpacity(0.6),
		Cue:           rendering.ColorBlue,
		Label:         rendering.ColorBlue,
		LabelFontSize: 10,
	}
}

// Painter draws a [Layout]. It only reads geometry.
type Painter struct {
	Config Config
	Style  Style
}

// Paint draws the background, both grips, the cue markers and, when
// enabled, the cue labels.
func (p Painter) Paint(canvas rendering.Canvas, l Layout) {
	canvas.DrawRect(l.Background, rendering.FillPaint(p.Style.Background))
	canvas.DrawRect(l.LeftGrip, rendering.FillPaint(p.Style.Grip))
	canvas.DrawRect(l.RightGrip, rendering.FillPaint(p.Style.Grip))

	radius := rendering.CircularRadius(p.Config.CornerRadius)
	for i, r := range l.Cues {
		canvas.DrawRRect(rendering.RRectFromRectAndRadius(r, radius), rendering.FillPaint(p.Style.Cue))
		if !p.Config.DrawLabels || i >= len(l.Values) {
			continue
		}
		text := rendering.LayoutText(Label(l.Values[i]), rendering.TextStyle{
			Color:    p.Style.Label,
			FontSize: p.Style.LabelFontSize,
		})
		canvas.DrawText(text, rendering.Offset{
			X: r.Center().X - text.Size.Width/2,
			Y: (p.Config.LabelsHeight - text.Size.Height) / 2,
		})
	}
}

// Label returns the label of a cue: its truncated percentage.
func Label(cue float64) string {
	return fmt.Sprintf("%d%%", int(cue*100))
}

package rendering

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 13

	// fixedScale converts 26.6 fixed point values to float64.
	fixedScale = 64.0
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Ascent  float64
	Descent float64
}

// LayoutText measures single-line text. Metrics come from the fixed 7x13
// bitmap face scaled to the requested font size; hosts that draw with a
// different face still get a stable box for centering.
func LayoutText(text string, style TextStyle) *TextLayout {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
		style.FontSize = size
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	scale := size / (float64(metrics.Height) / fixedScale)

	line := strings.ReplaceAll(text, "\n", " ")
	width := float64(font.MeasureString(face, line)) / fixedScale * scale
	ascent := float64(metrics.Ascent) / fixedScale * scale
	descent := float64(metrics.Descent) / fixedScale * scale

	return &TextLayout{
		Text:    line,
		Style:   style,
		Size:    Size{Width: width, Height: ascent + descent},
		Ascent:  ascent,
		Descent: descent,
	}
}

// Package termcanvas rasterizes drawing commands onto a character grid
// so timelines can be shown in a terminal.
package termcanvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/animator/pkg/rendering"
)

// Glyphs used for the different shapes.
const (
	RuneOpaque      = '░'
	RuneTranslucent = '▒'
	RuneRounded     = '█'
	RuneEmpty       = ' '
)

type cell struct {
	r     rune
	color rendering.Color
}

// Canvas is a [rendering.Canvas] backed by a grid of cells. Each cell
// covers CellWidth x CellHeight pixels and is filled when a shape covers
// its center.
type Canvas struct {
	size       rendering.Size
	cellWidth  float64
	cellHeight float64
	cols, rows int
	cells      []cell
}

var _ rendering.Canvas = (*Canvas)(nil)

// New returns a blank canvas of size pixels rasterized into cells of
// cellWidth x cellHeight pixels.
func New(size rendering.Size, cellWidth, cellHeight float64) *Canvas {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	cols := int(math.Ceil(size.Width / cellWidth))
	rows := int(math.Ceil(size.Height / cellHeight))
	c := &Canvas{
		size:       size,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		cols:       max(cols, 0),
		rows:       max(rows, 0),
	}
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear()
	return c
}

// Size implements rendering.Canvas.
func (c *Canvas) Size() rendering.Size { return c.size }

// Cols returns the grid width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the grid height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: RuneEmpty}
	}
}

// DrawRect fills the covered cells with a shade that reflects the paint
// opacity. Fully transparent paints draw nothing.
func (c *Canvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	r := RuneOpaque
	if paint.Color.Alpha() < 1 {
		r = RuneTranslucent
	}
	c.fill(rect, r, paint.Color)
}

// DrawRRect fills the covered cells with a solid block. Corner radii are
// below cell resolution and are ignored.
func (c *Canvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.fill(rrect.Rect, RuneRounded, paint.Color)
}

// DrawText writes the text into the row containing the vertical center
// of the layout, starting at the column containing position.
func (c *Canvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	if layout == nil {
		return
	}
	row := int(math.Floor((position.Y + layout.Size.Height/2) / c.cellHeight))
	col := int(math.Floor(position.X / c.cellWidth))
	for i, r := range []rune(layout.Text) {
		c.set(col+i, row, cell{r: r, color: layout.Style.Color})
	}
}

func (c *Canvas) fill(rect rendering.Rect, r rune, color rendering.Color) {
	if color.Alpha() == 0 {
		return
	}
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			center := rendering.Offset{
				X: (float64(col) + 0.5) * c.cellWidth,
				Y: (float64(row) + 0.5) * c.cellHeight,
			}
			if rect.Contains(center) {
				c.set(col, row, cell{r: r, color: color})
			}
		}
	}
}

func (c *Canvas) set(col, row int, v cell) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = v
}

// Plain returns the grid as unstyled text, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.cells[row*c.cols+col].r)
		}
	}
	return b.String()
}

// String returns the grid with each run of same-colored cells styled in
// its paint color.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].color == line[start].color {
				end++
			}
			b.WriteString(render(line[start:end]))
			start = end
		}
	}
	return b.String()
}

func render(run []cell) string {
	text := make([]rune, len(run))
	for i, v := range run {
		text[i] = v.r
	}
	if run[0].color.Alpha() == 0 {
		return string(text)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(run[0].color.Hex())).
		Render(string(text))
}

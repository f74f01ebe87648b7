package timeline

import (
	"fmt"
	"math"

	"github.com/go-drift/animator/pkg/rendering"
)

// Region is the semantic zone of the timeline under a point.
type Region int

const (
	RegionNone Region = iota
	RegionCue
	RegionBackground
	RegionLeftGrip
	RegionRightGrip
)

func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case RegionCue:
		return "cue"
	case RegionBackground:
		return "background"
	case RegionLeftGrip:
		return "left-grip"
	case RegionRightGrip:
		return "right-grip"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// Hit is the result of a hit test. Index is the cue index for RegionCue
// and -1 otherwise.
type Hit struct {
	Region Region
	Index  int
}

// Layout is the derived geometry of a timeline. It is recomputed from the
// configuration, size and cues after every change and never edited.
type Layout struct {
	Size       rendering.Size
	Background rendering.Rect
	LeftGrip   rendering.Rect
	RightGrip  rendering.Rect
	// Cues holds one marker rect per cue, in cue order.
	Cues []rendering.Rect
	// Values holds the cue values the markers were computed from.
	Values []float64
}

// ComputeLayout lays out a timeline of the given size. Widths below
// cfg.MinWidth are clamped.
func ComputeLayout(cfg Config, size rendering.Size, cues []float64) Layout {
	size.Width = math.Max(size.Width, cfg.MinWidth())
	size.Height = math.Max(size.Height, 0)

	l := Layout{
		Size:       size,
		Background: rendering.RectFromLTWH(cfg.MarginLeft, 0, size.Width-cfg.MarginLeft-cfg.MarginRight, size.Height),
		LeftGrip:   rendering.RectFromLTWH(0, 0, cfg.MarginLeft, size.Height),
		RightGrip:  rendering.RectFromLTWH(size.Width-cfg.MarginRight, 0, cfg.MarginRight, size.Height),
		Cues:       make([]rendering.Rect, len(cues)),
		Values:     append([]float64(nil), cues...),
	}
	for i, cue := range cues {
		l.Cues[i] = CueRect(cfg, size, cue)
	}
	return l
}

// CueX returns the x coordinate of the center of a cue marker.
func CueX(cfg Config, width, cue float64) float64 {
	width = math.Max(width, cfg.MinWidth())
	return cfg.MarginLeft + cue*(width-cfg.MarginLeft-cfg.MarginRight)
}

// CueRect returns the marker rect of a cue: CueSize wide, centered on the
// cue position, spanning the height below the label band.
func CueRect(cfg Config, size rendering.Size, cue float64) rendering.Rect {
	top := math.Min(cfg.cueTop(), size.Height)
	x := CueX(cfg, size.Width, cue) - cfg.CueSize/2
	return rendering.RectFromLTWH(x, top, cfg.CueSize, size.Height-top)
}

// HitTest resolves p to a region. Cue markers win over everything else,
// lowest index first, followed by the left grip, the right grip and the
// background.
func (l Layout) HitTest(p rendering.Offset) Hit {
	for i, r := range l.Cues {
		if r.Contains(p) {
			return Hit{Region: RegionCue, Index: i}
		}
	}
	switch {
	case l.LeftGrip.Contains(p):
		return Hit{Region: RegionLeftGrip, Index: -1}
	case l.RightGrip.Contains(p):
		return Hit{Region: RegionRightGrip, Index: -1}
	case l.Background.Contains(p):
		return Hit{Region: RegionBackground, Index: -1}
	}
	return Hit{Region: RegionNone, Index: -1}
}

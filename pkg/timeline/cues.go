package timeline

import (
	"maps"
	"math"
	"slices"
	"sort"

	"github.com/go-drift/animator/pkg/animation"
)

// Cues is the ordered cue collection of a timeline. Each cue is a
// keyframe; plain cues are keyframes without setters.
//
// The collection is sorted by cue at all times. Equal cues keep their
// insertion order, and a newly inserted cue goes after existing equals.
type Cues struct {
	frames         []animation.KeyFrame
	listeners      map[int]func()
	nextListenerID int
}

// NewCues returns a collection holding frames, sorted by cue.
func NewCues(frames ...animation.KeyFrame) *Cues {
	c := &Cues{listeners: make(map[int]func())}
	for _, kf := range frames {
		c.insert(kf.Clone())
	}
	return c
}

// Add inserts a plain cue and returns its index.
func (c *Cues) Add(cue float64) int {
	return c.AddKeyFrame(animation.KeyFrame{Cue: cue})
}

// AddKeyFrame inserts kf at its sorted position and returns the index.
func (c *Cues) AddKeyFrame(kf animation.KeyFrame) int {
	i := c.insert(kf.Clone())
	c.notify()
	return i
}

func (c *Cues) insert(kf animation.KeyFrame) int {
	i := sort.Search(len(c.frames), func(i int) bool {
		return c.frames[i].Cue > kf.Cue
	})
	c.frames = slices.Insert(c.frames, i, kf)
	return i
}

// Remove deletes the cue at index i. Out-of-range indices are ignored.
func (c *Cues) Remove(i int) bool {
	if i < 0 || i >= len(c.frames) {
		return false
	}
	c.frames = slices.Delete(c.frames, i, i+1)
	c.notify()
	return true
}

// Move sets the cue at index i to cue, re-sorts it and returns its new
// index. The keyframe's setters travel with it. Returns -1 when i is out
// of range.
func (c *Cues) Move(i int, cue float64) int {
	if i < 0 || i >= len(c.frames) {
		return -1
	}
	kf := c.frames[i]
	kf.Cue = cue
	kf.KeyTime = 0
	c.frames = slices.Delete(c.frames, i, i+1)
	j := c.insert(kf)
	c.notify()
	return j
}

// replace swaps the whole collection for copies of frames.
func (c *Cues) replace(frames []animation.KeyFrame) {
	c.frames = make([]animation.KeyFrame, 0, len(frames))
	for _, kf := range frames {
		c.insert(kf.Clone())
	}
	c.notify()
}

// At returns the cue at index i.
func (c *Cues) At(i int) (float64, bool) {
	if i < 0 || i >= len(c.frames) {
		return 0, false
	}
	return c.frames[i].Cue, true
}

// KeyFrame returns a copy of the keyframe at index i.
func (c *Cues) KeyFrame(i int) (animation.KeyFrame, bool) {
	if i < 0 || i >= len(c.frames) {
		return animation.KeyFrame{}, false
	}
	return c.frames[i].Clone(), true
}

// Len returns the number of cues.
func (c *Cues) Len() int {
	return len(c.frames)
}

// Values returns the cues in order.
func (c *Cues) Values() []float64 {
	out := make([]float64, len(c.frames))
	for i, kf := range c.frames {
		out[i] = kf.Cue
	}
	return out
}

// KeyFrames returns copies of the keyframes in order.
func (c *Cues) KeyFrames() []animation.KeyFrame {
	out := make([]animation.KeyFrame, len(c.frames))
	for i, kf := range c.frames {
		out[i] = kf.Clone()
	}
	return out
}

// OnChange registers fn to run after every mutation. Returns an
// unsubscribe function.
func (c *Cues) OnChange(fn func()) func() {
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Cues) notify() {
	for _, id := range slices.Sorted(maps.Keys(c.listeners)) {
		if fn, ok := c.listeners[id]; ok {
			fn()
		}
	}
}

// Round rounds cue to precision decimals, half away from zero.
func Round(cue float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(cue*scale) / scale
}

// CalculateCue maps a widget-local x coordinate to a cue: the position
// between the margins is normalized, rounded to the configured precision
// and clamped to [0, 1].
func CalculateCue(cfg Config, x, width float64) float64 {
	width = math.Max(width, cfg.MinWidth())
	span := width - cfg.MarginLeft - cfg.MarginRight
	cue := Round((x-cfg.MarginLeft)/span, cfg.Precision)
	return math.Min(math.Max(cue, 0), 1)
}

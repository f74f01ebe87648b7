package animation

import (
	"fmt"
	"strconv"
	"time"
)

// Setter assigns a value to a named property at a keyframe.
type Setter struct {
	Property string
	Value    string
}

// KeyFrame is a cue on the animation timeline with the property values
// that hold at that point.
type KeyFrame struct {
	// Cue is the normalized position in [0, 1].
	Cue float64
	// KeyTime, when non-zero, overrides Cue as KeyTime / Duration.
	KeyTime time.Duration
	// Setters are the property values at this keyframe.
	Setters []Setter
}

// Value returns the value of property at this keyframe.
func (k KeyFrame) Value(property string) (string, bool) {
	for _, s := range k.Setters {
		if s.Property == property {
			return s.Value, true
		}
	}
	return "", false
}

// Clone returns a deep copy of the keyframe.
func (k KeyFrame) Clone() KeyFrame {
	k.Setters = append([]Setter(nil), k.Setters...)
	return k
}

// IterationCount is either a finite number of iterations or infinite.
// The zero value means a single iteration.
type IterationCount struct {
	n        int
	infinite bool
}

// Iterations returns a finite iteration count. Values below 1 mean one
// iteration.
func Iterations(n int) IterationCount {
	return IterationCount{n: n}
}

// Infinite returns an iteration count that never ends.
func Infinite() IterationCount {
	return IterationCount{infinite: true}
}

// IsInfinite reports whether the animation repeats forever.
func (c IterationCount) IsInfinite() bool {
	return c.infinite
}

// Count returns the finite number of iterations. It is meaningless when
// IsInfinite is true.
func (c IterationCount) Count() int {
	if c.n < 1 {
		return 1
	}
	return c.n
}

func (c IterationCount) String() string {
	if c.infinite {
		return "infinite"
	}
	return strconv.Itoa(c.Count())
}

// ParseIterationCount parses "infinite" or a positive integer.
func ParseIterationCount(s string) (IterationCount, error) {
	if s == "infinite" {
		return Infinite(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return IterationCount{}, fmt.Errorf("invalid iteration count %q", s)
	}
	return Iterations(n), nil
}

// PlaybackDirection controls which way each iteration runs.
type PlaybackDirection int

const (
	// DirectionNormal plays every iteration forward.
	DirectionNormal PlaybackDirection = iota
	// DirectionReverse plays every iteration backward.
	DirectionReverse
	// DirectionAlternate plays even iterations forward and odd ones backward.
	DirectionAlternate
	// DirectionAlternateReverse plays even iterations backward and odd ones forward.
	DirectionAlternateReverse
)

func (d PlaybackDirection) String() string {
	switch d {
	case DirectionNormal:
		return "normal"
	case DirectionReverse:
		return "reverse"
	case DirectionAlternate:
		return "alternate"
	case DirectionAlternateReverse:
		return "alternate-reverse"
	default:
		return fmt.Sprintf("PlaybackDirection(%d)", int(d))
	}
}

// reversed reports whether the given iteration runs backward.
func (d PlaybackDirection) reversed(iteration int) bool {
	switch d {
	case DirectionReverse:
		return true
	case DirectionAlternate:
		return iteration%2 == 1
	case DirectionAlternateReverse:
		return iteration%2 == 0
	default:
		return false
	}
}

// FillMode controls which values apply outside the active interval.
type FillMode int

const (
	// FillNone applies no values before the delay or after the last iteration.
	FillNone FillMode = iota
	// FillForward holds the final values after the last iteration.
	FillForward
	// FillBackward applies the initial values during the delay.
	FillBackward
	// FillBoth combines FillForward and FillBackward.
	FillBoth
)

func (f FillMode) String() string {
	switch f {
	case FillNone:
		return "none"
	case FillForward:
		return "forward"
	case FillBackward:
		return "backward"
	case FillBoth:
		return "both"
	default:
		return fmt.Sprintf("FillMode(%d)", int(f))
	}
}

func (f FillMode) forward() bool  { return f == FillForward || f == FillBoth }
func (f FillMode) backward() bool { return f == FillBackward || f == FillBoth }

// Definition describes a named keyframe animation.
type Definition struct {
	Name                   string
	Duration               time.Duration
	Delay                  time.Duration
	DelayBetweenIterations time.Duration
	Iterations             IterationCount
	Direction              PlaybackDirection
	Fill                   FillMode
	// Easing is resolved with ParseEasing. Empty means linear.
	Easing string
	// SpeedRatio scales clock time. Zero means 1.
	SpeedRatio float64
	KeyFrames  []KeyFrame
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() Definition {
	frames := make([]KeyFrame, len(d.KeyFrames))
	for i, k := range d.KeyFrames {
		frames[i] = k.Clone()
	}
	d.KeyFrames = frames
	return d
}

package animation

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/go-drift/animator/pkg/errors"
)

// PropertyValue is the interpolated value of one property.
type PropertyValue struct {
	Property string
	Value    string
}

// Frame is the result of evaluating an animation at a point in time.
type Frame struct {
	// Values holds one entry per animated property, in order of first
	// appearance in the keyframes. Empty when no fill applies.
	Values []PropertyValue
	// Active is true while an iteration (or the gap after one) is running.
	Active bool
	// Finished is true once every finite iteration has completed.
	Finished bool
	// Iteration is the zero-based iteration index.
	Iteration int
}

// Animation is a compiled [Definition] ready for evaluation.
type Animation struct {
	def        Definition
	curve      Curve
	properties []string
}

// Compile validates def and prepares it for evaluation. Keyframes with a
// non-zero KeyTime get their cue derived from it, and keyframes are sorted
// by cue with ties kept in declaration order.
func Compile(def Definition) (*Animation, error) {
	fail := func(err error) (*Animation, error) {
		return nil, &errors.AnimatorError{Op: "animation.Compile", Kind: errors.KindDefinition, Err: err}
	}
	if def.Name == "" {
		return fail(fmt.Errorf("animation has no name"))
	}
	if def.Duration <= 0 {
		return fail(fmt.Errorf("%s: duration must be positive, got %s", def.Name, def.Duration))
	}
	if def.Delay < 0 || def.DelayBetweenIterations < 0 {
		return fail(fmt.Errorf("%s: delays must not be negative", def.Name))
	}
	if def.SpeedRatio < 0 {
		return fail(fmt.Errorf("%s: speed ratio must not be negative", def.Name))
	}
	if def.SpeedRatio == 0 {
		def.SpeedRatio = 1
	}
	curve, err := ParseEasing(def.Easing)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", def.Name, err))
	}

	def = def.Clone()
	var properties []string
	for i := range def.KeyFrames {
		kf := &def.KeyFrames[i]
		if kf.KeyTime != 0 {
			kf.Cue = float64(kf.KeyTime) / float64(def.Duration)
		}
		if kf.Cue < 0 || kf.Cue > 1 || math.IsNaN(kf.Cue) {
			return fail(fmt.Errorf("%s: keyframe %d cue %v out of range [0, 1]", def.Name, i, kf.Cue))
		}
		for _, s := range kf.Setters {
			if !slices.Contains(properties, s.Property) {
				properties = append(properties, s.Property)
			}
		}
	}
	slices.SortStableFunc(def.KeyFrames, func(a, b KeyFrame) int {
		switch {
		case a.Cue < b.Cue:
			return -1
		case a.Cue > b.Cue:
			return 1
		default:
			return 0
		}
	})

	return &Animation{def: def, curve: curve, properties: properties}, nil
}

// Name returns the definition name.
func (a *Animation) Name() string {
	return a.def.Name
}

// Definition returns a copy of the compiled definition.
func (a *Animation) Definition() Definition {
	return a.def.Clone()
}

// Properties returns the animated property names in order of first
// appearance.
func (a *Animation) Properties() []string {
	return slices.Clone(a.properties)
}

// Evaluate computes the property values at clock time t.
func (a *Animation) Evaluate(t time.Duration) Frame {
	def := &a.def
	local := time.Duration(float64(t) * def.SpeedRatio)

	if local < def.Delay {
		if def.Fill.backward() {
			return Frame{Values: a.valuesAt(a.directed(0, 0))}
		}
		return Frame{}
	}
	local -= def.Delay

	period := def.Duration + def.DelayBetweenIterations
	iteration := int(local / period)
	within := local - time.Duration(iteration)*period

	if !def.Iterations.IsInfinite() && iteration >= def.Iterations.Count() {
		last := def.Iterations.Count() - 1
		frame := Frame{Finished: true, Iteration: last}
		if def.Fill.forward() {
			frame.Values = a.valuesAt(a.directed(1, last))
		}
		return frame
	}

	progress := 1.0
	if within < def.Duration {
		progress = float64(within) / float64(def.Duration)
	}
	return Frame{
		Values:    a.valuesAt(a.directed(progress, iteration)),
		Active:    true,
		Iteration: iteration,
	}
}

// directed applies the playback direction and the easing curve to the
// linear progress of an iteration.
func (a *Animation) directed(progress float64, iteration int) float64 {
	if a.def.Direction.reversed(iteration) {
		progress = 1 - progress
	}
	return a.curve(progress)
}

func (a *Animation) valuesAt(cue float64) []PropertyValue {
	values := make([]PropertyValue, 0, len(a.properties))
	for _, p := range a.properties {
		if v, ok := a.valueAt(p, cue); ok {
			values = append(values, PropertyValue{Property: p, Value: v})
		}
	}
	return values
}

// valueAt interpolates property between the keyframes that set it. Before
// the first such keyframe the first value holds, after the last the last
// value holds.
func (a *Animation) valueAt(property string, cue float64) (string, bool) {
	var (
		prev, next       KeyFrame
		hasPrev, hasNext bool
	)
	for _, kf := range a.def.KeyFrames {
		if _, ok := kf.Value(property); !ok {
			continue
		}
		if kf.Cue <= cue {
			prev, hasPrev = kf, true
			continue
		}
		next, hasNext = kf, true
		break
	}
	switch {
	case hasPrev && hasNext:
		from, _ := prev.Value(property)
		to, _ := next.Value(property)
		span := next.Cue - prev.Cue
		return InterpolateValue(from, to, (cue-prev.Cue)/span), true
	case hasPrev:
		return prev.Value(property)
	case hasNext:
		return next.Value(property)
	default:
		return "", false
	}
}

package animation

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
)

var namedCurves = map[string]Curve{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"in-back":      ease.InBack,
	"out-back":     ease.OutBack,
	"in-out-back":  ease.InOutBack,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
	"ease":         Ease,
	"ease-in":      EaseIn,
	"ease-out":     EaseOut,
	"ease-in-out":  EaseInOut,
}

// EasingNames returns the sorted names accepted by [ParseEasing],
// excluding the parameterized spline forms.
func EasingNames() []string {
	return slices.Sorted(maps.Keys(namedCurves))
}

// ParseEasing resolves an easing description to a curve. It accepts the
// names listed by [EasingNames] and the parameterized forms
// "spline(x1,y1,x2,y2)" and "cubic-bezier(x1,y1,x2,y2)". An empty name
// resolves to [LinearCurve].
func ParseEasing(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LinearCurve, nil
	}
	if c, ok := namedCurves[name]; ok {
		return c, nil
	}
	for _, prefix := range []string{"spline(", "cubic-bezier("} {
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ")") {
			args := name[len(prefix) : len(name)-1]
			return parseSpline(args)
		}
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

func parseSpline(args string) (Curve, error) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) != 4 {
		return nil, fmt.Errorf("spline needs 4 control values, got %d", len(fields))
	}
	var p [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("spline value %q: %w", f, err)
		}
		p[i] = v
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, fmt.Errorf("spline x values must be within [0, 1]")
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), nil
}

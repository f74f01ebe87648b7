package animation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/animator/pkg/rendering"
)

// Tween interpolates between Begin and End values based on progress.
//
// Use the helper constructors ([TweenFloat64], [TweenColor]) for common
// types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End for progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor blends two colors in CIE Lab space. Alpha is interpolated
// linearly.
func LerpColor(a, b rendering.Color, t float64) rendering.Color {
	rgb := rendering.FromColorful(a.Colorful().BlendLab(b.Colorful(), t))
	alpha := LerpFloat64(a.Alpha(), b.Alpha(), t)
	return rgb.WithOpacity(alpha)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end rendering.Color) *Tween[rendering.Color] {
	return &Tween[rendering.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}

// InterpolateValue interpolates two setter values. Numbers interpolate
// linearly and colors ("#rgb", "#rrggbb", "#aarrggbb") blend in Lab space.
// Any other pair is discrete: a below progress 0.5, b from 0.5 on.
func InterpolateValue(a, b string, t float64) string {
	if fa, err := strconv.ParseFloat(strings.TrimSpace(a), 64); err == nil {
		if fb, err := strconv.ParseFloat(strings.TrimSpace(b), 64); err == nil {
			return formatFloat(LerpFloat64(fa, fb, t))
		}
	}
	if ca, alphaA, err := parseColorValue(a); err == nil {
		if cb, alphaB, err := parseColorValue(b); err == nil {
			c := LerpColor(ca, cb, t)
			if alphaA || alphaB {
				return fmt.Sprintf("#%02x%s", uint8(c>>24), c.Hex()[1:])
			}
			return c.Hex()
		}
	}
	if t < 0.5 {
		return a
	}
	return b
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseColorValue parses a hex color. The bool reports whether the value
// carried an explicit alpha channel.
func parseColorValue(s string) (rendering.Color, bool, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return 0, false, fmt.Errorf("not a color: %q", s)
	}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, false, fmt.Errorf("color alpha %q: %w", s, err)
		}
		c, err := rendering.ParseColor("#" + s[3:])
		if err != nil {
			return 0, false, err
		}
		return c.WithAlpha(uint8(a)), true, nil
	}
	c, err := rendering.ParseColor(s)
	return c, false, err
}

package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/animator/pkg/animation"
)

// This example binds a fade animation to a target and drives it from a
// global clock.
func ExampleController() {
	global := animation.NewGlobalClock(nil)
	ctrl := animation.NewController(global)
	defer ctrl.Dispose()

	err := ctrl.Add(animation.Definition{
		Name:     "fade",
		Duration: time.Second,
		KeyFrames: []animation.KeyFrame{
			{Cue: 0, Setters: []animation.Setter{{Property: "Opacity", Value: "1"}}},
			{Cue: 1, Setters: []animation.Setter{{Property: "Opacity", Value: "0"}}},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	// The target receives the current values as soon as it is bound.
	ctrl.Bind("fade", animation.TargetFunc(func(name, value string) error {
		fmt.Println(name, value)
		return nil
	}))

	ctrl.Play()
	global.Pulse(0)
	global.Pulse(250 * time.Millisecond)
	global.Pulse(500 * time.Millisecond)

	// Output:
	// Opacity 1
	// Opacity 1
	// Opacity 0.75
	// Opacity 0.5
}

// This example shows relative pulses and absolute steps on a manual clock.
func ExampleManualClock() {
	clock := animation.NewManualClock()
	clock.Subscribe(animation.ObserverFunc(func(t time.Duration) {
		fmt.Println(t)
	}))

	clock.Pulse(100 * time.Millisecond)
	clock.Pulse(50 * time.Millisecond)
	clock.Step(2 * time.Second)
	clock.Pulse(10 * time.Millisecond)

	// Output:
	// 100ms
	// 150ms
	// 2s
	// 160ms
}

// This example resolves a keyframe spline easing.
func ExampleParseEasing() {
	curve, err := animation.ParseEasing("spline(0.4,0,0.6,1)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f %.2f %.2f\n", curve(0), curve(0.5), curve(1))

	// Output:
	// 0.00 0.50 1.00
}

// This example shows how to create a custom tween with a Lerp function.
func ExampleTween_customType() {
	type Point struct {
		X, Y float64
	}

	pointTween := &animation.Tween[Point]{
		Begin: Point{0, 0},
		End:   Point{100, 200},
		Lerp: func(a, b Point, t float64) Point {
			return Point{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
			}
		},
	}

	midpoint := pointTween.Evaluate(0.5)
	fmt.Printf("Midpoint: (%.0f, %.0f)\n", midpoint.X, midpoint.Y)

	// Output:
	// Midpoint: (50, 100)
}

// This example shows how setter values are interpolated.
func ExampleInterpolateValue() {
	fmt.Println(animation.InterpolateValue("0", "360", 0.25))
	fmt.Println(animation.InterpolateValue("hidden", "visible", 0.4))
	fmt.Println(animation.InterpolateValue("hidden", "visible", 0.5))

	// Output:
	// 90
	// hidden
	// visible
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}

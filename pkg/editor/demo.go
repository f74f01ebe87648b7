package editor

import (
	"time"

	"github.com/go-drift/animator/pkg/animation"
)

// DemoEasing is the keyframe spline used by the demo tracks.
const DemoEasing = "spline(0.4,0,0.6,1)"

// Project is a named set of animation tracks.
type Project struct {
	Name   string
	Tracks []animation.Definition
}

// DemoProject returns the two demonstrated tracks: animation1 fades out
// while turning a full circle, animation2 fades and scales in. Both run
// for two seconds and alternate forever.
func DemoProject() Project {
	return Project{
		Name: "Project1",
		Tracks: []animation.Definition{
			{
				Name:       "animation1",
				Duration:   2 * time.Second,
				Iterations: animation.Infinite(),
				Direction:  animation.DirectionAlternate,
				Easing:     DemoEasing,
				KeyFrames: []animation.KeyFrame{
					{KeyTime: 0, Setters: []animation.Setter{
						{Property: "Opacity", Value: "1"},
						{Property: "RotateTransform.Angle", Value: "0"},
					}},
					{KeyTime: 2 * time.Second, Setters: []animation.Setter{
						{Property: "Opacity", Value: "0"},
						{Property: "RotateTransform.Angle", Value: "360"},
					}},
				},
			},
			{
				Name:       "animation2",
				Duration:   2 * time.Second,
				Iterations: animation.Infinite(),
				Direction:  animation.DirectionAlternate,
				Easing:     DemoEasing,
				KeyFrames: []animation.KeyFrame{
					{Cue: 0, Setters: []animation.Setter{
						{Property: "Opacity", Value: "0"},
						{Property: "ScaleTransform.ScaleX", Value: "0"},
						{Property: "ScaleTransform.ScaleY", Value: "0"},
					}},
					{Cue: 1, Setters: []animation.Setter{
						{Property: "Opacity", Value: "1"},
						{Property: "ScaleTransform.ScaleX", Value: "1"},
						{Property: "ScaleTransform.ScaleY", Value: "1"},
					}},
				},
			},
		},
	}
}

package shell

import (
	"fmt"
	"io"
	"time"

	"github.com/go-drift/animator/internal/config"
	"github.com/go-drift/animator/pkg/animation"
	"github.com/go-drift/animator/pkg/rendering"
)

// DemoFrameInterval is the simulated frame period of [RunDemo].
const DemoFrameInterval = 16 * time.Millisecond

// ScenarioTrack is the empty track the demo edits.
const ScenarioTrack = "scenario"

// DemoScript is the command sequence [RunDemo] executes. It builds two
// cues on an empty 220 wide timeline, drags the second one to the end
// and then plays the demo tracks.
var DemoScript = []string{
	"select " + ScenarioTrack,
	"click 20 ctrl",
	"click 120 ctrl",
	"cues",
	"drag 120 220",
	"cues",
	"render",
	"select animation2",
	"play",
	"frame 63",
	"state",
	"pause",
	"seek 1000",
	"state",
}

// steppedTime advances by a fixed step on every read.
type steppedTime struct {
	now  time.Time
	step time.Duration
}

func (s *steppedTime) Now() time.Time {
	s.now = s.now.Add(s.step)
	return s.now
}

// RunDemo runs [DemoScript] against a fresh session on simulated time,
// echoing each command before its output.
func RunDemo(cfg *config.Resolved, out io.Writer, opts Options) error {
	opts.Source = &steppedTime{now: time.Unix(0, 0), step: DemoFrameInterval}
	s, err := NewSession(cfg, out, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	scenario, err := s.editor.AddTrack(animation.Definition{Name: ScenarioTrack, Duration: time.Second}, nil)
	if err != nil {
		return err
	}
	scenario.Widget().SetBounds(rendering.Size{Width: 220, Height: cfg.Size.Height})

	for _, line := range DemoScript {
		fmt.Fprintf(out, "> %s\n", line)
		if err := s.Exec(line); err != nil {
			return err
		}
	}
	return nil
}

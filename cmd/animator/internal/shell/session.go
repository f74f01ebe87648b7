// Package shell implements the interactive animator shell: a headless
// editor driven by text commands.
package shell

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/animator/cmd/animator/internal/termcanvas"
	"github.com/go-drift/animator/internal/config"
	"github.com/go-drift/animator/pkg/animation"
	"github.com/go-drift/animator/pkg/editor"
	"github.com/go-drift/animator/pkg/errors"
	"github.com/go-drift/animator/pkg/rendering"
	"github.com/go-drift/animator/pkg/timeline"
)

// Terminal cell size in timeline pixels.
const (
	CellWidth  = 5
	CellHeight = 10
)

// ErrQuit is returned by [Session.Exec] when the user asks to leave.
var ErrQuit = stderrors.New("quit")

// Options configures a [Session].
type Options struct {
	// Source drives the global clock. Nil uses the system time.
	Source animation.TimeSource
	Logger *slog.Logger
	// Plain disables colors in rendered timelines.
	Plain bool
}

// Session is one editor instance plus the clocks that drive it.
type Session struct {
	out     io.Writer
	global  *animation.GlobalClock
	ctrl    *animation.Controller
	editor  *editor.Editor
	current *editor.Track
	buttons timeline.Buttons
	plain   bool
}

// NewSession opens the demo project with the resolved settings.
func NewSession(cfg *config.Resolved, out io.Writer, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	global := animation.NewGlobalClock(opts.Source)
	ctrl := animation.NewController(global,
		animation.WithSliderMax(cfg.SliderMax),
		animation.WithSliderStep(cfg.SliderStep),
		animation.WithLogger(logger),
	)
	ed := editor.New(ctrl, editor.Options{
		Timeline: cfg.Timeline,
		Style:    cfg.Style,
		Size:     cfg.Size,
		Logger:   logger,
	})

	project := editor.DemoProject()
	if cfg.ProjectName != "" {
		project.Name = cfg.ProjectName
	}
	if err := ed.Open(project); err != nil {
		ctrl.Dispose()
		return nil, err
	}

	s := &Session{
		out:    out,
		global: global,
		ctrl:   ctrl,
		editor: ed,
		plain:  opts.Plain,
	}
	s.current = ed.Tracks()[0]
	return s, nil
}

// Editor returns the session editor.
func (s *Session) Editor() *editor.Editor { return s.editor }

// Current returns the selected track.
func (s *Session) Current() *editor.Track { return s.current }

// Frame pumps one frame of the global clock.
func (s *Session) Frame() { s.global.Frame() }

// Close releases the editor and stops playback.
func (s *Session) Close() {
	s.editor.Dispose()
	s.ctrl.Dispose()
}

// Exec runs one command line. It returns [ErrQuit] when the session
// should end.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "help", "?":
		s.printHelp()
	case "quit", "exit", "q":
		return ErrQuit
	case "tracks":
		s.cmdTracks()
	case "select", "sel":
		return s.cmdSelect(args)
	case "press", "p":
		return s.cmdPress(args)
	case "move", "m":
		return s.cmdMove(args)
	case "release", "r":
		return s.cmdRelease(args)
	case "leave":
		s.pointer(timeline.PointerLeft, 0, 0)
	case "click":
		if err := s.cmdPress(args); err != nil {
			return err
		}
		return s.cmdRelease(args[:1])
	case "drag":
		return s.cmdDrag(args)
	case "toggle", "t":
		s.report(s.ctrl.TogglePlayback())
	case "play":
		s.ctrl.Play()
		s.report(true)
	case "pause":
		s.ctrl.Pause()
		s.report(false)
	case "seek":
		return s.cmdSeek(args)
	case "frame", "f":
		return s.cmdFrame(args)
	case "cues", "c":
		s.cmdCues()
	case "render", "show":
		s.cmdRender()
	case "state", "s":
		s.cmdState()
	default:
		return inputError("unknown command %q (type 'help' for commands)", name)
	}
	return nil
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `Animator Commands:
  Tracks:
    tracks                     - List tracks
    select <name>              - Select the track pointer commands go to

  Pointer (x in track coordinates):
    press <x> [button] [mods]  - Press (primary|secondary|middle; ctrl|shift|alt|meta)
    move <x> [mods]            - Move the pointer
    release <x>                - Release
    click <x> [button] [mods]  - Press and release
    drag <from> <to> [steps]   - Drag with the primary button
    leave                      - Pointer leaves the timeline

  Playback:
    toggle                     - Play or pause
    play / pause               - Set playback state
    seek <ms>                  - Move the slider (while paused)
    frame [n]                  - Pump n frames of the global clock

  Display:
    cues                       - List cues of the selected track
    render                     - Draw all timelines
    state                      - Show playback position and visual properties

  quit                         - Exit`)
}

func (s *Session) cmdTracks() {
	for _, t := range s.editor.Tracks() {
		marker := " "
		if t == s.current {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %-12s cues=%d left=%g width=%g\n",
			marker, t.Name(), t.Widget().Cues().Len(), t.Left(), t.Widget().Size().Width)
	}
}

func (s *Session) cmdSelect(args []string) error {
	if len(args) != 1 {
		return inputError("usage: select <name>")
	}
	t, ok := s.editor.Track(args[0])
	if !ok {
		return inputError("unknown track %q", args[0])
	}
	s.current = t
	fmt.Fprintf(s.out, "selected %s\n", t.Name())
	return nil
}

func (s *Session) cmdPress(args []string) error {
	if len(args) < 1 {
		return inputError("usage: press <x> [button] [mods]")
	}
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	buttons, mods, err := parseButtons(args[1:])
	if err != nil {
		return err
	}
	s.buttons = buttons
	s.pointer(timeline.PointerPressed, x, mods)
	return nil
}

func (s *Session) cmdMove(args []string) error {
	if len(args) < 1 {
		return inputError("usage: move <x> [mods]")
	}
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	_, mods, err := parseButtons(args[1:])
	if err != nil {
		return err
	}
	s.pointer(timeline.PointerMoved, x, mods)
	return nil
}

func (s *Session) cmdRelease(args []string) error {
	if len(args) < 1 {
		return inputError("usage: release <x>")
	}
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	s.pointer(timeline.PointerReleased, x, 0)
	s.buttons = 0
	return nil
}

func (s *Session) cmdDrag(args []string) error {
	if len(args) < 2 {
		return inputError("usage: drag <from> <to> [steps]")
	}
	from, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	to, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	steps := 1
	if len(args) > 2 {
		if steps, err = strconv.Atoi(args[2]); err != nil || steps < 1 {
			return inputError("invalid step count %q", args[2])
		}
	}
	s.buttons = timeline.ButtonPrimary
	s.pointer(timeline.PointerPressed, from, 0)
	for i := 1; i <= steps; i++ {
		s.pointer(timeline.PointerMoved, from+(to-from)*float64(i)/float64(steps), 0)
	}
	s.pointer(timeline.PointerReleased, to, 0)
	s.buttons = 0
	return nil
}

// pointer delivers an event at track x, converted to widget-local
// coordinates.
func (s *Session) pointer(kind timeline.PointerKind, x float64, mods timeline.Modifiers) {
	w := s.current.Widget()
	top := 0.0
	if w.Config().DrawLabels {
		top = w.Config().LabelsHeight
	}
	w.HandlePointer(timeline.PointerEvent{
		Kind:      kind,
		Position:  rendering.Offset{X: x - w.Left(), Y: (top + w.Size().Height) / 2},
		Buttons:   s.buttons,
		Modifiers: mods,
	})
}

func (s *Session) report(playing bool) {
	if playing {
		fmt.Fprintln(s.out, "playing")
		return
	}
	fmt.Fprintln(s.out, "paused")
}

func (s *Session) cmdSeek(args []string) error {
	if len(args) != 1 {
		return inputError("usage: seek <ms>")
	}
	ms, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	if ms < 0 || ms > s.ctrl.SliderMax() {
		return inputError("seek position %g outside [0, %g]", ms, s.ctrl.SliderMax())
	}
	if s.ctrl.IsPlaying() {
		fmt.Fprintln(s.out, "playing; pause to seek")
		return nil
	}
	s.ctrl.Seek(ms)
	fmt.Fprintf(s.out, "position %gms\n", s.ctrl.Position())
	return nil
}

func (s *Session) cmdFrame(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return inputError("invalid frame count %q", args[0])
		}
	}
	for range n {
		s.global.Frame()
	}
	fmt.Fprintf(s.out, "frame %d position %gms\n", s.global.Frames(), s.ctrl.Position())
	return nil
}

func (s *Session) cmdCues() {
	cues := s.current.Widget().Cues()
	for i := range cues.Len() {
		kf, _ := cues.KeyFrame(i)
		setters := make([]string, len(kf.Setters))
		for j, st := range kf.Setters {
			setters[j] = st.Property + "=" + st.Value
		}
		line := fmt.Sprintf("%d: %s %s", i, timeline.Label(kf.Cue), strings.Join(setters, " "))
		fmt.Fprintln(s.out, strings.TrimSpace(line))
	}
}

func (s *Session) cmdRender() {
	for _, t := range s.editor.Tracks() {
		size := t.Widget().Layout().Size
		canvas := termcanvas.New(size, CellWidth, CellHeight)
		s.editor.Paint(t, canvas)

		fmt.Fprintf(s.out, "%s\n", t.Name())
		indent := strings.Repeat(" ", int(math.Round(t.Left()/CellWidth)))
		text := canvas.String()
		if s.plain {
			text = canvas.Plain()
		}
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(s.out, "%s%s\n", indent, line)
		}
	}
}

func (s *Session) cmdState() {
	fmt.Fprintf(s.out, "playback: %s position: %gms\n", s.ctrl.Clock().PlayState(), s.ctrl.Position())
	for _, t := range s.editor.Tracks() {
		if t.Target() != nil {
			fmt.Fprintf(s.out, "  %s\n", t.Target())
		}
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, inputError("invalid number %q", s)
	}
	return v, nil
}

// parseButtons reads an optional button name followed by modifier names.
// The button defaults to primary.
func parseButtons(args []string) (timeline.Buttons, timeline.Modifiers, error) {
	buttons := timeline.ButtonPrimary
	var mods timeline.Modifiers
	for i, arg := range args {
		switch strings.ToLower(arg) {
		case "primary", "left":
			buttons = timeline.ButtonPrimary
		case "secondary", "right":
			buttons = timeline.ButtonSecondary
		case "middle":
			buttons = timeline.ButtonMiddle
		case "ctrl", "control":
			mods |= timeline.ModControl
		case "shift":
			mods |= timeline.ModShift
		case "alt":
			mods |= timeline.ModAlt
		case "meta", "cmd":
			mods |= timeline.ModMeta
		default:
			return 0, 0, inputError("unknown button or modifier %q at position %d", arg, i+1)
		}
	}
	return buttons, mods, nil
}

func inputError(format string, args ...any) error {
	return &errors.AnimatorError{
		Op:   "shell",
		Kind: errors.KindInput,
		Err:  fmt.Errorf(format, args...),
	}
}

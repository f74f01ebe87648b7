// Package editor wires timelines to animation definitions. Each track
// pairs a timeline widget with a definition bound to a visual through the
// shared playback controller; cue edits on the timeline rewrite the
// definition and rebind it.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/go-drift/animator/pkg/animation"
	"github.com/go-drift/animator/pkg/errors"
	"github.com/go-drift/animator/pkg/rendering"
	"github.com/go-drift/animator/pkg/timeline"
)

// Options configures an [Editor].
type Options struct {
	Timeline timeline.Config
	Style    timeline.Style
	// Size is the initial bounds of every timeline.
	Size   rendering.Size
	Logger *slog.Logger
}

// DefaultOptions returns the stock timeline configuration at 420x40.
func DefaultOptions() Options {
	return Options{
		Timeline: timeline.DefaultConfig(),
		Style:    timeline.DefaultStyle(),
		Size:     rendering.Size{Width: 420, Height: 40},
	}
}

// Editor holds the tracks of a project.
type Editor struct {
	ctrl    *animation.Controller
	opts    Options
	painter timeline.Painter
	tracks  []*Track
	logger  *slog.Logger
}

// New returns an editor whose tracks bind through ctrl.
func New(ctrl *animation.Controller, opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		ctrl:    ctrl,
		opts:    opts,
		painter: timeline.Painter{Config: opts.Timeline, Style: opts.Style},
		logger:  logger,
	}
}

// Open adds a track with a fresh visual for every definition in p.
func (e *Editor) Open(p Project) error {
	for _, def := range p.Tracks {
		if _, err := e.AddTrack(def, NewVisual(def.Name)); err != nil {
			return err
		}
	}
	e.logger.Info("project opened", "project", p.Name, "tracks", len(p.Tracks))
	return nil
}

// Controller returns the playback controller.
func (e *Editor) Controller() *animation.Controller {
	return e.ctrl
}

// Tracks returns the tracks in the order they were added.
func (e *Editor) Tracks() []*Track {
	return e.tracks
}

// Track returns the track with the given name.
func (e *Editor) Track(name string) (*Track, bool) {
	for _, t := range e.tracks {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// AddTrack compiles def, binds it to target and creates its timeline.
func (e *Editor) AddTrack(def animation.Definition, target *Visual) (*Track, error) {
	if _, exists := e.Track(def.Name); exists {
		return nil, fmt.Errorf("track %q already exists", def.Name)
	}
	if err := e.ctrl.Add(def); err != nil {
		return nil, err
	}
	anim, _ := e.ctrl.Animation(def.Name)

	t := &Track{name: def.Name, def: anim.Definition(), target: target, editor: e, dirty: true}
	cues := timeline.NewCues(t.def.KeyFrames...)
	t.widget = timeline.NewWidget(e.opts.Timeline, cues, t)
	t.widget.SetBounds(e.opts.Size)
	t.unsubscribe = cues.OnChange(t.sync)

	if target != nil {
		id, err := e.ctrl.Bind(def.Name, target)
		if err != nil {
			return nil, err
		}
		t.binding = id
	}
	e.tracks = append(e.tracks, t)
	e.logger.Debug("track added", "track", def.Name, "cues", cues.Len())
	return t, nil
}

// Paint draws the timeline of t onto canvas.
func (e *Editor) Paint(t *Track, canvas rendering.Canvas) {
	if t.dirty || t.picture == nil {
		var rec rendering.PictureRecorder
		e.painter.Paint(rec.BeginRecording(t.widget.Layout().Size), t.widget.Layout())
		t.picture = rec.EndRecording()
		t.dirty = false
	}
	t.picture.Paint(canvas)
}

// Dispose unbinds every track and detaches the timelines.
func (e *Editor) Dispose() {
	for _, t := range e.tracks {
		t.unsubscribe()
		t.widget.Dispose()
		e.ctrl.Unbind(t.binding)
	}
	e.tracks = nil
}

// Track is one timeline bound to one animation definition. It is the
// [timeline.Host] of its widget.
type Track struct {
	name    string
	def     animation.Definition
	target  *Visual
	binding uuid.UUID
	widget  *timeline.Widget
	editor  *Editor

	cursor      timeline.Cursor
	left        float64
	dirty       bool
	picture     *rendering.DisplayList
	revisions   int
	unsubscribe func()
}

var _ timeline.Host = (*Track)(nil)

// Name returns the animation name.
func (t *Track) Name() string { return t.name }

// Widget returns the timeline widget.
func (t *Track) Widget() *timeline.Widget { return t.widget }

// Target returns the bound visual.
func (t *Track) Target() *Visual { return t.target }

// Definition returns a copy of the current definition.
func (t *Track) Definition() animation.Definition { return t.def.Clone() }

// Cursor returns the cursor the widget asked for last.
func (t *Track) Cursor() timeline.Cursor { return t.cursor }

// Left returns the timeline offset inside the track area.
func (t *Track) Left() float64 { return t.left }

// Revisions returns how often cue edits rewrote the definition.
func (t *Track) Revisions() int { return t.revisions }

// Dirty reports whether the timeline needs repainting.
func (t *Track) Dirty() bool { return t.dirty }

// SetCursor implements timeline.Host.
func (t *Track) SetCursor(c timeline.Cursor) { t.cursor = c }

// Invalidate implements timeline.Host.
func (t *Track) Invalidate() { t.dirty = true }

// Place implements timeline.Host.
func (t *Track) Place(left, _ float64) { t.left = left }

// sync rewrites the definition from the edited cues and pushes it to the
// controller, which rebinds the visual to the new animation.
func (t *Track) sync() {
	def := t.def.Clone()
	def.KeyFrames = t.widget.Cues().KeyFrames()
	if err := t.editor.ctrl.Add(def); err != nil {
		errors.Report(&errors.AnimatorError{
			Op:   "editor.Track.sync",
			Kind: errors.KindDefinition,
			Err:  err,
		})
		return
	}
	t.def = def
	t.revisions++
}

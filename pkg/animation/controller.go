package animation

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/animator/pkg/errors"
)

// DefaultSliderMax is the upper bound of the playback slider in milliseconds.
const DefaultSliderMax = 4000

// Controller owns a playback clock and binds compiled animations to
// targets through it. It also keeps a playback slider in sync with the
// clock.
//
// The playback clock starts paused. Call [Controller.Dispose] to stop it
// and release every binding.
type Controller struct {
	clock      *ChainedClock
	animations map[string]*Animation
	bindings   map[uuid.UUID]*binding
	sliderMax  float64
	sliderStep float64
	logger     *slog.Logger

	positionSub    *Subscription
	position       float64
	listeners      map[int]func(ms float64)
	nextListenerID int

	// syncing is true while a clock tick is being pushed to the slider or
	// a slider move is being pushed to the clock. At most one propagation
	// cycle is in flight; re-entrant calls return immediately.
	syncing bool
}

// Option configures a [Controller].
type Option func(*Controller)

// WithSliderMax sets the slider range in milliseconds.
func WithSliderMax(ms float64) Option {
	return func(c *Controller) {
		if ms > 0 {
			c.sliderMax = ms
		}
	}
}

// WithSliderStep snaps slider positions passed to [Controller.Seek] to
// multiples of ms. Zero disables snapping.
func WithSliderStep(ms float64) Option {
	return func(c *Controller) {
		if ms >= 0 {
			c.sliderStep = ms
		}
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

type binding struct {
	id     uuid.UUID
	anim   *Animation
	target Target
	sub    *Subscription
	ctrl   *Controller
}

func (b *binding) Tick(t time.Duration) {
	b.ctrl.apply(b, t)
}

func (b *binding) Done() {
	b.ctrl.logger.Debug("binding done", "id", b.id, "animation", b.anim.Name())
}

// NewController returns a controller whose playback clock is chained to
// parent. A nil parent leaves the clock to be driven by Seek only.
func NewController(parent Clock, opts ...Option) *Controller {
	c := &Controller{
		clock:      NewChainedClock(parent),
		animations: make(map[string]*Animation),
		bindings:   make(map[uuid.UUID]*binding),
		listeners:  make(map[int]func(float64)),
		sliderMax:  DefaultSliderMax,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.clock.SetPlayState(PlayStatePause)
	// Subscribed before any binding so the slider sees each tick first.
	c.positionSub = c.clock.Subscribe(ObserverFunc(c.onTick))
	return c
}

// Clock returns the playback clock.
func (c *Controller) Clock() *ChainedClock {
	return c.clock
}

// Add compiles def and stores it under its name. An existing definition
// with the same name is replaced and every binding that uses it switches
// to the new animation.
func (c *Controller) Add(def Definition) error {
	anim, err := Compile(def)
	if err != nil {
		return err
	}
	old := c.animations[def.Name]
	c.animations[def.Name] = anim
	if old == nil {
		return nil
	}
	for _, b := range c.bindings {
		if b.anim == old {
			b.anim = anim
			c.apply(b, c.clock.Time())
		}
	}
	return nil
}

// Animation returns the compiled animation with the given name.
func (c *Controller) Animation(name string) (*Animation, bool) {
	a, ok := c.animations[name]
	return a, ok
}

// Names returns the sorted names of all stored animations.
func (c *Controller) Names() []string {
	return slices.Sorted(maps.Keys(c.animations))
}

// Bind attaches the named animation to target. A nil target is a no-op
// and returns the zero UUID.
func (c *Controller) Bind(name string, target Target) (uuid.UUID, error) {
	anim, ok := c.animations[name]
	if !ok {
		return uuid.Nil, &errors.AnimatorError{
			Op:   "animation.Controller.Bind",
			Kind: errors.KindBinding,
			Err:  fmt.Errorf("unknown animation %q", name),
		}
	}
	return c.BindAnimation(anim, target), nil
}

// BindAnimation attaches anim to target through the playback clock. The
// target receives the values at the current time immediately and on every
// tick afterwards. A nil animation or target, including a nil pointer
// wrapped in the interface, is a no-op and returns the zero UUID.
func (c *Controller) BindAnimation(anim *Animation, target Target) uuid.UUID {
	if anim == nil || isNilTarget(target) || c.clock.Stopped() {
		return uuid.Nil
	}
	b := &binding{id: uuid.New(), anim: anim, target: target, ctrl: c}
	b.sub = c.clock.Subscribe(b)
	c.bindings[b.id] = b
	c.logger.Debug("animation bound", "id", b.id, "animation", anim.Name())
	c.apply(b, c.clock.Time())
	return b.id
}

// isNilTarget reports whether target is nil or wraps a nil pointer, map,
// slice, channel or func.
func isNilTarget(target Target) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Unbind detaches a binding. Unknown ids are ignored.
func (c *Controller) Unbind(id uuid.UUID) {
	b, ok := c.bindings[id]
	if !ok {
		return
	}
	b.sub.Dispose()
	delete(c.bindings, id)
	c.logger.Debug("animation unbound", "id", id, "animation", b.anim.Name())
}

// Bindings returns the number of active bindings.
func (c *Controller) Bindings() int {
	return len(c.bindings)
}

func (c *Controller) apply(b *binding, t time.Duration) {
	frame := b.anim.Evaluate(t)
	for _, v := range frame.Values {
		if err := b.target.SetProperty(v.Property, v.Value); err != nil {
			errors.Report(&errors.AnimatorError{
				Op:       "animation.Controller.apply",
				Kind:     errors.KindBinding,
				Property: v.Property,
				Err:      err,
			})
		}
	}
}

// TogglePlayback flips the playback clock between Run and Pause and
// reports whether it is now playing. A disposed controller stays stopped.
func (c *Controller) TogglePlayback() bool {
	switch c.clock.PlayState() {
	case PlayStateRun:
		c.Pause()
	case PlayStatePause:
		c.Play()
	}
	return c.IsPlaying()
}

// Play resumes playback.
func (c *Controller) Play() {
	if c.clock.PlayState() == PlayStateStop {
		return
	}
	c.clock.SetPlayState(PlayStateRun)
	c.logger.Debug("playback resumed", "time", c.clock.Time())
}

// Pause freezes playback.
func (c *Controller) Pause() {
	if c.clock.PlayState() == PlayStateStop {
		return
	}
	c.clock.SetPlayState(PlayStatePause)
	c.logger.Debug("playback paused", "time", c.clock.Time())
}

// IsPlaying reports whether the playback clock is running.
func (c *Controller) IsPlaying() bool {
	return c.clock.PlayState() == PlayStateRun
}

// SliderMax returns the slider range in milliseconds.
func (c *Controller) SliderMax() float64 {
	return c.sliderMax
}

// Position returns the last slider position pushed by the clock.
func (c *Controller) Position() float64 {
	return c.position
}

// OnPosition registers a slider callback fired with the clock time in
// milliseconds, wrapped into [0, SliderMax]. Returns an unsubscribe
// function.
func (c *Controller) OnPosition(fn func(ms float64)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) onTick(t time.Duration) {
	c.position = math.Mod(float64(t)/float64(time.Millisecond), c.sliderMax+1)
	if c.syncing {
		return
	}
	c.syncing = true
	defer func() { c.syncing = false }()
	for _, id := range slices.Sorted(maps.Keys(c.listeners)) {
		if fn, ok := c.listeners[id]; ok {
			fn(c.position)
		}
	}
}

// Seek handles a slider move to ms. While paused the position is snapped
// to the slider step, clamped to [0, SliderMax] and the playback clock is
// stepped to that time; while playing the clock keeps control and the
// move is ignored.
func (c *Controller) Seek(ms float64) {
	if c.syncing || c.clock.PlayState() != PlayStatePause {
		return
	}
	if c.sliderStep > 0 {
		ms = math.Round(ms/c.sliderStep) * c.sliderStep
	}
	ms = math.Min(math.Max(ms, 0), c.sliderMax)
	c.syncing = true
	defer func() { c.syncing = false }()
	c.position = ms
	c.clock.Step(time.Duration(ms * float64(time.Millisecond)))
}

// Dispose stops the playback clock and releases every binding.
func (c *Controller) Dispose() {
	c.clock.Dispose()
	for id, b := range c.bindings {
		b.sub.Dispose()
		delete(c.bindings, id)
	}
	c.positionSub.Dispose()
	c.listeners = make(map[int]func(float64))
}

package animation

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/animator/pkg/errors"
)

type propertyBag map[string]string

func (p propertyBag) SetProperty(name, value string) error {
	p[name] = value
	return nil
}

type captureHandler struct {
	errs []*errors.AnimatorError
}

func (h *captureHandler) HandleError(err *errors.AnimatorError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(*errors.PanicError)        {}

func newTestController(t *testing.T) (*Controller, *ManualClock) {
	t.Helper()
	parent := NewManualClock()
	c := NewController(parent)
	require.NoError(t, c.Add(fadeDefinition()))
	t.Cleanup(c.Dispose)
	return c, parent
}

func TestControllerStartsPaused(t *testing.T) {
	c, _ := newTestController(t)
	assert.False(t, c.IsPlaying())
	assert.Equal(t, PlayStatePause, c.Clock().PlayState())
}

func TestControllerTogglePlayback(t *testing.T) {
	c, _ := newTestController(t)

	assert.True(t, c.TogglePlayback())
	assert.Equal(t, PlayStateRun, c.Clock().PlayState())
	assert.False(t, c.TogglePlayback())
	assert.Equal(t, PlayStatePause, c.Clock().PlayState())

	c.Dispose()
	assert.False(t, c.TogglePlayback())
	assert.Equal(t, PlayStateStop, c.Clock().PlayState())
}

func TestControllerBindDrivesTarget(t *testing.T) {
	c, parent := newTestController(t)
	bag := propertyBag{}

	id, err := c.Bind("fade", bag)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, "1", bag["Opacity"])

	c.Play()
	parent.Step(0)
	parent.Step(500 * time.Millisecond)
	assert.Equal(t, "0.5", bag["Opacity"])

	c.Unbind(id)
	c.Unbind(id)
	parent.Step(750 * time.Millisecond)
	assert.Equal(t, "0.5", bag["Opacity"])
	assert.Equal(t, 0, c.Bindings())
}

func TestControllerBindNilTargetIsNoop(t *testing.T) {
	c, _ := newTestController(t)

	id, err := c.Bind("fade", nil)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.Equal(t, 0, c.Bindings())
}

func TestControllerBindUnknownAnimation(t *testing.T) {
	c, _ := newTestController(t)

	_, err := c.Bind("missing", propertyBag{})
	var ae *errors.AnimatorError
	require.True(t, stderrors.As(err, &ae))
	assert.Equal(t, errors.KindBinding, ae.Kind)
}

func TestControllerAddReplacesBoundAnimation(t *testing.T) {
	c, _ := newTestController(t)
	bag := propertyBag{}
	_, err := c.Bind("fade", bag)
	require.NoError(t, err)

	def := fadeDefinition()
	def.KeyFrames[1].Setters[0].Value = "0.8"
	require.NoError(t, c.Add(def))

	assert.Equal(t, "0.8", bag["Opacity"])
	assert.Equal(t, []string{"fade"}, c.Names())
}

func TestControllerReportsApplyErrors(t *testing.T) {
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	c, _ := newTestController(t)
	c.Bind("fade", TargetFunc(func(name, value string) error {
		return stderrors.New("read-only")
	}))

	require.Len(t, h.errs, 2)
	assert.Equal(t, errors.KindBinding, h.errs[0].Kind)
	assert.Equal(t, "Opacity", h.errs[0].Property)
	assert.Equal(t, "Angle", h.errs[1].Property)
}

func TestControllerPositionWrapsAtSliderMax(t *testing.T) {
	parent := NewManualClock()
	c := NewController(parent, WithSliderMax(1000))
	defer c.Dispose()

	var got []float64
	c.OnPosition(func(ms float64) { got = append(got, ms) })
	c.Play()
	parent.Step(0)
	parent.Step(400 * time.Millisecond)
	parent.Step(1201 * time.Millisecond)

	assert.Equal(t, []float64{0, 400, 200}, got)
	assert.Equal(t, 200.0, c.Position())
}

func TestControllerSeekSteppingWhilePaused(t *testing.T) {
	c, _ := newTestController(t)
	bag := propertyBag{}
	_, err := c.Bind("fade", bag)
	require.NoError(t, err)

	c.Seek(250)
	assert.Equal(t, 250*time.Millisecond, c.Clock().Time())
	assert.Equal(t, "0.75", bag["Opacity"])

	c.Play()
	c.Seek(900)
	assert.Equal(t, 250*time.Millisecond, c.Clock().Time(), "seek is ignored while playing")
}

func TestControllerSeekSnapsToSliderStep(t *testing.T) {
	parent := NewManualClock()
	c := NewController(parent, WithSliderStep(1), WithSliderMax(4000))
	defer c.Dispose()

	c.Seek(1000.4)
	assert.Equal(t, 1000.0, c.Position())
	assert.Equal(t, time.Second, c.Clock().Time())

	c.Seek(5000)
	assert.Equal(t, 4000.0, c.Position(), "seek clamps to the slider range")
}

func TestControllerSeekWithoutStepKeepsFraction(t *testing.T) {
	c, _ := newTestController(t)
	c.Seek(12.5)
	assert.Equal(t, 12.5, c.Position())
}

func TestControllerListenerRemovingAnotherDuringTick(t *testing.T) {
	c, _ := newTestController(t)

	var removeB func()
	var gotA, gotB int
	c.OnPosition(func(float64) {
		gotA++
		removeB()
	})
	removeB = c.OnPosition(func(float64) { gotB++ })

	require.NotPanics(t, func() { c.Clock().Step(20 * time.Millisecond) })
	assert.Equal(t, 1, gotA)
	assert.Equal(t, 0, gotB)
}

func TestControllerSyncGuardBreaksFeedback(t *testing.T) {
	c, parent := newTestController(t)

	// A slider view that writes every clock position back as a user move.
	seeks := 0
	c.OnPosition(func(ms float64) {
		seeks++
		c.Seek(ms)
	})
	steps := 0
	c.Clock().Subscribe(ObserverFunc(func(time.Duration) { steps++ }))

	parent.Step(0)
	parent.Step(100 * time.Millisecond)
	assert.Equal(t, 2, seeks)
	assert.Equal(t, 2, steps, "slider echo must not step the clock again")

	// A user move steps the clock once and is not echoed to the slider.
	c.Seek(300)
	assert.Equal(t, 2, seeks)
	assert.Equal(t, 3, steps)
}

type nilVisual struct{ values map[string]string }

func (v *nilVisual) SetProperty(name, value string) error {
	v.values[name] = value
	return nil
}

func TestControllerBindTypedNilTargetIsNoop(t *testing.T) {
	c, _ := newTestController(t)

	var visual *nilVisual
	var fn TargetFunc
	for name, target := range map[string]Target{"pointer": visual, "func": fn} {
		t.Run(name, func(t *testing.T) {
			var id uuid.UUID
			var err error
			require.NotPanics(t, func() { id, err = c.Bind("fade", target) })
			require.NoError(t, err)
			assert.Equal(t, uuid.Nil, id)
			assert.Equal(t, 0, c.Bindings())
		})
	}
}

func TestControllerDisposeReleasesEverything(t *testing.T) {
	parent := NewManualClock()
	c := NewController(parent)
	require.NoError(t, c.Add(fadeDefinition()))
	bag := propertyBag{}
	_, err := c.Bind("fade", bag)
	require.NoError(t, err)

	c.Dispose()
	c.Dispose()

	assert.Equal(t, 0, c.Bindings())
	assert.True(t, c.Clock().Stopped())
	id := c.BindAnimation(c.animations["fade"], bag)
	assert.Equal(t, uuid.Nil, id)
}

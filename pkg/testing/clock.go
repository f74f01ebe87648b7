package testing

import (
	"sync"
	"time"

	"github.com/go-drift/animator/pkg/animation"
)

// FakeClock is an [animation.TimeSource] with controllable time for
// deterministic playback tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ animation.TimeSource = (*FakeClock)(nil)

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Pump runs frames on global, advancing the clock by interval before
// every frame but the first one it has ever pumped on global. This
// mirrors a host loop that samples time once per frame.
func (c *FakeClock) Pump(global *animation.GlobalClock, frames int, interval time.Duration) {
	for i := 0; i < frames; i++ {
		if global.Frames() > 0 {
			c.Advance(interval)
		}
		global.Frame()
	}
}

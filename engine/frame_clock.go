package engine

import (
	"time"

	"github.com/lixenwraith/flare/parameter"
)

// FrameClock turns provider readings into per-frame elapsed seconds
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration
	last     time.Time
	started  bool
	clamped  uint64
}

// NewFrameClock clamps each tick to maxDelta; zero or negative selects
// parameter.MaxFrameDelta
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = parameter.MaxFrameDelta
	}
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Tick returns seconds since the previous Tick
// The first call returns 0; a clock that moved backwards also returns 0
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d <= 0 {
		return 0
	}
	if d > c.maxDelta {
		d = c.maxDelta
		c.clamped++
	}
	return d.Seconds()
}

// Clamped counts ticks cut down to the max delta
func (c *FrameClock) Clamped() uint64 {
	return c.clamped
}

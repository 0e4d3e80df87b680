// Package particle implements fixed-capacity particle pools and the rate
// emitters that feed them.
package particle

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/flare/vmath"
)

// ErrInvalidSettings is wrapped by every Settings validation failure
var ErrInvalidSettings = errors.New("invalid particle settings")

// BlendMode selects how a renderer composites the effect
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

func (b BlendMode) String() string {
	switch b {
	case BlendAlpha:
		return "alpha"
	case BlendAdditive:
		return "additive"
	default:
		return fmt.Sprintf("blend(%d)", uint8(b))
	}
}

// Range is an inclusive [Min, Max] sampling interval
type Range struct {
	Min, Max float64
}

// Sample draws uniformly from the range
func (r Range) Sample(rng *vmath.FastRand) float64 {
	return rng.RangeF(r.Min, r.Max)
}

// At interpolates the range at t without sampling
func (r Range) At(t float64) float64 {
	return vmath.Lerp(r.Min, r.Max, t)
}

// ColorRange is interpolated per particle in RGB space
type ColorRange struct {
	Min, Max colorful.Color
}

// At blends Min toward Max
func (c ColorRange) At(t float64) colorful.Color {
	return c.Min.BlendRgb(c.Max, t).Clamped()
}

// Settings is the immutable tuning record of one effect
// Pools copy it at construction; changing the original afterwards has no effect
type Settings struct {
	Texture      string
	MaxParticles int

	// Duration is the nominal lifetime in seconds
	// DurationRandomness shortens individual lifetimes: Duration / (1 + u*DurationRandomness)
	Duration           float64
	DurationRandomness float64

	// EmitterVelocitySensitivity scales the emitter's own motion imparted to a particle
	EmitterVelocitySensitivity float64

	// HorizontalVelocity is a speed on a random XZ heading; VerticalVelocity is added to Y
	HorizontalVelocity Range
	VerticalVelocity   Range

	// EndVelocity is the fraction of initial speed left at end of life
	EndVelocity float64

	Gravity vmath.Vec3F

	Color       ColorRange
	StartSize   Range
	EndSize     Range
	RotateSpeed Range

	Blend BlendMode
}

// Validate checks capacity, durations and that every range is ordered
func (s Settings) Validate() error {
	if s.MaxParticles <= 0 {
		return fmt.Errorf("%w: max particles %d must be positive", ErrInvalidSettings, s.MaxParticles)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration %g must be positive", ErrInvalidSettings, s.Duration)
	}
	if s.DurationRandomness < 0 {
		return fmt.Errorf("%w: duration randomness %g is negative", ErrInvalidSettings, s.DurationRandomness)
	}
	if s.EndVelocity < 0 {
		return fmt.Errorf("%w: end velocity %g is negative", ErrInvalidSettings, s.EndVelocity)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"horizontal velocity", s.HorizontalVelocity},
		{"vertical velocity", s.VerticalVelocity},
		{"start size", s.StartSize},
		{"end size", s.EndSize},
		{"rotate speed", s.RotateSpeed},
	}
	for _, rr := range ranges {
		if rr.r.Min > rr.r.Max {
			return fmt.Errorf("%w: %s min %g exceeds max %g", ErrInvalidSettings, rr.name, rr.r.Min, rr.r.Max)
		}
	}

	if !s.Color.Min.IsValid() || !s.Color.Max.IsValid() {
		return fmt.Errorf("%w: color range outside RGB gamut", ErrInvalidSettings)
	}
	return nil
}

// Package effect holds the named particle effects of the game and the shared
// pools built from them.
package effect

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/flare/particle"
	"github.com/lixenwraith/flare/vmath"
)

// Effect names
const (
	Fire            = "fire"
	Smoke           = "smoke"
	ProjectileTrail = "projectile_trail"
	Explosion       = "explosion"
	ExplosionSmoke  = "explosion_smoke"
	Ice             = "ice"
	IceTrail        = "ice_trail"
	LavaTrail       = "lava_trail"
	BanishSpark     = "banish_spark"
)

// Catalog maps effect names to settings
type Catalog map[string]particle.Settings

// Names returns the effect names in sorted order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every entry, naming the first bad one
func (c Catalog) Validate() error {
	for _, name := range c.Names() {
		if err := c[name].Validate(); err != nil {
			return fmt.Errorf("effect %q: %w", name, err)
		}
	}
	return nil
}

// Clone returns a shallow copy safe to override
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Defaults returns the built-in tuning of every effect
func Defaults() Catalog {
	return Catalog{
		Fire: {
			Texture:            "fire",
			MaxParticles:       2400,
			Duration:           2,
			DurationRandomness: 1,
			HorizontalVelocity: particle.Range{Min: 0, Max: 15},
			VerticalVelocity:   particle.Range{Min: -10, Max: 10},
			EndVelocity:        1,
			Gravity:            vmath.Vec3F{Y: 15},
			Color:              particle.ColorRange{Min: rgb(255, 140, 40), Max: rgb(255, 230, 160)},
			StartSize:          particle.Range{Min: 5, Max: 10},
			EndSize:            particle.Range{Min: 10, Max: 40},
			Blend:              particle.BlendAdditive,
		},
		Smoke: {
			Texture:            "smoke",
			MaxParticles:       600,
			Duration:           10,
			HorizontalVelocity: particle.Range{Min: 0, Max: 15},
			VerticalVelocity:   particle.Range{Min: 10, Max: 20},
			EndVelocity:        0.75,
			Gravity:            vmath.Vec3F{X: -20, Y: -5},
			Color:              particle.ColorRange{Min: rgb(90, 90, 90), Max: rgb(170, 170, 170)},
			StartSize:          particle.Range{Min: 4, Max: 7},
			EndSize:            particle.Range{Min: 35, Max: 140},
			RotateSpeed:        particle.Range{Min: -1, Max: 1},
			Blend:              particle.BlendAlpha,
		},
		ProjectileTrail: {
			Texture:                    "smoke",
			MaxParticles:               1000,
			Duration:                   3,
			DurationRandomness:         1.5,
			EmitterVelocitySensitivity: 0.1,
			HorizontalVelocity:         particle.Range{Min: 0, Max: 1},
			VerticalVelocity:           particle.Range{Min: -1, Max: 1},
			EndVelocity:                1,
			Color:                      particle.ColorRange{Min: rgb(128, 128, 128), Max: rgb(255, 255, 255)},
			StartSize:                  particle.Range{Min: 1, Max: 3},
			EndSize:                    particle.Range{Min: 4, Max: 11},
			RotateSpeed:                particle.Range{Min: -4, Max: 4},
			Blend:                      particle.BlendAlpha,
		},
		Explosion: {
			Texture:            "explosion",
			MaxParticles:       100,
			Duration:           2,
			DurationRandomness: 1,
			HorizontalVelocity: particle.Range{Min: 20, Max: 30},
			VerticalVelocity:   particle.Range{Min: -20, Max: 20},
			EndVelocity:        0,
			Color:              particle.ColorRange{Min: rgb(169, 169, 169), Max: rgb(255, 200, 120)},
			StartSize:          particle.Range{Min: 7, Max: 7},
			EndSize:            particle.Range{Min: 70, Max: 140},
			RotateSpeed:        particle.Range{Min: -1, Max: 1},
			Blend:              particle.BlendAdditive,
		},
		ExplosionSmoke: {
			Texture:            "smoke",
			MaxParticles:       200,
			Duration:           4,
			HorizontalVelocity: particle.Range{Min: 0, Max: 50},
			VerticalVelocity:   particle.Range{Min: -10, Max: 50},
			EndVelocity:        0,
			Gravity:            vmath.Vec3F{Y: -20},
			Color:              particle.ColorRange{Min: rgb(211, 211, 211), Max: rgb(255, 255, 255)},
			StartSize:          particle.Range{Min: 7, Max: 7},
			EndSize:            particle.Range{Min: 70, Max: 140},
			RotateSpeed:        particle.Range{Min: -2, Max: 2},
			Blend:              particle.BlendAlpha,
		},
		Ice: {
			Texture:            "ice",
			MaxParticles:       400,
			Duration:           1.5,
			DurationRandomness: 0.8,
			HorizontalVelocity: particle.Range{Min: 10, Max: 25},
			VerticalVelocity:   particle.Range{Min: 0, Max: 20},
			EndVelocity:        0.2,
			Gravity:            vmath.Vec3F{Y: -30},
			Color:              particle.ColorRange{Min: rgb(150, 200, 255), Max: rgb(235, 250, 255)},
			StartSize:          particle.Range{Min: 2, Max: 4},
			EndSize:            particle.Range{Min: 1, Max: 2},
			RotateSpeed:        particle.Range{Min: -6, Max: 6},
			Blend:              particle.BlendAdditive,
		},
		IceTrail: {
			Texture:                    "ice",
			MaxParticles:               800,
			Duration:                   0.8,
			DurationRandomness:         0.5,
			EmitterVelocitySensitivity: 0.05,
			HorizontalVelocity:         particle.Range{Min: 0, Max: 2},
			VerticalVelocity:           particle.Range{Min: -2, Max: 2},
			EndVelocity:                0.5,
			Color:                      particle.ColorRange{Min: rgb(120, 180, 255), Max: rgb(220, 240, 255)},
			StartSize:                  particle.Range{Min: 1, Max: 2},
			EndSize:                    particle.Range{Min: 2, Max: 5},
			RotateSpeed:                particle.Range{Min: -3, Max: 3},
			Blend:                      particle.BlendAdditive,
		},
		LavaTrail: {
			Texture:                    "fire",
			MaxParticles:               1200,
			Duration:                   1.2,
			DurationRandomness:         1,
			EmitterVelocitySensitivity: 0.2,
			HorizontalVelocity:         particle.Range{Min: 0, Max: 4},
			VerticalVelocity:           particle.Range{Min: 0, Max: 6},
			EndVelocity:                0.4,
			Gravity:                    vmath.Vec3F{Y: -10},
			Color:                      particle.ColorRange{Min: rgb(200, 40, 0), Max: rgb(255, 150, 30)},
			StartSize:                  particle.Range{Min: 3, Max: 6},
			EndSize:                    particle.Range{Min: 1, Max: 3},
			Blend:                      particle.BlendAdditive,
		},
		BanishSpark: {
			Texture:            "spark",
			MaxParticles:       1500,
			Duration:           1,
			DurationRandomness: 0.5,
			HorizontalVelocity: particle.Range{Min: 2, Max: 12},
			VerticalVelocity:   particle.Range{Min: -6, Max: 6},
			EndVelocity:        0.1,
			Color:              particle.ColorRange{Min: rgb(110, 170, 255), Max: rgb(230, 245, 255)},
			StartSize:          particle.Range{Min: 2, Max: 3},
			EndSize:            particle.Range{Min: 0.5, Max: 1},
			RotateSpeed:        particle.Range{Min: -8, Max: 8},
			Blend:              particle.BlendAdditive,
		},
	}
}

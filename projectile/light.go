package projectile

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/flare/parameter"
	"github.com/lixenwraith/flare/vmath"
)

// PointLight is the light a projectile carries while active
// Color and radius are fixed for the projectile's life; position follows it
type PointLight struct {
	Position vmath.Vec3F
	Color    colorful.Color
	// Intensity is the linear multiplier applied to Color
	Intensity float64
	Radius    float64
}

// Radiance returns Color scaled by Intensity, channels may exceed 1
func (l PointLight) Radiance() colorful.Color {
	return colorful.Color{
		R: l.Color.R * l.Intensity,
		G: l.Color.G * l.Intensity,
		B: l.Color.B * l.Intensity,
	}
}

// lightFor picks the light of a config, or reports none
func lightFor(cfg Config) (PointLight, bool) {
	var color colorful.Color
	switch {
	case cfg.Banisher:
		color = parameter.BanishColor
	case cfg.EmitsLight:
		color = parameter.FireColor
	default:
		return PointLight{}, false
	}
	return PointLight{
		Color:     color,
		Intensity: parameter.LightIntensityScale,
		Radius:    parameter.LightFalloffRadius,
	}, true
}

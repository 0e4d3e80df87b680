package parameter

import "github.com/lucasb-eyer/go-colorful"

// Projectile Point Lights
const (
	// LightIntensityScale multiplies the light color
	LightIntensityScale = 2.0

	// LightFalloffRadius is the world-unit distance at which the light reaches zero
	LightFalloffRadius = 40.0
)

// Game-wide light themes, read at projectile construction only
var (
	// BanishColor tints banisher projectiles
	BanishColor = colorful.Color{R: 0.45, G: 0.75, B: 1.0}

	// FireColor tints ordinary projectiles that request a light
	FireColor = colorful.Color{R: 1.0, G: 0.55, B: 0.2}
)

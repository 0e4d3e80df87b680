// Package projectile drives ballistic projectiles that trail particles and
// burst into contact effects when they expire or hit something.
package projectile

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid projectile config")

// Kind names the variant a Config was built for
type Kind uint8

const (
	KindAttack Kind = iota
	KindRocket
	KindFireball
	KindLavaBall
	KindIceBolt
	KindParticle
)

var kindNames = [...]string{
	KindAttack:   "attack",
	KindRocket:   "rocket",
	KindFireball: "fireball",
	KindLavaBall: "lavaball",
	KindIceBolt:  "icebolt",
	KindParticle: "particle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Config is copied into a projectile at construction and never changes after
type Config struct {
	Kind Kind

	// Lifespan in seconds; the projectile expires on the first update where age exceeds it
	Lifespan float64
	// Gravity is subtracted from vertical velocity per second
	Gravity float64

	// TrailRate is trail particles per second
	TrailRate float64

	NumContactParticles      int
	NumExtraContactParticles int

	// Collides enables world collision queries; without it expiry is age-only
	Collides      bool
	ContactRadius float64

	// Banisher selects the banish light; otherwise EmitsLight selects the fire light
	Banisher   bool
	EmitsLight bool

	// Effect names resolved to shared pools by the owner; empty means none
	TrailEffect        string
	ContactEffect      string
	ExtraContactEffect string
}

// Validate checks the numeric fields
func (c Config) Validate() error {
	switch {
	case !finite(c.Lifespan) || !finite(c.Gravity) || !finite(c.TrailRate) || !finite(c.ContactRadius):
		return fmt.Errorf("%w: lifespan %g, gravity %g, trail rate %g, contact radius %g must be finite",
			ErrInvalidConfig, c.Lifespan, c.Gravity, c.TrailRate, c.ContactRadius)
	case c.Lifespan < 0:
		return fmt.Errorf("%w: lifespan %g is negative", ErrInvalidConfig, c.Lifespan)
	case c.TrailRate < 0:
		return fmt.Errorf("%w: trail rate %g is negative", ErrInvalidConfig, c.TrailRate)
	case c.NumContactParticles < 0 || c.NumExtraContactParticles < 0:
		return fmt.Errorf("%w: burst counts %d/%d must not be negative",
			ErrInvalidConfig, c.NumContactParticles, c.NumExtraContactParticles)
	case c.ContactRadius < 0:
		return fmt.Errorf("%w: contact radius %g is negative", ErrInvalidConfig, c.ContactRadius)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

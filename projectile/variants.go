package projectile

import (
	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/parameter"
)

// Attack is a spell bolt; banishers switch to the banish effects and light
func Attack(banisher, emitsLight bool) Config {
	cfg := Config{
		Kind:                     KindAttack,
		Lifespan:                 parameter.AttackLifespan,
		Gravity:                  parameter.AttackGravity,
		TrailRate:                parameter.AttackTrailRate,
		NumContactParticles:      parameter.AttackContactParticles,
		NumExtraContactParticles: parameter.AttackExtraContactParticles,
		Collides:                 true,
		ContactRadius:            parameter.ProjectileContactRadius,
		Banisher:                 banisher,
		EmitsLight:               emitsLight,
		TrailEffect:              effect.ProjectileTrail,
		ContactEffect:            effect.Fire,
		ExtraContactEffect:       effect.Smoke,
	}
	if banisher {
		cfg.TrailEffect = effect.BanishSpark
		cfg.ContactEffect = effect.BanishSpark
	}
	return cfg
}

func Rocket() Config {
	return Config{
		Kind:                     KindRocket,
		Lifespan:                 parameter.RocketLifespan,
		Gravity:                  parameter.RocketGravity,
		TrailRate:                parameter.RocketTrailRate,
		NumContactParticles:      parameter.RocketContactParticles,
		NumExtraContactParticles: parameter.RocketExtraContactParticles,
		Collides:                 true,
		ContactRadius:            parameter.ProjectileContactRadius,
		TrailEffect:              effect.ProjectileTrail,
		ContactEffect:            effect.Explosion,
		ExtraContactEffect:       effect.ExplosionSmoke,
	}
}

func Fireball() Config {
	return Config{
		Kind:                     KindFireball,
		Lifespan:                 parameter.FireballLifespan,
		Gravity:                  parameter.FireballGravity,
		TrailRate:                parameter.FireballTrailRate,
		NumContactParticles:      parameter.FireballContactParticles,
		NumExtraContactParticles: parameter.FireballExtraContactParticles,
		Collides:                 true,
		ContactRadius:            parameter.ProjectileContactRadius,
		EmitsLight:               true,
		TrailEffect:              effect.Fire,
		ContactEffect:            effect.Explosion,
		ExtraContactEffect:       effect.ExplosionSmoke,
	}
}

// LavaBall arcs out of lava pits and only ever expires by age
func LavaBall() Config {
	return Config{
		Kind:                     KindLavaBall,
		Lifespan:                 parameter.LavaBallLifespan,
		Gravity:                  parameter.LavaBallGravity,
		TrailRate:                parameter.LavaBallTrailRate,
		NumContactParticles:      parameter.LavaBallContactParticles,
		NumExtraContactParticles: parameter.LavaBallExtraContactParticles,
		EmitsLight:               true,
		TrailEffect:              effect.LavaTrail,
		ContactEffect:            effect.Fire,
		ExtraContactEffect:       effect.Smoke,
	}
}

func IceBolt() Config {
	return Config{
		Kind:                     KindIceBolt,
		Lifespan:                 parameter.IceBoltLifespan,
		Gravity:                  parameter.IceBoltGravity,
		TrailRate:                parameter.IceBoltTrailRate,
		NumContactParticles:      parameter.IceBoltContactParticles,
		NumExtraContactParticles: parameter.IceBoltExtraContactParticles,
		Collides:                 true,
		ContactRadius:            parameter.ProjectileContactRadius,
		TrailEffect:              effect.IceTrail,
		ContactEffect:            effect.Ice,
		ExtraContactEffect:       effect.Smoke,
	}
}

// ParticleProjectile is a purely visual streak with age-only expiry
func ParticleProjectile(lifespan float64, trailEffect, contactEffect string) Config {
	return Config{
		Kind:                KindParticle,
		Lifespan:            lifespan,
		Gravity:             parameter.ParticleProjectileGravity,
		TrailRate:           parameter.ParticleProjectileTrailRate,
		NumContactParticles: parameter.ParticleProjectileContactParticles,
		TrailEffect:         trailEffect,
		ContactEffect:       contactEffect,
	}
}

// ByKind returns the default config of a variant
func ByKind(k Kind) (Config, bool) {
	switch k {
	case KindAttack:
		return Attack(false, true), true
	case KindRocket:
		return Rocket(), true
	case KindFireball:
		return Fireball(), true
	case KindLavaBall:
		return LavaBall(), true
	case KindIceBolt:
		return IceBolt(), true
	case KindParticle:
		return ParticleProjectile(1.0, effect.ProjectileTrail, effect.Fire), true
	default:
		return Config{}, false
	}
}

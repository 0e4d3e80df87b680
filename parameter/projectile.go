package parameter

// Shared
const (
	// ProjectileContactRadius is the sphere radius passed to collision queries (world units)
	ProjectileContactRadius = 0.5
)

// Attack (player or enemy spell bolt)
const (
	AttackLifespan              = 1.5
	AttackGravity               = 15.0
	AttackTrailRate             = 120.0
	AttackContactParticles      = 30
	AttackExtraContactParticles = 8
)

// Rocket
const (
	RocketLifespan              = 3.0
	RocketGravity               = 2.0
	RocketTrailRate             = 100.0
	RocketContactParticles      = 40
	RocketExtraContactParticles = 25
)

// Fireball
const (
	FireballLifespan              = 2.0
	FireballGravity               = 15.0
	FireballTrailRate             = 150.0
	FireballContactParticles      = 30
	FireballExtraContactParticles = 12
)

// Lava Ball (thrown by lava pits, no world collision)
const (
	LavaBallLifespan              = 2.5
	LavaBallGravity               = 30.0
	LavaBallTrailRate             = 60.0
	LavaBallContactParticles      = 20
	LavaBallExtraContactParticles = 10
)

// Ice Bolt
const (
	IceBoltLifespan              = 1.2
	IceBoltGravity               = 5.0
	IceBoltTrailRate             = 120.0
	IceBoltContactParticles      = 25
	IceBoltExtraContactParticles = 5
)

// Particle Projectile (pure visual streak, no world collision)
const (
	ParticleProjectileGravity          = 0.0
	ParticleProjectileTrailRate        = 80.0
	ParticleProjectileContactParticles = 10
)

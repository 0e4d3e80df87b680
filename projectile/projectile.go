package projectile

import (
	"github.com/lixenwraith/flare/level"
	"github.com/lixenwraith/flare/particle"
	"github.com/lixenwraith/flare/vmath"
)

// Collider is the world's contact query; implementations must not mutate
// state visible to the projectile
type Collider interface {
	CollidesWith(position, velocity vmath.Vec3F, radius float64) bool
}

// Phase represents lifecycle state
type Phase uint8

const (
	PhaseActive   Phase = iota // Moving, trailing
	PhaseExpiring              // Fatal frame, bursting
	PhaseTerminal              // Burst done, owner must drop it
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseExpiring:
		return "expiring"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Outcome tells why a terminal projectile ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeExpired
	OutcomeCollided
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExpired:
		return "expired"
	case OutcomeCollided:
		return "collided"
	default:
		return "none"
	}
}

// Pools are the shared spawners a projectile writes into; any may be nil
// The projectile never owns them and only ever calls AddParticle
type Pools struct {
	Trail        particle.Spawner
	Contact      particle.Spawner
	ExtraContact particle.Spawner
}

// Launch is the initial kinematic state
type Launch struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F

	// Enemies is handed through for combat code; the projectile never reads it
	Enemies *[]*level.Agent
}

// Projectile is a ballistic mover with a particle trail and a contact burst
type Projectile struct {
	cfg   Config
	phase Phase
	ended Outcome

	position vmath.Vec3F
	velocity vmath.Vec3F
	age      float64

	trail        *particle.Emitter
	contact      particle.Spawner
	extraContact particle.Spawner

	light    PointLight
	hasLight bool

	enemies *[]*level.Agent
}

// New validates cfg and places the projectile at launch
func New(cfg Config, pools Pools, launch Launch) (*Projectile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Projectile{
		cfg:          cfg,
		position:     launch.Position,
		velocity:     launch.Velocity,
		contact:      pools.Contact,
		extraContact: pools.ExtraContact,
		enemies:      launch.Enemies,
	}
	if pools.Trail != nil {
		p.trail = particle.NewEmitter(pools.Trail, cfg.TrailRate, launch.Position)
	}
	p.light, p.hasLight = lightFor(cfg)
	return p, nil
}

// Update advances one frame and reports whether the projectile is still active
// It returns false exactly once, after the contact burst; calling it again panics
// world may be nil, and is ignored for configs without Collides
func (p *Projectile) Update(elapsed float64, world Collider) bool {
	if p.phase == PhaseTerminal {
		panic("projectile: Update called after terminal frame")
	}
	if elapsed < 0 {
		elapsed = 0
	}

	p.position = vmath.V3FMulAdd(p.position, p.velocity, elapsed)
	p.velocity.Y -= p.cfg.Gravity * elapsed
	p.age += elapsed

	// Trail runs on the fatal frame too so it reaches the impact point
	if p.trail != nil {
		p.trail.Update(elapsed, p.position)
	}

	if p.cfg.Collides && world != nil && p.age <= p.cfg.Lifespan {
		if world.CollidesWith(p.position, p.velocity, p.cfg.ContactRadius) {
			p.age = vmath.NextAfter(p.cfg.Lifespan)
			p.ended = OutcomeCollided
		}
	}

	if p.age <= p.cfg.Lifespan && p.ended != OutcomeCollided {
		return true
	}

	p.phase = PhaseExpiring
	if p.ended == OutcomeNone {
		p.ended = OutcomeExpired
	}
	p.burst()
	p.phase = PhaseTerminal
	return false
}

// burst fans the contact particles out with the impact position and velocity
func (p *Projectile) burst() {
	if p.contact != nil {
		for i := 0; i < p.cfg.NumContactParticles; i++ {
			p.contact.AddParticle(p.position, p.velocity)
		}
	}
	if p.extraContact != nil {
		for i := 0; i < p.cfg.NumExtraContactParticles; i++ {
			p.extraContact.AddParticle(p.position, p.velocity)
		}
	}
}

func (p *Projectile) Config() Config           { return p.cfg }
func (p *Projectile) Kind() Kind               { return p.cfg.Kind }
func (p *Projectile) Phase() Phase             { return p.phase }
func (p *Projectile) Outcome() Outcome         { return p.ended }
func (p *Projectile) Position() vmath.Vec3F    { return p.position }
func (p *Projectile) Velocity() vmath.Vec3F    { return p.velocity }
func (p *Projectile) Age() float64             { return p.age }
func (p *Projectile) Enemies() *[]*level.Agent { return p.enemies }

// Light returns the carried light at the current position
func (p *Projectile) Light() (PointLight, bool) {
	if !p.hasLight || p.phase == PhaseTerminal {
		return PointLight{}, false
	}
	l := p.light
	l.Position = p.position
	return l, true
}

// TrailEmitted returns total trail spawn calls, zero without a trail pool
func (p *Projectile) TrailEmitted() uint64 {
	if p.trail == nil {
		return 0
	}
	return p.trail.Emitted()
}

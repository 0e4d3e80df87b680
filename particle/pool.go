package particle

import (
	"math"

	"github.com/lixenwraith/flare/vmath"
)

// Spawner is the only capability emitters and projectiles hold on a pool
type Spawner interface {
	AddParticle(position, velocity vmath.Vec3F)
}

// particle is pool-internal slot state
// Motion is evaluated in closed form from origin/initial velocity so results
// do not depend on how elapsed time is split across frames
type particle struct {
	origin    vmath.Vec3F
	velocity0 vmath.Vec3F
	position  vmath.Vec3F
	velocity  vmath.Vec3F

	age      float64
	lifetime float64

	rotateSpeed float64
	sizeT       float64
	colorT      float64
}

// Stats are cumulative pool counters
type Stats struct {
	Live     int
	Capacity int
	Spawned  uint64
	Dropped  uint64
	Retired  uint64
}

// Pool is a fixed-capacity store of live particles for one effect
// Live particles are packed at the front of the backing array; retirement
// swaps the last live particle into the freed slot, so Update is O(live)
type Pool struct {
	settings Settings
	rng      *vmath.FastRand

	live []particle

	spawned uint64
	dropped uint64
	retired uint64
}

// NewPool validates settings and allocates MaxParticles slots up front
// A nil rng falls back to a fixed seed
func NewPool(settings Settings, rng *vmath.FastRand) (*Pool, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = vmath.NewFastRand(0)
	}
	return &Pool{
		settings: settings,
		rng:      rng,
		live:     make([]particle, 0, settings.MaxParticles),
	}, nil
}

// Settings returns a copy of the bound settings
func (p *Pool) Settings() Settings {
	return p.settings
}

// Live returns the number of live particles
func (p *Pool) Live() int {
	return len(p.live)
}

// Capacity returns MaxParticles
func (p *Pool) Capacity() int {
	return cap(p.live)
}

// Stats returns a counter snapshot
func (p *Pool) Stats() Stats {
	return Stats{
		Live:     len(p.live),
		Capacity: cap(p.live),
		Spawned:  p.spawned,
		Dropped:  p.dropped,
		Retired:  p.retired,
	}
}

// AddParticle spawns one particle, or drops the request when the pool is full
// A dropped request consumes no randomness and changes nothing but the drop counter
func (p *Pool) AddParticle(position, velocity vmath.Vec3F) {
	if len(p.live) == cap(p.live) {
		p.dropped++
		return
	}

	s := &p.settings
	r := p.rng

	lifetime := s.Duration / (1 + r.Float64()*s.DurationRandomness)

	v := vmath.V3FScale(velocity, s.EmitterVelocitySensitivity)
	horizontal := s.HorizontalVelocity.Sample(r)
	heading := r.Float64() * 2 * math.Pi
	v.X += horizontal * math.Cos(heading)
	v.Z += horizontal * math.Sin(heading)
	v.Y += s.VerticalVelocity.Sample(r)

	p.live = append(p.live, particle{
		origin:      position,
		velocity0:   v,
		position:    position,
		velocity:    v,
		lifetime:    lifetime,
		rotateSpeed: s.RotateSpeed.Sample(r),
		sizeT:       r.Float64(),
		colorT:      r.Float64(),
	})
	p.spawned++
}

// Update ages live particles, retires expired ones and advances the rest
// Non-positive elapsed time is ignored
func (p *Pool) Update(elapsed float64) {
	if elapsed <= 0 || len(p.live) == 0 {
		return
	}

	s := &p.settings
	drag := s.EndVelocity - 1

	for i := 0; i < len(p.live); {
		pt := &p.live[i]
		pt.age += elapsed

		if pt.age >= pt.lifetime {
			last := len(p.live) - 1
			p.live[i] = p.live[last]
			p.live = p.live[:last]
			p.retired++
			continue
		}

		age := pt.age
		n := age / pt.lifetime

		// Speed ramps linearly from 1 to EndVelocity over the lifetime;
		// displacement is its integral
		pt.velocity = vmath.V3FMulAdd(vmath.V3FScale(pt.velocity0, 1+drag*n), s.Gravity, age)
		travel := age + drag*age*age/(2*pt.lifetime)
		pt.position = vmath.V3FMulAdd(vmath.V3FMulAdd(pt.origin, pt.velocity0, travel), s.Gravity, 0.5*age*age)

		i++
	}
}

// Clear retires every live particle without touching the spawn counters
func (p *Pool) Clear() {
	p.retired += uint64(len(p.live))
	p.live = p.live[:0]
}

package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/parameter"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/status"
)

// ProjectileSystem advances projectiles and drops the ones that burst
type ProjectileSystem struct {
	expired  *atomic.Int64
	collided *atomic.Int64
	bursts   []Burst
}

func NewProjectileSystem(reg *status.Registry) *ProjectileSystem {
	return &ProjectileSystem{
		expired:  reg.Ints.Get(status.Key("projectile", "expired")),
		collided: reg.Ints.Get(status.Key("projectile", "collided")),
	}
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) Update(w *World, dt float64) {
	kept := w.order[:0]
	for _, id := range w.order {
		p := w.projectiles[id]
		if p.Update(dt, w.collider) {
			kept = append(kept, id)
			continue
		}

		if p.Outcome() == projectile.OutcomeCollided {
			s.collided.Add(1)
		} else {
			s.expired.Add(1)
		}
		delete(w.projectiles, id)
		s.bursts = append(s.bursts, Burst{
			ID:       id,
			Kind:     p.Kind(),
			Outcome:  p.Outcome(),
			Position: p.Position(),
			Velocity: p.Velocity(),
		})
	}
	w.order = kept

	// Listeners run once the active list is settled so they may Launch
	for _, b := range s.bursts {
		w.emit(b)
	}
	s.bursts = s.bursts[:0]
}

// ParticleSystem ages every pool after all bursts of the frame have spawned
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

func (s *ParticleSystem) Update(w *World, dt float64) {
	w.library.Update(dt)
}

// StatusSystem copies pool and world counts into the registry
type StatusSystem struct {
	effects []effectMetrics

	active  *atomic.Int64
	frame   *atomic.Int64
	simTime *status.AtomicFloat
	last    *status.Label
}

type effectMetrics struct {
	name                            string
	live, spawned, dropped, retired *atomic.Int64
}

// NewStatusSystem caches metric pointers for every effect in library
func NewStatusSystem(reg *status.Registry, library *effect.Library) *StatusSystem {
	s := &StatusSystem{
		active:  reg.Ints.Get(status.Key("projectile", "active")),
		frame:   reg.Ints.Get(status.Key("frame", "count")),
		simTime: reg.Floats.Get(status.Key("frame", "sim_seconds")),
		last:    reg.Labels.Get(status.Key("projectile", "last_burst")),
	}
	for _, name := range library.Names() {
		s.effects = append(s.effects, effectMetrics{
			name:    name,
			live:    reg.Ints.Get(status.Key("effect", name, "live")),
			spawned: reg.Ints.Get(status.Key("effect", name, "spawned")),
			dropped: reg.Ints.Get(status.Key("effect", name, "dropped")),
			retired: reg.Ints.Get(status.Key("effect", name, "retired")),
		})
	}
	return s
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Update(w *World, dt float64) {
	for _, m := range s.effects {
		pool, ok := w.library.Pool(m.name)
		if !ok {
			continue
		}
		st := pool.Stats()
		m.live.Store(int64(st.Live))
		m.spawned.Store(int64(st.Spawned))
		m.dropped.Store(int64(st.Dropped))
		m.retired.Store(int64(st.Retired))
	}

	s.active.Store(int64(w.Active()))
	// Frame and time are bumped by Tick after the last system
	s.frame.Store(int64(w.frame + 1))
	s.simTime.Set(w.simTime + dt)
}

// RecordBurst keeps the last burst label current; registered with OnBurst
func (s *StatusSystem) RecordBurst(b Burst) {
	s.last.Store(b.Kind.String() + "/" + b.Outcome.String())
}

// Package engine runs the frame loop: projectiles first, then the shared
// particle pools, then status publication.
package engine

import (
	"errors"
	"fmt"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/status"
	"github.com/lixenwraith/flare/vmath"
)

// ErrUnknownEffect is returned by Launch when a config names an effect the
// library does not have
var ErrUnknownEffect = errors.New("unknown effect")

// Burst describes a projectile that ended this frame
type Burst struct {
	ID       uuid.UUID
	Kind     projectile.Kind
	Outcome  projectile.Outcome
	Position vmath.Vec3F
	Velocity vmath.Vec3F
}

// World owns the active projectiles and the effect library they feed
type World struct {
	mu      sync.RWMutex
	systems []System

	library  *effect.Library
	collider projectile.Collider
	status   *status.Registry

	projectiles map[uuid.UUID]*projectile.Projectile
	order       []uuid.UUID // launch order, update order

	listeners []func(Burst)
	frame     uint64
	simTime   float64
}

// NewWorld wires the default systems
// collider may be nil, in which case projectiles only expire by age
func NewWorld(library *effect.Library, collider projectile.Collider, reg *status.Registry) *World {
	if reg == nil {
		reg = status.NewRegistry()
	}
	w := &World{
		library:     library,
		collider:    collider,
		status:      reg,
		projectiles: make(map[uuid.UUID]*projectile.Projectile),
	}
	st := NewStatusSystem(reg, library)
	w.AddSystem(NewProjectileSystem(reg))
	w.AddSystem(NewParticleSystem())
	w.AddSystem(st)
	w.OnBurst(st.RecordBurst)
	return w
}

// AddSystem inserts a system keeping priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// OnBurst registers a listener called once per ended projectile, in update order
func (w *World) OnBurst(fn func(Burst)) {
	w.listeners = append(w.listeners, fn)
}

// Launch creates a projectile whose pools are resolved by effect name
func (w *World) Launch(cfg projectile.Config, launch projectile.Launch) (uuid.UUID, error) {
	for _, name := range []string{cfg.TrailEffect, cfg.ContactEffect, cfg.ExtraContactEffect} {
		if !w.library.Has(name) {
			return uuid.Nil, fmt.Errorf("%w: %q for %s", ErrUnknownEffect, name, cfg.Kind)
		}
	}

	pools := projectile.Pools{
		Trail:        w.library.Spawner(cfg.TrailEffect),
		Contact:      w.library.Spawner(cfg.ContactEffect),
		ExtraContact: w.library.Spawner(cfg.ExtraContactEffect),
	}
	p, err := projectile.New(cfg, pools, launch)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.NewV4()
	w.projectiles[id] = p
	w.order = append(w.order, id)
	w.status.Ints.Get(status.Key("projectile", "launched")).Add(1)
	return id, nil
}

// Tick runs every system once with dt seconds; negative dt runs as zero
func (w *World) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, s := range systems {
		s.Update(w, dt)
	}
	w.frame++
	w.simTime += dt
}

// Projectile looks up an active projectile
func (w *World) Projectile(id uuid.UUID) (*projectile.Projectile, bool) {
	p, ok := w.projectiles[id]
	return p, ok
}

// Each visits active projectiles in launch order
func (w *World) Each(fn func(id uuid.UUID, p *projectile.Projectile)) {
	for _, id := range w.order {
		fn(id, w.projectiles[id])
	}
}

func (w *World) Active() int                   { return len(w.order) }
func (w *World) Frame() uint64                 { return w.frame }
func (w *World) SimTime() float64              { return w.simTime }
func (w *World) Library() *effect.Library      { return w.library }
func (w *World) Status() *status.Registry      { return w.status }
func (w *World) Collider() projectile.Collider { return w.collider }

// Clear drops every projectile and empties the pools
func (w *World) Clear() {
	clear(w.projectiles)
	w.order = w.order[:0]
	w.library.Clear()
}

func (w *World) emit(b Burst) {
	for _, fn := range w.listeners {
		fn(b)
	}
}

package effect

import (
	"fmt"

	"github.com/lixenwraith/flare/particle"
	"github.com/lixenwraith/flare/vmath"
)

// Library owns one shared pool per effect
// Projectiles hold only the Spawner side of these pools
type Library struct {
	names []string
	pools map[string]*particle.Pool
}

// NewLibrary builds a pool per catalog entry
// Each pool draws from its own stream split off rng in sorted name order, so
// a fixed seed reproduces every pool regardless of which effects fire
func NewLibrary(c Catalog, rng *vmath.FastRand) (*Library, error) {
	if rng == nil {
		rng = vmath.NewFastRand(0)
	}
	l := &Library{
		names: c.Names(),
		pools: make(map[string]*particle.Pool, len(c)),
	}
	for _, name := range l.names {
		pool, err := particle.NewPool(c[name], rng.Split())
		if err != nil {
			return nil, fmt.Errorf("effect %q: %w", name, err)
		}
		l.pools[name] = pool
	}
	return l, nil
}

// Names returns effect names in update order
func (l *Library) Names() []string {
	return l.names
}

// Pool returns the pool of an effect
func (l *Library) Pool(name string) (*particle.Pool, bool) {
	p, ok := l.pools[name]
	return p, ok
}

// Spawner returns the pool as a Spawner, or a nil interface when the name is
// empty or unknown
func (l *Library) Spawner(name string) particle.Spawner {
	if p, ok := l.pools[name]; ok {
		return p
	}
	return nil
}

// Has reports whether name is a known effect; the empty name always is
func (l *Library) Has(name string) bool {
	if name == "" {
		return true
	}
	_, ok := l.pools[name]
	return ok
}

// Update ages every pool
func (l *Library) Update(elapsed float64) {
	for _, name := range l.names {
		l.pools[name].Update(elapsed)
	}
}

// Live returns the live particle count across pools
func (l *Library) Live() int {
	n := 0
	for _, p := range l.pools {
		n += p.Live()
	}
	return n
}

// Clear empties every pool
func (l *Library) Clear() {
	for _, p := range l.pools {
		p.Clear()
	}
}

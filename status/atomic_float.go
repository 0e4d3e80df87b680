package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (g *AtomicFloat) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

func (g *AtomicFloat) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (g *AtomicFloat) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

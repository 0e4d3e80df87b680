package vmath

// FastRand is a xorshift64 generator
// Not safe for concurrent use; give each worker its own stream via Split
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RangeF returns a uniform value in [lo, hi); lo == hi returns lo
func (r *FastRand) RangeF(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Split derives an independent generator, advancing the parent once
// The child seed is mixed with splitmix64 so sibling streams do not overlap
func (r *FastRand) Split() *FastRand {
	z := r.Next() + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return NewFastRand(z)
}

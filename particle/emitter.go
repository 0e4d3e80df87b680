package particle

import (
	"math"

	"github.com/lixenwraith/flare/vmath"
)

// Emitter converts a particles-per-second rate into spawn calls along the
// path the emitter travelled since its last update
// The fractional remainder carries across frames, so the long-run spawn count
// tracks rate*time no matter how the time is sliced
type Emitter struct {
	target Spawner
	rate   float64

	carry    float64
	previous vmath.Vec3F

	emitted uint64
}

// NewEmitter binds a target spawner; the emitter does not own it
func NewEmitter(target Spawner, rate float64, position vmath.Vec3F) *Emitter {
	return &Emitter{
		target:   target,
		rate:     rate,
		previous: position,
	}
}

// Rate returns particles per second
func (e *Emitter) Rate() float64 {
	return e.rate
}

// Position returns where the last update left the emitter
func (e *Emitter) Position() vmath.Vec3F {
	return e.previous
}

// Emitted returns the total number of spawn calls issued
func (e *Emitter) Emitted() uint64 {
	return e.emitted
}

// Update moves the emitter to position and issues floor(carry + elapsed*rate)
// spawn calls, spaced evenly from just after the previous position up to the
// new one. Returns the number of spawn calls
func (e *Emitter) Update(elapsed float64, position vmath.Vec3F) int {
	if elapsed <= 0 || e.rate <= 0 || e.target == nil {
		return 0
	}

	e.carry += elapsed * e.rate
	whole := math.Floor(e.carry)
	e.carry -= whole
	count := int(whole)

	from := e.previous
	e.previous = position
	if count == 0 {
		return 0
	}

	velocity := vmath.V3FScale(vmath.V3FSub(position, from), 1/elapsed)
	inv := 1 / float64(count)
	for i := 1; i < count; i++ {
		e.target.AddParticle(vmath.V3FLerp(from, position, float64(i)*inv), velocity)
	}
	e.target.AddParticle(position, velocity)
	e.emitted += uint64(count)
	return count
}

package particle

import (
	"math"
	"testing"

	"github.com/lixenwraith/flare/vmath"
)

type spawnCall struct {
	position, velocity vmath.Vec3F
}

// recordingSpawner captures every AddParticle call
type recordingSpawner struct {
	calls []spawnCall
}

func (r *recordingSpawner) AddParticle(position, velocity vmath.Vec3F) {
	r.calls = append(r.calls, spawnCall{position, velocity})
}

func TestEmitterConvergesUnderVariableFrameRate(t *testing.T) {
	rates := []float64{0.7, 13, 37.3, 120, 999.9}
	splitRng := vmath.NewFastRand(42)

	for _, rate := range rates {
		for trial := 0; trial < 20; trial++ {
			target := &recordingSpawner{}
			e := NewEmitter(target, rate, vmath.Vec3F{})

			total := 0.0
			emitted := 0
			for total < 3.0 {
				dt := splitRng.RangeF(0.001, 0.09)
				if total+dt > 3.0 {
					dt = 3.0 - total
				}
				total += dt
				emitted += e.Update(dt, vmath.Vec3F{X: total})
			}

			want := math.Round(rate * total)
			if math.Abs(float64(emitted)-want) > 1 {
				t.Errorf("rate %v: expected %v +/- 1 emitted over %vs, got %d", rate, want, total, emitted)
			}
			if len(target.calls) != emitted {
				t.Errorf("rate %v: returned count %d disagrees with %d spawn calls", rate, emitted, len(target.calls))
			}
			if e.Emitted() != uint64(emitted) {
				t.Errorf("rate %v: Emitted() %d, want %d", rate, e.Emitted(), emitted)
			}
		}
	}
}

func TestEmitterCarriesFraction(t *testing.T) {
	target := &recordingSpawner{}
	e := NewEmitter(target, 10, vmath.Vec3F{})

	// 0.05s at 10/s is half a particle; the second frame completes it
	if n := e.Update(0.05, vmath.Vec3F{}); n != 0 {
		t.Errorf("Expected 0 on first half frame, got %d", n)
	}
	if n := e.Update(0.05, vmath.Vec3F{}); n != 1 {
		t.Errorf("Expected carried remainder to emit 1, got %d", n)
	}
}

func TestEmitterZeroElapsedIsNoop(t *testing.T) {
	target := &recordingSpawner{}
	e := NewEmitter(target, 100, vmath.Vec3F{})

	if n := e.Update(0, vmath.Vec3F{X: 50}); n != 0 {
		t.Errorf("Expected no emission for zero elapsed, got %d", n)
	}
	if len(target.calls) != 0 {
		t.Errorf("Expected no spawn calls, got %d", len(target.calls))
	}
	if e.Position() != (vmath.Vec3F{}) {
		t.Errorf("Expected position untouched on zero elapsed, got %+v", e.Position())
	}
}

func TestEmitterInterpolatesAlongPath(t *testing.T) {
	target := &recordingSpawner{}
	e := NewEmitter(target, 4, vmath.Vec3F{})

	n := e.Update(1.0, vmath.Vec3F{X: 10})
	if n != 4 {
		t.Fatalf("Expected 4 particles, got %d", n)
	}

	wantX := []float64{2.5, 5, 7.5, 10}
	for i, call := range target.calls {
		if math.Abs(call.position.X-wantX[i]) > 1e-12 {
			t.Errorf("Particle %d: expected x %v, got %v", i, wantX[i], call.position.X)
		}
		if call.velocity != (vmath.Vec3F{X: 10}) {
			t.Errorf("Particle %d: expected emitter velocity (10,0,0), got %+v", i, call.velocity)
		}
	}
	if e.Position() != (vmath.Vec3F{X: 10}) {
		t.Errorf("Expected emitter at new position, got %+v", e.Position())
	}
}

func TestEmitterStationary(t *testing.T) {
	target := &recordingSpawner{}
	at := vmath.Vec3F{X: 1, Y: 2, Z: 3}
	e := NewEmitter(target, 50, at)

	e.Update(0.1, at)
	if len(target.calls) != 5 {
		t.Fatalf("Expected 5 particles, got %d", len(target.calls))
	}
	for i, call := range target.calls {
		if call.position != at {
			t.Errorf("Particle %d: expected %+v, got %+v", i, at, call.position)
		}
		if call.velocity != (vmath.Vec3F{}) {
			t.Errorf("Particle %d: expected zero velocity, got %+v", i, call.velocity)
		}
	}
}

func TestEmitterNonPositiveRate(t *testing.T) {
	target := &recordingSpawner{}
	e := NewEmitter(target, 0, vmath.Vec3F{})
	if n := e.Update(1, vmath.Vec3F{X: 1}); n != 0 || len(target.calls) != 0 {
		t.Errorf("Expected silent emitter at rate 0, got %d", n)
	}
}

func TestEmitterFeedsPoolUntilFull(t *testing.T) {
	s := fixedSettings()
	s.MaxParticles = 8
	pool := newTestPool(t, s, 9)
	e := NewEmitter(pool, 100, vmath.Vec3F{})

	e.Update(0.2, vmath.Vec3F{Z: 4})
	stats := pool.Stats()
	if stats.Live != 8 || stats.Dropped != 12 {
		t.Errorf("Expected 8 live and 12 dropped, got %+v", stats)
	}
}

package effect

import (
	"testing"

	"github.com/lixenwraith/flare/vmath"
)

func TestLibraryBuildsPoolPerEffect(t *testing.T) {
	lib, err := NewLibrary(Defaults(), vmath.NewFastRand(1))
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	for _, name := range Defaults().Names() {
		pool, ok := lib.Pool(name)
		if !ok {
			t.Fatalf("Missing pool %q", name)
		}
		if pool.Capacity() != Defaults()[name].MaxParticles {
			t.Errorf("%s: expected capacity %d, got %d", name, Defaults()[name].MaxParticles, pool.Capacity())
		}
	}
}

func TestLibrarySpawnerNilForUnknown(t *testing.T) {
	lib, err := NewLibrary(Defaults(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if lib.Spawner("nope") != nil {
		t.Error("Expected nil interface for unknown effect")
	}
	if lib.Spawner("") != nil {
		t.Error("Expected nil interface for empty effect")
	}
	if lib.Spawner(Fire) == nil {
		t.Error("Expected spawner for fire")
	}
	if !lib.Has("") || lib.Has("nope") || !lib.Has(Smoke) {
		t.Error("Unexpected Has results")
	}
}

func TestLibraryUpdateAndLive(t *testing.T) {
	c := Catalog{Fire: Defaults()[Fire], Smoke: Defaults()[Smoke]}
	lib, err := NewLibrary(c, vmath.NewFastRand(3))
	if err != nil {
		t.Fatal(err)
	}
	lib.Spawner(Fire).AddParticle(vmath.Vec3F{}, vmath.Vec3F{})
	lib.Spawner(Smoke).AddParticle(vmath.Vec3F{}, vmath.Vec3F{})
	if lib.Live() != 2 {
		t.Fatalf("Expected 2 live, got %d", lib.Live())
	}

	// Both effects live for at most their Duration
	lib.Update(10)
	if lib.Live() != 0 {
		t.Errorf("Expected every particle retired, got %d", lib.Live())
	}

	lib.Spawner(Fire).AddParticle(vmath.Vec3F{}, vmath.Vec3F{})
	lib.Clear()
	if lib.Live() != 0 {
		t.Errorf("Expected clear to empty pools, got %d", lib.Live())
	}
}

func TestLibraryStreamsAreIndependentOfUsage(t *testing.T) {
	a, _ := NewLibrary(Defaults(), vmath.NewFastRand(77))
	b, _ := NewLibrary(Defaults(), vmath.NewFastRand(77))

	// Spawning fire in a must not change what smoke draws
	for i := 0; i < 10; i++ {
		a.Spawner(Fire).AddParticle(vmath.Vec3F{}, vmath.Vec3F{})
	}
	a.Spawner(Smoke).AddParticle(vmath.Vec3F{}, vmath.Vec3F{})
	b.Spawner(Smoke).AddParticle(vmath.Vec3F{}, vmath.Vec3F{})

	pa, _ := a.Pool(Smoke)
	pb, _ := b.Pool(Smoke)
	if pa.Snapshot(nil)[0] != pb.Snapshot(nil)[0] {
		t.Error("Expected identical smoke particle from identical seeds")
	}
}

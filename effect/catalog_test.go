package effect

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/flare/particle"
	"github.com/lixenwraith/flare/vmath"
)

func TestDefaultsAreValid(t *testing.T) {
	c := Defaults()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected default catalog to validate, got %v", err)
	}
	for _, name := range []string{Fire, Smoke, ProjectileTrail, Explosion, ExplosionSmoke, Ice, IceTrail, LavaTrail, BanishSpark} {
		if _, ok := c[name]; !ok {
			t.Errorf("Expected default effect %q", name)
		}
	}
}

func TestCatalogValidateNamesEffect(t *testing.T) {
	c := Defaults()
	s := c[Smoke]
	s.MaxParticles = 0
	c[Smoke] = s

	err := c.Validate()
	if !errors.Is(err, particle.ErrInvalidSettings) {
		t.Fatalf("Expected ErrInvalidSettings, got %v", err)
	}
}

func TestDecodeOverrides(t *testing.T) {
	data := `
[effect.fire]
max_particles = 12
duration = 0.5
horizontal_velocity = [1.0, 2.0]
gravity = [0.0, -3.0, 0.0]
color = ["#ff0000", "#00ff00"]
blend = "alpha"
`
	c, err := Decode(data, Defaults())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	fire := c[Fire]
	if fire.MaxParticles != 12 || fire.Duration != 0.5 {
		t.Errorf("Expected overridden capacity/duration, got %d/%v", fire.MaxParticles, fire.Duration)
	}
	if fire.HorizontalVelocity != (particle.Range{Min: 1, Max: 2}) {
		t.Errorf("Unexpected horizontal velocity %+v", fire.HorizontalVelocity)
	}
	if fire.Gravity != (vmath.Vec3F{Y: -3}) {
		t.Errorf("Unexpected gravity %+v", fire.Gravity)
	}
	if fire.Color.Min.R < 0.999 || fire.Color.Min.G > 0.001 || fire.Color.Max.G < 0.999 {
		t.Errorf("Unexpected colors %+v", fire.Color)
	}
	if fire.Blend != particle.BlendAlpha {
		t.Errorf("Expected alpha blend, got %v", fire.Blend)
	}

	// Untouched keys keep defaults
	if fire.Texture != "fire" {
		t.Errorf("Expected texture kept, got %q", fire.Texture)
	}
	if c[Smoke] != Defaults()[Smoke] {
		t.Error("Expected untouched effect to keep defaults")
	}
}

func TestDecodeDoesNotMutateBase(t *testing.T) {
	base := Defaults()
	if _, err := Decode("[effect.smoke]\nmax_particles = 3\n", base); err != nil {
		t.Fatal(err)
	}
	if base[Smoke].MaxParticles != 600 {
		t.Errorf("Expected base untouched, got %d", base[Smoke].MaxParticles)
	}
}

func TestDecodeNewEffect(t *testing.T) {
	data := `
[effect.sparks]
texture = "spark"
max_particles = 32
duration = 1.0
color = ["#ffffff", "#ffffff"]
`
	c, err := Decode(data, Defaults())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c["sparks"].MaxParticles != 32 {
		t.Errorf("Expected new effect, got %+v", c["sparks"])
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[effect.fire]\nspeed = 3\n"},
		{"short range", "[effect.fire]\nstart_size = [1.0]\n"},
		{"bad gravity", "[effect.fire]\ngravity = [1.0, 2.0]\n"},
		{"bad color", "[effect.fire]\ncolor = [\"red\", \"#ffffff\"]\n"},
		{"bad blend", "[effect.fire]\nblend = \"screen\"\n"},
		{"invalid result", "[effect.fire]\nmax_particles = 0\n"},
		{"inverted range", "[effect.fire]\nend_size = [5.0, 1.0]\n"},
		{"syntax", "[effect.fire\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data, Defaults()); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.toml")
	if err := os.WriteFile(path, []byte("[effect.ice]\nmax_particles = 77\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path, Defaults())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c[Ice].MaxParticles != 77 {
		t.Errorf("Expected 77, got %d", c[Ice].MaxParticles)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), Defaults()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestShippedEffectFileLoads(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "asset", "effects.toml"), Defaults())
	if err != nil {
		t.Fatalf("Expected shipped effect file to load, got %v", err)
	}
	if len(c) < len(Defaults()) {
		t.Errorf("Expected at least %d effects, got %d", len(Defaults()), len(c))
	}
}

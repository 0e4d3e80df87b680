package effect

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/flare/particle"
	"github.com/lixenwraith/flare/vmath"
)

// fileSettings mirrors particle.Settings with every field optional
// Absent keys keep the base catalog value
type fileSettings struct {
	Texture                    *string   `toml:"texture"`
	MaxParticles               *int      `toml:"max_particles"`
	Duration                   *float64  `toml:"duration"`
	DurationRandomness         *float64  `toml:"duration_randomness"`
	EmitterVelocitySensitivity *float64  `toml:"emitter_velocity_sensitivity"`
	HorizontalVelocity         []float64 `toml:"horizontal_velocity"`
	VerticalVelocity           []float64 `toml:"vertical_velocity"`
	EndVelocity                *float64  `toml:"end_velocity"`
	Gravity                    []float64 `toml:"gravity"`
	Color                      []string  `toml:"color"`
	StartSize                  []float64 `toml:"start_size"`
	EndSize                    []float64 `toml:"end_size"`
	RotateSpeed                []float64 `toml:"rotate_speed"`
	Blend                      *string   `toml:"blend"`
}

type effectFile struct {
	Effect map[string]fileSettings `toml:"effect"`
}

// LoadFile reads TOML overrides from path on top of base
func LoadFile(path string, base Catalog) (Catalog, error) {
	var f effectFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode effect file %s", path)
	}
	c, err := apply(md, f, base)
	if err != nil {
		return nil, errors.Wrapf(err, "effect file %s", path)
	}
	return c, nil
}

// Decode parses TOML overrides from a string on top of base
func Decode(data string, base Catalog) (Catalog, error) {
	var f effectFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "decode effects")
	}
	return apply(md, f, base)
}

func apply(md toml.MetaData, f effectFile, base Catalog) (Catalog, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	out := base.Clone()
	for name, fs := range f.Effect {
		s, err := fs.merge(out[name])
		if err != nil {
			return nil, errors.Wrapf(err, "effect %q", name)
		}
		out[name] = s
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (fs fileSettings) merge(s particle.Settings) (particle.Settings, error) {
	if fs.Texture != nil {
		s.Texture = *fs.Texture
	}
	if fs.MaxParticles != nil {
		s.MaxParticles = *fs.MaxParticles
	}
	if fs.Duration != nil {
		s.Duration = *fs.Duration
	}
	if fs.DurationRandomness != nil {
		s.DurationRandomness = *fs.DurationRandomness
	}
	if fs.EmitterVelocitySensitivity != nil {
		s.EmitterVelocitySensitivity = *fs.EmitterVelocitySensitivity
	}
	if fs.EndVelocity != nil {
		s.EndVelocity = *fs.EndVelocity
	}

	ranges := []struct {
		key string
		src []float64
		dst *particle.Range
	}{
		{"horizontal_velocity", fs.HorizontalVelocity, &s.HorizontalVelocity},
		{"vertical_velocity", fs.VerticalVelocity, &s.VerticalVelocity},
		{"start_size", fs.StartSize, &s.StartSize},
		{"end_size", fs.EndSize, &s.EndSize},
		{"rotate_speed", fs.RotateSpeed, &s.RotateSpeed},
	}
	for _, r := range ranges {
		if r.src == nil {
			continue
		}
		if len(r.src) != 2 {
			return s, fmt.Errorf("%s: want [min, max], got %d values", r.key, len(r.src))
		}
		*r.dst = particle.Range{Min: r.src[0], Max: r.src[1]}
	}

	if fs.Gravity != nil {
		if len(fs.Gravity) != 3 {
			return s, fmt.Errorf("gravity: want [x, y, z], got %d values", len(fs.Gravity))
		}
		s.Gravity = vmath.Vec3F{X: fs.Gravity[0], Y: fs.Gravity[1], Z: fs.Gravity[2]}
	}

	if fs.Color != nil {
		if len(fs.Color) != 2 {
			return s, fmt.Errorf("color: want [min, max], got %d values", len(fs.Color))
		}
		lo, err := colorful.Hex(fs.Color[0])
		if err != nil {
			return s, fmt.Errorf("color min %q: %w", fs.Color[0], err)
		}
		hi, err := colorful.Hex(fs.Color[1])
		if err != nil {
			return s, fmt.Errorf("color max %q: %w", fs.Color[1], err)
		}
		s.Color = particle.ColorRange{Min: lo, Max: hi}
	}

	if fs.Blend != nil {
		switch *fs.Blend {
		case "alpha":
			s.Blend = particle.BlendAlpha
		case "additive":
			s.Blend = particle.BlendAdditive
		default:
			return s, fmt.Errorf("blend: unknown mode %q", *fs.Blend)
		}
	}
	return s, nil
}

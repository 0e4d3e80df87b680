// Package audio synthesizes short cues for projectile launches and bursts.
package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/flare/parameter"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/vmath"
)

// Cue identifies a synthesized sound
type Cue int

const (
	CueNone Cue = iota
	CueExplosion
	CueShatter
	CueFizzle
	CueLaunch
)

var cueNames = [...]string{
	CueNone:      "none",
	CueExplosion: "explosion",
	CueShatter:   "shatter",
	CueFizzle:    "fizzle",
	CueLaunch:    "launch",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// BurstCue maps a finished projectile to its sound
func BurstCue(kind projectile.Kind, outcome projectile.Outcome) Cue {
	if outcome == projectile.OutcomeNone {
		return CueNone
	}
	switch kind {
	case projectile.KindIceBolt:
		return CueShatter
	case projectile.KindParticle:
		return CueFizzle
	default:
		return CueExplosion
	}
}

// NewCue builds a finite streamer for c at the given gain
func NewCue(c Cue, rate beep.SampleRate, gain float64, rng *vmath.FastRand) beep.Streamer {
	switch c {
	case CueExplosion:
		// Noise burst over a falling low thump
		noise := NewOscillator(0, parameter.ExplosionSoundDuration, WaveNoise, rate, rng)
		thump := NewSweep(parameter.ExplosionSoundThumpHz*2, parameter.ExplosionSoundThumpHz,
			parameter.ExplosionSoundDuration, WaveSine, rate, nil)
		mixed := beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.8))
		shaped := NewEnvelope(mixed, parameter.ExplosionSoundDuration,
			parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
		return newVolume(shaped, gain)

	case CueShatter:
		// Bright partials an octave and a fifth apart
		fund := NewOscillator(parameter.ShatterSoundHz, parameter.ShatterSoundDuration, WaveSine, rate, nil)
		over := NewOscillator(parameter.ShatterSoundHz*1.5, parameter.ShatterSoundDuration, WaveSquare, rate, nil)
		grit := NewOscillator(0, parameter.ShatterSoundDuration, WaveNoise, rate, rng)
		mixed := beep.Mix(newVolume(fund, 0.5), newVolume(over, 0.15), newVolume(grit, 0.2))
		shaped := NewEnvelope(mixed, parameter.ShatterSoundDuration,
			parameter.ShatterSoundAttack, parameter.ShatterSoundRelease, rate)
		return newVolume(shaped, gain)

	case CueFizzle:
		noise := NewOscillator(0, parameter.FizzleSoundDuration, WaveNoise, rate, rng)
		shaped := NewEnvelope(noise, parameter.FizzleSoundDuration,
			parameter.FizzleSoundAttack, parameter.FizzleSoundRelease, rate)
		return newVolume(shaped, gain*0.4)

	case CueLaunch:
		whoosh := NewSweep(180, 720, parameter.LaunchSoundDuration, WaveSaw, rate, nil)
		air := NewOscillator(0, parameter.LaunchSoundDuration, WaveNoise, rate, rng)
		mixed := beep.Mix(newVolume(whoosh, 0.25), newVolume(air, 0.35))
		shaped := NewEnvelope(mixed, parameter.LaunchSoundDuration,
			parameter.LaunchSoundAttack, parameter.LaunchSoundRelease, rate)
		return newVolume(shaped, gain)
	}
	return nil
}

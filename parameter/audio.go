package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Explosion Cue (rocket, fireball, attack, lava ball bursts)
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 4 * time.Millisecond
	ExplosionSoundRelease  = 380 * time.Millisecond
	ExplosionSoundThumpHz  = 55.0
)

// Shatter Cue (ice bursts)
const (
	ShatterSoundDuration = 220 * time.Millisecond
	ShatterSoundAttack   = 2 * time.Millisecond
	ShatterSoundRelease  = 180 * time.Millisecond
	ShatterSoundHz       = 2093.0
)

// Fizzle Cue (pure particle projectiles)
const (
	FizzleSoundDuration = 120 * time.Millisecond
	FizzleSoundAttack   = 5 * time.Millisecond
	FizzleSoundRelease  = 90 * time.Millisecond
)

// Launch Cue
const (
	LaunchSoundDuration = 160 * time.Millisecond
	LaunchSoundAttack   = 20 * time.Millisecond
	LaunchSoundRelease  = 120 * time.Millisecond
)

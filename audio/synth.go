package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/flare/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator sweeps linearly from startHz to endHz over its duration
type oscillator struct {
	startHz  float64
	endHz    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
// rng feeds WaveNoise and may be nil for tonal waves
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate, rng)
}

// NewSweep creates an oscillator gliding between two pitches
func NewSweep(startHz, endHz float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	if wave == WaveNoise && rng == nil {
		rng = vmath.NewFastRand(0)
	}
	return &oscillator{
		startHz:  startHz,
		endHz:    endHz,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := vmath.Lerp(o.startHz, o.endHz, float64(o.position)/float64(o.duration))
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack samples and out over release samples
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

// NewEnvelope shapes s and ends it after duration
// When attack and release overlap they are scaled down to share the duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att, rel := rate.N(attack), rate.N(release)
	if ramp := att + rel; ramp > total && ramp > 0 {
		att = att * total / ramp
		rel = total - att
	}
	return &envelope{streamer: s, total: total, attack: att, release: rel}
}

// gain is the linear level at sample pos
func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; left <= e.release {
		g = math.Min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if left := e.total - e.position; left < len(samples) {
		samples = samples[:max(left, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain as a base-2 volume; non-positive gain mutes
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2, Silent: gain <= 0}
	if !v.Silent {
		v.Volume = math.Log2(gain)
	}
	return v
}

package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flare/engine"
	"github.com/lixenwraith/flare/parameter"
	"github.com/lixenwraith/flare/vmath"
)

// MaxVoices caps concurrently mixed cues; extra cues are dropped
const MaxVoices = 16

// Player mixes cues onto the speaker
// Safe to call from the simulation goroutine; beep pulls from its own goroutine
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	gain    float64
	mixer   *beep.Mixer
	rng     *vmath.FastRand
	started bool
	played  uint64
	dropped uint64
}

func NewPlayer(gain float64, seed uint64) *Player {
	return &Player{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		gain:  gain,
		mixer: &beep.Mixer{},
		rng:   vmath.NewFastRand(seed),
	}
}

// Start opens the speaker; without it Play only counts
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close silences output
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

// Play queues a cue
func (p *Player) Play(c Cue) {
	if c == CueNone {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.played++
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= MaxVoices {
		p.dropped++
		return
	}
	cue := NewCue(c, p.rate, p.gain, p.rng.Split())
	if cue == nil {
		return
	}
	p.mixer.Add(cue)
	p.played++
}

// HandleBurst is an engine.World burst listener
func (p *Player) HandleBurst(b engine.Burst) {
	p.Play(BurstCue(b.Kind, b.Outcome))
}

// Counts returns cues accepted and dropped for voice limit
func (p *Player) Counts() (played, dropped uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.dropped
}

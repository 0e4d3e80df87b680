// Command projectile-sandbox is a terminal viewer: fire projectile variants
// across a side-on arena and watch their trails and bursts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	uuid "github.com/satori/go.uuid"

	"github.com/lixenwraith/flare/audio"
	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/engine"
	"github.com/lixenwraith/flare/level"
	"github.com/lixenwraith/flare/parameter"
	"github.com/lixenwraith/flare/particle"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/status"
	"github.com/lixenwraith/flare/vmath"
)

var (
	soundFlag   = flag.Bool("sound", false, "Play burst cues")
	seedFlag    = flag.Uint64("seed", parameter.DefaultSeed, "Random seed")
	effectsFlag = flag.String("effects", "", "TOML file overriding effect settings")
)

// World units per terminal cell
const (
	unitsPerCol = 1.0
	unitsPerRow = 2.0
	launchSpeed = 40.0
)

var kinds = []projectile.Kind{
	projectile.KindAttack,
	projectile.KindRocket,
	projectile.KindFireball,
	projectile.KindLavaBall,
	projectile.KindIceBolt,
	projectile.KindParticle,
}

var arenaBoxes = []level.Box{
	{Min: vmath.Vec3F{X: 70, Y: 0, Z: -5}, Max: vmath.Vec3F{X: 72, Y: 24, Z: 5}},
	{Min: vmath.Vec3F{X: 35, Y: 0, Z: -5}, Max: vmath.Vec3F{X: 40, Y: 6, Z: 5}},
}

type Sandbox struct {
	screen        tcell.Screen
	width, height int

	world  *engine.World
	lvl    *level.Level
	clock  *engine.FrameClock
	player *audio.Player

	kind    int
	pitch   float64
	sprites []particle.Sprite
	paused  bool
}

func NewSandbox() (*Sandbox, error) {
	catalog := effect.Defaults()
	if *effectsFlag != "" {
		loaded, err := effect.LoadFile(*effectsFlag, catalog)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	lib, err := effect.NewLibrary(catalog, vmath.NewFastRand(*seedFlag))
	if err != nil {
		return nil, err
	}
	lvl, err := level.New(0, arenaBoxes)
	if err != nil {
		return nil, err
	}
	lvl.AddAgent(level.NewAgent(vmath.Vec3F{X: 55, Y: 2}, 2, 1))

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen: screen,
		world:  engine.NewWorld(lib, lvl, status.NewRegistry()),
		lvl:    lvl,
		clock:  engine.NewFrameClock(engine.NewMonotonicTimeProvider(), 0),
		pitch:  0.4,
	}
	s.width, s.height = screen.Size()

	if *soundFlag {
		s.player = audio.NewPlayer(0.6, *seedFlag)
		if err := s.player.Start(); err != nil {
			// Non-fatal, sandbox runs silent
			log.Printf("Audio initialization failed: %v", err)
			s.player = nil
		} else {
			s.world.OnBurst(s.player.HandleBurst)
		}
	}
	return s, nil
}

func (s *Sandbox) fire() {
	cfg, _ := projectile.ByKind(kinds[s.kind])
	vel := vmath.Vec3F{X: math.Cos(s.pitch) * launchSpeed, Y: math.Sin(s.pitch) * launchSpeed}
	if _, err := s.world.Launch(cfg, projectile.Launch{
		Position: vmath.Vec3F{X: 2, Y: 2},
		Velocity: vel,
		Enemies:  s.lvl.Agents(),
	}); err != nil {
		log.Printf("launch %s: %v", cfg.Kind, err)
		return
	}
	if s.player != nil {
		s.player.Play(audio.CueLaunch)
	}
}

// project maps world X/Y onto the screen; Z is ignored in side view
func (s *Sandbox) project(p vmath.Vec3F) (int, int, bool) {
	x := int(p.X / unitsPerCol)
	y := s.height - 2 - int(p.Y/unitsPerRow)
	return x, y, x >= 0 && x < s.width && y >= 1 && y < s.height-1
}

func glyphFor(age float64) rune {
	switch {
	case age < 0.15:
		return '@'
	case age < 0.4:
		return '*'
	case age < 0.7:
		return '+'
	default:
		return '.'
	}
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	ground := tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 100))
	for x := 0; x < s.width; x++ {
		s.screen.SetContent(x, s.height-1, '=', nil, ground)
	}

	wall := tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 140, 120))
	for _, b := range arenaBoxes {
		x0, y1, _ := s.project(b.Min)
		x1, y0, _ := s.project(b.Max)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if x >= 0 && x < s.width && y >= 1 && y < s.height-1 {
					s.screen.SetContent(x, y, '#', nil, wall)
				}
			}
		}
	}

	for _, a := range *s.lvl.Agents() {
		if x, y, ok := s.project(a.Position); ok {
			s.screen.SetContent(x, y, 'A', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
		}
	}

	lib := s.world.Library()
	for _, name := range lib.Names() {
		pool, _ := lib.Pool(name)
		s.sprites = pool.Snapshot(s.sprites[:0])
		for _, sp := range s.sprites {
			x, y, ok := s.project(sp.Position)
			if !ok || sp.Alpha <= 0.02 {
				continue
			}
			r, g, b := sp.Color.Clamped().RGB255()
			a := sp.Alpha
			color := tcell.NewRGBColor(int32(float64(r)*a), int32(float64(g)*a), int32(float64(b)*a))
			s.screen.SetContent(x, y, glyphFor(sp.Age), nil, tcell.StyleDefault.Foreground(color))
		}
	}

	s.world.Each(func(_ uuid.UUID, p *projectile.Projectile) {
		if x, y, ok := s.project(p.Position()); ok {
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			if l, lit := p.Light(); lit {
				r, g, b := l.Color.RGB255()
				style = style.Background(tcell.NewRGBColor(int32(r)/3, int32(g)/3, int32(b)/3))
			}
			s.screen.SetContent(x, y, 'o', nil, style)
		}
	})

	s.drawHUD()
	s.screen.Show()
}

func (s *Sandbox) drawHUD() {
	reg := s.world.Status()
	hud := fmt.Sprintf(" [1-6] %-9s pitch %3.0f° [space] fire [c] clear [p] pause [q] quit | flying %d particles %d collided %d",
		kinds[s.kind], s.pitch*180/math.Pi, s.world.Active(), s.world.Library().Live(),
		reg.Ints.Get(status.Key("projectile", "collided")).Load())
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(hud) {
		if i >= s.width {
			break
		}
		s.screen.SetContent(i, 0, r, nil, style)
	}
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			s.pitch = math.Min(s.pitch+0.05, math.Pi/2)
		case tcell.KeyDown:
			s.pitch = math.Max(s.pitch-0.05, -0.2)
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r == ' ':
				s.fire()
			case r == 'c':
				s.world.Clear()
			case r == 'p':
				s.paused = !s.paused
			case r >= '1' && r <= '6':
				s.kind = int(r - '1')
			}
		}
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	s.clock.Tick()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			dt := s.clock.Tick()
			if !s.paused {
				s.world.Tick(dt)
			}
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	if s.player != nil {
		s.player.Close()
	}
	s.screen.Fini()
}

func main() {
	flag.Parse()
	// Screen owns the terminal
	log.SetOutput(io.Discard)

	sandbox, err := NewSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
}

package main

import (
	"log"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/engine"
	"github.com/lixenwraith/flare/level"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/vmath"
)

// arena is the fixed test range: floor at 0, a wall down range, a row of targets
func arena() (*level.Level, error) {
	lvl, err := level.New(0, []level.Box{
		{Min: vmath.Vec3F{X: 60, Y: 0, Z: -20}, Max: vmath.Vec3F{X: 62, Y: 12, Z: 20}},
		{Min: vmath.Vec3F{X: 20, Y: 0, Z: 8}, Max: vmath.Vec3F{X: 24, Y: 3, Z: 12}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "build arena")
	}
	for i := 0; i < 5; i++ {
		lvl.AddAgent(level.NewAgent(vmath.Vec3F{X: 40, Y: 2, Z: float64(i*6 - 12)}, 1.5, 3))
	}
	return lvl, nil
}

// volley is one launch wave: every variant aimed along a fan
var volley = []struct {
	cfg   projectile.Config
	speed float64
	pitch float64 // radians above the horizon
}{
	{projectile.Attack(false, false), 60, 0.05},
	{projectile.Attack(true, true), 60, 0.08},
	{projectile.Rocket(), 35, 0.1},
	{projectile.Fireball(), 30, 0.35},
	{projectile.LavaBall(), 18, 0.9},
	{projectile.IceBolt(), 45, 0.02},
	{projectile.ParticleProjectile(1.2, effect.IceTrail, effect.Ice), 25, 0.5},
}

// launchVolley fires the whole fan from origin, yawed by yaw radians
func launchVolley(w *engine.World, origin vmath.Vec3F, yaw float64, enemies *[]*level.Agent) (int, error) {
	n := 0
	for i, shot := range volley {
		spread := yaw + (float64(i)-float64(len(volley)-1)/2)*0.06
		dir := vmath.Vec3F{
			X: math.Cos(shot.pitch) * math.Cos(spread),
			Y: math.Sin(shot.pitch),
			Z: math.Cos(shot.pitch) * math.Sin(spread),
		}
		id, err := w.Launch(shot.cfg, projectile.Launch{
			Position: origin,
			Velocity: vmath.V3FScale(dir, shot.speed),
			Enemies:  enemies,
		})
		if err != nil {
			return n, errors.Wrapf(err, "launch %s", shot.cfg.Kind)
		}
		log.Printf("launch %s id=%s speed=%.1f", shot.cfg.Kind, id, shot.speed)
		n++
	}
	return n, nil
}

// runConfig drives a headless run
type runConfig struct {
	seconds  float64
	fps      int
	interval float64 // seconds between volleys
}

type runResult struct {
	frames   int
	launched int
	bursts   map[projectile.Outcome]int
	peakLive int
}

// run steps the world at a fixed rate, firing a volley every interval
// Frame deltas come from a FrameClock over a mock provider so runs are exact
func run(w *engine.World, lvl *level.Level, cfg runConfig) (runResult, error) {
	res := runResult{bursts: make(map[projectile.Outcome]int)}
	w.OnBurst(func(b engine.Burst) {
		res.bursts[b.Outcome]++
		log.Printf("burst %s %s at (%.1f, %.1f, %.1f)", b.Kind, b.Outcome,
			b.Position.X, b.Position.Y, b.Position.Z)
	})

	step := time.Second / time.Duration(cfg.fps)
	provider := engine.NewMockTimeProvider(time.Unix(0, 0))
	clock := engine.NewFrameClock(provider, 0)
	clock.Tick()

	frames := int(math.Ceil(cfg.seconds * float64(cfg.fps)))
	nextVolley := 0.0
	yaw := 0.0

	for f := 0; f < frames; f++ {
		if w.SimTime() >= nextVolley {
			n, err := launchVolley(w, vmath.Vec3F{Y: 1.5}, yaw, lvl.Agents())
			res.launched += n
			if err != nil {
				return res, err
			}
			nextVolley += cfg.interval
			yaw = math.Mod(yaw+0.15, 0.6) - 0.15
		}

		provider.Advance(step)
		w.Tick(clock.Tick())
		res.frames++
		if live := w.Library().Live(); live > res.peakLive {
			res.peakLive = live
		}
	}
	return res, nil
}

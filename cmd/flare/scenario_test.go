package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/engine"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/status"
	"github.com/lixenwraith/flare/vmath"
)

func newRun(t *testing.T, seed uint64) (*engine.World, runResult) {
	t.Helper()
	lib, err := effect.NewLibrary(effect.Defaults(), vmath.NewFastRand(seed))
	if err != nil {
		t.Fatal(err)
	}
	lvl, err := arena()
	if err != nil {
		t.Fatal(err)
	}
	w := engine.NewWorld(lib, lvl, status.NewRegistry())
	res, err := run(w, lvl, runConfig{seconds: 3, fps: 60, interval: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return w, res
}

func TestRunFiresVolleys(t *testing.T) {
	w, res := newRun(t, 11)

	if res.frames != 180 {
		t.Errorf("Expected 180 frames, got %d", res.frames)
	}
	if want := 3 * len(volley); res.launched != want {
		t.Errorf("Expected %d launches, got %d", want, res.launched)
	}
	ended := res.bursts[projectile.OutcomeExpired] + res.bursts[projectile.OutcomeCollided]
	if ended+w.Active() != res.launched {
		t.Errorf("Expected every launch accounted for: %d ended, %d active, %d launched",
			ended, w.Active(), res.launched)
	}
	if res.bursts[projectile.OutcomeCollided] == 0 {
		t.Error("Expected some projectiles to hit the arena")
	}
	if res.peakLive == 0 {
		t.Error("Expected live particles")
	}
}

func TestRunDeterministic(t *testing.T) {
	_, a := newRun(t, 5)
	_, b := newRun(t, 5)
	if a.peakLive != b.peakLive || a.bursts[projectile.OutcomeCollided] != b.bursts[projectile.OutcomeCollided] {
		t.Errorf("Expected identical runs, got %+v and %+v", a, b)
	}
}

func TestPrintSummaryListsEffects(t *testing.T) {
	w, res := newRun(t, 1)
	var buf bytes.Buffer
	printSummary(&buf, w, res)

	out := buf.String()
	for _, name := range effect.Defaults().Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected summary to mention %s", name)
		}
	}
	if !strings.Contains(out, "180 frames") {
		t.Errorf("Expected frame count in summary, got:\n%s", out)
	}
}

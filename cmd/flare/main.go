// Command flare runs scripted projectile volleys headless and prints the
// resulting particle and projectile counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ttacon/chalk"

	"github.com/lixenwraith/flare/effect"
	"github.com/lixenwraith/flare/engine"
	"github.com/lixenwraith/flare/parameter"
	"github.com/lixenwraith/flare/projectile"
	"github.com/lixenwraith/flare/status"
	"github.com/lixenwraith/flare/vmath"
)

var (
	effectsFlag  = flag.String("effects", "", "TOML file overriding effect settings")
	secondsFlag  = flag.Float64("seconds", 10, "Simulated seconds")
	fpsFlag      = flag.Int("fps", parameter.FrameRate, "Fixed simulation rate")
	intervalFlag = flag.Float64("interval", 1.5, "Seconds between volleys")
	seedFlag     = flag.Uint64("seed", parameter.DefaultSeed, "Random seed")
	debugFlag    = flag.Bool("debug", false, "Write logs/flare.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := runMain(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%sflare: %v%s\n", chalk.Red, err, chalk.Reset)
		os.Exit(1)
	}
}

func runMain(out io.Writer) error {
	if *fpsFlag <= 0 || *secondsFlag <= 0 || *intervalFlag <= 0 {
		return fmt.Errorf("fps, seconds and interval must be positive")
	}

	catalog := effect.Defaults()
	if *effectsFlag != "" {
		loaded, err := effect.LoadFile(*effectsFlag, catalog)
		if err != nil {
			return err
		}
		catalog = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = parameter.DefaultSeed
	}
	lib, err := effect.NewLibrary(catalog, vmath.NewFastRand(seed))
	if err != nil {
		return err
	}

	lvl, err := arena()
	if err != nil {
		return err
	}

	w := engine.NewWorld(lib, lvl, status.NewRegistry())
	res, err := run(w, lvl, runConfig{
		seconds:  *secondsFlag,
		fps:      *fpsFlag,
		interval: *intervalFlag,
	})
	if err != nil {
		return err
	}

	printSummary(out, w, res)
	return nil
}

func printSummary(out io.Writer, w *engine.World, res runResult) {
	fmt.Fprintf(out, "%s%d frames, %.2fs simulated%s\n",
		chalk.Green, res.frames, w.SimTime(), chalk.Reset)
	fmt.Fprintf(out, "projectiles: %d launched, %s, %s, %d in flight\n",
		res.launched,
		chalk.Yellow.Color(fmt.Sprintf("%d expired", res.bursts[projectile.OutcomeExpired])),
		chalk.Red.Color(fmt.Sprintf("%d collided", res.bursts[projectile.OutcomeCollided])),
		w.Active())
	fmt.Fprintf(out, "particles: peak %d live, %d live now\n", res.peakLive, w.Library().Live())

	for _, name := range w.Library().Names() {
		pool, _ := w.Library().Pool(name)
		st := pool.Stats()
		line := fmt.Sprintf("  %-16s live %5d/%-5d spawned %7d dropped %6d",
			name, st.Live, st.Capacity, st.Spawned, st.Dropped)
		if st.Dropped > 0 {
			line = chalk.Magenta.Color(line)
		}
		fmt.Fprintln(out, line)
	}
}

//go:build linux && !tinygo

// touchprobe reads a Linux touchscreen and prints the raw range seen while
// the user strokes the edges, as TOUCHDECK_CAL_* overrides for the panel.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/merliot/touchdeck/evdev"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/sim"
	"github.com/merliot/touchdeck/touch"
)

func main() {
	cfg := panel.ConfigFromEnv()
	path := flag.String("dev", "", "input device, e.g. /dev/input/event0 (default: first touchscreen)")
	seconds := flag.Int("seconds", 15, "how long to sample")
	flag.Parse()

	dev, err := evdev.Open(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, sim.ErrStyle.Render(err.Error()))
		os.Exit(1)
	}
	defer dev.Close()

	fmt.Println(sim.Banner("touchprobe",
		sim.Pair("device", dev.Path),
		sim.Pair("name", dev.Name),
		sim.Pair("advertised", advertised(dev.Range)),
	))
	fmt.Printf("Stroke all four edges for %d seconds\n", *seconds)

	var seen touch.Range
	deadline := time.Now().Add(time.Duration(*seconds) * time.Second)
	for time.Now().Before(deadline) {
		if dev.Touched() {
			s := dev.ReadTouchPoint()
			seen.Add(s)
			fmt.Printf("\r%s %s %s  ", sim.Pair("X", s.X), sim.Pair("Y", s.Y), sim.Pair("Z", s.Z))
		}
		time.Sleep(cfg.PollPeriod)
	}
	fmt.Println()

	if seen.Samples == 0 {
		fmt.Println(sim.ErrStyle.Render("no touches seen"))
		os.Exit(1)
	}
	fmt.Println(report(seen, cfg.Width, cfg.Height))
}

func advertised(r touch.Range) string {
	if r.Samples == 0 {
		return "none"
	}
	return fmt.Sprintf("x %d..%d y %d..%d", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

func report(r touch.Range, width, height int) string {
	cal := r.Calibration(width, height)
	lines := []string{
		sim.Pair("samples", r.Samples),
		sim.Pair("TOUCHDECK_CAL_MINX", cal.MinX),
		sim.Pair("TOUCHDECK_CAL_MAXX", cal.MaxX),
		sim.Pair("TOUCHDECK_CAL_MINY", cal.MinY),
		sim.Pair("TOUCHDECK_CAL_MAXY", cal.MaxY),
	}
	if err := cal.Validate(); err != nil {
		lines = append(lines, sim.ErrStyle.Render(err.Error()))
	}
	return sim.Banner("Calibration", lines...)
}

//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/merliot/touchdeck/calib"
	"github.com/merliot/touchdeck/sim"
	"github.com/merliot/touchdeck/sim/host"
)

func main() {
	var opts host.Options
	opts.Flags(flag.CommandLine)
	flag.Parse()

	c := calib.New("calib-01", "calib", "Touch Calibration").(*calib.Calib)
	if err := host.Run(c, opts); err != nil {
		fmt.Fprintf(os.Stderr, "calib: %v\n", err)
		os.Exit(1)
	}

	c.Lock()
	s := c.Suggest()
	c.Unlock()
	fmt.Println(sim.Banner("Suggested calibration",
		sim.Pair("TOUCHDECK_CAL_MINX", s.MinX),
		sim.Pair("TOUCHDECK_CAL_MAXX", s.MaxX),
		sim.Pair("TOUCHDECK_CAL_MINY", s.MinY),
		sim.Pair("TOUCHDECK_CAL_MAXY", s.MaxY),
	))
}

//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/merliot/touchdeck/arcade"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/sim/host"
)

func main() {
	var opts host.Options
	opts.Flags(flag.CommandLine)
	noPeer := flag.Bool("no-peer", false, "don't connect to the MQTT peer link")
	flag.Parse()

	a := arcade.New("arcade-01", "arcade", "Mini Platform").(*arcade.Arcade)
	listen := func(*panel.Panel) {
		if !*noPeer {
			a.Listen(peer.ConfigFromEnv(a.Id()))
		}
	}
	if err := host.Run(a, opts, listen); err != nil {
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		os.Exit(1)
	}
}

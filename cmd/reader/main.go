//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/merliot/touchdeck/reader"
	"github.com/merliot/touchdeck/sim/host"
)

func main() {
	var opts host.Options
	opts.Flags(flag.CommandLine)
	flag.Parse()

	r := reader.New("reader-01", "reader", "Mini Theory Platform").(*reader.Reader)
	if err := host.Run(r, opts); err != nil {
		fmt.Fprintf(os.Stderr, "reader: %v\n", err)
		os.Exit(1)
	}
}

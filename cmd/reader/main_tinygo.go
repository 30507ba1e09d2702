//go:build tinygo

package main

import (
	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/hw"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/reader"
)

func main() {
	board := hw.New()
	cfg := panel.DefaultConfig()
	cfg.Calibration = board.Calibration()
	p, err := panel.New(cfg, board.Sensor(), board.Displayer(), board.Toner())
	if err != nil {
		panic(err.Error())
	}
	r := reader.New("reader-01", "reader", "Mini Theory Platform").(*reader.Reader)
	r.Attach(p)
	touchdeck.NewRunner(r).Run()
}

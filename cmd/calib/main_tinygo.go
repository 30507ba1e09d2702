//go:build tinygo

package main

import (
	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/calib"
	"github.com/merliot/touchdeck/hw"
	"github.com/merliot/touchdeck/panel"
)

func main() {
	board := hw.New()
	cfg := panel.DefaultConfig()
	cfg.Calibration = board.Calibration()
	p, err := panel.New(cfg, board.Sensor(), board.Displayer(), board.Toner())
	if err != nil {
		panic(err.Error())
	}
	c := calib.New("calib-01", "calib", "Touch Calibration").(*calib.Calib)
	c.Attach(p)
	touchdeck.NewRunner(c).Run()
}

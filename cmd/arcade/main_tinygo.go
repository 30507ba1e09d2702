//go:build tinygo

package main

import (
	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/arcade"
	"github.com/merliot/touchdeck/hw"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/tinynet"

	_ "github.com/merliot/touchdeck/tinynet/connect"
)

func main() {
	board := hw.New()
	cfg := panel.DefaultConfig()
	cfg.Calibration = board.Calibration()
	p, err := panel.New(cfg, board.Sensor(), board.Displayer(), board.Toner())
	if err != nil {
		panic(err.Error())
	}
	a := arcade.New("arcade-01", "arcade", "Mini Platform").(*arcade.Arcade)
	a.Attach(p)
	if mac, err := tinynet.GetHardwareAddr(); err == nil {
		p.Logf("MAC %s", mac)
	}
	a.Listen(peer.ConfigFromEnv(a.Id()))
	touchdeck.NewRunner(a).Run()
}

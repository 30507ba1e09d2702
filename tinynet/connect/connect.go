//go:build tinygo

// Package connect joins WiFi at init when imported for its side effect.
// The credentials are set at build time:
//
//	tinygo flash -ldflags "-X github.com/merliot/touchdeck/tinynet/connect.ssid=... -X ...connect.pass=..."
package connect

import "github.com/merliot/touchdeck/tinynet"

var ssid, pass string

func init() {
	if ssid == "" {
		return
	}
	if err := tinynet.NetConnect(ssid, pass); err != nil {
		println("WiFi:", err.Error())
	}
}

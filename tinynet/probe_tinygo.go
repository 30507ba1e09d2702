//go:build tinygo && !pico

package tinynet

import (
	"net"
	"time"

	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/netlink/probe"
)

var (
	link      netlink.Netlinker
	connected bool
)

func netConnect(ssid, pass string) error {
	// wait a bit for serial
	time.Sleep(2 * time.Second)

	// probe registers the device's netdev, so net.Dial works once joined
	link, _ = probe.Probe()
	err := link.NetConnect(&netlink.ConnectParams{
		Ssid:       ssid,
		Passphrase: pass,
	})
	connected = err == nil
	return err
}

func ready() error {
	if !connected {
		return ErrNotConnected
	}
	return nil
}

func GetHardwareAddr() (net.HardwareAddr, error) {
	if link == nil {
		return nil, ErrNotConnected
	}
	return link.GetHardwareAddr()
}

//go:build !tinygo

package tinynet

import (
	"errors"
	"net"
)

func netConnect(ssid, pass string) error { return nil }

func ready() error { return nil }

// GetHardwareAddr returns the MAC of the first interface that is up and not
// loopback
func GetHardwareAddr() (net.HardwareAddr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 && len(iface.HardwareAddr) > 0 {
			return iface.HardwareAddr, nil
		}
	}
	return nil, errors.New("tinynet: no interface")
}

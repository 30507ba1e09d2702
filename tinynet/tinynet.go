// Package tinynet brings up the network link on boards with a radio.  On a
// host the operating system owns the link and NetConnect does nothing.
package tinynet

import (
	"errors"
	"fmt"
)

var (
	ErrNoSSID       = errors.New("tinynet: no SSID")
	ErrNotConnected = errors.New("tinynet: not connected")
	ErrNoStack      = errors.New("tinynet: no IP stack on this link")
)

// Ready returns nil once net.Dial can reach the network
func Ready() error { return ready() }

// NetConnect joins the access point ssid.  It is a no-op on hosts.
func NetConnect(ssid, pass string) error {
	if ssid == "" {
		return ErrNoSSID
	}
	if err := netConnect(ssid, pass); err != nil {
		return fmt.Errorf("tinynet: join %s: %w", ssid, err)
	}
	return nil
}

//go:build pico

package tinynet

import (
	"net"
	"time"

	"github.com/soypat/cyw43439"
	"tinygo.org/x/drivers/netlink"
)

var (
	cyw43 *cyw43439.Device
	eth   *stack
)

// stack receives the link's ethernet frames.  There is no IP layer for
// the cyw43439 in the drivers netdev set, so it only counts them, and
// ready reports ErrNoStack to keep dialers off the link.
type stack struct {
	link   netlink.Netlinker
	frames int
}

func newStack(link netlink.Netlinker) *stack {
	s := &stack{link: link}
	link.RecvEthHandle(s.recvEth)
	return s
}

func (s *stack) recvEth(pkt []byte) error {
	s.frames++
	return nil
}

func netConnect(ssid, pass string) error {
	// wait a bit for serial
	time.Sleep(2 * time.Second)

	spi, cs, wlreg, irq := cyw43439.PicoWSpi(0)
	cyw43 = cyw43439.NewDevice(spi, cs, wlreg, irq, irq)
	eth = newStack(cyw43)
	return cyw43.NetConnect(&netlink.ConnectParams{
		Ssid:       ssid,
		Passphrase: pass,
	})
}

func ready() error {
	if eth == nil {
		return ErrNotConnected
	}
	return ErrNoStack
}

func GetHardwareAddr() (net.HardwareAddr, error) {
	if cyw43 == nil {
		return nil, ErrNotConnected
	}
	return cyw43.GetHardwareAddr()
}

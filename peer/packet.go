// Package peer receives environment readings pushed by a remote sensor node.
//
// The node sends a fixed 8 byte packet: temperature then humidity, each a
// little-endian float32.  Packets of any other size are dropped.
package peer

import (
	"encoding/binary"
	"fmt"
	"math"
)

const PacketSize = 8

// Env is one reading from the sensor node
type Env struct {
	Temperature float32
	Humidity    float32
}

func (e Env) String() string {
	return fmt.Sprintf("%.1fC %.0f%%", e.Temperature, e.Humidity)
}

// Decode parses a packet.  ok is false if data is not exactly PacketSize
// bytes.
func Decode(data []byte) (e Env, ok bool) {
	if len(data) != PacketSize {
		return e, false
	}
	e.Temperature = math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	e.Humidity = math.Float32frombits(binary.LittleEndian.Uint32(data[4:8]))
	return e, true
}

// Encode builds the packet for e
func (e Env) Encode() []byte {
	var buf [PacketSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(e.Temperature))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(e.Humidity))
	return buf[:]
}

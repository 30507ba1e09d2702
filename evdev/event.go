// Package evdev reads a Linux input device (/dev/input/eventN) as a touch
// sensor.  It reports raw axis values, so the panel calibration applies to
// it exactly as it does to a resistive controller.
package evdev

import (
	"encoding/binary"
	"strconv"

	"github.com/merliot/touchdeck/touch"
)

// Linux input event codes
const (
	EV_SYN = 0x00
	EV_KEY = 0x01
	EV_ABS = 0x03

	SYN_REPORT = 0x00

	BTN_TOUCH = 0x14a

	ABS_X              = 0x00
	ABS_Y              = 0x01
	ABS_PRESSURE       = 0x18
	ABS_MT_POSITION_X  = 0x35
	ABS_MT_POSITION_Y  = 0x36
	ABS_MT_TRACKING_ID = 0x39
)

// nativeSize is the input_event size for this word size
const nativeSize = 8 + 2*strconv.IntSize/8

// Event is one decoded input_event
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Parser splits a byte stream into input_event records.  The kernel's
// struct is 24 bytes with a 64-bit timeval and 16 bytes with a 32-bit one.
// Set Size when the record size is known; otherwise it is guessed from the
// first chunk.
type Parser struct {
	Size int
	buf  []byte
}

// Feed appends chunk and calls fn for every complete event
func (p *Parser) Feed(chunk []byte, fn func(Event)) {
	p.buf = append(p.buf, chunk...)
	if p.Size == 0 {
		switch {
		case len(p.buf) >= 48 && len(p.buf)%48 == 0:
			// fits either size
			p.Size = nativeSize
		case len(p.buf) >= 24 && len(p.buf)%24 == 0:
			p.Size = 24
		case len(p.buf) >= 32 && len(p.buf)%16 == 0:
			p.Size = 16
		case len(p.buf) >= 24:
			p.Size = 24
		}
	}
	for p.Size != 0 && len(p.buf) >= p.Size {
		rec := p.buf[:p.Size]
		p.buf = p.buf[p.Size:]
		off := p.Size - 8
		fn(Event{
			Type:  binary.LittleEndian.Uint16(rec[off:]),
			Code:  binary.LittleEndian.Uint16(rec[off+2:]),
			Value: int32(binary.LittleEndian.Uint32(rec[off+4:])),
		})
	}
}

// State folds events into the current contact.  Changes become visible on
// SYN_REPORT.
type State struct {
	pending touch.Sample
	down    bool
	current touch.Sample
	touched bool
}

func (s *State) Handle(ev Event) {
	switch ev.Type {
	case EV_ABS:
		switch ev.Code {
		case ABS_X, ABS_MT_POSITION_X:
			s.pending.X = int(ev.Value)
		case ABS_Y, ABS_MT_POSITION_Y:
			s.pending.Y = int(ev.Value)
		case ABS_PRESSURE:
			s.pending.Z = int(ev.Value)
		case ABS_MT_TRACKING_ID:
			s.down = ev.Value >= 0
		}
	case EV_KEY:
		if ev.Code == BTN_TOUCH {
			s.down = ev.Value != 0
		}
	case EV_SYN:
		if ev.Code == SYN_REPORT {
			s.current = s.pending
			s.touched = s.down
		}
	}
}

func (s *State) Touched() bool        { return s.touched }
func (s *State) Sample() touch.Sample { return s.current }

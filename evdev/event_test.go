package evdev

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck/touch"
)

// record builds a 64-bit input_event
func record(typ, code uint16, value int32) []byte {
	return sized(24, typ, code, value)
}

// sized builds an input_event of size bytes
func sized(size int, typ, code uint16, value int32) []byte {
	b := make([]byte, size)
	off := size - 8
	binary.LittleEndian.PutUint16(b[off:], typ)
	binary.LittleEndian.PutUint16(b[off+2:], code)
	binary.LittleEndian.PutUint32(b[off+4:], uint32(value))
	return b
}

func stream(recs ...[]byte) (out []byte) {
	for _, r := range recs {
		out = append(out, r...)
	}
	return out
}

func TestParser(t *testing.T) {
	c := qt.New(t)
	var p Parser
	var evs []Event
	data := stream(record(EV_ABS, ABS_X, 1200), record(EV_ABS, ABS_Y, -3), record(EV_SYN, SYN_REPORT, 0))

	// split mid-record
	p.Feed(data[:50], func(ev Event) { evs = append(evs, ev) })
	p.Feed(data[50:], func(ev Event) { evs = append(evs, ev) })

	c.Assert(p.Size, qt.Equals, 24)
	c.Assert(evs, qt.DeepEquals, []Event{
		{EV_ABS, ABS_X, 1200},
		{EV_ABS, ABS_Y, -3},
		{EV_SYN, SYN_REPORT, 0},
	})
}

func TestStateCommitsOnReport(t *testing.T) {
	c := qt.New(t)
	var s State
	p := Parser{Size: 24}
	p.Feed(stream(
		record(EV_KEY, BTN_TOUCH, 1),
		record(EV_ABS, ABS_X, 500),
		record(EV_ABS, ABS_Y, 700),
		record(EV_ABS, ABS_PRESSURE, 90),
	), s.Handle)
	c.Assert(s.Touched(), qt.IsFalse)

	p.Feed(record(EV_SYN, SYN_REPORT, 0), s.Handle)
	c.Assert(s.Touched(), qt.IsTrue)
	c.Assert(s.Sample(), qt.Equals, touch.Sample{X: 500, Y: 700, Z: 90})

	p.Feed(stream(record(EV_ABS, ABS_MT_TRACKING_ID, -1), record(EV_SYN, SYN_REPORT, 0)), s.Handle)
	c.Assert(s.Touched(), qt.IsFalse)
}

func TestParser32Bit(t *testing.T) {
	c := qt.New(t)
	p := Parser{Size: 16}
	var evs []Event
	data := stream(sized(16, EV_ABS, ABS_X, 410), sized(16, EV_ABS, ABS_Y, 3600), sized(16, EV_SYN, SYN_REPORT, 0))
	p.Feed(data, func(ev Event) { evs = append(evs, ev) })
	p.Feed(sized(16, EV_KEY, BTN_TOUCH, 0), func(ev Event) { evs = append(evs, ev) })

	c.Assert(p.Size, qt.Equals, 16)
	c.Assert(evs, qt.DeepEquals, []Event{
		{EV_ABS, ABS_X, 410},
		{EV_ABS, ABS_Y, 3600},
		{EV_SYN, SYN_REPORT, 0},
		{EV_KEY, BTN_TOUCH, 0},
	})
}

func TestAmbiguousChunkUsesWordSize(t *testing.T) {
	c := qt.New(t)
	var p Parser
	p.Feed(make([]byte, 48), func(Event) {})
	c.Assert(p.Size, qt.Equals, nativeSize)
	c.Assert(nativeSize == 16 || nativeSize == 24, qt.IsTrue)
}

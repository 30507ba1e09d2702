//go:build linux && !tinygo

package main

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck/touch"
)

func TestReport(t *testing.T) {
	c := qt.New(t)
	var r touch.Range
	r.Add(touch.Sample{X: 310, Y: 290})
	r.Add(touch.Sample{X: 3790, Y: 3810})
	out := report(r, 320, 240)
	c.Assert(out, qt.Contains, "TOUCHDECK_CAL_MINX")
	c.Assert(out, qt.Contains, "3790")
	c.Assert(out, qt.Not(qt.Contains), "calibration:")

	c.Assert(advertised(touch.Range{}), qt.Equals, "none")
}

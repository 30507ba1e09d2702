package calib

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/sim"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

func newCalib(c *qt.C, script string) (*Calib, *sim.Player, *ui.Framebuffer) {
	cfg := panel.DefaultConfig()
	player, err := sim.Load(strings.NewReader(script), cfg.Calibration)
	c.Assert(err, qt.IsNil)
	fb := ui.NewFramebuffer(cfg.Width, cfg.Height)
	p, err := panel.New(cfg, player, fb, nil)
	c.Assert(err, qt.IsNil)
	p.CloseConsole()
	cal := New("calib_01", "calib", "calib").(*Calib)
	cal.Attach(p)
	return cal, player, fb
}

func TestSplash(t *testing.T) {
	c := qt.New(t)
	cal, _, fb := newCalib(c, "")
	frames := fb.Frames()
	cal.Splash()
	c.Assert(fb.At(5, 5), qt.Equals, ui.Black)
	c.Assert(fb.Frames(), qt.Equals, frames+1)
}

func TestSampleDrawsDot(t *testing.T) {
	c := qt.New(t)
	cal, _, fb := newCalib(c, "raw 2050 2050 512\nup")
	c.Assert(cal.Step(), qt.IsTrue)
	c.Assert([]int{cal.X, cal.Y, cal.Pressure}, qt.DeepEquals, []int{160, 120, 512})
	c.Assert(fb.At(160, 120), qt.Equals, ui.Red)
	c.Assert(fb.At(164, 120), qt.Equals, ui.Red)
	c.Assert(fb.At(0, 120), qt.Equals, ui.Blue)
	c.Assert(cal.Step(), qt.IsFalse)
}

func TestOutOfRangeIsClamped(t *testing.T) {
	c := qt.New(t)
	cal, _, fb := newCalib(c, "raw 100 4095 300")
	c.Assert(cal.Step(), qt.IsTrue)
	c.Assert([]int{cal.X, cal.Y}, qt.DeepEquals, []int{0, 240})
	c.Assert(fb.At(2, 237), qt.Equals, ui.Red)
}

func TestRangeSuggestion(t *testing.T) {
	c := qt.New(t)
	cal, p, _ := newCalib(c, "raw 250 400 300\nraw 3900 3700 300\nraw 1000 200 300\nup")
	for !p.Done() {
		cal.Step()
	}
	c.Assert(cal.Range.Samples, qt.Equals, 3)
	c.Assert(cal.Suggest(), qt.Equals, touch.Calibration{
		MinX: 250, MaxX: 3900, MinY: 200, MaxY: 3700, Width: 320, Height: 240,
	})
}

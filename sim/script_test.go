package sim

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck/touch"
)

const demo = `
# open the second topic
tap 160 100
wait 3
drag 160 150 160 100 "2"   # scroll
raw 2050 2050 500
up
`

func TestParseScript(t *testing.T) {
	c := qt.New(t)
	steps, err := ParseScript(strings.NewReader(demo))
	c.Assert(err, qt.IsNil)
	c.Assert(steps, qt.DeepEquals, []Step{
		{Cmd: "tap", Args: []int{160, 100}, Line: 3},
		{Cmd: "wait", Args: []int{3}, Line: 4},
		{Cmd: "drag", Args: []int{160, 150, 160, 100, 2}, Line: 5},
		{Cmd: "raw", Args: []int{2050, 2050, 500}, Line: 6},
		{Cmd: "up", Line: 7},
	})
}

func TestParseErrors(t *testing.T) {
	c := qt.New(t)
	_, err := ParseScript(strings.NewReader("tap 1"))
	c.Assert(err, qt.ErrorMatches, "line 1: tap takes 2 arguments, got 1")

	_, err = ParseScript(strings.NewReader("\nswipe 1 2"))
	c.Assert(err, qt.ErrorMatches, `line 2: unknown command "swipe"`)

	_, err = ParseScript(strings.NewReader("wait soon"))
	c.Assert(err, qt.ErrorMatches, `line 1: wait: strconv.Atoi: parsing "soon": invalid syntax`)

	_, err = ParseScript(strings.NewReader(`tap "1 2`))
	c.Assert(err, qt.ErrorMatches, "line 1: .*")
}

func TestPlayer(t *testing.T) {
	c := qt.New(t)
	cal := touch.DefaultCalibration
	p, err := Load(strings.NewReader(demo), cal)
	c.Assert(err, qt.IsNil)

	// tap: two contacts and a release
	c.Assert(p.Touched(), qt.IsTrue)
	c.Assert(cal.Map(p.ReadTouchPoint()), qt.Equals, touch.Point{X: 160, Y: 100})
	c.Assert(p.Touched(), qt.IsTrue)
	c.Assert(p.Touched(), qt.IsFalse)

	for i := 0; i < 3; i++ {
		c.Assert(p.Touched(), qt.IsFalse)
	}

	var ys []int
	for p.Touched() {
		ys = append(ys, cal.Map(p.ReadTouchPoint()).Y)
	}
	c.Assert(ys, qt.DeepEquals, []int{150, 125, 100})

	c.Assert(p.Touched(), qt.IsTrue)
	c.Assert(p.ReadTouchPoint(), qt.Equals, touch.Sample{X: 2050, Y: 2050, Z: 500})
	c.Assert(p.Touched(), qt.IsFalse)
	c.Assert(p.Done(), qt.IsTrue)
	c.Assert(p.Remaining(), qt.Equals, 0)
	c.Assert(p.Touched(), qt.IsFalse)
}

func TestBanner(t *testing.T) {
	c := qt.New(t)
	out := Banner("touchdeck", Pair("MinX", 300), Pair("MaxX", 3800))
	c.Assert(out, qt.Contains, "touchdeck")
	c.Assert(out, qt.Contains, "MinX")
	c.Assert(out, qt.Contains, "3800")
}

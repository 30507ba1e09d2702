package scroll

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestApplyClamps(t *testing.T) {
	c := qt.New(t)
	o := New(5*48, 240-40)
	c.Assert(o.Max(), qt.Equals, 40)

	c.Assert(o.Apply(-10), qt.IsFalse)
	c.Assert(o.Value(), qt.Equals, 0)

	c.Assert(o.Apply(25), qt.IsTrue)
	c.Assert(o.Value(), qt.Equals, 25)

	c.Assert(o.Apply(100), qt.IsTrue)
	c.Assert(o.Value(), qt.Equals, 40)

	c.Assert(o.Apply(1), qt.IsFalse)
	c.Assert(o.Value(), qt.Equals, 40)
}

func TestContentFits(t *testing.T) {
	c := qt.New(t)
	o := New(100, 200)
	c.Assert(o.Max(), qt.Equals, 0)
	o.Apply(50)
	c.Assert(o.Value(), qt.Equals, 0)
}

func TestRandomDeltasStayInBounds(t *testing.T) {
	c := qt.New(t)
	r := rand.New(rand.NewSource(7))
	o := New(700, 200)
	for i := 0; i < 5000; i++ {
		o.Apply(r.Intn(301) - 150)
		c.Assert(o.Value() >= 0 && o.Value() <= o.Max(), qt.IsTrue, qt.Commentf("step %d value %d", i, o.Value()))
	}
}

func TestSetExtentReclamps(t *testing.T) {
	c := qt.New(t)
	o := New(1000, 200)
	o.Apply(700)
	o.SetExtent(500)
	c.Assert(o.Value(), qt.Equals, 300)
	o.Reset()
	c.Assert(o.Value(), qt.Equals, 0)
}

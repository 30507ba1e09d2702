package gesture

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck/touch"
)

func feed(c *Classifier, ys ...int) []Event {
	var evs []Event
	for _, y := range ys {
		evs = append(evs, c.Contact(touch.Point{X: 50, Y: y}))
	}
	return evs
}

func TestTapUnderThreshold(t *testing.T) {
	c := qt.New(t)
	g := New(DefaultThreshold)

	evs := feed(g, 100, 101, 102)
	c.Assert(evs[0].Kind, qt.Equals, Down)
	c.Assert(evs[1].Kind, qt.Equals, None)
	c.Assert(evs[2].Kind, qt.Equals, None)
	c.Assert(g.Moved(), qt.IsFalse)

	ev := g.Release()
	c.Assert(ev, qt.Equals, Event{Kind: Tap, Point: touch.Point{X: 50, Y: 100}})
	c.Assert(g.Active(), qt.IsFalse)
}

func TestThresholdIsExclusive(t *testing.T) {
	c := qt.New(t)
	g := New(12)
	feed(g, 100, 112, 88)
	c.Assert(g.Moved(), qt.IsFalse)
	c.Assert(g.Release().Kind, qt.Equals, Tap)

	feed(g, 100, 113)
	c.Assert(g.Moved(), qt.IsTrue)
	c.Assert(g.Release().Kind, qt.Equals, None)
}

func TestDragDeltas(t *testing.T) {
	c := qt.New(t)
	g := New(DefaultThreshold)

	evs := feed(g, 150, 140, 120, 100)
	c.Assert(evs[1].Kind, qt.Equals, None)
	c.Assert(evs[2], qt.Equals, Event{Kind: Drag, Point: touch.Point{X: 50, Y: 120}, Delta: 20})
	c.Assert(evs[3].Delta, qt.Equals, 20)

	total := 0
	for _, ev := range evs {
		total += ev.Delta
	}
	// the first 10 px happened before the drag was recognized
	c.Assert(total, qt.Equals, 40)
	c.Assert(g.Release(), qt.Equals, Event{})
}

func TestSingleLargeMove(t *testing.T) {
	c := qt.New(t)
	g := New(DefaultThreshold)
	evs := feed(g, 100, 150)
	c.Assert(evs[1], qt.Equals, Event{Kind: Drag, Point: touch.Point{X: 50, Y: 150}, Delta: -50})
	c.Assert(g.Release().Kind, qt.Equals, None)
}

func TestDragIsIrreversible(t *testing.T) {
	c := qt.New(t)
	g := New(DefaultThreshold)
	evs := feed(g, 100, 130, 100)
	c.Assert(evs[2].Kind, qt.Equals, Drag)
	c.Assert(evs[2].Delta, qt.Equals, 30)
	c.Assert(g.Release().Kind, qt.Equals, None)
}

func TestReleaseWhenIdle(t *testing.T) {
	c := qt.New(t)
	g := New(DefaultThreshold)
	c.Assert(g.Release(), qt.Equals, Event{})
}

func TestNewGestureAfterRelease(t *testing.T) {
	c := qt.New(t)
	g := New(DefaultThreshold)
	feed(g, 10, 200)
	g.Release()
	evs := feed(g, 60)
	c.Assert(evs[0].Kind, qt.Equals, Down)
	c.Assert(g.Release(), qt.Equals, Event{Kind: Tap, Point: touch.Point{X: 50, Y: 60}})
}

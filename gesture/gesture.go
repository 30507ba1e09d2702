// Package gesture tells taps from drags.
//
// A gesture starts with the first contact sample after idle and ends on
// release.  Once the finger strays more than Threshold pixels vertically
// from where it landed, the gesture is a drag for the rest of its life and
// every further sample yields a scroll delta.  Whether it was a tap is only
// known at release, so scrolling never fires a tap by accident.
package gesture

import "github.com/merliot/touchdeck/touch"

// DefaultThreshold is the vertical travel, in pixels, that turns a touch
// into a drag
const DefaultThreshold = 12

type Kind int

const (
	None Kind = iota
	// Down is the first contact of a gesture
	Down
	// Drag carries a scroll delta
	Drag
	// Tap is a released gesture that never moved past the threshold
	Tap
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Drag:
		return "drag"
	case Tap:
		return "tap"
	}
	return "none"
}

// Event is what the classifier makes of one sample.  For Drag, Delta is
// lastY - y, the amount to add to a scroll offset.  For Tap, Point is the
// touch-down position.
type Event struct {
	Kind  Kind
	Point touch.Point
	Delta int
}

// Classifier is the gesture state machine.  The zero value is idle with no
// threshold; use New.
type Classifier struct {
	Threshold int
	active    bool
	start     touch.Point
	lastY     int
	moved     bool
}

func New(threshold int) *Classifier {
	return &Classifier{Threshold: threshold}
}

// Contact feeds one sample taken while the screen is touched
func (c *Classifier) Contact(p touch.Point) Event {
	if !c.active {
		c.active = true
		c.start = p
		c.lastY = p.Y
		c.moved = false
		return Event{Kind: Down, Point: p}
	}

	delta := c.lastY - p.Y
	c.lastY = p.Y

	if abs(p.Y-c.start.Y) > c.Threshold {
		c.moved = true
	}

	if c.moved {
		return Event{Kind: Drag, Point: p, Delta: delta}
	}
	return Event{Kind: None, Point: p}
}

// Release ends the gesture.  It returns a Tap at the touch-down point if the
// gesture never became a drag.
func (c *Classifier) Release() Event {
	if !c.active {
		return Event{}
	}
	ev := Event{}
	if !c.moved {
		ev = Event{Kind: Tap, Point: c.start}
	}
	c.Reset()
	return ev
}

// Reset drops any gesture in progress
func (c *Classifier) Reset() {
	c.active = false
	c.moved = false
	c.start = touch.Point{}
	c.lastY = 0
}

// Active is true between the first contact and release
func (c *Classifier) Active() bool { return c.active }

// Moved is true once the current gesture has become a drag
func (c *Classifier) Moved() bool { return c.moved }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

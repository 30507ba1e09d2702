// Package nav is the screen state machine shared by the panel apps.
//
// There are three screens: the menu, a content page, and a game.  Only taps
// move between them.  Drags scroll whatever the current screen shows: the
// menu list or the content body.  Every transition resets both scroll
// offsets.
package nav

import (
	"github.com/merliot/touchdeck/scroll"
	"github.com/merliot/touchdeck/touch"
)

type State int

const (
	Menu State = iota
	Content
	Game
)

func (s State) String() string {
	switch s {
	case Content:
		return "content"
	case Game:
		return "game"
	}
	return "menu"
}

// Rect is a hit region in screen pixels, half-open on the right and bottom
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(p touch.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// BackButton is the top-left "< Back" region on content and game screens
var BackButton = Rect{0, 0, 60, 30}

// Layout describes where things are on the menu and how much is visible
type Layout struct {
	// ListTop is the y of the first list row, with no scroll
	ListTop int
	// ItemHeight is the row pitch of the list
	ItemHeight int
	// Items is the number of list rows
	Items int
	// Tiles are fixed (unscrolled) game tiles on the menu
	Tiles []Rect
	// Back is the back button on content and game screens
	Back Rect
	// ListView and BodyView are the visible heights of the menu list and
	// the content body
	ListView int
	BodyView int
}

// Action tells the caller what a tap did
type Action int

const (
	// Stay: nothing changed
	Stay Action = iota
	// Open: entered a content page or a game
	Open
	// Back: returned to the menu
	Back
	// Pass: the tap belongs to the active game
	Pass
)

// Navigator holds the current screen and its two scroll offsets
type Navigator struct {
	layout Layout
	state  State
	index  int
	extent func(index int) int
	List   *scroll.Offset
	Body   *scroll.Offset
}

// New returns a navigator on the menu.  bodyExtent gives the full height of
// content page i; it may be nil when there are no content pages.
func New(layout Layout, bodyExtent func(i int) int) *Navigator {
	if bodyExtent == nil {
		bodyExtent = func(int) int { return 0 }
	}
	return &Navigator{
		layout: layout,
		index:  -1,
		extent: bodyExtent,
		List:   scroll.New(layout.Items*layout.ItemHeight, layout.ListView),
		Body:   scroll.New(0, layout.BodyView),
	}
}

func (n *Navigator) State() State   { return n.state }
func (n *Navigator) Layout() Layout { return n.layout }

// Index is the open content page or game, or -1 on the menu
func (n *Navigator) Index() int { return n.index }

// ItemAt returns the list row under screen y, taking the list scroll into
// account.  Rows hidden above ListTop can't be hit.
func (n *Navigator) ItemAt(y int) (int, bool) {
	if y < n.layout.ListTop || n.layout.ItemHeight <= 0 {
		return -1, false
	}
	i := (y + n.List.Value() - n.layout.ListTop) / n.layout.ItemHeight
	if i >= n.layout.Items {
		return -1, false
	}
	return i, true
}

// TileAt returns the game tile under p
func (n *Navigator) TileAt(p touch.Point) (int, bool) {
	for i, tile := range n.layout.Tiles {
		if tile.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Tap applies a classified tap at p
func (n *Navigator) Tap(p touch.Point) Action {
	if n.state == Menu {
		if i, ok := n.ItemAt(p.Y); ok {
			n.enter(Content, i)
			return Open
		}
		if i, ok := n.TileAt(p); ok {
			n.enter(Game, i)
			return Open
		}
		return Stay
	}

	if n.layout.Back.Contains(p) {
		n.enter(Menu, -1)
		return Back
	}
	if n.state == Game {
		return Pass
	}
	return Stay
}

// Drag scrolls the current screen by delta.  It returns true if anything
// moved.  Drags never change the screen.
func (n *Navigator) Drag(delta int) bool {
	switch n.state {
	case Menu:
		return n.List.Apply(delta)
	case Content:
		return n.Body.Apply(delta)
	}
	return false
}

func (n *Navigator) enter(state State, index int) {
	n.state = state
	n.index = index
	n.List.Reset()
	n.Body.Reset()
	if state == Content {
		n.Body.SetExtent(n.extent(index))
	} else {
		n.Body.SetExtent(0)
	}
}

// Package game holds the arcade mini-games.
//
// A game owns its state record.  Init resets it; the arcade calls Init each
// time the game is opened from the menu.  Touches reach a game only after
// the back button has been ruled out.
package game

import (
	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

// Context is what the arcade hands a game each turn
type Context struct {
	// Env is the latest environment reading
	Env peer.Env
	// Fresh is set while Env has not been used by a game
	Fresh bool
	Sound *beep.Feedback
}

type Game interface {
	Name() string
	Init()
	// Update runs once per loop; it returns true if it used a fresh
	// reading and the screen needs a redraw
	Update(ctx *Context) bool
	Render(ctx *Context, d ui.Display)
	// OnTouch handles a tap at p and returns true if the screen needs a
	// redraw
	OnTouch(ctx *Context, p touch.Point) bool
}

func drawBack(d ui.Display) {
	ui.Button(d, 0, 0, 60, 30, "< Back", ui.White, ui.DarkGrey)
}

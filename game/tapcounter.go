package game

import (
	"strconv"

	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

// TapCounter counts taps on a round node in the middle of the screen
type TapCounter struct {
	Clicks int
}

const (
	nodeX = 160
	nodeY = 120
	nodeR = 22
)

func (g *TapCounter) Name() string         { return "Logic Puzzle" }
func (g *TapCounter) Init()                { g.Clicks = 0 }
func (g *TapCounter) Update(*Context) bool { return false }

func (g *TapCounter) OnTouch(ctx *Context, p touch.Point) bool {
	dx, dy := p.X-nodeX, p.Y-nodeY
	if dx*dx+dy*dy > nodeR*nodeR {
		return false
	}
	g.Clicks++
	ctx.Sound.Click()
	return true
}

func (g *TapCounter) Render(ctx *Context, d ui.Display) {
	d.FillScreen(ui.White)
	d.DrawCentreText(160, 5, g.Name(), ui.Black)
	d.FillCircle(nodeX, nodeY, nodeR, ui.Blue)
	d.DrawText(10, 200, "Clicks:", ui.Black)
	d.DrawText(90, 200, strconv.Itoa(g.Clicks), ui.Black)
	drawBack(d)
}

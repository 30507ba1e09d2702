package game

import (
	"fmt"

	"github.com/merliot/touchdeck/nav"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

// Instability is the unstable logic puzzle.  Three counters A, B and C
// (0..7, wrapping) are mixed with noise from the environment into F; the
// structure is valid when F is a multiple of 4.
type Instability struct {
	A, B, C int
	Noise   int
	F       int
	Valid   bool
}

var (
	buttonA     = nav.Rect{X: 10, Y: 200, W: 80, H: 40}
	buttonB     = nav.Rect{X: 110, Y: 200, W: 80, H: 40}
	buttonC     = nav.Rect{X: 210, Y: 200, W: 80, H: 40}
	buttonReset = nav.Rect{X: 110, Y: 150, W: 80, H: 40}
)

// Noise folds a reading into 0..7
func Noise(e peer.Env) int {
	n := (int(e.Temperature*10) + int(e.Humidity)) % 8
	if n < 0 {
		n += 8
	}
	return n
}

// Eval computes F for the counters and noise, and whether it is valid
func Eval(a, b, c, noise int) (f int, valid bool) {
	f = (a*2 + b*3 + c) ^ noise
	return f, f%4 == 0
}

func (g *Instability) Name() string { return "Unstable Logic" }

func (g *Instability) Init() {
	*g = Instability{}
}

func (g *Instability) compute(env peer.Env) {
	g.Noise = Noise(env)
	g.F, g.Valid = Eval(g.A, g.B, g.C, g.Noise)
}

func (g *Instability) Update(ctx *Context) bool {
	if !ctx.Fresh {
		return false
	}
	g.compute(ctx.Env)
	return true
}

// OnTouch bumps the counter under p, or resets them all.  Any tap
// recomputes F.
func (g *Instability) OnTouch(ctx *Context, p touch.Point) bool {
	switch {
	case buttonA.Contains(p):
		g.A = (g.A + 1) % 8
		ctx.Sound.Click()
	case buttonB.Contains(p):
		g.B = (g.B + 1) % 8
		ctx.Sound.Click()
	case buttonC.Contains(p):
		g.C = (g.C + 1) % 8
		ctx.Sound.Click()
	case buttonReset.Contains(p):
		g.A, g.B, g.C = 0, 0, 0
		ctx.Sound.Back()
	}
	g.compute(ctx.Env)
	return true
}

func (g *Instability) Render(ctx *Context, d ui.Display) {
	d.FillScreen(ui.Black)
	d.DrawText(70, 5, "UNSTABLE LOGIC", ui.Green)

	d.DrawText(10, 40, fmt.Sprintf("A: %d", g.A), ui.Green)
	d.DrawText(10, 60, fmt.Sprintf("B: %d", g.B), ui.Green)
	d.DrawText(10, 80, fmt.Sprintf("C: %d", g.C), ui.Green)

	d.DrawText(10, 110, fmt.Sprintf("Temp: %.1f", ctx.Env.Temperature), ui.Green)
	d.DrawText(10, 130, fmt.Sprintf("Hum: %.0f", ctx.Env.Humidity), ui.Green)
	d.DrawText(200, 40, fmt.Sprintf("Noise: %d", g.Noise), ui.Green)
	d.DrawText(200, 60, fmt.Sprintf("F: %d", g.F), ui.Green)

	if g.Valid {
		d.DrawText(150, 110, "VALID", ui.Cyan)
		d.DrawText(150, 128, "STRUCTURE", ui.Cyan)
	} else {
		d.DrawText(150, 110, "UNSTABLE", ui.Red)
		d.DrawText(150, 128, "STRUCTURE", ui.Red)
	}

	button(d, buttonA, "A +1", ui.Blue)
	button(d, buttonB, "B +1", ui.Green)
	button(d, buttonC, "C +1", ui.Orange)
	button(d, buttonReset, "RESET", ui.Red)
	drawBack(d)
}

func button(d ui.Display, r nav.Rect, label string, bg ui.Color) {
	ui.Button(d, r.X, r.Y, r.W, r.H, label, ui.Black, bg)
}

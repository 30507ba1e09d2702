package ui

import (
	"image"
	"image/color"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyterm"
)

// Canvas is a Display over a driver
type Canvas struct {
	dev    tinyterm.Displayer
	font   *tinyfont.Font
	ascent int
	width  int
	height int
	clip   image.Rectangle
}

// DefaultFont is the UI font
var DefaultFont = &freesans.Regular9pt7b

func NewCanvas(dev tinyterm.Displayer, font *tinyfont.Font) *Canvas {
	if font == nil {
		font = DefaultFont
	}
	w, h := dev.Size()
	c := &Canvas{
		dev:    dev,
		font:   font,
		ascent: int(font.YAdvance) * 3 / 4,
		width:  int(w),
		height: int(h),
	}
	c.Clip(image.Rectangle{})
	return c
}

func (c *Canvas) Size() (w, h int) { return c.width, c.height }

func (c *Canvas) Clip(r image.Rectangle) {
	screen := image.Rect(0, 0, c.width, c.height)
	if r.Empty() {
		c.clip = screen
		return
	}
	c.clip = r.Intersect(screen)
}

func (c *Canvas) FillScreen(col color.RGBA) {
	c.FillRect(0, 0, c.width, c.height, col)
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.clip)
	if r.Empty() {
		return
	}
	c.dev.FillRectangle(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), col)
}

func (c *Canvas) DrawRect(x, y, w, h int, col color.RGBA) {
	tinydraw.Rectangle(c.display(), int16(x), int16(y), int16(w), int16(h), col)
}

func (c *Canvas) DrawHLine(x, y, w int, col color.RGBA) {
	c.FillRect(x, y, w, 1, col)
}

func (c *Canvas) FillCircle(x, y, r int, col color.RGBA) {
	tinydraw.FilledCircle(c.display(), int16(x), int16(y), int16(r), col)
}

func (c *Canvas) DrawCircle(x, y, r int, col color.RGBA) {
	tinydraw.Circle(c.display(), int16(x), int16(y), int16(r), col)
}

func (c *Canvas) DrawText(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c.display(), c.font, int16(x), int16(y+c.ascent), s, col)
}

func (c *Canvas) DrawCentreText(cx, y int, s string, col color.RGBA) {
	c.DrawText(cx-c.TextWidth(s)/2, y, s, col)
}

func (c *Canvas) DrawTextBox(x, y int, lines []string, col color.RGBA) {
	for i, line := range lines {
		top := y + i*c.LineHeight()
		// skip lines wholly outside the clip
		if top+c.LineHeight() <= c.clip.Min.Y || top >= c.clip.Max.Y {
			continue
		}
		c.DrawText(x, top, line, col)
	}
}

func (c *Canvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int(outbox)
}

func (c *Canvas) LineHeight() int { return int(c.font.YAdvance) }

func (c *Canvas) Wrap(s string, width int) []string { return Wrap(c.font, s, width) }

func (c *Canvas) Flush() error { return c.dev.Display() }

// pixels is the canvas as a drivers.Displayer for tinyfont and tinydraw,
// which draw through the clip
type pixels struct{ c *Canvas }

func (c *Canvas) display() pixels { return pixels{c} }

func (p pixels) Size() (x, y int16) { return int16(p.c.width), int16(p.c.height) }
func (p pixels) Display() error     { return p.c.dev.Display() }

func (p pixels) SetPixel(x, y int16, col color.RGBA) {
	if image.Pt(int(x), int(y)).In(p.c.clip) {
		p.c.dev.SetPixel(x, y, col)
	}
}

func (p pixels) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	p.c.FillRect(int(x), int(y), int(w), int(h), col)
	return nil
}

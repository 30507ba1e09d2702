package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func newCanvas() (*Canvas, *Framebuffer) {
	fb := NewFramebuffer(320, 240)
	return NewCanvas(fb, nil), fb
}

func TestFillRectClipsToScreen(t *testing.T) {
	c := qt.New(t)
	cv, fb := newCanvas()
	cv.FillRect(-10, -10, 20, 20, Red)
	c.Assert(fb.Count(image.Rect(0, 0, 320, 240), Red), qt.Equals, 100)

	cv.FillRect(310, 230, 50, 50, Green)
	c.Assert(fb.Count(image.Rect(0, 0, 320, 240), Green), qt.Equals, 100)
}

func TestClip(t *testing.T) {
	c := qt.New(t)
	cv, fb := newCanvas()
	cv.Clip(image.Rect(0, 30, 320, 240))
	cv.FillRect(0, 0, 320, 60, Blue)
	c.Assert(fb.Count(image.Rect(0, 0, 320, 30), Blue), qt.Equals, 0)
	c.Assert(fb.Count(image.Rect(0, 30, 320, 60), Blue), qt.Equals, 320*30)

	cv.DrawText(10, 20, "Hidden", White)
	c.Assert(fb.Count(image.Rect(0, 0, 320, 30), White), qt.Equals, 0)

	cv.Clip(image.Rectangle{})
	cv.FillRect(0, 0, 1, 1, Blue)
	c.Assert(fb.At(0, 0), qt.Equals, Blue)
}

func TestShapes(t *testing.T) {
	c := qt.New(t)
	cv, fb := newCanvas()

	cv.DrawRect(10, 10, 20, 10, White)
	c.Assert(fb.At(10, 10), qt.Equals, White)
	c.Assert(fb.At(20, 15), qt.Equals, color.RGBA{})

	cv.FillCircle(160, 120, 22, Yellow)
	c.Assert(fb.At(160, 120), qt.Equals, Yellow)
	c.Assert(fb.At(180, 120), qt.Equals, Yellow)
	c.Assert(fb.At(190, 120), qt.Not(qt.Equals), Yellow)

	cv.DrawHLine(0, 30, 320, Cyan)
	c.Assert(fb.Count(image.Rect(0, 30, 320, 31), Cyan), qt.Equals, 320)
}

func TestDrawText(t *testing.T) {
	c := qt.New(t)
	cv, fb := newCanvas()
	cv.DrawText(10, 10, "Hello", White)
	lit := fb.Count(image.Rect(10, 10, 10+cv.TextWidth("Hello"), 10+cv.LineHeight()), White)
	c.Assert(lit > 0, qt.IsTrue)
	c.Assert(fb.Count(image.Rect(0, 100, 320, 240), White), qt.Equals, 0)
}

func TestWrap(t *testing.T) {
	c := qt.New(t)
	text := "A finite automaton reads its input one symbol at a time and " +
		"keeps nothing but its current state.\n\nThat is all."
	lines := Wrap(DefaultFont, text, 200)
	c.Assert(len(lines) > 3, qt.IsTrue)
	for _, line := range lines {
		c.Assert(measure(DefaultFont, line) <= 200, qt.IsTrue, qt.Commentf("%q", line))
	}
	c.Assert(lines[len(lines)-1], qt.Equals, "That is all.")
	c.Assert(lines[len(lines)-2], qt.Equals, "")

	joined := strings.Join(lines, " ")
	c.Assert(strings.Fields(joined), qt.DeepEquals, strings.Fields(text))
}

func TestWrapLongWord(t *testing.T) {
	c := qt.New(t)
	lines := Wrap(DefaultFont, "a incomprehensibilities b", 40)
	c.Assert(lines, qt.DeepEquals, []string{"a", "incomprehensibilities", "b"})
}

// Package ui draws the panel screens.
//
// Screens draw through the Display interface.  Canvas implements it on any
// TinyGo display driver (or a Framebuffer on the host) using tinyfont for
// text and tinydraw for shapes.  Coordinates are screen pixels with text
// positioned by the top of its line.
package ui

import (
	"image"
	"image/color"
)

type Display interface {
	Size() (w, h int)
	FillScreen(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	DrawRect(x, y, w, h int, c color.RGBA)
	DrawHLine(x, y, w int, c color.RGBA)
	FillCircle(x, y, r int, c color.RGBA)
	DrawCircle(x, y, r int, c color.RGBA)
	// DrawText draws s with its line top at y
	DrawText(x, y int, s string, c color.RGBA)
	// DrawCentreText draws s centred on cx
	DrawCentreText(cx, y int, s string, c color.RGBA)
	// DrawTextBox draws lines starting at y, one LineHeight apart
	DrawTextBox(x, y int, lines []string, c color.RGBA)
	TextWidth(s string) int
	LineHeight() int
	// Wrap breaks s into lines that fit in width
	Wrap(s string, width int) []string
	// Clip limits drawing to r until the next Clip; the zero Rectangle
	// clears the limit
	Clip(r image.Rectangle)
	Flush() error
}

package ui

import "image/color"

// Button fills a box and centres label in it
func Button(d Display, x, y, w, h int, label string, fg, bg color.RGBA) {
	d.FillRect(x, y, w, h, bg)
	d.DrawCentreText(x+w/2, y+(h-d.LineHeight())/2, label, fg)
}

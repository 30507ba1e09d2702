package ui

import "image/color"

type Color = color.RGBA

var (
	Black    = color.RGBA{0, 0, 0, 255}
	White    = color.RGBA{255, 255, 255, 255}
	Red      = color.RGBA{255, 0, 0, 255}
	Green    = color.RGBA{0, 255, 0, 255}
	Blue     = color.RGBA{0, 0, 255, 255}
	Yellow   = color.RGBA{255, 255, 0, 255}
	Cyan     = color.RGBA{0, 255, 255, 255}
	Orange   = color.RGBA{255, 165, 0, 255}
	Navy     = color.RGBA{0, 0, 123, 255}
	DarkGrey = color.RGBA{123, 125, 123, 255}
	Grey     = color.RGBA{198, 195, 198, 255}
)

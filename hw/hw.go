// Package hw picks the board binding for the TinyGo target being built.
package hw

import (
	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/touch"
	"tinygo.org/x/tinyterm"
)

// Board is a display, a touch controller and maybe a speaker
type Board interface {
	Displayer() tinyterm.Displayer
	Sensor() touch.Sensor
	Toner() beep.Toner
	Calibration() touch.Calibration
}

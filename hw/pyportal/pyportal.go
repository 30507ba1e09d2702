//go:build pyportal

// Package pyportal binds the Adafruit PyPortal's ILI9341 (8-bit parallel)
// and its 4-wire resistive overlay.
package pyportal

import (
	"machine"

	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch/resistive"
	drivertouch "tinygo.org/x/drivers/touch"
	"tinygo.org/x/tinyterm"
)

// contact is the smallest pressure (Z>>6) counted as a touch
const contact = 100

// Calibration of a PyPortal in Rotation270.  Touch reports 10-bit values
// with both axes flipped to grow with screen x and y.
var Calibration = touch.Calibration{
	MinX:   273,
	MaxX:   698,
	MinY:   183,
	MaxY:   783,
	Width:  320,
	Height: 240,
}

type Board struct {
	Display *ili9341.Device
	Touch   *Touch
}

func (b *Board) Displayer() tinyterm.Displayer  { return b.Display }
func (b *Board) Sensor() touch.Sensor           { return b.Touch }
func (b *Board) Calibration() touch.Calibration { return Calibration }

// The speaker amp is driven from the DAC on A0, which has no PWM, so the
// PyPortal runs silent
func (b *Board) Toner() beep.Toner { return nil }

func New() *Board {
	display := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)

	backlight := machine.TFT_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})

	display.Configure(ili9341.Config{})
	display.SetRotation(ili9341.Rotation270)
	display.FillScreen(ui.Black)
	backlight.High()

	machine.InitADC()
	res := &resistive.FourWire{}
	res.Configure(&resistive.FourWireConfig{
		YP: machine.TOUCH_YD,
		YM: machine.TOUCH_YU,
		XP: machine.TOUCH_XR,
		XM: machine.TOUCH_XL,
	})

	return &Board{Display: display, Touch: &Touch{res: res}}
}

// Touch adds contact detection to the resistive overlay, which only reports
// pressure
type Touch struct {
	res  *resistive.FourWire
	last drivertouch.Point
}

func (t *Touch) Touched() bool {
	p := t.res.ReadTouchPoint()
	t.last = drivertouch.Point{X: 1023 - p.X>>6, Y: 1023 - p.Y>>6, Z: p.Z >> 6}
	return t.last.Z > contact
}

func (t *Touch) ReadTouchPoint() drivertouch.Point {
	return t.last
}

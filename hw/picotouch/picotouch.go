//go:build pico

// Package picotouch binds a Raspberry Pi Pico W wired to a 2.8" SPI ILI9341
// module with an XPT2046 touch controller and a piezo on GP15.
//
//	GP16 SDI  GP18 SCK  GP19 SDO  GP17 TFT_CS  GP20 TFT_DC  GP21 TFT_RST
//	GP10 T_CLK  GP11 T_DIN  GP12 T_DO  GP13 T_CS  GP14 T_IRQ
//	GP22 backlight  GP15 piezo
package picotouch

import (
	"machine"

	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/xpt2046"
	"tinygo.org/x/tinyterm"
)

type Board struct {
	Display *ili9341.Device
	Touch   *xpt2046.Device
	Speaker *beep.Speaker
}

func (b *Board) Displayer() tinyterm.Displayer { return b.Display }
func (b *Board) Sensor() touch.Sensor          { return b.Touch }

func (b *Board) Calibration() touch.Calibration { return touch.DefaultCalibration }

func (b *Board) Toner() beep.Toner {
	if b.Speaker == nil {
		return nil
	}
	return b.Speaker
}

func New() *Board {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40 * machine.MHz,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})

	display := ili9341.NewSPI(machine.SPI0, machine.GP20, machine.GP17, machine.GP21)
	display.Configure(ili9341.Config{})
	display.SetRotation(ili9341.Rotation90)
	display.FillScreen(ui.Black)

	backlight := machine.GP22
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})
	backlight.High()

	tp := xpt2046.New(machine.GP10, machine.GP13, machine.GP11, machine.GP12, machine.GP14)
	tp.Configure(&xpt2046.Config{Precision: 10})

	b := &Board{Display: display, Touch: &tp}

	speaker, err := beep.NewSpeaker(machine.PWM7, machine.GP15)
	if err != nil {
		println("no speaker:", err.Error())
	} else {
		b.Speaker = speaker
	}
	return b
}

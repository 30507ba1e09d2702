// Package calib is a touch test screen.  Every contact sample is mapped,
// logged and drawn as a dot, with the raw range seen so far, so the panel
// calibration can be checked and re-measured.
package calib

import (
	"fmt"

	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

type Calib struct {
	touchdeck.Thing
	touchdeck.ThingMsg
	X        int
	Y        int
	Pressure int
	Range    touch.Range
	panel    *panel.Panel
}

func New(id, model, name string) touchdeck.Thinger {
	println("NEW CALIB")
	return &Calib{Thing: touchdeck.NewThing(id, model, name)}
}

func (c *Calib) Attach(p *panel.Panel) {
	c.panel = p
}

func (c *Calib) getState(msg *touchdeck.Msg) {
	c.Path = "state"
	msg.Marshal(c).Reply()
}

func (c *Calib) update(msg *touchdeck.Msg) {
	msg.Broadcast()
}

func (c *Calib) Subscribers() touchdeck.Subscribers {
	return touchdeck.Subscribers{
		"get/state": c.getState,
		"attached":  c.getState,
		"update":    c.update,
	}
}

// Splash draws the waiting screen
func (c *Calib) Splash() {
	d := c.panel.Display
	w, h := d.Size()
	d.FillScreen(ui.Black)
	d.DrawCentreText(w/2, h/2-22, "ILI9341 + XPT2046", ui.White)
	d.DrawCentreText(w/2, h/2+4, "Touch the screen", ui.White)
	d.Flush()
}

// Step reads one sample.  It returns true if something touched.
func (c *Calib) Step() bool {
	s, pt, ok := c.panel.Sample()
	if !ok {
		return false
	}
	c.X, c.Y, c.Pressure = pt.X, pt.Y, s.Z
	c.Range.Add(s)
	c.panel.Logf("X=%d | Y=%d | Z=%d", c.X, c.Y, c.Pressure)
	c.render()
	return true
}

// Suggest is the calibration that the raw range seen so far implies
func (c *Calib) Suggest() touch.Calibration {
	return c.Range.Calibration(c.panel.Width, c.panel.Height)
}

func (c *Calib) render() {
	d := c.panel.Display
	w, h := d.Size()
	d.FillScreen(ui.Black)
	d.DrawCentreText(w/2, 10, "Touch Test", ui.White)
	d.DrawCentreText(w/2, 36, fmt.Sprintf("X=%d Y=%d", c.X, c.Y), ui.White)
	d.DrawCentreText(w/2, 60, fmt.Sprintf("Pressure=%d", c.Pressure), ui.White)
	d.DrawCentreText(w/2, h-50, fmt.Sprintf("raw X %d..%d  Y %d..%d",
		c.Range.MinX, c.Range.MaxX, c.Range.MinY, c.Range.MaxY), ui.Grey)
	d.DrawRect(0, 0, w, h, ui.Blue)
	d.FillCircle(c.X, c.Y, 5, ui.Red)
	d.Flush()
}

func (c *Calib) tick(i *touchdeck.Injector) {
	var msg touchdeck.Msg
	c.Lock()
	changed := c.Step()
	if changed {
		c.Path = "update"
		msg.Marshal(c)
	}
	c.Unlock()
	if changed {
		i.Inject(&msg)
	}
}

func (c *Calib) Run(i *touchdeck.Injector) {
	c.panel.Boot(c.IsMetal())
	c.Splash()
	for {
		c.tick(i)
		c.panel.Wait()
	}
}

// Package panel ties a touch sensor, a display and a speaker into the
// context a panel app runs in.
package panel

import (
	"fmt"
	"time"

	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/gesture"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
	"tinygo.org/x/tinyterm"
)

// Panel is one touch screen.  It is owned by the app's control loop; none
// of its methods are safe for concurrent use.
type Panel struct {
	Config
	Display ui.Display
	Sound   *beep.Feedback

	reader   touch.Reader
	gesture  *gesture.Classifier
	console  *tinyterm.Terminal
	echo     bool
	sample   touch.Sample
	point    touch.Point
	contacts int
}

// New builds a panel.  toner may be nil for a silent panel.
func New(cfg Config, sensor touch.Sensor, dev tinyterm.Displayer, toner beep.Toner) (*Panel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sound := beep.NewFeedback(toner, cfg.ScrollGap)
	return &Panel{
		Config:  cfg,
		Display: ui.NewCanvas(dev, nil),
		Sound:   sound,
		reader:  touch.Reader{Sensor: sensor, Calibration: cfg.Calibration},
		gesture: gesture.New(cfg.Threshold),
		console: ui.NewConsole(dev, true),
		echo:    true,
	}, nil
}

// Logf prints a diagnostic line, and echoes it on screen while the boot
// console is up
func (p *Panel) Logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Printf("%s\r\n", line)
	if p.echo {
		fmt.Fprintf(p.console, "%s\n", line)
	}
}

// BootHold is how long the boot console stays up on metal before the app
// takes the screen
const BootHold = time.Second

// Boot ends the boot console.  On metal it is held for BootHold first so
// the log can be read.
func (p *Panel) Boot(metal bool) {
	if metal {
		time.Sleep(BootHold)
	}
	p.CloseConsole()
}

// CloseConsole stops echoing diagnostics; the app owns the screen from now
func (p *Panel) CloseConsole() {
	p.echo = false
}

// Sample reads one raw sample and its mapped point.  ok is false when
// nothing is touching.
func (p *Panel) Sample() (s touch.Sample, pt touch.Point, ok bool) {
	if s, pt, ok = p.reader.Read(); ok {
		p.sample, p.point = s, pt
		p.contacts++
	}
	return s, pt, ok
}

// Poll reads the sensor once and runs the sample through the gesture
// classifier.  A release ends the gesture and may yield a tap.
func (p *Panel) Poll() gesture.Event {
	if _, pt, ok := p.Sample(); ok {
		return p.gesture.Contact(pt)
	}
	if p.gesture.Active() {
		return p.gesture.Release()
	}
	return gesture.Event{}
}

// Last is the most recent contact: raw sample and mapped point
func (p *Panel) Last() (touch.Sample, touch.Point) {
	return p.sample, p.point
}

// Contacts counts samples read while touched
func (p *Panel) Contacts() int { return p.contacts }

// Wait sleeps for the poll period
func (p *Panel) Wait() {
	time.Sleep(p.PollPeriod)
}

// Package window shows a panel's framebuffer in a desktop window and turns
// the mouse (or a touch screen) into touch samples.
package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

// pressure reported for mouse contacts
const pressure = 400

// Window is an ebiten game that mirrors fb and implements touch.Sensor.
// Its Touched and ReadTouchPoint may be called from the app's goroutine.
type Window struct {
	fb    *ui.Framebuffer
	cal   touch.Calibration
	scale int
	image *ebiten.Image

	crit    sync.Mutex
	touched bool
	point   touch.Point
	ids     []ebiten.TouchID
}

func New(fb *ui.Framebuffer, cal touch.Calibration, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{fb: fb, cal: cal, scale: scale}
}

func (w *Window) Touched() bool {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.touched
}

// ReadTouchPoint returns the contact in raw controller units, so it goes
// through the same calibration as a real panel
func (w *Window) ReadTouchPoint() touch.Sample {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.cal.Unmap(w.point, pressure)
}

func (w *Window) Update() error {
	var touched bool
	var x, y int

	w.ids = ebiten.AppendTouchIDs(w.ids[:0])
	switch {
	case len(w.ids) > 0:
		touched = true
		x, y = ebiten.TouchPosition(w.ids[0])
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		touched = true
		x, y = ebiten.CursorPosition()
	}

	w.crit.Lock()
	w.touched = touched
	if touched {
		w.point = touch.Point{X: x / w.scale, Y: y / w.scale}
	}
	w.crit.Unlock()
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.fb.Snapshot()
	if w.image == nil {
		b := snap.Bounds()
		w.image = ebiten.NewImage(b.Dx(), b.Dy())
	}
	w.image.WritePixels(snap.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, op)
}

func (w *Window) Layout(width, height int) (int, int) {
	return w.cal.Width * w.scale, w.cal.Height * w.scale
}

// Run opens the window and blocks until it is closed.  It must be called
// from the main goroutine.
func (w *Window) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.cal.Width*w.scale, w.cal.Height*w.scale)
	ebiten.SetWindowPosition(10, 10)
	return ebiten.RunGame(w)
}

// Package touch maps raw resistive-touch samples to screen pixels.
//
// A Sample is whatever the touch controller reports, in ADC units.  A
// Calibration holds the empirically measured raw range per axis and the
// screen size; Map interpolates linearly between the two and clamps, so a
// Point is always on screen no matter what the sensor says.
package touch

import (
	"fmt"

	drivertouch "tinygo.org/x/drivers/touch"
)

// Sample is a raw touch reading {X, Y, Z} in controller units
type Sample = drivertouch.Point

// Sensor is the touch controller.  tinygo.org/x/drivers xpt2046 and
// touch/resistive devices satisfy it, as do the host simulator and evdev
// sensors.
type Sensor interface {
	Touched() bool
	ReadTouchPoint() drivertouch.Point
}

// Point is a position in screen pixels
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Calibration is the raw range of each axis and the screen size it maps onto
type Calibration struct {
	MinX   int
	MaxX   int
	MinY   int
	MaxY   int
	Width  int
	Height int
}

// DefaultCalibration was measured on a 320x240 ILI9341 + XPT2046 panel in
// landscape rotation.
var DefaultCalibration = Calibration{
	MinX:   300,
	MaxX:   3800,
	MinY:   300,
	MaxY:   3800,
	Width:  320,
	Height: 240,
}

// Validate returns an error if the calibration can't map anything
func (c Calibration) Validate() error {
	if c.MaxX <= c.MinX {
		return fmt.Errorf("calibration: MaxX %d must be greater than MinX %d", c.MaxX, c.MinX)
	}
	if c.MaxY <= c.MinY {
		return fmt.Errorf("calibration: MaxY %d must be greater than MinY %d", c.MaxY, c.MinY)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("calibration: bad screen size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Map converts a raw sample to a screen point, clamped to
// [0, Width] x [0, Height].
func (c Calibration) Map(s Sample) Point {
	x := scale(s.X, c.MinX, c.MaxX, c.Width)
	y := scale(s.Y, c.MinY, c.MaxY, c.Height)
	return Point{
		X: Clamp(x, 0, c.Width),
		Y: Clamp(y, 0, c.Height),
	}
}

// Unmap is the inverse of Map, for synthesizing raw samples from pixels
func (c Calibration) Unmap(p Point, pressure int) Sample {
	return Sample{
		X: c.MinX + unscale(p.X, c.MinX, c.MaxX, c.Width),
		Y: c.MinY + unscale(p.Y, c.MinY, c.MaxY, c.Height),
		Z: pressure,
	}
}

func scale(raw, inMin, inMax, outMax int) int {
	if inMax == inMin {
		return 0
	}
	return (raw - inMin) * outMax / (inMax - inMin)
}

func unscale(px, inMin, inMax, outMax int) int {
	if outMax == 0 {
		return 0
	}
	// round up so Map(Unmap(p)) lands back on p
	span := inMax - inMin
	return (px*span + outMax - 1) / outMax
}

// Clamp v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Reader polls a Sensor and maps what it reads
type Reader struct {
	Sensor
	Calibration
}

// Read returns the raw sample and the point it maps to.  ok is false when
// nothing is touching the screen.
func (r *Reader) Read() (s Sample, p Point, ok bool) {
	if !r.Touched() {
		return s, p, false
	}
	s = r.ReadTouchPoint()
	return s, r.Map(s), true
}

// Range tracks the smallest and largest raw values seen on each axis
type Range struct {
	MinX, MaxX int
	MinY, MaxY int
	Samples    int
}

// Add widens the range to include s
func (r *Range) Add(s Sample) {
	if r.Samples == 0 {
		r.MinX, r.MaxX = s.X, s.X
		r.MinY, r.MaxY = s.Y, s.Y
	}
	r.MinX = min(r.MinX, s.X)
	r.MaxX = max(r.MaxX, s.X)
	r.MinY = min(r.MinY, s.Y)
	r.MaxY = max(r.MaxY, s.Y)
	r.Samples++
}

// Calibration returns a calibration built from the range seen so far, for a
// screen of width x height.
func (r *Range) Calibration(width, height int) Calibration {
	return Calibration{
		MinX:   r.MinX,
		MaxX:   r.MaxX,
		MinY:   r.MinY,
		MaxY:   r.MaxY,
		Width:  width,
		Height: height,
	}
}

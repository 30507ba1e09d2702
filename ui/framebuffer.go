package ui

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
)

// Framebuffer is an in-memory display.  The simulator shows it in a window
// and tests read pixels back from it.
type Framebuffer struct {
	mu     sync.Mutex
	img    *image.RGBA
	scroll int16
	frames int
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	f.img.SetRGBA(int(x), int(y), c)
	f.mu.Unlock()
}

func (f *Framebuffer) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h))
	f.mu.Lock()
	draw.Draw(f.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	f.mu.Unlock()
	return nil
}

// SetScroll records the hardware scroll line; the framebuffer itself
// doesn't scroll, so consoles on it use software scroll
func (f *Framebuffer) SetScroll(line int16) {
	f.mu.Lock()
	f.scroll = line
	f.mu.Unlock()
}

func (f *Framebuffer) Display() error {
	f.mu.Lock()
	f.frames++
	f.mu.Unlock()
	return nil
}

// Frames counts Display calls
func (f *Framebuffer) Frames() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *Framebuffer) At(x, y int) color.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.img.RGBAAt(x, y)
}

// Snapshot copies the current pixels
func (f *Framebuffer) Snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	img := image.NewRGBA(f.img.Bounds())
	copy(img.Pix, f.img.Pix)
	return img
}

// Count returns how many pixels in r are c
func (f *Framebuffer) Count(r image.Rectangle, c color.RGBA) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	r = r.Intersect(f.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if f.img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

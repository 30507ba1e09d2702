// Package scroll keeps a scroll position inside its content.
package scroll

// Offset is a scroll position over content of height extent seen through a
// viewport.  The value is always in [0, max(0, extent-viewport)].
type Offset struct {
	value    int
	extent   int
	viewport int
}

func New(extent, viewport int) *Offset {
	return &Offset{extent: extent, viewport: viewport}
}

// Max is the largest offset the content allows
func (o *Offset) Max() int {
	return max(0, o.extent-o.viewport)
}

// Apply adds delta and clamps.  It returns true if the offset moved.
func (o *Offset) Apply(delta int) bool {
	prev := o.value
	o.value = min(max(o.value+delta, 0), o.Max())
	return o.value != prev
}

// SetExtent changes the content height, clamping the offset to fit
func (o *Offset) SetExtent(extent int) {
	o.extent = extent
	o.value = min(o.value, o.Max())
}

func (o *Offset) Reset()     { o.value = 0 }
func (o *Offset) Value() int { return o.value }

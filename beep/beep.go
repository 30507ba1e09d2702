// Package beep plays short feedback tones for touch events.
package beep

import "time"

// Toner emits a tone without waiting for it to finish
type Toner interface {
	Tone(freq int, dur time.Duration)
}

type Tone struct {
	Freq int
	Dur  time.Duration
}

var (
	ClickTone  = Tone{1200, 40 * time.Millisecond}
	ScrollTone = Tone{900, 20 * time.Millisecond}
	BackTone   = Tone{700, 80 * time.Millisecond}
	ErrorTone  = Tone{300, 180 * time.Millisecond}
)

// DefaultScrollGap is the least time between two scroll ticks
const DefaultScrollGap = 120 * time.Millisecond

// Feedback maps UI events to tones.  A nil Toner is silent.
type Feedback struct {
	toner      Toner
	scrollGap  time.Duration
	lastScroll time.Time
	now        func() time.Time
}

func NewFeedback(toner Toner, scrollGap time.Duration) *Feedback {
	return &Feedback{toner: toner, scrollGap: scrollGap, now: time.Now}
}

func (f *Feedback) Play(t Tone) {
	if f == nil || f.toner == nil {
		return
	}
	f.toner.Tone(t.Freq, t.Dur)
}

func (f *Feedback) Click() { f.Play(ClickTone) }
func (f *Feedback) Back()  { f.Play(BackTone) }
func (f *Feedback) Error() { f.Play(ErrorTone) }

// Scroll ticks, but no more often than the scroll gap
func (f *Feedback) Scroll() {
	if f == nil {
		return
	}
	now := f.now()
	if !f.lastScroll.IsZero() && now.Sub(f.lastScroll) < f.scrollGap {
		return
	}
	f.lastScroll = now
	f.Play(ScrollTone)
}

package beep

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

type recorder struct {
	tones []Tone
}

func (r *recorder) Tone(freq int, dur time.Duration) {
	r.tones = append(r.tones, Tone{freq, dur})
}

func TestFeedbackTones(t *testing.T) {
	c := qt.New(t)
	r := &recorder{}
	f := NewFeedback(r, DefaultScrollGap)
	f.Click()
	f.Back()
	f.Error()
	c.Assert(r.tones, qt.DeepEquals, []Tone{
		{1200, 40 * time.Millisecond},
		{700, 80 * time.Millisecond},
		{300, 180 * time.Millisecond},
	})
}

func TestScrollRateLimit(t *testing.T) {
	c := qt.New(t)
	r := &recorder{}
	f := NewFeedback(r, DefaultScrollGap)
	now := time.Unix(1000, 0)
	f.now = func() time.Time { return now }

	f.Scroll()
	now = now.Add(50 * time.Millisecond)
	f.Scroll()
	now = now.Add(69 * time.Millisecond)
	f.Scroll()
	c.Assert(r.tones, qt.HasLen, 1)

	now = now.Add(time.Millisecond)
	f.Scroll()
	c.Assert(r.tones, qt.DeepEquals, []Tone{ScrollTone, ScrollTone})
}

func TestSilent(t *testing.T) {
	var f *Feedback
	f.Click()
	f.Scroll()
	NewFeedback(nil, 0).Error()
}

func TestSquare(t *testing.T) {
	c := qt.New(t)
	s := Square(1000, 10*time.Millisecond, 8000, 100)
	c.Assert(s, qt.HasLen, 80)
	// 4 samples high, 4 low
	c.Assert(s[:9], qt.DeepEquals, []int16{100, 100, 100, 100, -100, -100, -100, -100, 100})
	c.Assert(Square(0, time.Second, 8000, 1), qt.IsNil)
}

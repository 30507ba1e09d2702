//go:build !tinygo

package beep

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

// Speaker plays square wave tones on the host audio device
type Speaker struct {
	player *oto.Player
	volume int16

	crit    sync.Mutex
	pending []int16
}

func NewSpeaker() (*Speaker, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("beep: %w", err)
	}
	<-ready

	s := &Speaker{volume: 6000}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Tone queues a tone, cutting off any tone still playing
func (s *Speaker) Tone(freq int, dur time.Duration) {
	samples := Square(freq, dur, sampleRate, s.volume)
	s.crit.Lock()
	s.pending = samples
	s.crit.Unlock()
}

// Read feeds the player, with silence when no tone is queued
func (s *Speaker) Read(buf []byte) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	n := len(buf) / 2
	for i := 0; i < n; i++ {
		var v int16
		if len(s.pending) > 0 {
			v = s.pending[0]
			s.pending = s.pending[1:]
		}
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return n * 2, nil
}

func (s *Speaker) Close() error {
	return s.player.Close()
}

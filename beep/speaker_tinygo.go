//go:build tinygo

package beep

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/tone"
)

// Speaker drives a piezo or amplified speaker from a PWM pin
type Speaker struct {
	speaker tone.Speaker
	stop    chan time.Duration
}

func NewSpeaker(pwm tone.PWM, pin machine.Pin) (*Speaker, error) {
	speaker, err := tone.New(pwm, pin)
	if err != nil {
		return nil, err
	}
	s := &Speaker{speaker: speaker, stop: make(chan time.Duration, 1)}
	go s.run()
	return s, nil
}

// Tone starts a tone; a goroutine silences it after dur
func (s *Speaker) Tone(freq int, dur time.Duration) {
	if freq <= 0 {
		return
	}
	s.speaker.SetPeriod(uint64(time.Second) / uint64(freq))
	select {
	case s.stop <- dur:
	default:
	}
}

func (s *Speaker) run() {
	for dur := range s.stop {
		time.Sleep(dur)
		s.speaker.Stop()
	}
}

package panel

import (
	"fmt"
	"time"

	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/gesture"
	"github.com/merliot/touchdeck/touch"
)

// Config is the panel's tuning.  The defaults were measured on the
// reference panel; every field can be overridden from the environment.
type Config struct {
	touch.Calibration
	// Threshold is how far (px) a contact must travel from touch-down
	// before it is a drag
	Threshold int
	// PollPeriod is the wait between sensor polls
	PollPeriod time.Duration
	// ScrollGap is the least time between scroll ticks
	ScrollGap time.Duration
}

func DefaultConfig() Config {
	return Config{
		Calibration: touch.DefaultCalibration,
		Threshold:   gesture.DefaultThreshold,
		PollPeriod:  10 * time.Millisecond,
		ScrollGap:   beep.DefaultScrollGap,
	}
}

// ConfigFromEnv is DefaultConfig with TOUCHDECK_* overrides applied
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.MinX = touchdeck.GetEnvInt("TOUCHDECK_CAL_MINX", cfg.MinX)
	cfg.MaxX = touchdeck.GetEnvInt("TOUCHDECK_CAL_MAXX", cfg.MaxX)
	cfg.MinY = touchdeck.GetEnvInt("TOUCHDECK_CAL_MINY", cfg.MinY)
	cfg.MaxY = touchdeck.GetEnvInt("TOUCHDECK_CAL_MAXY", cfg.MaxY)
	cfg.Width = touchdeck.GetEnvInt("TOUCHDECK_WIDTH", cfg.Width)
	cfg.Height = touchdeck.GetEnvInt("TOUCHDECK_HEIGHT", cfg.Height)
	cfg.Threshold = touchdeck.GetEnvInt("TOUCHDECK_THRESHOLD", cfg.Threshold)
	ms := touchdeck.GetEnvInt("TOUCHDECK_POLL_MS", int(cfg.PollPeriod/time.Millisecond))
	cfg.PollPeriod = time.Duration(ms) * time.Millisecond
	return cfg
}

func (c Config) Validate() error {
	if err := c.Calibration.Validate(); err != nil {
		return err
	}
	if c.Threshold < 0 {
		return fmt.Errorf("panel: negative threshold %d", c.Threshold)
	}
	if c.PollPeriod < 0 {
		return fmt.Errorf("panel: negative poll period %s", c.PollPeriod)
	}
	return nil
}

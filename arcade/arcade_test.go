package arcade

import (
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/sim"
	"github.com/merliot/touchdeck/ui"
)

type recorder struct {
	tones []beep.Tone
}

func (r *recorder) Tone(freq int, dur time.Duration) {
	r.tones = append(r.tones, beep.Tone{Freq: freq, Dur: dur})
}

type fixture struct {
	*Arcade
	player *sim.Player
	fb     *ui.Framebuffer
	rec    *recorder
}

func newArcade(c *qt.C) *fixture {
	f := &fixture{
		Arcade: New("arcade_01", "arcade", "arcade").(*Arcade),
		player: sim.NewPlayer(nil),
		fb:     ui.NewFramebuffer(320, 240),
		rec:    &recorder{},
	}
	p, err := panel.New(panel.DefaultConfig(), f.player, f.fb, f.rec)
	c.Assert(err, qt.IsNil)
	p.CloseConsole()
	f.Attach(p)
	return f
}

// run plays script to the end
func (f *fixture) run(c *qt.C, script string) {
	steps, err := sim.ParseScript(strings.NewReader(script))
	c.Assert(err, qt.IsNil)
	*f.player = *sim.NewPlayer(sim.Compile(steps, f.panel.Calibration))
	for !f.player.Done() {
		f.Step()
	}
	f.Step()
}

func TestMenu(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	f.Step()
	c.Assert(f.fb.At(42, 72), qt.Equals, ui.Blue)
	c.Assert(f.fb.At(42, 132), qt.Equals, ui.Green)

	f.run(c, "tap 160 40")
	c.Assert(f.Screen, qt.Equals, "menu")
	c.Assert(f.rec.tones, qt.DeepEquals, []beep.Tone{beep.ErrorTone})
}

func TestTapCounterGame(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	f.run(c, "tap 160 90")
	c.Assert(f.Screen, qt.Equals, "game")
	c.Assert(f.Game, qt.Equals, "Logic Puzzle")

	f.run(c, "tap 160 120\ntap 165 125\ntap 300 20")
	c.Assert(f.TapCounter.Clicks, qt.Equals, 2)
	c.Assert(f.fb.At(160, 120), qt.Equals, ui.Blue)

	f.run(c, "tap 5 5")
	c.Assert(f.Screen, qt.Equals, "menu")
	c.Assert(f.rec.tones, qt.DeepEquals, []beep.Tone{
		beep.ClickTone, beep.ClickTone, beep.ClickTone, beep.BackTone,
	})

	// reopening starts over
	f.run(c, "tap 160 90")
	c.Assert(f.TapCounter.Clicks, qt.Equals, 0)
}

func TestInstabilityWithReadings(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	f.run(c, "tap 160 150\ntap 50 220\ntap 150 220\ntap 250 220")
	c.Assert(f.Game, qt.Equals, "Unstable Logic")
	g := f.Instability
	c.Assert([]int{g.A, g.B, g.C}, qt.DeepEquals, []int{1, 1, 1})
	c.Assert(g.F, qt.Equals, 6)
	c.Assert(g.Valid, qt.IsFalse)

	f.Mailbox().Post(peer.Env{Temperature: 0.3, Humidity: 0})
	c.Assert(f.Step(), qt.IsTrue)
	c.Assert(f.Env, qt.Equals, peer.Env{Temperature: 0.3})
	c.Assert(g.Noise, qt.Equals, 3)
	c.Assert(g.F, qt.Equals, 5)
	c.Assert(g.Valid, qt.IsFalse)

	// a reading is only used once
	c.Assert(f.Step(), qt.IsFalse)
}

func TestMalformedPacketDropped(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	f.Step()
	c.Assert(f.Mailbox().Receive([]byte{1, 2, 3, 4, 5}), qt.IsFalse)
	c.Assert(f.Step(), qt.IsFalse)
	c.Assert(f.Env, qt.Equals, peer.Env{})
}

func TestReadingWaitsForGame(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	c.Assert(f.Mailbox().Receive(peer.Env{Temperature: 0.3}.Encode()), qt.IsTrue)
	c.Assert(f.Step(), qt.IsTrue)
	c.Assert(f.Screen, qt.Equals, "menu")

	f.run(c, "tap 160 150")
	c.Assert(f.Instability.Noise, qt.Equals, 3)
}

func TestReadingSurvivesOtherGame(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	f.run(c, "tap 160 90")
	c.Assert(f.Game, qt.Equals, "Logic Puzzle")

	f.Mailbox().Post(peer.Env{Temperature: 0.3})
	c.Assert(f.Step(), qt.IsTrue)

	f.run(c, "tap 5 5\ntap 160 150")
	c.Assert(f.Game, qt.Equals, "Unstable Logic")
	c.Assert(f.Instability.Noise, qt.Equals, 3)
	c.Assert(f.Instability.F, qt.Equals, 3)

	// reopening keeps the last known reading
	f.run(c, "tap 5 5\ntap 160 150")
	c.Assert(f.Instability.Noise, qt.Equals, 3)
}

func TestEnvMsg(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	var msg touchdeck.Msg
	msg.Marshal(envMsg{Path: "env", Temperature: 22.5, Humidity: 41})
	f.Subscribers()["env"](&msg)
	c.Assert(f.Step(), qt.IsTrue)
	c.Assert(f.Env, qt.Equals, peer.Env{Temperature: 22.5, Humidity: 41})
}

func TestListenFailureLeavesLinkOff(t *testing.T) {
	c := qt.New(t)
	f := newArcade(c)
	f.Listen(peer.Config{Topic: "touchdeck/env"})
	c.Assert(f.Linked, qt.IsFalse)
	f.Step()
	c.Assert(f.Screen, qt.Equals, "menu")
}

// Package arcade is a two-game launcher fed by a remote environment sensor.
//
// Readings arrive asynchronously, over the MQTT peer link or as "env" msgs
// from websocket peers, and are handed to the control loop through a
// peer.Mailbox.  The loop takes at most one reading per pass.
package arcade

import (
	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/game"
	"github.com/merliot/touchdeck/gesture"
	"github.com/merliot/touchdeck/nav"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/ui"
)

var tiles = []nav.Rect{
	{X: 40, Y: 70, W: 240, H: 40},
	{X: 40, Y: 130, W: 240, H: 40},
}

type Arcade struct {
	touchdeck.Thing
	touchdeck.ThingMsg
	Screen      string
	Game        string
	Env         peer.Env
	Linked      bool
	TapCounter  *game.TapCounter
	Instability *game.Instability
	panel       *panel.Panel
	nav         *nav.Navigator
	games       []game.Game
	ctx         game.Context
	mailbox     *peer.Mailbox
	link        peer.Link
	seen        bool
	dirty       bool
}

type envMsg struct {
	Path        string
	Temperature float32
	Humidity    float32
}

func New(id, model, name string) touchdeck.Thinger {
	println("NEW ARCADE")
	a := &Arcade{
		Thing:       touchdeck.NewThing(id, model, name),
		Screen:      nav.Menu.String(),
		TapCounter:  &game.TapCounter{},
		Instability: &game.Instability{},
		mailbox:     peer.NewMailbox(),
	}
	a.games = []game.Game{a.TapCounter, a.Instability}
	a.nav = nav.New(nav.Layout{Tiles: tiles, Back: nav.BackButton}, nil)
	return a
}

func (a *Arcade) Attach(p *panel.Panel) {
	a.panel = p
	a.ctx.Sound = p.Sound
	a.dirty = true
}

// Listen starts the MQTT peer link.  On failure the error is logged and
// the arcade runs without readings.
func (a *Arcade) Listen(cfg peer.Config) {
	link, err := peer.Listen(cfg, a.mailbox)
	if err != nil {
		a.panel.Logf("Peer link off: %s", err)
		return
	}
	a.panel.Logf("Peer link on %s %s", cfg.Broker, cfg.Topic)
	a.Lock()
	a.link, a.Linked = link, true
	a.Unlock()
}

// Mailbox is where readings are posted
func (a *Arcade) Mailbox() *peer.Mailbox { return a.mailbox }

func (a *Arcade) getState(msg *touchdeck.Msg) {
	a.Path = "state"
	msg.Marshal(a).Reply()
}

func (a *Arcade) update(msg *touchdeck.Msg) {
	msg.Broadcast()
}

func (a *Arcade) env(msg *touchdeck.Msg) {
	var m envMsg
	msg.Unmarshal(&m)
	a.mailbox.Post(peer.Env{Temperature: m.Temperature, Humidity: m.Humidity})
}

func (a *Arcade) Subscribers() touchdeck.Subscribers {
	return touchdeck.Subscribers{
		"get/state": a.getState,
		"attached":  a.getState,
		"update":    a.update,
		"env":       a.env,
	}
}

func (a *Arcade) current() game.Game {
	if a.nav.State() != nav.Game {
		return nil
	}
	return a.games[a.nav.Index()]
}

// Step takes any pending reading, runs the open game's update and handles
// one panel poll.  It returns true if the exported state changed.
func (a *Arcade) Step() bool {
	changed := false
	if env, ok := a.mailbox.Take(); ok {
		a.Env, a.ctx.Env, a.ctx.Fresh = env, env, true
		a.seen = true
		changed = true
		if a.nav.State() == nav.Menu {
			a.dirty = true
		}
	}
	// a reading stays fresh until a game has used it
	if g := a.current(); g != nil && g.Update(&a.ctx) {
		a.ctx.Fresh = false
		a.dirty = true
		changed = true
	}
	if a.handle(a.panel.Poll()) {
		changed = true
	}
	if a.dirty {
		a.render()
		a.dirty = false
	}
	if changed {
		a.sync()
	}
	return changed
}

func (a *Arcade) handle(ev gesture.Event) bool {
	if ev.Kind != gesture.Tap {
		// nothing scrolls here
		return false
	}
	sound := a.panel.Sound
	switch a.nav.Tap(ev.Point) {
	case nav.Open:
		g := a.current()
		sound.Click()
		g.Init()
		// a game opens on the last known reading
		a.ctx.Fresh = a.ctx.Fresh || a.seen
		if g.Update(&a.ctx) {
			a.ctx.Fresh = false
		}
		a.panel.Logf("Play %s", g.Name())
		a.dirty = true
		return true
	case nav.Back:
		sound.Back()
		a.dirty = true
		return true
	case nav.Pass:
		if a.current().OnTouch(&a.ctx, ev.Point) {
			a.dirty = true
			return true
		}
	case nav.Stay:
		if a.nav.State() == nav.Menu {
			sound.Error()
		}
	}
	return false
}

func (a *Arcade) sync() {
	a.Screen = a.nav.State().String()
	a.Game = ""
	if g := a.current(); g != nil {
		a.Game = g.Name()
	}
}

func (a *Arcade) render() {
	d := a.panel.Display
	if g := a.current(); g != nil {
		g.Render(&a.ctx, d)
	} else {
		a.renderMenu(d)
	}
	d.Flush()
}

func (a *Arcade) renderMenu(d ui.Display) {
	w, _ := d.Size()
	d.FillScreen(ui.Black)
	d.DrawCentreText(w/2, 10, "Mini Platform", ui.White)

	colors := []ui.Color{ui.Blue, ui.Green}
	labels := []ui.Color{ui.White, ui.Black}
	for i, t := range tiles {
		ui.Button(d, t.X, t.Y, t.W, t.H, a.games[i].Name(), labels[i], colors[i])
	}

	status := "Sensor: off"
	if a.Linked || a.ctx.Env != (peer.Env{}) {
		status = "Sensor: " + a.ctx.Env.String()
	}
	d.DrawCentreText(w/2, 195, status, ui.Grey)
}

func (a *Arcade) tick(i *touchdeck.Injector) {
	var msg touchdeck.Msg
	a.Lock()
	changed := a.Step()
	if changed {
		a.Path = "update"
		msg.Marshal(a)
	}
	a.Unlock()
	if changed {
		i.Inject(&msg)
	}
}

func (a *Arcade) Run(i *touchdeck.Injector) {
	a.panel.Boot(a.IsMetal())
	for {
		a.tick(i)
		a.panel.Wait()
	}
}

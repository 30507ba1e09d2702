// Package reader is a scrolling menu of short theory topics.  Tap a topic
// to read it; drag to scroll the menu or the page; tap "< Back" to return.
package reader

import (
	"image"

	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/gesture"
	"github.com/merliot/touchdeck/nav"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/ui"
)

const (
	title      = "Mini Theory Platform"
	listTop    = 30
	itemHeight = 48
	bodyTop    = 40
)

type Reader struct {
	touchdeck.Thing
	touchdeck.ThingMsg
	Screen     string
	Topic      string
	ListOffset int
	BodyOffset int
	panel      *panel.Panel
	nav        *nav.Navigator
	bodies     [][]string
	dirty      bool
}

func New(id, model, name string) touchdeck.Thinger {
	println("NEW READER")
	return &Reader{
		Thing:  touchdeck.NewThing(id, model, name),
		Screen: nav.Menu.String(),
	}
}

// Attach gives the reader its panel.  Topic bodies are wrapped to the
// screen width here.
func (r *Reader) Attach(p *panel.Panel) {
	r.panel = p
	w, h := p.Display.Size()
	r.bodies = make([][]string, len(Topics))
	for i, t := range Topics {
		r.bodies[i] = p.Display.Wrap(t.Body, w-20)
	}
	layout := nav.Layout{
		ListTop:    listTop,
		ItemHeight: itemHeight,
		Items:      len(Topics),
		Back:       nav.BackButton,
		ListView:   h - 40,
		BodyView:   h - bodyTop,
	}
	r.nav = nav.New(layout, func(i int) int {
		return len(r.bodies[i]) * p.Display.LineHeight()
	})
	r.dirty = true
}

func (r *Reader) getState(msg *touchdeck.Msg) {
	r.Path = "state"
	msg.Marshal(r).Reply()
}

func (r *Reader) update(msg *touchdeck.Msg) {
	msg.Broadcast()
}

func (r *Reader) Subscribers() touchdeck.Subscribers {
	return touchdeck.Subscribers{
		"get/state": r.getState,
		"attached":  r.getState,
		"update":    r.update,
	}
}

// Step polls the panel once and acts on the result.  It returns true if
// the exported state changed.
func (r *Reader) Step() bool {
	changed := r.handle(r.panel.Poll())
	if r.dirty {
		r.render()
		r.dirty = false
	}
	if changed {
		r.sync()
	}
	return changed
}

func (r *Reader) handle(ev gesture.Event) bool {
	sound := r.panel.Sound
	switch ev.Kind {
	case gesture.Drag:
		if r.nav.Drag(ev.Delta) {
			sound.Scroll()
			r.dirty = true
			return true
		}
	case gesture.Tap:
		switch r.nav.Tap(ev.Point) {
		case nav.Open:
			sound.Click()
			r.panel.Logf("Open %s", Topics[r.nav.Index()].Title)
			r.dirty = true
			return true
		case nav.Back:
			sound.Back()
			r.dirty = true
			return true
		case nav.Stay:
			if r.nav.State() == nav.Menu {
				sound.Error()
			}
		}
	}
	return false
}

func (r *Reader) sync() {
	r.Screen = r.nav.State().String()
	r.Topic = ""
	if r.nav.State() == nav.Content {
		r.Topic = Topics[r.nav.Index()].Title
	}
	r.ListOffset = r.nav.List.Value()
	r.BodyOffset = r.nav.Body.Value()
}

func (r *Reader) render() {
	d := r.panel.Display
	if r.nav.State() == nav.Content {
		r.renderContent(d)
	} else {
		r.renderMenu(d)
	}
	d.Flush()
}

func (r *Reader) renderMenu(d ui.Display) {
	w, h := d.Size()
	d.FillScreen(ui.Black)
	d.DrawCentreText(w/2, 5, title, ui.White)

	d.Clip(image.Rect(0, listTop, w, h))
	for i, t := range Topics {
		y := listTop + i*itemHeight - r.nav.List.Value()
		if y <= -itemHeight || y >= h {
			continue
		}
		d.FillRect(10, y, w-20, itemHeight-6, ui.Blue)
		d.DrawRect(10, y, w-20, itemHeight-6, ui.White)
		d.DrawCentreText(w/2, y+12, t.Title, ui.White)
	}
	d.Clip(image.Rectangle{})
}

func (r *Reader) renderContent(d ui.Display) {
	w, h := d.Size()
	back := nav.BackButton
	d.FillScreen(ui.Black)

	ui.Button(d, back.X, back.Y, back.W, back.H, "< Back", ui.White, ui.DarkGrey)
	d.DrawRect(back.X, back.Y, back.W, back.H, ui.White)

	right := back.X + back.W
	d.DrawCentreText(right+(w-right)/2, 5, Topics[r.nav.Index()].Title, ui.White)
	d.DrawHLine(0, listTop, w, ui.White)

	d.Clip(image.Rect(0, listTop+1, w, h))
	d.DrawTextBox(10, bodyTop-r.nav.Body.Value(), r.bodies[r.nav.Index()], ui.White)
	d.Clip(image.Rectangle{})
}

func (r *Reader) tick(i *touchdeck.Injector) {
	var msg touchdeck.Msg
	r.Lock()
	changed := r.Step()
	if changed {
		r.Path = "update"
		msg.Marshal(r)
	}
	r.Unlock()
	if changed {
		i.Inject(&msg)
	}
}

func (r *Reader) Run(i *touchdeck.Injector) {
	r.panel.Boot(r.IsMetal())
	for {
		r.tick(i)
		r.panel.Wait()
	}
}

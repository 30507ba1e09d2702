//go:build !tinygo

// Package host runs a panel app on a desktop: the screen and touch come
// from a window (or a replayed script), sound from the host audio device,
// and the app's state is mirrored to websocket peers.
package host

import (
	"flag"
	"fmt"
	"os"

	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/beep"
	"github.com/merliot/touchdeck/panel"
	"github.com/merliot/touchdeck/sim"
	"github.com/merliot/touchdeck/sim/window"
	"github.com/merliot/touchdeck/tinynet"
	"github.com/merliot/touchdeck/touch"
	"github.com/merliot/touchdeck/ui"
)

// App is a panel app
type App interface {
	touchdeck.Thinger
	Attach(*panel.Panel)
}

type Options struct {
	Addr    string
	TLSHost string
	User    string
	Passwd  string
	Dial    string
	Script  string
	Scale   int
	Mute    bool
}

// Flags registers the options on fs, defaulting from TOUCHDECK_* env vars
func (o *Options) Flags(fs *flag.FlagSet) {
	fs.StringVar(&o.Addr, "addr", touchdeck.GetEnv("TOUCHDECK_ADDR", ":8000"), "state mirror listen address")
	fs.StringVar(&o.TLSHost, "tls-host", touchdeck.GetEnv("TOUCHDECK_TLS_HOST", ""), "serve the mirror over TLS for this host (Let's Encrypt)")
	fs.StringVar(&o.User, "user", touchdeck.GetEnv("TOUCHDECK_USER", ""), "basic auth user")
	fs.StringVar(&o.Passwd, "passwd", touchdeck.GetEnv("TOUCHDECK_PASSWD", ""), "basic auth password")
	fs.StringVar(&o.Dial, "dial", touchdeck.GetEnv("TOUCHDECK_DIAL", ""), "websocket peer to dial, e.g. ws://hub:8000/ws/")
	fs.StringVar(&o.Script, "script", "", "replay a touch script instead of opening a window")
	fs.IntVar(&o.Scale, "scale", touchdeck.GetEnvInt("TOUCHDECK_SCALE", 2), "window scale")
	fs.BoolVar(&o.Mute, "mute", false, "no sound")
}

// Run builds the panel, attaches app, and runs until the window closes.
// With a script there is no window and Run does not return.  setup runs
// after the app is attached.
func Run(app App, opts Options, setup ...func(*panel.Panel)) error {
	cfg := panel.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	fb := ui.NewFramebuffer(cfg.Width, cfg.Height)

	var win *window.Window
	var player *sim.Player
	var sensor touch.Sensor
	if opts.Script != "" {
		f, err := os.Open(opts.Script)
		if err != nil {
			return err
		}
		player, err = sim.Load(f, cfg.Calibration)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.Script, err)
		}
		sensor = player
	} else {
		win = window.New(fb, cfg.Calibration, opts.Scale)
		sensor = win
	}

	var toner beep.Toner
	if !opts.Mute {
		speaker, err := beep.NewSpeaker()
		if err != nil {
			fmt.Println(sim.ErrStyle.Render(err.Error()))
		} else {
			defer speaker.Close()
			toner = speaker
		}
	}

	p, err := panel.New(cfg, sensor, fb, toner)
	if err != nil {
		return err
	}
	app.Attach(p)
	for _, fn := range setup {
		fn(p)
	}

	mac, _ := tinynet.GetHardwareAddr()
	fmt.Println(sim.Banner(app.Name(),
		sim.Pair("id", app.Id()),
		sim.Pair("mac", mac),
		sim.Pair("input", input(player)),
		sim.Pair("mirror", opts.Addr),
		sim.Pair("screen", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)),
		sim.Pair("calibration", fmt.Sprintf("x %d..%d y %d..%d", cfg.MinX, cfg.MaxX, cfg.MinY, cfg.MaxY)),
	))

	server := touchdeck.NewServer(app)
	server.Addr = opts.Addr
	server.BasicAuth(opts.User, opts.Passwd)
	if opts.Dial != "" {
		if err := server.Dial(opts.User, opts.Passwd, opts.Dial); err != nil {
			return err
		}
	}
	go func() {
		var err error
		if opts.TLSHost != "" {
			err = server.ServeTLS(opts.TLSHost)
		} else {
			err = server.ListenAndServe()
		}
		fmt.Println(sim.ErrStyle.Render("mirror: " + err.Error()))
	}()

	if win == nil {
		server.Run()
		return nil
	}
	go server.Run()
	return win.Run(app.Name())
}

func input(player *sim.Player) string {
	if player == nil {
		return "window"
	}
	return fmt.Sprintf("script, %d frames", player.Remaining())
}

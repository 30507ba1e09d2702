// envpeer stands in for the remote environment sensor.  It sends a slowly
// drifting temperature and humidity, either as 8-byte packets over MQTT or
// as "env" msgs to an arcade's websocket mirror.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/merliot/touchdeck"
	"github.com/merliot/touchdeck/peer"
	"github.com/merliot/touchdeck/sim"
)

type sender interface {
	Send(peer.Env) error
	Close()
}

type mqttSender struct{ *peer.Publisher }

func (m mqttSender) Send(e peer.Env) error { return m.Publish(e) }

// drift walks e a small random step, keeping it plausible
func drift(e peer.Env, r *rand.Rand) peer.Env {
	e.Temperature += float32(r.Intn(5)-2) / 10
	e.Humidity += float32(r.Intn(3) - 1)
	e.Humidity = min(max(e.Humidity, 0), 100)
	return e
}

func main() {
	mode := flag.String("mode", "mqtt", "mqtt or ws")
	url := flag.String("url", touchdeck.GetEnv("TOUCHDECK_DIAL", "ws://localhost:8000/ws/"), "arcade websocket url (ws mode)")
	user := flag.String("user", touchdeck.GetEnv("TOUCHDECK_USER", ""), "basic auth user (ws mode)")
	passwd := flag.String("passwd", touchdeck.GetEnv("TOUCHDECK_PASSWD", ""), "basic auth password (ws mode)")
	period := flag.Duration("period", 2*time.Second, "time between readings")
	temp := flag.Float64("temp", 21.5, "starting temperature (C)")
	hum := flag.Float64("hum", 40, "starting humidity (%)")
	count := flag.Int("count", 0, "stop after this many readings (0 runs forever)")
	flag.Parse()

	var s sender
	var err error
	switch *mode {
	case "mqtt":
		cfg := peer.ConfigFromEnv("envpeer")
		var pub *peer.Publisher
		if pub, err = peer.NewPublisher(cfg); err == nil {
			s = mqttSender{pub}
		}
	case "ws":
		s, err = dialWS(*url, *user, *passwd)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, sim.ErrStyle.Render("envpeer: "+err.Error()))
		os.Exit(1)
	}
	defer s.Close()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	env := peer.Env{Temperature: float32(*temp), Humidity: float32(*hum)}
	for n := 1; ; n++ {
		if err := s.Send(env); err != nil {
			fmt.Println(sim.ErrStyle.Render(err.Error()))
		} else {
			fmt.Println(sim.Pair("sent", env))
		}
		if n == *count {
			return
		}
		time.Sleep(*period)
		env = drift(env, r)
	}
}

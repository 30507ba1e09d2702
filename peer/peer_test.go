package peer

import (
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDecode(t *testing.T) {
	c := qt.New(t)
	e, ok := Decode(Env{Temperature: 21.5, Humidity: 40}.Encode())
	c.Assert(ok, qt.IsTrue)
	c.Assert(e, qt.Equals, Env{Temperature: 21.5, Humidity: 40})

	// 21.5 is 0x41ac0000
	e, ok = Decode([]byte{0x00, 0x00, 0xac, 0x41, 0, 0, 0, 0})
	c.Assert(ok, qt.IsTrue)
	c.Assert(e.Temperature, qt.Equals, float32(21.5))
	c.Assert(e.Humidity, qt.Equals, float32(0))
}

func TestDecodeWrongSize(t *testing.T) {
	c := qt.New(t)
	for _, n := range []int{0, 1, 7, 9, 16} {
		_, ok := Decode(make([]byte, n))
		c.Assert(ok, qt.IsFalse, qt.Commentf("size %d", n))
	}
}

func TestMalformedLeavesMailboxEmpty(t *testing.T) {
	c := qt.New(t)
	mb := NewMailbox()
	c.Assert(mb.Receive([]byte{1, 2, 3}), qt.IsFalse)
	_, ok := mb.Take()
	c.Assert(ok, qt.IsFalse)

	// and doesn't disturb a pending reading
	mb.Post(Env{Temperature: 20})
	c.Assert(mb.Receive(make([]byte, 12)), qt.IsFalse)
	e, ok := mb.Take()
	c.Assert(ok, qt.IsTrue)
	c.Assert(e.Temperature, qt.Equals, float32(20))
}

func TestLatestWins(t *testing.T) {
	c := qt.New(t)
	mb := NewMailbox()
	mb.Post(Env{Temperature: 1})
	mb.Post(Env{Temperature: 2})
	c.Assert(mb.Receive(Env{Temperature: 3, Humidity: 50}.Encode()), qt.IsTrue)

	e, ok := mb.Take()
	c.Assert(ok, qt.IsTrue)
	c.Assert(e, qt.Equals, Env{Temperature: 3, Humidity: 50})

	_, ok = mb.Take()
	c.Assert(ok, qt.IsFalse)
}

func TestConcurrentPost(t *testing.T) {
	c := qt.New(t)
	mb := NewMailbox()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mb.Post(Env{Temperature: float32(i)})
			}
		}(i)
	}
	wg.Wait()
	_, ok := mb.Take()
	c.Assert(ok, qt.IsTrue)
	_, ok = mb.Take()
	c.Assert(ok, qt.IsFalse)
}

func TestConfigValidate(t *testing.T) {
	c := qt.New(t)
	c.Assert(Config{Broker: "tcp://x:1883", Topic: "t"}.Validate(), qt.IsNil)
	c.Assert(Config{Topic: "t"}.Validate(), qt.ErrorMatches, "peer: no broker")
	c.Assert(Config{Broker: "b"}.Validate(), qt.ErrorMatches, "peer: no topic")

	t.Setenv("TOUCHDECK_MQTT_TOPIC", "lab/env")
	cfg := ConfigFromEnv("deck")
	c.Assert(cfg, qt.Equals, Config{Broker: DefaultBroker, Topic: "lab/env", ClientID: "deck"})
}

package main

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/touchdeck/peer"
)

func TestDriftStaysPlausible(t *testing.T) {
	c := qt.New(t)
	r := rand.New(rand.NewSource(1))
	e := peer.Env{Temperature: 20, Humidity: 99}
	for i := 0; i < 1000; i++ {
		next := drift(e, r)
		c.Assert(next.Temperature-e.Temperature <= 0.21 && e.Temperature-next.Temperature <= 0.21, qt.IsTrue)
		c.Assert(next.Humidity >= 0 && next.Humidity <= 100, qt.IsTrue)
		e = next
	}
}

package tinynet

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNetConnect(t *testing.T) {
	c := qt.New(t)
	c.Assert(NetConnect("", "x"), qt.Equals, ErrNoSSID)
	c.Assert(NetConnect("home", "secret"), qt.IsNil)
}

func TestReadyOnHost(t *testing.T) {
	c := qt.New(t)
	c.Assert(Ready(), qt.IsNil)
}

//go:build pico

package hw

import "github.com/merliot/touchdeck/hw/picotouch"

func New() Board { return picotouch.New() }

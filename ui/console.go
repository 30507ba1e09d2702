package ui

import (
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// NewConsole returns a text terminal on d for boot and diagnostic lines
func NewConsole(d tinyterm.Displayer, softwareScroll bool) *tinyterm.Terminal {
	terminal := tinyterm.NewTerminal(d)
	terminal.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: softwareScroll,
	})
	return terminal
}

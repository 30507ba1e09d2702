//go:build pyportal

package hw

import "github.com/merliot/touchdeck/hw/pyportal"

func New() Board { return pyportal.New() }

package control

import (
	"fmt"
	"sort"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

var factories = map[string]func() sim.Controller{
	"none":   func() sim.Controller { return NewNone() },
	"manual": func() sim.Controller { return NewManual() },
	"center": func() sim.Controller { return NewCenter() },
	"orbit":  func() sim.Controller { return NewOrbit(0.5, 5) },
	"wander": func() sim.Controller { return NewWander(0.5, 1) },
}

// New returns the controller registered under name.
func New(name string) (sim.Controller, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, dynamo.ErrUnknownController)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

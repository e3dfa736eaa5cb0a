package control

import (
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// Manual passes the pointer last set by a frontend.
type Manual struct {
	p sim.Pointer
}

func NewManual() *Manual {
	return &Manual{}
}

// Press activates the pointer at (x, y).
func (c *Manual) Press(x, y float64) {
	c.p = sim.Pointer{Active: true, Target: dynamo.Vec2{X: x, Y: y}}
}

// Move updates the target without changing whether it is held.
func (c *Manual) Move(x, y float64) {
	c.p.Target = dynamo.Vec2{X: x, Y: y}
}

func (c *Manual) Release() {
	c.p.Active = false
}

func (c *Manual) Compute(w *dynamo.World, t float64) sim.Pointer {
	return c.p
}

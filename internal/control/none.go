package control

import (
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Compute(w *dynamo.World, t float64) sim.Pointer {
	return sim.Pointer{}
}

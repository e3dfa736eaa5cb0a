package physics

import (
	"math"

	"github.com/san-kum/ballpit/internal/dynamo"
)

// Attract bends the heading of p toward target (force > 0) or away from it
// (force < 0) with inverse-distance falloff, then renormalizes the heading.
// dt is the unscaled frame time. Position and speed are untouched.
func Attract(p *dynamo.Particle, target dynamo.Vec2, force, dt float64) {
	d := target.Sub(p.Pos)
	distSq := d.LenSq()
	if distSq <= 0 {
		return
	}

	dist := math.Sqrt(distSq)
	n := d.Scale(1 / dist)
	strength := force / dist

	p.Dir = p.Dir.Add(n.Scale(strength * dt))

	if l := p.Dir.Len(); l > 0 {
		p.Dir = p.Dir.Scale(1 / l)
	}
}

// AttractAll applies Attract to every particle of w using w.Force.
func AttractAll(w *dynamo.World, target dynamo.Vec2, dt float64) {
	for i := range w.Particles {
		Attract(&w.Particles[i], target, w.Force, dt)
	}
}

package integrators

import "github.com/san-kum/ballpit/internal/dynamo"

// Advance translates p along its heading for one sub-step. It knows
// nothing about walls or other particles.
func Advance(p *dynamo.Particle, dt, timescale float64) {
	s := p.Speed * dt * timescale
	p.Pos.X += p.Dir.X * s
	p.Pos.Y += p.Dir.Y * s
}

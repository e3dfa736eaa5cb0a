package dynamo

import "image/color"

// Particle is one circular body. Dir is the heading and Speed its scalar
// magnitude; the displacement over dt is Dir * Speed * dt * timescale.
//
// Dir is renormalized after force application but not after collision
// impulses, so its length drifts away from 1 between attractions.
type Particle struct {
	Pos    Vec2
	Dir    Vec2
	Speed  float64
	Radius float64
	Color  color.RGBA
}

// Velocity returns the effective velocity at timescale 1.
func (p *Particle) Velocity() Vec2 {
	return p.Dir.Scale(p.Speed)
}

package physics

import "github.com/san-kum/ballpit/internal/dynamo"

// Reflect clamps p inside [0,width]x[0,height] and flips the heading
// component of every wall it touched. Each of the four checks is
// independent; the return value is the number that fired.
func Reflect(p *dynamo.Particle, width, height float64) int {
	bounces := 0

	if p.Pos.X+p.Radius >= width {
		p.Pos.X = width - p.Radius
		p.Dir.X = -p.Dir.X
		bounces++
	}

	if p.Pos.X-p.Radius <= 0 {
		p.Pos.X = p.Radius
		p.Dir.X = -p.Dir.X
		bounces++
	}

	if p.Pos.Y+p.Radius >= height {
		p.Pos.Y = height - p.Radius
		p.Dir.Y = -p.Dir.Y
		bounces++
	}

	if p.Pos.Y-p.Radius <= 0 {
		p.Pos.Y = p.Radius
		p.Dir.Y = -p.Dir.Y
		bounces++
	}

	return bounces
}

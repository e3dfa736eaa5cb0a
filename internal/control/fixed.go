package control

import (
	"math"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// Fixed attracts toward a constant point, or toward the area center when
// Center is set.
type Fixed struct {
	Target dynamo.Vec2
	Center bool
}

func NewFixed(x, y float64) *Fixed {
	return &Fixed{Target: dynamo.Vec2{X: x, Y: y}}
}

// NewCenter returns a Fixed that follows the area center across resizes.
func NewCenter() *Fixed {
	return &Fixed{Center: true}
}

func (c *Fixed) Compute(w *dynamo.World, t float64) sim.Pointer {
	target := c.Target
	if c.Center {
		target = dynamo.Vec2{X: w.Width / 2, Y: w.Height / 2}
	}
	return sim.Pointer{Active: true, Target: target}
}

// Orbit moves the target around the area center on a circle of
// Fraction * min(width, height) / 2, one revolution every Period seconds.
type Orbit struct {
	Fraction float64
	Period   float64
}

func NewOrbit(fraction, period float64) *Orbit {
	return &Orbit{Fraction: fraction, Period: period}
}

func (c *Orbit) Compute(w *dynamo.World, t float64) sim.Pointer {
	cx, cy := w.Width/2, w.Height/2
	r := c.Fraction * math.Min(w.Width, w.Height) / 2

	angle := 0.0
	if c.Period > 0 {
		angle = 2 * math.Pi * t / c.Period
	}

	return sim.Pointer{
		Active: true,
		Target: dynamo.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)},
	}
}

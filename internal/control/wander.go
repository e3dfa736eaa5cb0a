package control

import (
	"github.com/aquilax/go-perlin"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// Wander drifts the target over the area along two smooth Perlin noise
// curves, one per axis. The same seed gives the same path.
type Wander struct {
	// Rate is how fast the noise is sampled, in noise units per second.
	Rate  float64
	noise *perlin.Perlin
}

func NewWander(rate float64, seed int64) *Wander {
	return &Wander{Rate: rate, noise: perlin.NewPerlin(2, 2, 3, seed)}
}

func (c *Wander) Compute(w *dynamo.World, t float64) sim.Pointer {
	s := t * c.Rate
	// offset the second axis so x and y are uncorrelated
	nx := c.noise.Noise1D(s)
	ny := c.noise.Noise1D(s + 1000)

	return sim.Pointer{
		Active: true,
		Target: dynamo.Vec2{
			X: clamp(w.Width/2+nx*w.Width, 0, w.Width),
			Y: clamp(w.Height/2+ny*w.Height, 0, w.Height),
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

package experiment

import (
	"math/rand"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// Spawn builds a world from cfg. Centers are drawn inside the area inset
// by cfg.Margin, radius and speed uniformly from their ranges, and each
// heading component is ±1 so every particle starts on a diagonal.
func Spawn(cfg *config.Config, rng *rand.Rand) *dynamo.World {
	w := dynamo.NewWorld(cfg.Width, cfg.Height)
	w.SetTimescale(cfg.Timescale)
	w.Force = cfg.Force
	w.Particles = make([]dynamo.Particle, cfg.Count)

	for i := range w.Particles {
		w.Particles[i] = dynamo.Particle{
			Pos: dynamo.Vec2{
				X: uniform(rng, cfg.Margin, cfg.Width-cfg.Margin),
				Y: uniform(rng, cfg.Margin, cfg.Height-cfg.Margin),
			},
			Dir:    dynamo.Vec2{X: sign(rng), Y: sign(rng)},
			Speed:  uniform(rng, cfg.MinSpeed, cfg.MaxSpeed),
			Radius: uniform(rng, cfg.MinRadius, cfg.MaxRadius),
			Color:  sim.RandomColor(rng),
		}
	}
	return w
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func sign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

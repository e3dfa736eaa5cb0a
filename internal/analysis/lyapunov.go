package analysis

import (
	"math"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// Separation is the RMS distance between matching particle centers of two
// worlds with the same particle count.
func Separation(a, b *dynamo.World) float64 {
	n := len(a.Particles)
	if n == 0 || n != len(b.Particles) {
		return 0
	}
	sum := 0.0
	for i := range a.Particles {
		sum += a.Particles[i].Pos.Sub(b.Particles[i].Pos).LenSq()
	}
	return math.Sqrt(sum / float64(n))
}

// Divergence steps a copy of w alongside a copy whose first particle is
// shifted by perturbation along x, and records their separation after
// every frame. w itself is not modified.
func Divergence(w *dynamo.World, opts sim.Options, dt, duration, perturbation float64) []float64 {
	if len(w.Particles) == 0 || dt <= 0 {
		return nil
	}

	x := w.Clone()
	xp := w.Clone()
	xp.Particles[0].Pos.X += perturbation

	s := sim.New(opts)
	sp := sim.New(opts)

	frames := int(math.Round(duration / dt))
	seps := make([]float64, 0, frames)
	for i := 0; i < frames; i++ {
		s.Step(x, sim.Input{Elapsed: dt})
		sp.Step(xp, sim.Input{Elapsed: dt})
		seps = append(seps, Separation(x, xp))
	}
	return seps
}

// LyapunovExponent estimates the largest exponent using trajectory
// separation with renormalization back to the initial distance.
func LyapunovExponent(w *dynamo.World, opts sim.Options, dt, duration, perturbation float64) float64 {
	if len(w.Particles) == 0 || dt <= 0 || perturbation <= 0 {
		return 0
	}

	x := w.Clone()
	xp := w.Clone()
	xp.Particles[0].Pos.X += perturbation
	d0 := Separation(x, xp)

	s := sim.New(opts)
	sp := sim.New(opts)

	sumLog := 0.0
	count := 0
	frames := int(math.Round(duration / dt))

	for i := 0; i < frames; i++ {
		s.Step(x, sim.Input{Elapsed: dt})
		sp.Step(xp, sim.Input{Elapsed: dt})

		sep := Separation(x, xp)
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize to keep the perturbation in the linear regime
		if sep > 1.0 {
			scale := d0 / sep
			for j := range xp.Particles {
				off := xp.Particles[j].Pos.Sub(x.Particles[j].Pos)
				xp.Particles[j].Pos = x.Particles[j].Pos.Add(off.Scale(scale))
			}
		}
	}

	if count == 0 {
		return 0
	}

	return sumLog / (float64(count) * dt)
}

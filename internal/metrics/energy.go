package metrics

import (
	"math"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// KineticEnergy averages 0.5*|v|^2 per particle (unit mass) over all
// observed frames. |v| includes the heading length, so collisions that
// stretch a heading show up here.
type KineticEnergy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(w *dynamo.World, _ sim.FrameStats, _ float64) {
	if len(w.Particles) == 0 {
		return
	}
	e.totalEnergy += MeanKineticEnergy(w)
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *KineticEnergy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// MeanKineticEnergy is the instantaneous per-particle mean of 0.5*|v|^2.
func MeanKineticEnergy(w *dynamo.World) float64 {
	if len(w.Particles) == 0 {
		return 0
	}
	sum := 0.0
	for i := range w.Particles {
		sum += 0.5 * w.Particles[i].Velocity().LenSq()
	}
	return sum / float64(len(w.Particles))
}

// HeadingDrift tracks the largest deviation of any heading from unit
// length. The force field renormalizes headings and collisions do not.
type HeadingDrift struct {
	name     string
	maxDrift float64
}

func NewHeadingDrift() *HeadingDrift {
	return &HeadingDrift{name: "heading_drift"}
}

func (h *HeadingDrift) Name() string { return h.name }

func (h *HeadingDrift) Observe(w *dynamo.World, _ sim.FrameStats, _ float64) {
	for i := range w.Particles {
		d := math.Abs(w.Particles[i].Dir.Len() - 1)
		h.maxDrift = math.Max(h.maxDrift, d)
	}
}

func (h *HeadingDrift) Value() float64 { return h.maxDrift }

func (h *HeadingDrift) Reset() { h.maxDrift = 0 }

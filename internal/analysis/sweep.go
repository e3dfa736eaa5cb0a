package analysis

import (
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// SweepPoint holds the event rates measured at one parameter value.
type SweepPoint struct {
	Param         float64
	CollisionRate float64
	BounceRate    float64
}

// Sweep builds a world per parameter value with build, lets it settle
// for transient seconds and then measures collisions and bounces per
// simulated second over record seconds. ctrl, if not nil, supplies the
// pointer every frame.
func Sweep(
	build func(param float64) (*dynamo.World, sim.Options),
	ctrl sim.Controller,
	paramMin, paramMax float64,
	paramSteps int,
	dt, transient, record float64,
) []SweepPoint {
	if paramSteps <= 1 {
		paramSteps = 2 // Prevent division by zero
	}
	if dt <= 0 || record <= 0 {
		return nil
	}
	paramStep := (paramMax - paramMin) / float64(paramSteps-1)

	results := make([]SweepPoint, 0, paramSteps)
	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*paramStep
		w, opts := build(param)
		s := sim.New(opts)

		input := func() sim.Input {
			in := sim.Input{Elapsed: dt}
			if ctrl != nil {
				in.Pointer = ctrl.Compute(w, s.Clock())
			}
			return in
		}

		for s.Clock() < transient {
			s.Step(w, input())
		}

		var bounces, collisions uint64
		elapsed := 0.0
		for elapsed < record {
			stats := s.Step(w, input())
			bounces += stats.Bounces
			collisions += stats.Collisions
			elapsed += stats.Elapsed
		}

		results = append(results, SweepPoint{
			Param:         param,
			CollisionRate: float64(collisions) / elapsed,
			BounceRate:    float64(bounces) / elapsed,
		})
	}

	return results
}

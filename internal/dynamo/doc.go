// Package dynamo provides the core state types for the particle simulation.
//
// The package defines the values every other package operates on:
//
//   - [Vec2]: 2D vector value type
//   - [Particle]: one circular body (position, heading, speed, radius, color)
//   - [World]: the full simulation state, particles plus counters and knobs
//   - [Snapshot]: read-only copy of a world for frontends
//
// # Example
//
//	w := dynamo.NewWorld(800, 600)
//	w.Particles = append(w.Particles, dynamo.Particle{
//	    Pos: dynamo.Vec2{X: 100, Y: 100}, Dir: dynamo.Vec2{X: 1},
//	    Speed: 25, Radius: 9,
//	})
//	s := sim.New(sim.Options{})
//	s.Step(w, sim.Input{Elapsed: 1.0 / 60})
//
// # Thread Safety
//
// A World has exactly one mutator. Frontends read it between frames or
// take a [Snapshot]. Independent worlds may be stepped concurrently.
package dynamo

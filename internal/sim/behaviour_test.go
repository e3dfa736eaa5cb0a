package sim_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

func randomWorld(seed int64, n int) *dynamo.World {
	rng := rand.New(rand.NewSource(seed))
	w := dynamo.NewWorld(800, 600)
	w.Timescale = 100
	w.Force = 1000
	for i := 0; i < n; i++ {
		w.Particles = append(w.Particles, dynamo.Particle{
			Pos:    dynamo.Vec2{X: 20 + rng.Float64()*760, Y: 20 + rng.Float64()*560},
			Dir:    dynamo.Vec2{X: float64(rng.Intn(2)*2 - 1), Y: float64(rng.Intn(2)*2 - 1)},
			Speed:  20 + rng.Float64()*10,
			Radius: 9 + rng.Float64(),
		})
	}
	return w
}

var _ = Describe("Simulator", func() {
	var (
		s *sim.Simulator
		w *dynamo.World
	)

	BeforeEach(func() {
		s = sim.New(sim.Options{})
		w = randomWorld(42, 20)
	})

	Context("over many frames", func() {
		It("keeps counters monotonic and state finite", func() {
			var lastBounces, lastCollisions uint64
			for i := 0; i < 300; i++ {
				s.Step(w, sim.Input{Elapsed: 1.0 / 60})
				Expect(w.Bounces).To(BeNumerically(">=", lastBounces))
				Expect(w.Collisions).To(BeNumerically(">=", lastCollisions))
				lastBounces, lastCollisions = w.Bounces, w.Collisions
			}
			Expect(w.Validate()).To(Succeed())
			Expect(w.Bounces).To(BeNumerically(">", 0))
		})

		It("keeps every particle near the area", func() {
			for i := 0; i < 300; i++ {
				s.Step(w, sim.Input{Elapsed: 1.0 / 60})
			}
			for _, p := range w.Particles {
				Expect(p.Pos.X).To(BeNumerically(">=", -p.Radius))
				Expect(p.Pos.X).To(BeNumerically("<=", w.Width+p.Radius))
				Expect(p.Pos.Y).To(BeNumerically(">=", -p.Radius))
				Expect(p.Pos.Y).To(BeNumerically("<=", w.Height+p.Radius))
			}
		})

		It("is deterministic for identical worlds", func() {
			other := randomWorld(42, 20)
			s2 := sim.New(sim.Options{})
			for i := 0; i < 120; i++ {
				s.Step(w, sim.Input{Elapsed: 1.0 / 60})
				s2.Step(other, sim.Input{Elapsed: 1.0 / 60})
			}
			Expect(other.Particles).To(Equal(w.Particles))
			Expect(other.Collisions).To(Equal(w.Collisions))
		})
	})

	Context("with the pointer held", func() {
		It("leaves unit headings on particles that did not collide", func() {
			w = dynamo.NewWorld(800, 600)
			w.Timescale = 1
			w.Force = 1000
			w.Particles = append(w.Particles,
				dynamo.Particle{Pos: dynamo.Vec2{X: 100, Y: 100}, Dir: dynamo.Vec2{X: 1, Y: 1}, Speed: 20, Radius: 9},
				dynamo.Particle{Pos: dynamo.Vec2{X: 700, Y: 500}, Dir: dynamo.Vec2{X: -1, Y: 1}, Speed: 25, Radius: 9},
			)

			s.Step(w, sim.Input{Elapsed: 1.0 / 60, Pointer: sim.Pointer{Active: true, Target: dynamo.Vec2{X: 400, Y: 300}}})

			Expect(w.Collisions).To(BeZero())
			for _, p := range w.Particles {
				Expect(p.Dir.Len()).To(BeNumerically("~", 1, 1e-5))
			}
		})

		It("pulls particles toward the target with positive force", func() {
			w = dynamo.NewWorld(800, 600)
			w.Force = 1000
			w.Particles = append(w.Particles, dynamo.Particle{Pos: dynamo.Vec2{X: 100, Y: 300}, Dir: dynamo.Vec2{X: 0, Y: -1}, Speed: 20, Radius: 9})

			s.Step(w, sim.Input{Elapsed: 0.1, Pointer: sim.Pointer{Active: true, Target: dynamo.Vec2{X: 400, Y: 300}}})

			Expect(w.Particles[0].Dir.X).To(BeNumerically(">", 0))
		})
	})

	Context("with an empty world", func() {
		It("completes a frame without touching the counters", func() {
			w = dynamo.NewWorld(800, 600)
			stats := s.Step(w, sim.Input{Elapsed: 1})
			Expect(stats.SubSteps).To(Equal(1000))
			Expect(w.Bounces).To(BeZero())
			Expect(w.Collisions).To(BeZero())
			Expect(math.IsNaN(stats.Elapsed)).To(BeFalse())
		})
	})
})

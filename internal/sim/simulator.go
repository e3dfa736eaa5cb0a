package sim

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/integrators"
	"github.com/san-kum/ballpit/internal/physics"
)

type Simulator struct {
	opts      Options
	rng       *rand.Rand
	metrics   []Metric
	observers []Observer
	clock     float64
}

func New(opts Options) *Simulator {
	return &Simulator{
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Clock returns the wall time consumed by all frames so far.
func (s *Simulator) Clock() float64 { return s.clock }

// Reset zeroes the clock and all metrics.
func (s *Simulator) Reset() {
	s.clock = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Step advances w by one frame: the force field once with the full frame
// time, then sub-steps of integration, wall reflection and the pairwise
// collision sweep until the frame time is used up.
func (s *Simulator) Step(w *dynamo.World, in Input) FrameStats {
	safe := integrators.SafeStep(w.Particles, w.Timescale)
	elapsed := math.Min(s.frameTime(in.Elapsed), integrators.Limit(safe))
	stats := FrameStats{Elapsed: elapsed}

	if in.Active {
		physics.AttractAll(w, in.Target, elapsed)
	}

	onHit := s.collisionHook(w)

	for st := integrators.NewStepper(elapsed, safe); st.Next(); {
		dt := st.Dt()
		stats.SubSteps++

		for i := range w.Particles {
			p := &w.Particles[i]
			integrators.Advance(p, dt, w.Timescale)
			if n := physics.Reflect(p, w.Width, w.Height); n > 0 {
				stats.Bounces += uint64(n)
				s.bounced(p, n)
			}
		}

		stats.Collisions += uint64(physics.Sweep(w.Particles, onHit))
	}

	w.Bounces += stats.Bounces
	w.Collisions += stats.Collisions
	s.clock += elapsed

	for _, m := range s.metrics {
		m.Observe(w, stats, s.clock)
	}
	for _, obs := range s.observers {
		obs.OnFrame(w, stats, s.clock)
	}

	return stats
}

func (s *Simulator) frameTime(elapsed float64) float64 {
	if s.opts.MaxFrameTime > 0 && elapsed > s.opts.MaxFrameTime {
		elapsed = s.opts.MaxFrameTime
	}
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Simulator) bounced(p *dynamo.Particle, n int) {
	if s.opts.GrowOnBounce {
		p.Radius += s.opts.Growth * float64(n)
	}
	if s.opts.RecolorOnBounce {
		p.Color = RandomColor(s.rng)
	}
}

func (s *Simulator) collisionHook(w *dynamo.World) func(i, j int) {
	if !s.opts.GrowOnCollision && !s.opts.RecolorOnCollision {
		return nil
	}
	return func(i, j int) {
		a, b := &w.Particles[i], &w.Particles[j]
		if s.opts.GrowOnCollision {
			a.Radius += s.opts.Growth
			b.Radius += s.opts.Growth
		}
		if s.opts.RecolorOnCollision {
			a.Color = RandomColor(s.rng)
			b.Color = RandomColor(s.rng)
		}
	}
}

// RandomColor returns an opaque color with uniformly random channels.
func RandomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}

// Run steps w headlessly at a fixed frame interval for cfg.Duration. ctrl
// supplies the pointer each frame; a nil ctrl never attracts.
func (s *Simulator) Run(ctx context.Context, w *dynamo.World, ctrl Controller, cfg RunConfig) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	frames := int(math.Round(cfg.Duration / cfg.FrameDt))
	result := &Result{
		Times:      make([]float64, 0, frames),
		Bounces:    make([]uint64, 0, frames),
		Collisions: make([]uint64, 0, frames),
		Metrics:    make(map[string]float64),
		Errors:     make([]error, 0),
	}

	s.Reset()

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			result.Final = w.Snapshot()
			return result, fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		in := Input{Elapsed: cfg.FrameDt}
		if ctrl != nil {
			in.Pointer = ctrl.Compute(w, s.clock)
		}

		stats := s.Step(w, in)
		result.Frames++
		result.SubSteps += stats.SubSteps

		if cfg.ValidateState {
			if err := w.Validate(); err != nil {
				result.Errors = append(result.Errors, &dynamo.SimulationError{Frame: i, Time: s.clock, Wrapped: err})
				break
			}
		}

		result.Times = append(result.Times, s.clock)
		result.Bounces = append(result.Bounces, w.Bounces)
		result.Collisions = append(result.Collisions, w.Collisions)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = w.Snapshot()

	return result, nil
}

func (s *Simulator) validateConfig(cfg RunConfig) error {
	if !(cfg.FrameDt > 0) {
		return fmt.Errorf("frame dt must be positive, got %f: %w", cfg.FrameDt, dynamo.ErrParameterBounds)
	}
	if !(cfg.Duration > 0) {
		return fmt.Errorf("duration must be positive, got %f: %w", cfg.Duration, dynamo.ErrParameterBounds)
	}
	return nil
}

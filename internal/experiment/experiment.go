package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
)

// Experiment is one headless run: a spawned world, a controller and a
// simulator carrying the metrics.
type Experiment struct {
	cfg        *config.Config
	world      *dynamo.World
	controller sim.Controller
	simulator  *sim.Simulator
}

func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Experiment{cfg: cfg}, nil
}

// Setup spawns the world and resolves the configured controller. A nil
// metrics slice installs metrics.Default.
func (e *Experiment) Setup(ms []sim.Metric) error {
	ctrl, err := control.New(e.cfg.Controller)
	if err != nil {
		return err
	}
	if ms == nil {
		ms = metrics.Default()
	}

	e.world = Spawn(e.cfg, rand.New(rand.NewSource(e.cfg.Seed)))
	e.controller = ctrl
	e.simulator = sim.New(e.cfg.Options())
	for _, m := range ms {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context, rc sim.RunConfig) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup: %w", dynamo.ErrInvalidState)
	}
	return e.simulator.Run(ctx, e.world, e.controller, rc)
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) World() *dynamo.World {
	return e.world
}

// EnsembleSetup returns a sim.Setup that spawns an independent world per
// seed from cfg.
func EnsembleSetup(cfg *config.Config) (sim.Setup, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := control.New(cfg.Controller); err != nil {
		return nil, err
	}
	return func(seed int64) (*dynamo.World, sim.Controller, []sim.Metric) {
		w := Spawn(cfg, rand.New(rand.NewSource(seed)))
		ctrl, _ := control.New(cfg.Controller)
		return w, ctrl, metrics.Default()
	}, nil
}

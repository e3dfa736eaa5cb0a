package sim

import (
	"context"
	"sync"

	"github.com/san-kum/ballpit/internal/dynamo"
)

// Setup builds an independent world, controller and metric set for one
// ensemble member.
type Setup func(seed int64) (*dynamo.World, Controller, []Metric)

// Ensemble runs independent worlds concurrently, one goroutine per run.
// Each world is still stepped by a single goroutine.
type Ensemble struct {
	setup     Setup
	opts      Options
	numRuns   int
	seedStart int64
}

func NewEnsemble(setup Setup, opts Options, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{setup: setup, opts: opts, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg RunConfig) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			w, ctrl, metrics := e.setup(seed)

			opts := e.opts
			opts.Seed = seed
			s := New(opts)
			for _, m := range metrics {
				s.AddMetric(m)
			}

			results[idx], errs[idx] = s.Run(ctx, w, ctrl, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

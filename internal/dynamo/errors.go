package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors. The kernel itself never fails; these surface only at the
// edges (configuration, headless runs).
var (
	// ErrParameterBounds indicates a configuration value is outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidState indicates a particle whose position or heading is NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrContextCanceled indicates a headless run was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")

	// ErrUnknownPreset indicates a preset name with no registered configuration.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrUnknownController indicates a controller name with no registered factory.
	ErrUnknownController = errors.New("dynamo: unknown controller")
)

// SimulationError wraps an error with the frame it occurred in.
type SimulationError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

// Validate reports ErrInvalidState if any particle has a non-finite position
// or heading.
func (w *World) Validate() error {
	for i := range w.Particles {
		p := &w.Particles[i]
		if !p.Pos.IsFinite() || !p.Dir.IsFinite() {
			return fmt.Errorf("particle %d: %w", i, ErrInvalidState)
		}
	}
	return nil
}

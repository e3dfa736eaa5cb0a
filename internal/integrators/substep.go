package integrators

import (
	"math"

	"github.com/san-kum/ballpit/internal/dynamo"
)

// MinStep is the smallest sub-step ever used, in simulation seconds.
const MinStep = 1.0 / 1000

// MaxSubSteps bounds the work done for a single frame. Time beyond
// MaxSubSteps sub-steps is dropped.
const MaxSubSteps = 10000

// SafeStep returns the largest sub-step for which no particle moves
// further than its own radius, floored at MinStep. With no particles or
// no motion the bound is infinite and the floor applies.
func SafeStep(ps []dynamo.Particle, timescale float64) float64 {
	maxSpeed := 0.0
	for i := range ps {
		maxSpeed = math.Max(maxSpeed, ps[i].Speed*timescale)
	}

	if !(maxSpeed > 0) || len(ps) == 0 {
		return MinStep
	}

	safe := math.Inf(1)
	for i := range ps {
		safe = math.Min(safe, ps[i].Radius/maxSpeed)
	}

	return math.Max(safe, MinStep)
}

// Stepper walks a frame's elapsed time in slices of at most Safe.
//
//	for st := integrators.NewStepper(frameDt, safe); st.Next(); {
//	    use(st.Dt())
//	}
type Stepper struct {
	remaining float64
	safe      float64
	dt        float64
	n         int
}

// NewStepper returns a stepper over frameDt, clamped to Limit(safe).
// Non-finite or non-positive frame times produce no steps; a non-positive
// or non-finite safe size is replaced by MinStep.
func NewStepper(frameDt, safe float64) *Stepper {
	if math.IsNaN(frameDt) || math.IsInf(frameDt, 0) {
		frameDt = 0
	}
	if !(safe > 0) || math.IsInf(safe, 0) {
		safe = MinStep
	}
	return &Stepper{remaining: math.Min(frameDt, Limit(safe)), safe: safe}
}

// Next reports whether another sub-step remains and advances to it.
func (s *Stepper) Next() bool {
	if s.remaining <= 0 || s.n >= MaxSubSteps {
		return false
	}
	s.dt = math.Min(s.remaining, s.safe)
	next := s.remaining - s.dt
	if next == s.remaining {
		return false
	}
	s.remaining = next
	s.n++
	return true
}

// Dt is the length of the current sub-step.
func (s *Stepper) Dt() float64 { return s.dt }

// Limit is the longest frame time that fits in MaxSubSteps sub-steps of
// size safe.
func Limit(safe float64) float64 {
	if !(safe > 0) || math.IsInf(safe, 0) {
		safe = MinStep
	}
	return safe * MaxSubSteps
}

// SubSteps returns the full sub-step sequence for one frame.
func SubSteps(frameDt, safe float64) []float64 {
	steps := make([]float64, 0)
	for st := NewStepper(frameDt, safe); st.Next(); {
		steps = append(steps, st.Dt())
	}
	return steps
}

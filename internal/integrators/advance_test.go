package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/ballpit/internal/dynamo"
)

func TestAdvance(t *testing.T) {
	p := dynamo.Particle{Pos: dynamo.Vec2{X: 10, Y: 20}, Dir: dynamo.Vec2{X: 0.6, Y: -0.8}, Speed: 25}

	Advance(&p, 0.01, 100)

	// displacement = dir * 25 * 0.01 * 100 = dir * 25
	if math.Abs(p.Pos.X-25) > 1e-9 || math.Abs(p.Pos.Y-0) > 1e-9 {
		t.Errorf("pos = %v, want (25, 0)", p.Pos)
	}
}

func TestAdvanceZeroTimescale(t *testing.T) {
	p := dynamo.Particle{Pos: dynamo.Vec2{X: 1, Y: 2}, Dir: dynamo.Vec2{X: 1, Y: 1}, Speed: 30}
	Advance(&p, 0.5, 0)
	if p.Pos != (dynamo.Vec2{X: 1, Y: 2}) {
		t.Errorf("particle moved at timescale 0: %v", p.Pos)
	}
}

func TestSafeStep(t *testing.T) {
	tests := []struct {
		name      string
		ps        []dynamo.Particle
		timescale float64
		want      float64
	}{
		{"empty", nil, 100, MinStep},
		{"stationary", []dynamo.Particle{{Speed: 0, Radius: 10}}, 100, MinStep},
		{"paused", []dynamo.Particle{{Speed: 20, Radius: 10}}, 0, MinStep},
		{"single", []dynamo.Particle{{Speed: 100, Radius: 10}}, 1, 0.1},
		{"smallest radius over fastest", []dynamo.Particle{{Speed: 20, Radius: 10}, {Speed: 40, Radius: 4}}, 1, 0.1},
		{"floored", []dynamo.Particle{{Speed: 30, Radius: 9}}, 1000, MinStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeStep(tt.ps, tt.timescale)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SafeStep() = %v, want %v", got, tt.want)
			}
			if got <= 0 || math.IsInf(got, 0) {
				t.Errorf("SafeStep() = %v, must be finite and positive", got)
			}
		})
	}
}

func TestSubStepsCoverFrame(t *testing.T) {
	frames := []float64{0, 1e-6, 1.0 / 60, 1.0 / 30, 0.1, 1, 2.345}
	safes := []float64{MinStep, 0.0125, 0.1, 0.3, 10}

	for _, frame := range frames {
		for _, safe := range safes {
			steps := SubSteps(frame, safe)
			sum := 0.0
			for _, s := range steps {
				if s <= 0 || s > safe {
					t.Fatalf("frame=%v safe=%v: step %v out of (0, safe]", frame, safe, s)
				}
				sum += s
			}
			if math.Abs(sum-frame) > 1e-9 {
				t.Errorf("frame=%v safe=%v: steps sum to %v", frame, safe, sum)
			}
		}
	}
}

func TestSubStepsDegenerateInput(t *testing.T) {
	tests := []struct {
		name  string
		frame float64
		safe  float64
		want  int
	}{
		{"negative frame", -1, 0.1, 0},
		{"NaN frame", math.NaN(), 0.1, 0},
		{"infinite frame", math.Inf(1), 0.1, 0},
		{"zero safe falls back to MinStep", 0.01, 0, 10},
		{"infinite safe falls back to MinStep", 0.005, math.Inf(1), 5},
		{"huge frame is capped", 1e6, 0.1, MaxSubSteps},
		{"frame beyond float resolution is capped", 1e20, 0.1, MaxSubSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(SubSteps(tt.frame, tt.safe)); got != tt.want {
				t.Errorf("len(SubSteps) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStepperStopsWithoutProgress(t *testing.T) {
	st := NewStepper(1e20, MinStep)
	st.n = MaxSubSteps - 1
	if !st.Next() {
		t.Fatal("expected a final sub-step")
	}
	if st.Next() {
		t.Error("stepper continued past MaxSubSteps")
	}

	st = &Stepper{remaining: 1e20, safe: MinStep}
	if st.Next() {
		t.Errorf("stepper advanced without reducing remaining time, dt = %g", st.Dt())
	}
}

func TestLimit(t *testing.T) {
	if got := Limit(0.01); got != 0.01*MaxSubSteps {
		t.Errorf("Limit(0.01) = %g", got)
	}
	if got := Limit(0); got != MinStep*MaxSubSteps {
		t.Errorf("Limit(0) = %g", got)
	}
}

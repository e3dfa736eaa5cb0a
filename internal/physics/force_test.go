package physics

import (
	"math"
	"testing"

	"github.com/san-kum/ballpit/internal/dynamo"
)

func TestAttractKeepsUnitHeading(t *testing.T) {
	tests := []struct {
		name   string
		pos    dynamo.Vec2
		dir    dynamo.Vec2
		target dynamo.Vec2
		force  float64
		dt     float64
	}{
		{"pull", dynamo.Vec2{X: 10, Y: 10}, dynamo.Vec2{X: 1, Y: 0}, dynamo.Vec2{X: 100, Y: 50}, 1000, 1.0 / 60},
		{"push", dynamo.Vec2{X: 10, Y: 10}, dynamo.Vec2{X: 0, Y: 1}, dynamo.Vec2{X: 0, Y: 0}, -1000, 1.0 / 60},
		{"diagonal start", dynamo.Vec2{X: 300, Y: 200}, dynamo.Vec2{X: -1, Y: 1}, dynamo.Vec2{X: 0, Y: 0}, 50, 0.1},
		{"huge force", dynamo.Vec2{X: 1, Y: 1}, dynamo.Vec2{X: 1, Y: 1}, dynamo.Vec2{X: 2, Y: 3}, 1e6, 1},
		{"zero dt", dynamo.Vec2{X: 1, Y: 1}, dynamo.Vec2{X: 3, Y: 4}, dynamo.Vec2{X: 2, Y: 3}, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dynamo.Particle{Pos: tt.pos, Dir: tt.dir, Speed: 25, Radius: 9}
			Attract(&p, tt.target, tt.force, tt.dt)

			if l := p.Dir.Len(); math.Abs(l-1) > 1e-5 {
				t.Errorf("|dir| = %v, want 1", l)
			}
			if p.Pos != tt.pos {
				t.Errorf("position changed: %v", p.Pos)
			}
			if p.Speed != 25 {
				t.Errorf("speed changed: %v", p.Speed)
			}
		})
	}
}

func TestAttractDirection(t *testing.T) {
	p := dynamo.Particle{Pos: dynamo.Vec2{X: 0, Y: 0}, Dir: dynamo.Vec2{X: 0, Y: 1}}
	Attract(&p, dynamo.Vec2{X: 10, Y: 0}, 100, 1)
	if p.Dir.X <= 0 {
		t.Errorf("pull should bend heading toward target, got %v", p.Dir)
	}

	q := dynamo.Particle{Pos: dynamo.Vec2{X: 0, Y: 0}, Dir: dynamo.Vec2{X: 0, Y: 1}}
	Attract(&q, dynamo.Vec2{X: 10, Y: 0}, -100, 1)
	if q.Dir.X >= 0 {
		t.Errorf("push should bend heading away from target, got %v", q.Dir)
	}
}

func TestAttractCoincidentIsNoop(t *testing.T) {
	p := dynamo.Particle{Pos: dynamo.Vec2{X: 5, Y: 5}, Dir: dynamo.Vec2{X: 1, Y: 1}}
	Attract(&p, dynamo.Vec2{X: 5, Y: 5}, 1000, 1)
	if p.Dir != (dynamo.Vec2{X: 1, Y: 1}) {
		t.Errorf("heading changed at zero distance: %v", p.Dir)
	}
}

func TestAttractCancellationLeavesZero(t *testing.T) {
	// heading (-1, 0) plus exactly (1, 0) from a target 1 unit to the right
	p := dynamo.Particle{Pos: dynamo.Vec2{X: 0, Y: 0}, Dir: dynamo.Vec2{X: -1, Y: 0}}
	Attract(&p, dynamo.Vec2{X: 1, Y: 0}, 1, 1)
	if p.Dir != (dynamo.Vec2{}) {
		t.Errorf("expected zero heading after exact cancellation, got %v", p.Dir)
	}
	if math.IsNaN(p.Dir.X) || math.IsNaN(p.Dir.Y) {
		t.Error("heading became NaN")
	}
}

func TestAttractAllUsesWorldForce(t *testing.T) {
	w := dynamo.NewWorld(100, 100)
	w.Force = 500
	w.Particles = append(w.Particles,
		dynamo.Particle{Pos: dynamo.Vec2{X: 10, Y: 50}, Dir: dynamo.Vec2{X: 0, Y: 1}},
		dynamo.Particle{Pos: dynamo.Vec2{X: 90, Y: 50}, Dir: dynamo.Vec2{X: 0, Y: 1}},
	)

	AttractAll(w, dynamo.Vec2{X: 50, Y: 50}, 0.1)

	if w.Particles[0].Dir.X <= 0 || w.Particles[1].Dir.X >= 0 {
		t.Errorf("particles not pulled toward center: %v %v", w.Particles[0].Dir, w.Particles[1].Dir)
	}
}

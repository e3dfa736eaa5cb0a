package integrators

import (
	"testing"

	"github.com/san-kum/ballpit/internal/dynamo"
)

func benchParticles(n int) []dynamo.Particle {
	ps := make([]dynamo.Particle, n)
	for i := range ps {
		ps[i] = dynamo.Particle{
			Pos:    dynamo.Vec2{X: float64(i * 3), Y: float64(i * 2)},
			Dir:    dynamo.Vec2{X: 1, Y: -1},
			Speed:  20 + float64(i%10),
			Radius: 9 + float64(i%2)*0.5,
		}
	}
	return ps
}

func BenchmarkAdvance(b *testing.B) {
	ps := benchParticles(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range ps {
			Advance(&ps[j], 0.001, 100)
		}
	}
}

func BenchmarkSafeStep(b *testing.B) {
	ps := benchParticles(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SafeStep(ps, 100)
	}
}

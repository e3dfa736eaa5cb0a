package physics

import (
	"math"

	"github.com/san-kum/ballpit/internal/dynamo"
)

// Collides reports whether the circles of a and b touch or overlap.
// Coincident centers count as colliding.
func Collides(a, b *dynamo.Particle) bool {
	d := a.Pos.Sub(b.Pos)
	rs := a.Radius + b.Radius
	return d.LenSq() <= rs*rs
}

// Resolve separates a and b until tangent and exchanges the heading
// components along the collision normal (equal mass, perfectly elastic).
// Coincident centers have no normal and are left alone.
//
// The headings are used directly as velocities, not scaled by Speed, and
// are deliberately not renormalized afterwards. Only Attract renormalizes.
func Resolve(a, b *dynamo.Particle) {
	d := a.Pos.Sub(b.Pos)
	dist := math.Sqrt(d.LenSq())
	if dist == 0 {
		return
	}

	n := d.Scale(1 / dist)

	if overlap := (a.Radius + b.Radius) - dist; overlap > 0 {
		half := n.Scale(overlap / 2)
		a.Pos = a.Pos.Add(half)
		b.Pos = b.Pos.Sub(half)
	}

	dot := a.Dir.Sub(b.Dir).Dot(n)
	if dot > 0 {
		// already separating
		return
	}

	a.Dir = a.Dir.Sub(n.Scale(dot))
	b.Dir = b.Dir.Add(n.Scale(dot))
}

// Sweep resolves every colliding unordered pair of ps once, in ascending
// (i, j) order, and returns the number of pairs resolved. onHit, if not
// nil, is called after each resolution.
func Sweep(ps []dynamo.Particle, onHit func(i, j int)) int {
	hits := 0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if !Collides(&ps[i], &ps[j]) {
				continue
			}
			Resolve(&ps[i], &ps[j])
			hits++
			if onHit != nil {
				onHit(i, j)
			}
		}
	}
	return hits
}

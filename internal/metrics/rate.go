package metrics

import (
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

// CollisionRate reports resolved collisions per simulated second.
type CollisionRate struct {
	name       string
	collisions uint64
	elapsed    float64
}

func NewCollisionRate() *CollisionRate {
	return &CollisionRate{name: "collision_rate"}
}

func (c *CollisionRate) Name() string { return c.name }

func (c *CollisionRate) Observe(_ *dynamo.World, stats sim.FrameStats, _ float64) {
	c.collisions += stats.Collisions
	c.elapsed += stats.Elapsed
}

func (c *CollisionRate) Value() float64 {
	if c.elapsed == 0 {
		return 0
	}
	return float64(c.collisions) / c.elapsed
}

func (c *CollisionRate) Reset() {
	c.collisions = 0
	c.elapsed = 0
}

// BounceRate reports wall bounces per simulated second.
type BounceRate struct {
	name    string
	bounces uint64
	elapsed float64
}

func NewBounceRate() *BounceRate {
	return &BounceRate{name: "bounce_rate"}
}

func (b *BounceRate) Name() string { return b.name }

func (b *BounceRate) Observe(_ *dynamo.World, stats sim.FrameStats, _ float64) {
	b.bounces += stats.Bounces
	b.elapsed += stats.Elapsed
}

func (b *BounceRate) Value() float64 {
	if b.elapsed == 0 {
		return 0
	}
	return float64(b.bounces) / b.elapsed
}

func (b *BounceRate) Reset() {
	b.bounces = 0
	b.elapsed = 0
}

// Default returns the metric set used by headless runs.
func Default() []sim.Metric {
	return []sim.Metric{
		NewKineticEnergy(),
		NewHeadingDrift(),
		NewCollisionRate(),
		NewBounceRate(),
	}
}

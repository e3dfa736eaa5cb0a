package sim

import "github.com/san-kum/ballpit/internal/dynamo"

// Pointer is the attraction target supplied by a frontend or controller.
type Pointer struct {
	Active bool
	Target dynamo.Vec2
}

// Input is everything a frame needs from the outside world. The force
// magnitude is read from the world itself.
type Input struct {
	Elapsed float64
	Pointer
}

// FrameStats reports what happened during one frame.
type FrameStats struct {
	Elapsed    float64
	SubSteps   int
	Bounces    uint64
	Collisions uint64
}

type Controller interface {
	Compute(w *dynamo.World, t float64) Pointer
}

type Metric interface {
	Name() string
	Observe(w *dynamo.World, stats FrameStats, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(w *dynamo.World, stats FrameStats, t float64)
}

// Options toggles the optional event features. The zero value disables
// all of them.
type Options struct {
	// MaxFrameTime clamps the elapsed time of a frame. Zero disables it.
	MaxFrameTime float64

	GrowOnBounce    bool
	GrowOnCollision bool
	Growth          float64

	RecolorOnBounce    bool
	RecolorOnCollision bool

	// Seed drives the recolor rng.
	Seed int64
}

type RunConfig struct {
	FrameDt       float64
	Duration      float64
	ValidateState bool
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		FrameDt:       1.0 / 60,
		Duration:      10.0,
		ValidateState: true,
	}
}

type Result struct {
	Times      []float64
	Bounces    []uint64
	Collisions []uint64
	Frames     int
	SubSteps   int
	Metrics    map[string]float64
	Final      dynamo.Snapshot
	Errors     []error
}

// CollisionDeltas returns the per-frame collision counts.
func (r *Result) CollisionDeltas() []float64 {
	return deltas(r.Collisions)
}

// BounceDeltas returns the per-frame bounce counts.
func (r *Result) BounceDeltas() []float64 {
	return deltas(r.Bounces)
}

func deltas(cum []uint64) []float64 {
	out := make([]float64, len(cum))
	prev := uint64(0)
	for i, v := range cum {
		out[i] = float64(v - prev)
		prev = v
	}
	return out
}

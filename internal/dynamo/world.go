package dynamo

import "image/color"

// World is the complete mutable simulation state. It is owned by a single
// stepping loop and passed explicitly to every kernel call.
type World struct {
	Particles  []Particle
	Bounces    uint64
	Collisions uint64
	Timescale  float64
	Force      float64
	Width      float64
	Height     float64
}

func NewWorld(width, height float64) *World {
	return &World{
		Particles: make([]Particle, 0),
		Timescale: 1,
		Width:     width,
		Height:    height,
	}
}

// SetTimescale sets the timescale, clamping negative values to zero.
func (w *World) SetTimescale(v float64) {
	if v < 0 {
		v = 0
	}
	w.Timescale = v
}

func (w *World) AdjustTimescale(delta float64) {
	w.SetTimescale(w.Timescale + delta)
}

// AdjustForce shifts the force magnitude. Positive pulls, negative pushes.
func (w *World) AdjustForce(delta float64) {
	w.Force += delta
}

// Resize changes the simulation area. Particles outside the new bounds are
// pulled back in by the boundary reflector on the next sub-step.
func (w *World) Resize(width, height float64) {
	w.Width, w.Height = width, height
}

// ForceLabel names the current force mode for display.
func ForceLabel(force float64) string {
	switch {
	case force < 0:
		return "(PUSH)"
	case force > 0:
		return "(PULL)"
	}
	return ""
}

type Body struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Radius float64    `json:"radius"`
	Color  color.RGBA `json:"-"`
	Hex    string     `json:"color"`
}

// Snapshot is a read-only copy of a world taken between frames.
type Snapshot struct {
	Bodies     []Body  `json:"bodies"`
	Bounces    uint64  `json:"bounces"`
	Collisions uint64  `json:"collisions"`
	Timescale  float64 `json:"timescale"`
	Force      float64 `json:"force"`
	Count      int     `json:"count"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

func (w *World) Snapshot() Snapshot {
	bodies := make([]Body, len(w.Particles))
	for i := range w.Particles {
		p := &w.Particles[i]
		bodies[i] = Body{
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			Radius: p.Radius,
			Color:  p.Color,
			Hex:    HexColor(p.Color),
		}
	}
	return Snapshot{
		Bodies:     bodies,
		Bounces:    w.Bounces,
		Collisions: w.Collisions,
		Timescale:  w.Timescale,
		Force:      w.Force,
		Count:      len(w.Particles),
		Width:      w.Width,
		Height:     w.Height,
	}
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := *w
	c.Particles = make([]Particle, len(w.Particles))
	copy(c.Particles, w.Particles)
	return &c
}

func HexColor(c color.RGBA) string {
	const hex = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = hex[v>>4]
		b[2+i*2] = hex[v&0x0f]
	}
	return string(b)
}

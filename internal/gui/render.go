package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/ballpit/internal/dynamo"
)

func (a *App) drawParticles() {
	for i := range a.World.Particles {
		p := &a.World.Particles[i]
		rl.DrawCircleV(rl.NewVector2(float32(p.Pos.X), float32(p.Pos.Y)), float32(p.Radius), p.Color)
	}
}

func (a *App) drawCursor() {
	ptr := a.Pointer.Compute(a.World, 0)
	if !ptr.Active && a.Auto != nil {
		ptr = a.Auto.Compute(a.World, a.Sim.Clock())
	}
	if !ptr.Active {
		return
	}
	rl.DrawCircleLines(int32(ptr.Target.X), int32(ptr.Target.Y), 6, ColCursor)
}

// HUDLines returns the overlay text, one entry per line.
func HUDLines(w *dynamo.World, fps int32, running bool) []string {
	lines := []string{
		fmt.Sprintf("Timescale: %.0f", w.Timescale),
		fmt.Sprintf("Force: %.0f %s", w.Force, dynamo.ForceLabel(w.Force)),
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Balls: %d", len(w.Particles)),
		fmt.Sprintf("Bounces: %d", w.Bounces),
		fmt.Sprintf("Collisions: %d", w.Collisions),
	}
	if !running {
		lines = append(lines, "PAUSED")
	}
	return lines
}

func (a *App) DrawHUD() {
	const size, spacing = 20, 22
	for i, line := range HUDLines(a.World, rl.GetFPS(), a.Running) {
		col := ColText
		if i == 1 {
			switch {
			case a.World.Force > 0:
				col = ColPull
			case a.World.Force < 0:
				col = ColPush
			}
		}
		rl.DrawText(line, 10, int32(10+i*spacing), size, col)
	}

	h := int32(rl.GetScreenHeight())
	rl.DrawText("[ARROWS] KNOBS  [MOUSE] ATTRACT  [SPACE] PAUSE  [R] RESET  [Q] QUIT", 10, h-24, 14, ColTextDim)
}

// DrawTelemetry plots collisions per frame along the bottom edge.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	rectX, rectY := float32(10), h-110
	width, height := w/3, float32(60)

	maxVal := a.Telemetry[0]
	for _, v := range a.Telemetry {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := rectX + float32(i)/float32(telemetryCapacity)*width
		py := rectY + height - float32(val/maxVal)*height
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColTextDim)
	rl.DrawText(fmt.Sprintf("collisions/frame %.0f", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColTextDim)
}

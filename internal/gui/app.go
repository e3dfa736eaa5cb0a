package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
	ColPull    = rl.NewColor(0, 255, 136, 255)
	ColPush    = rl.NewColor(255, 68, 68, 255)
	ColCursor  = rl.NewColor(255, 255, 255, 80)
)

const telemetryCapacity = 240

// App is the windowed frontend. The window is the simulation area; the
// world is resized with it.
type App struct {
	Cfg       *config.Config
	World     *dynamo.World
	Initial   *dynamo.World
	Sim       *sim.Simulator
	Pointer   *control.Manual
	Auto      sim.Controller
	Running   bool
	Stats     sim.FrameStats
	Telemetry []float64
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "ballpit")
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)
}

func NewApp(cfg *config.Config, w *dynamo.World) (*App, error) {
	var auto sim.Controller
	if cfg.Controller != "" && cfg.Controller != "none" && cfg.Controller != "manual" {
		ctrl, err := control.New(cfg.Controller)
		if err != nil {
			return nil, err
		}
		auto = ctrl
	}

	return &App{
		Cfg:       cfg,
		World:     w,
		Initial:   w.Clone(),
		Sim:       sim.New(cfg.Options()),
		Pointer:   control.NewManual(),
		Auto:      auto,
		Running:   true,
		Telemetry: make([]float64, 0, telemetryCapacity),
	}, nil
}

// Run opens a window sized from cfg and blocks until it is closed.
func Run(cfg *config.Config, w *dynamo.World) error {
	app, err := NewApp(cfg, w)
	if err != nil {
		return err
	}
	initWindow(cfg)
	defer rl.CloseWindow()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update reads input and advances one frame using the measured frame
// time. Knobs move once per frame while their key is held.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.World.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}

	a.knobs(knobInput{
		up:    rl.IsKeyDown(rl.KeyUp),
		down:  rl.IsKeyDown(rl.KeyDown),
		right: rl.IsKeyDown(rl.KeyRight),
		left:  rl.IsKeyDown(rl.KeyLeft),
	})

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		a.Pointer.Press(float64(mouse.X), float64(mouse.Y))
	} else {
		a.Pointer.Release()
	}

	if !a.Running {
		return
	}
	a.step(float64(rl.GetFrameTime()))
}

type knobInput struct {
	up, down, right, left bool
}

func (a *App) knobs(in knobInput) {
	if in.up {
		a.World.AdjustTimescale(a.Cfg.TimescaleStep)
	}
	if in.down {
		a.World.AdjustTimescale(-a.Cfg.TimescaleStep)
	}
	if in.right {
		a.World.AdjustForce(a.Cfg.ForceStep)
	}
	if in.left {
		a.World.AdjustForce(-a.Cfg.ForceStep)
	}
}

func (a *App) step(elapsed float64) {
	in := sim.Input{Elapsed: elapsed}
	in.Pointer = a.Pointer.Compute(a.World, a.Sim.Clock())
	if !in.Active && a.Auto != nil {
		in.Pointer = a.Auto.Compute(a.World, a.Sim.Clock())
	}

	a.Stats = a.Sim.Step(a.World, in)

	a.Telemetry = append(a.Telemetry, float64(a.Stats.Collisions))
	if len(a.Telemetry) > telemetryCapacity {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) reset() {
	width, height := a.World.Width, a.World.Height
	a.World = a.Initial.Clone()
	a.World.Resize(width, height)
	a.Sim.Reset()
	a.Telemetry = a.Telemetry[:0]
	a.Stats = sim.FrameStats{}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawParticles()
	a.drawCursor()
	a.DrawTelemetry()
	a.DrawHUD()

	rl.EndDrawing()
}

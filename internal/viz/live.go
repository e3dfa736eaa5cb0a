package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 120
	frameInterval   = time.Second / 60
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the live terminal view. The world is drawn scaled onto a
// braille canvas; the left mouse button attracts particles toward the
// pointer and the arrow keys turn the timescale and force knobs.
type Model struct {
	cfg       *config.Config
	world     *dynamo.World
	initial   *dynamo.World
	simulator *sim.Simulator
	manual    *control.Manual
	auto      sim.Controller

	canvas  *Canvas
	theme   Theme
	styles  styles
	running bool
	last    time.Time
	fps     float64
	history []float64
	bounces []float64
	stats   sim.FrameStats

	showHelp bool
}

// NewModel renders w. The configured controller drives the pointer while
// the mouse button is up; "manual" and "none" leave it idle.
func NewModel(cfg *config.Config, w *dynamo.World) (Model, error) {
	var auto sim.Controller
	if cfg.Controller != "" && cfg.Controller != "none" && cfg.Controller != "manual" {
		ctrl, err := control.New(cfg.Controller)
		if err != nil {
			return Model{}, err
		}
		auto = ctrl
	}

	theme := Themes[0]
	return Model{
		cfg:       cfg,
		world:     w,
		initial:   w.Clone(),
		simulator: sim.New(cfg.Options()),
		manual:    control.NewManual(),
		auto:      auto,
		canvas:    NewCanvas(width, height),
		theme:     theme,
		styles:    newStyles(theme),
		running:   true,
		history:   make([]float64, 0, historyCapacity),
		bounces:   make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.world.AdjustTimescale(m.cfg.TimescaleStep)
		case "down", "j":
			m.world.AdjustTimescale(-m.cfg.TimescaleStep)
		case "right", "l":
			m.world.AdjustForce(m.cfg.ForceStep)
		case "left", "h":
			m.world.AdjustForce(-m.cfg.ForceStep)
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.WindowSizeMsg:
		cols := msg.Width - statsWidth - 2*padLeft - 2
		rows := msg.Height - 2*padTop - 1
		m.canvas = NewCanvas(max(cols, 10), max(rows, 5))
	case TickMsg:
		now := time.Time(msg)
		elapsed := frameInterval.Seconds()
		if !m.last.IsZero() {
			elapsed = now.Sub(m.last).Seconds()
		}
		m.last = now
		if elapsed > 0 {
			m.fps = 0.9*m.fps + 0.1/elapsed
		}
		if m.running {
			m.step(elapsed)
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	x, y := m.toWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.manual.Press(x, y)
		}
	case tea.MouseActionMotion:
		m.manual.Move(x, y)
	case tea.MouseActionRelease:
		m.manual.Release()
	}
}

func (m *Model) step(elapsed float64) {
	in := sim.Input{Elapsed: elapsed}
	in.Pointer = m.manual.Compute(m.world, m.simulator.Clock())
	if !in.Active && m.auto != nil {
		in.Pointer = m.auto.Compute(m.world, m.simulator.Clock())
	}

	m.stats = m.simulator.Step(m.world, in)

	m.history = push(m.history, float64(m.stats.Collisions))
	m.bounces = push(m.bounces, float64(m.stats.Bounces))
}

func push(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

// reset restores the world spawned at startup, knobs included.
func (m *Model) reset() {
	m.world = m.initial.Clone()
	m.simulator.Reset()
	m.manual.Release()
	m.history = m.history[:0]
	m.bounces = m.bounces[:0]
	m.stats = sim.FrameStats{}
}

// scale maps world units to canvas dots, keeping the aspect ratio.
func (m *Model) scale() float64 {
	if m.world.Width <= 0 || m.world.Height <= 0 {
		return 1
	}
	return math.Min(float64(m.canvas.DotsX())/m.world.Width, float64(m.canvas.DotsY())/m.world.Height)
}

// toWorld maps a terminal cell to the world point under its center.
func (m *Model) toWorld(col, row int) (float64, float64) {
	s := m.scale()
	dx := float64((col-padLeft)*2) + 1
	dy := float64((row-padTop)*4) + 2
	return dx / s, dy / s
}

func (m *Model) draw() {
	m.canvas.Clear()
	s := m.scale()

	x1 := int(m.world.Width*s) - 1
	y1 := int(m.world.Height*s) - 1
	m.canvas.DrawLine(0, 0, x1, 0)
	m.canvas.DrawLine(0, y1, x1, y1)
	m.canvas.DrawLine(0, 0, 0, y1)
	m.canvas.DrawLine(x1, 0, x1, y1)

	for i := range m.world.Particles {
		p := &m.world.Particles[i]
		m.canvas.FillCircle(
			int(p.Pos.X*s), int(p.Pos.Y*s),
			int(math.Round(p.Radius*s)),
			dynamo.HexColor(p.Color),
		)
	}

	if ptr := m.manual.Compute(m.world, 0); ptr.Active {
		m.canvas.Plot(int(ptr.Target.X*s), int(ptr.Target.Y*s), string(m.theme.Title))
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.Render())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.stats.Render(m.hud()))
}

func (m Model) hud() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.header.Render("BALLPIT") + "\n")
	if !m.running {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}

	row("Timescale", fmt.Sprintf("%.0f", m.world.Timescale))

	force := fmt.Sprintf("%.0f ", m.world.Force)
	switch label := dynamo.ForceLabel(m.world.Force); {
	case m.world.Force > 0:
		force += st.pull.Render(label)
	case m.world.Force < 0:
		force += st.push.Render(label)
	}
	s.WriteString(st.label.Render("Force") + st.value.Render(force) + "\n")

	row("FPS", fmt.Sprintf("%.0f", m.fps))
	row("Balls", fmt.Sprintf("%d", len(m.world.Particles)))
	row("Bounces", fmt.Sprintf("%d", m.world.Bounces))
	row("Collisions", fmt.Sprintf("%d", m.world.Collisions))
	row("Time", fmt.Sprintf("%.2fs", m.simulator.Clock()))
	row("Sub-steps", fmt.Sprintf("%d", m.stats.SubSteps))
	row("Walls", SparklineChart(m.bounces, statsWidth-18))

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(statsWidth-14), asciigraph.Caption("collisions/frame"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.showHelp {
		s.WriteString(st.help.Render(
			"↑/↓  timescale\n←/→  force\nmouse attract\nspace pause\nr    reset\nt    theme\nq    quit"))
	} else {
		s.WriteString(st.help.Render("?:Help Q:Quit"))
	}
	return s.String()
}

// SetTheme switches the HUD colors. Unknown names select the default.
func (m *Model) SetTheme(name string) {
	m.theme = GetTheme(name)
	m.styles = newStyles(m.theme)
}

// World returns the world being rendered.
func (m Model) World() *dynamo.World { return m.world }

// Run starts the live view with mouse tracking on the alternate screen.
func Run(cfg *config.Config, w *dynamo.World, theme string) error {
	m, err := NewModel(cfg, w)
	if err != nil {
		return err
	}
	m.SetTheme(theme)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

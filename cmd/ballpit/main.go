package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/experiment"
	"github.com/san-kum/ballpit/internal/gui"
	"github.com/san-kum/ballpit/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	count      int
	controller string
	timescale  float64
	force      float64
	theme      string
	// headless runs
	duration  float64
	fps       float64
	plot      bool
	jsonOut   bool
	spectrum  bool
	lyapunov  bool
	svgOut    string
	pngOut    string
	seriesOut string
	numRuns   int
	outFile   string
	param     string
	paramMin  float64
	paramMax  float64
	numPoints int
)

// main registers the commands and runs the terminal view when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ballpit",
		Short: "bouncing balls with a pointer force field",
		RunE:  runTUI,
	}
	addWorldFlags(rootCmd)
	rootCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "live terminal view",
		RunE:  runTUI,
	}
	addWorldFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, w, err := setupWorld(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, w)
		},
	}
	addWorldFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless at a fixed frame rate",
		RunE:  runSimulation,
	}
	addWorldFlags(runCmd)
	addTimingFlags(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot cumulative bounces and collisions")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the final snapshot as JSON")
	runCmd.Flags().BoolVar(&spectrum, "spectrum", false, "power spectrum of collisions per frame")
	runCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate the largest Lyapunov exponent")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final frame as SVG")
	runCmd.Flags().StringVar(&pngOut, "png", "", "write the final frame as PNG")
	runCmd.Flags().StringVar(&seriesOut, "series-svg", "", "write collisions per frame as an SVG plot")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run an ensemble of seeds concurrently",
		RunE:  runBench,
	}
	addWorldFlags(benchCmd)
	addTimingFlags(benchCmd)
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of independent worlds")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure event rates across a knob range",
		RunE:  runSweep,
	}
	addWorldFlags(sweepCmd)
	addTimingFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&param, "param", "force", "knob to sweep (force, timescale, count)")
	sweepCmd.Flags().Float64Var(&paramMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&paramMax, "max", 2000, "last value")
	sweepCmd.Flags().IntVar(&numPoints, "points", 9, "number of values")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d balls, controller %s\n", name, p.Count, p.Controller)
			}
			fmt.Printf("controllers: %s\n", strings.Join(control.Names(), ", "))
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if outFile != "" {
				if err := config.Save(outFile, cfg); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", outFile)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
	addWorldFlags(configCmd)
	configCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, benchCmd, sweepCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().IntVarP(&count, "count", "n", config.DefaultCount, "number of balls")
	cmd.Flags().StringVar(&controller, "controller", "none", "pointer controller ("+strings.Join(control.Names(), ", ")+")")
	cmd.Flags().Float64Var(&timescale, "timescale", config.DefaultTimescale, "initial timescale")
	cmd.Flags().Float64Var(&force, "force", config.DefaultForce, "initial force (negative pushes)")
}

func addTimingFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration in seconds")
	cmd.Flags().Float64Var(&fps, "fps", 60, "frames per second")
}

// loadConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.Preset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("controller") {
		cfg.Controller = controller
	}
	if flags.Changed("timescale") {
		cfg.Timescale = timescale
	}
	if flags.Changed("force") {
		cfg.Force = force
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if _, err := control.New(cfg.Controller); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func setupWorld(cmd *cobra.Command) (*config.Config, *dynamo.World, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cfg, experiment.Spawn(cfg, rand.New(rand.NewSource(cfg.Seed))), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, w, err := setupWorld(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, w, theme)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/analysis"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/experiment"
	"github.com/san-kum/ballpit/internal/export"
	"github.com/san-kum/ballpit/internal/sim"
)

func runConfig() sim.RunConfig {
	rc := sim.DefaultRunConfig()
	rc.Duration = duration
	rc.FrameDt = 0
	if fps > 0 {
		rc.FrameDt = 1 / fps
	}
	return rc
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	if err := exp.Setup(nil); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rc := runConfig()
	initial := exp.World().Clone()

	start := time.Now()
	result, err := exp.Run(ctx, rc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.SnapshotSVG(result.Final)), 0644); err != nil {
			return err
		}
	}
	if pngOut != "" {
		if err := writePNG(pngOut, result.Final); err != nil {
			return err
		}
	}
	if seriesOut != "" {
		svg := export.SeriesSVG(result.CollisionDeltas(), 800, 200, "#00ff88")
		if err := os.WriteFile(seriesOut, []byte(svg), 0644); err != nil {
			return err
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Seed     int64              `json:"seed"`
			Frames   int                `json:"frames"`
			SubSteps int                `json:"sub_steps"`
			Metrics  map[string]float64 `json:"metrics"`
			Final    dynamo.Snapshot    `json:"final"`
		}{cfg.Seed, result.Frames, result.SubSteps, result.Metrics, result.Final})
	}

	fmt.Printf("seed %d: %d balls, %d frames (%d sub-steps) in %v\n",
		cfg.Seed, cfg.Count, result.Frames, result.SubSteps, elapsed)
	fmt.Printf("bounces: %d  collisions: %d\n", result.Final.Bounces, result.Final.Collisions)
	for _, err := range result.Errors {
		fmt.Printf("error: %v\n", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nMETRIC\tVALUE")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot && len(result.Times) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.PlotMany(
			[][]float64{toFloats(result.Bounces), toFloats(result.Collisions)},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
			asciigraph.SeriesLegends("bounces", "collisions"),
			asciigraph.Caption("cumulative events"),
		))
	}

	if spectrum {
		deltas := result.CollisionDeltas()
		if len(deltas) < 4 {
			return fmt.Errorf("need at least 4 frames for a spectrum, got %d: %w", len(deltas), dynamo.ErrParameterBounds)
		}
		ps := analysis.PowerSpectrum(deltas)
		fmt.Println()
		fmt.Println(asciigraph.Plot(ps[1:],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (collisions per frame)"),
		))
		fmt.Printf("dominant frequency: %.3f Hz\n", analysis.DominantFrequency(deltas, rc.FrameDt))
	}

	if lyapunov {
		lambda := analysis.LyapunovExponent(initial, cfg.Options(), rc.FrameDt, rc.Duration, 1e-6)
		fmt.Printf("largest Lyapunov exponent: %.4f /s\n", lambda)
	}

	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	setup, err := experiment.EnsembleSetup(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ens := sim.NewEnsemble(setup, cfg.Options(), numRuns, cfg.Seed)

	start := time.Now()
	results, err := ens.Run(ctx, runConfig())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("benchmarking %d worlds of %d balls\n\n", numRuns, cfg.Count)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tSUB-STEPS\tBOUNCES\tCOLLISIONS\tCOLL/S")

	totalSteps := 0
	for i, r := range results {
		totalSteps += r.SubSteps
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.1f\n",
			cfg.Seed+int64(i), r.Frames, r.SubSteps, r.Final.Bounces, r.Final.Collisions, r.Metrics["collision_rate"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%v wall time, %.0f sub-steps/sec\n", elapsed, float64(totalSteps)/elapsed.Seconds())
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var apply func(c *config.Config, v float64)
	switch param {
	case "force":
		apply = func(c *config.Config, v float64) { c.Force = v }
	case "timescale":
		apply = func(c *config.Config, v float64) { c.Timescale = v }
	case "count":
		apply = func(c *config.Config, v float64) { c.Count = int(v) }
	default:
		return fmt.Errorf("unknown sweep parameter %q: %w", param, dynamo.ErrParameterBounds)
	}

	rc := runConfig()
	if rc.FrameDt <= 0 {
		return fmt.Errorf("fps must be positive: %w", dynamo.ErrParameterBounds)
	}

	// the force knob needs a pointer to act on
	name := cfg.Controller
	if param == "force" && (name == "none" || name == "manual") {
		name = "center"
	}
	ctrl, err := control.New(name)
	if err != nil {
		return err
	}

	build := func(v float64) (*dynamo.World, sim.Options) {
		c := *cfg
		apply(&c, v)
		return experiment.Spawn(&c, rand.New(rand.NewSource(c.Seed))), c.Options()
	}

	points := analysis.Sweep(build, ctrl, paramMin, paramMax, numPoints, rc.FrameDt, rc.Duration/2, rc.Duration/2)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tCOLL/S\tBOUNCE/S\n", param)
	rates := make([]float64, len(points))
	for i, p := range points {
		rates[i] = p.CollisionRate
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\n", p.Param, p.CollisionRate, p.BounceRate)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(rates) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(rates,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("collisions per second vs "+param),
		))
	}
	return nil
}

func writePNG(path string, snap dynamo.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WritePNG(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toFloats(v []uint64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

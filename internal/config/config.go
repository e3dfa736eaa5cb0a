package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballpit/internal/dynamo"
	"github.com/san-kum/ballpit/internal/sim"
)

const (
	DefaultCount         = 20
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultMargin        = 20
	DefaultMinRadius     = 9.0
	DefaultMaxRadius     = 10.0
	DefaultMinSpeed      = 20.0
	DefaultMaxSpeed      = 30.0
	DefaultTimescale     = 100.0
	DefaultForce         = 1000.0
	DefaultTimescaleStep = 1.0
	DefaultForceStep     = 50.0
	DefaultGrowth        = 0.1
	DefaultMaxFrameTime  = 0.25
)

type Config struct {
	Count         int            `yaml:"count" toml:"count"`
	Width         float64        `yaml:"width" toml:"width"`
	Height        float64        `yaml:"height" toml:"height"`
	Margin        float64        `yaml:"margin" toml:"margin"`
	MinRadius     float64        `yaml:"min_radius" toml:"min_radius"`
	MaxRadius     float64        `yaml:"max_radius" toml:"max_radius"`
	MinSpeed      float64        `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed      float64        `yaml:"max_speed" toml:"max_speed"`
	Timescale     float64        `yaml:"timescale" toml:"timescale"`
	Force         float64        `yaml:"force" toml:"force"`
	TimescaleStep float64        `yaml:"timescale_step" toml:"timescale_step"`
	ForceStep     float64        `yaml:"force_step" toml:"force_step"`
	Seed          int64          `yaml:"seed" toml:"seed"`
	MaxFrameTime  float64        `yaml:"max_frame_time" toml:"max_frame_time"`
	Controller    string         `yaml:"controller" toml:"controller"`
	Features      FeaturesConfig `yaml:"features" toml:"features"`
}

type FeaturesConfig struct {
	GrowOnBounce       bool    `yaml:"grow_on_bounce" toml:"grow_on_bounce"`
	GrowOnCollision    bool    `yaml:"grow_on_collision" toml:"grow_on_collision"`
	Growth             float64 `yaml:"growth" toml:"growth"`
	RecolorOnBounce    bool    `yaml:"recolor_on_bounce" toml:"recolor_on_bounce"`
	RecolorOnCollision bool    `yaml:"recolor_on_collision" toml:"recolor_on_collision"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:         DefaultCount,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Margin:        DefaultMargin,
		MinRadius:     DefaultMinRadius,
		MaxRadius:     DefaultMaxRadius,
		MinSpeed:      DefaultMinSpeed,
		MaxSpeed:      DefaultMaxSpeed,
		Timescale:     DefaultTimescale,
		Force:         DefaultForce,
		TimescaleStep: DefaultTimescaleStep,
		ForceStep:     DefaultForceStep,
		MaxFrameTime:  DefaultMaxFrameTime,
		Controller:    "none",
		Features: FeaturesConfig{
			Growth: DefaultGrowth,
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a config file on top of DefaultConfig. Files ending in .toml
// are decoded as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg in the format matching the file extension.
func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the sampling ranges. Equal bounds are allowed and
// produce a constant value.
func (c *Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"margin", c.Margin},
		{"min_radius", c.MinRadius},
		{"max_radius", c.MaxRadius},
		{"min_speed", c.MinSpeed},
		{"max_speed", c.MaxSpeed},
		{"timescale", c.Timescale},
		{"force", c.Force},
		{"timescale_step", c.TimescaleStep},
		{"force_step", c.ForceStep},
		{"max_frame_time", c.MaxFrameTime},
		{"growth", c.Features.Growth},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %g: %w", f.name, f.v, dynamo.ErrParameterBounds)
		}
	}

	switch {
	case c.Count < 0:
		return fmt.Errorf("count %d: %w", c.Count, dynamo.ErrParameterBounds)
	case c.Width <= 2*c.Margin || c.Height <= 2*c.Margin:
		return fmt.Errorf("area %.0fx%.0f too small for margin %.0f: %w", c.Width, c.Height, c.Margin, dynamo.ErrParameterBounds)
	case c.MinRadius <= 0 || c.MaxRadius < c.MinRadius:
		return fmt.Errorf("radius range [%g, %g): %w", c.MinRadius, c.MaxRadius, dynamo.ErrParameterBounds)
	case c.MinSpeed < 0 || c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("speed range [%g, %g): %w", c.MinSpeed, c.MaxSpeed, dynamo.ErrParameterBounds)
	case c.Timescale < 0:
		return fmt.Errorf("timescale %g: %w", c.Timescale, dynamo.ErrParameterBounds)
	case c.MaxFrameTime < 0:
		return fmt.Errorf("max frame time %g: %w", c.MaxFrameTime, dynamo.ErrParameterBounds)
	}
	return nil
}

// Options returns the simulator options encoded in the config.
func (c *Config) Options() sim.Options {
	return sim.Options{
		MaxFrameTime:       c.MaxFrameTime,
		GrowOnBounce:       c.Features.GrowOnBounce,
		GrowOnCollision:    c.Features.GrowOnCollision,
		Growth:             c.Features.Growth,
		RecolorOnBounce:    c.Features.RecolorOnBounce,
		RecolorOnCollision: c.Features.RecolorOnCollision,
		Seed:               c.Seed,
	}
}

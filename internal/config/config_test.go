package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ballpit/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Count != 20 {
		t.Errorf("expected 20 particles, got %d", cfg.Count)
	}
	if cfg.Timescale != 100 || cfg.Force != 1000 {
		t.Errorf("expected timescale 100 and force 1000, got %v and %v", cfg.Timescale, cfg.Force)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	opts := cfg.Options()
	if opts.GrowOnBounce || opts.GrowOnCollision || opts.RecolorOnBounce || opts.RecolorOnCollision {
		t.Error("features should be disabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Count = -1 }},
		{"area smaller than margin", func(c *Config) { c.Width = 30 }},
		{"zero radius", func(c *Config) { c.MinRadius = 0 }},
		{"inverted radius", func(c *Config) { c.MaxRadius = 1 }},
		{"inverted speed", func(c *Config) { c.MinSpeed = 50 }},
		{"negative timescale", func(c *Config) { c.Timescale = -1 }},
		{"negative max frame time", func(c *Config) { c.MaxFrameTime = -1 }},
		{"NaN timescale", func(c *Config) { c.Timescale = math.NaN() }},
		{"infinite force", func(c *Config) { c.Force = math.Inf(1) }},
		{"NaN max speed", func(c *Config) { c.MaxSpeed = math.NaN() }},
		{"infinite width", func(c *Config) { c.Width = math.Inf(1) }},
		{"NaN margin", func(c *Config) { c.Margin = math.NaN() }},
		{"NaN radius", func(c *Config) { c.MaxRadius = math.NaN() }},
		{"infinite force step", func(c *Config) { c.ForceStep = math.Inf(-1) }},
		{"NaN timescale step", func(c *Config) { c.TimescaleStep = math.NaN() }},
		{"infinite max frame time", func(c *Config) { c.MaxFrameTime = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestLoadRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	data := "timescale: .nan\nforce: .inf\nmax_speed: .nan\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballpit.yaml")

	cfg := DefaultConfig()
	cfg.Count = 7
	cfg.Seed = 42
	cfg.Features.RecolorOnCollision = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Count != 7 || loaded.Seed != 42 || !loaded.Features.RecolorOnCollision {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestSaveLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballpit.toml")

	cfg := DefaultConfig()
	cfg.Force = -300
	cfg.Controller = "orbit"
	cfg.Features.GrowOnBounce = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Force != -300 || loaded.Controller != "orbit" || !loaded.Features.GrowOnBounce {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadTOMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	data := "count = 5\n\n[features]\nrecolor_on_bounce = true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Count != 5 || !cfg.Features.RecolorOnBounce {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Features.Growth != DefaultGrowth || cfg.Height != DefaultHeight {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("count: 3\nforce: -200\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Count != 3 || cfg.Force != -200 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Width != DefaultWidth || cfg.MaxSpeed != DefaultMaxSpeed {
		t.Errorf("defaults lost: width=%v maxSpeed=%v", cfg.Width, cfg.MaxSpeed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("min_radius: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fatten")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Features.GrowOnBounce || cfg.Count != 30 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("preset should keep defaults, width = %v", cfg.Width)
	}
	if GetPreset("fatten").Count != 30 || Presets["fatten"].Width != 0 {
		t.Error("GetPreset mutated the preset table")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if _, err := Preset("nonexistent"); !errors.Is(err, dynamo.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

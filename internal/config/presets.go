package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/ballpit/internal/dynamo"
)

// Presets are applied on top of DefaultConfig; only non-zero fields of the
// preset override.
var Presets = map[string]*Config{
	"default": {},
	"crowd": {
		Count: 120, MinRadius: 6, MaxRadius: 8,
	},
	"gas": {
		Count: 60, MinRadius: 3, MaxRadius: 4, MinSpeed: 40, MaxSpeed: 80, Timescale: 50,
	},
	"fatten": {
		Count: 30, Features: FeaturesConfig{GrowOnBounce: true, GrowOnCollision: true, Growth: 0.1},
	},
	"epilepsy": {
		Features: FeaturesConfig{RecolorOnBounce: true, RecolorOnCollision: true},
	},
	"still": {
		Count: 40, MinSpeed: 1, MaxSpeed: 2, Controller: "center",
	},
	"vortex": {
		Count: 50, Force: 3000, Controller: "orbit",
	},
}

// GetPreset returns a full config for the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.merge(p)
	return cfg
}

// Preset is GetPreset with an error for unknown names.
func Preset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%q (available: %v): %w", name, ListPresets(), dynamo.ErrUnknownPreset)
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) merge(p *Config) {
	if p.Count != 0 {
		c.Count = p.Count
	}
	if p.Width != 0 {
		c.Width = p.Width
	}
	if p.Height != 0 {
		c.Height = p.Height
	}
	if p.MinRadius != 0 {
		c.MinRadius = p.MinRadius
	}
	if p.MaxRadius != 0 {
		c.MaxRadius = p.MaxRadius
	}
	if p.MinSpeed != 0 {
		c.MinSpeed = p.MinSpeed
	}
	if p.MaxSpeed != 0 {
		c.MaxSpeed = p.MaxSpeed
	}
	if p.Timescale != 0 {
		c.Timescale = p.Timescale
	}
	if p.Force != 0 {
		c.Force = p.Force
	}
	if p.Controller != "" {
		c.Controller = p.Controller
	}
	f := p.Features
	c.Features.GrowOnBounce = c.Features.GrowOnBounce || f.GrowOnBounce
	c.Features.GrowOnCollision = c.Features.GrowOnCollision || f.GrowOnCollision
	c.Features.RecolorOnBounce = c.Features.RecolorOnBounce || f.RecolorOnBounce
	c.Features.RecolorOnCollision = c.Features.RecolorOnCollision || f.RecolorOnCollision
	if f.Growth != 0 {
		c.Features.Growth = f.Growth
	}
}

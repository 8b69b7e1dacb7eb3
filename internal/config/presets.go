package config

import (
	"sort"
	"time"
)

// Preset adjusts a configuration for a particular mood.
type Preset struct {
	Description string
	Apply       func(*Config)
}

var Presets = map[string]Preset{
	"default": {
		Description: "original tuning",
		Apply:       func(*Config) {},
	},
	"calm": {
		Description: "slow drift, heavy damping",
		Apply: func(c *Config) {
			c.Physics.Accel = 0.03
			c.Physics.Damping = 0.98
			c.Physics.MaxSpeed = 6
			c.Physics.SeedSpeed = 4
		},
	},
	"lively": {
		Description: "bouncy nodes, quick typing",
		Apply: func(c *Config) {
			c.RevealRate = 24 * time.Millisecond
			c.Physics.Accel = 0.2
			c.Physics.Damping = 0.998
			c.Physics.Restitution = 1
			c.Physics.WallRestitution = 1
		},
	},
	"retro": {
		Description: "green phosphor, slow typing",
		Apply: func(c *Config) {
			c.Theme = "retro"
			c.RevealRate = 80 * time.Millisecond
		},
	},
	"still": {
		Description: "reduced motion",
		Apply: func(c *Config) {
			c.ReducedMotion = true
		},
	},
}

// ApplyPreset applies the named preset and reports whether it exists.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := Presets[name]
	if !ok {
		return false
	}
	p.Apply(c)
	return true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

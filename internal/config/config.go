package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/termresume/internal/physics"
)

const (
	DefaultTheme        = "terminal"
	DefaultRevealRate   = 48 * time.Millisecond
	DefaultIntroPause   = 140 * time.Millisecond
	DefaultIntroHold    = 2500 * time.Millisecond
	DefaultDeadZonePx   = 40.0
	DefaultCellHeightPx = 16.0

	// ReducedMotionEnv overrides the reduced_motion setting when set.
	ReducedMotionEnv = "TERMRESUME_REDUCED_MOTION"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Theme         string         `yaml:"theme"`
	ReducedMotion bool           `yaml:"reduced_motion"`
	RevealRate    time.Duration  `yaml:"reveal_rate"`
	Intro         IntroConfig    `yaml:"intro"`
	Input         InputConfig    `yaml:"input"`
	Physics       physics.Params `yaml:"physics"`
	Content       Content        `yaml:"content"`
}

type IntroConfig struct {
	Pause time.Duration `yaml:"pause"`
	Hold  time.Duration `yaml:"hold"`
}

type InputConfig struct {
	DeadZonePx   float64 `yaml:"dead_zone_px"`
	CellHeightPx float64 `yaml:"cell_height_px"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Theme:      DefaultTheme,
		RevealRate: DefaultRevealRate,
		Intro: IntroConfig{
			Pause: DefaultIntroPause,
			Hold:  DefaultIntroHold,
		},
		Input: InputConfig{
			DeadZonePx:   DefaultDeadZonePx,
			CellHeightPx: DefaultCellHeightPx,
		},
		Physics: physics.DefaultParams(),
	}
	if err := yaml.Unmarshal(defaultContent, &cfg.Content); err != nil {
		panic(fmt.Sprintf("config: embedded content: %v", err))
	}
	return cfg
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv lets the environment override file settings. It is consulted
// once at startup.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(ReducedMotionEnv); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ReducedMotion = b
		}
	}
}

func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case c.RevealRate < 0:
		return fmt.Errorf("%w: reveal_rate must not be negative, got %v", ErrInvalidConfig, c.RevealRate)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %gx%g", ErrInvalidConfig, p.Width, p.Height)
	case p.Damping <= 0 || p.Damping > 1:
		return fmt.Errorf("%w: damping must be in (0, 1], got %g", ErrInvalidConfig, p.Damping)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive, got %g", ErrInvalidConfig, p.MaxSpeed)
	case c.Input.DeadZonePx < 0 || c.Input.CellHeightPx <= 0:
		return fmt.Errorf("%w: input dead zone and cell height must be positive", ErrInvalidConfig)
	}
	for _, n := range c.Content.Nodes {
		if n.R <= 0 || 2*n.R > p.Width || 2*n.R > p.Height {
			return fmt.Errorf("%w: node %q radius %g does not fit the arena", ErrInvalidConfig, n.ID, n.R)
		}
	}
	return nil
}

// GraphNodes converts the configured nodes into simulation nodes.
func (c *Config) GraphNodes() []physics.Node {
	nodes := make([]physics.Node, len(c.Content.Nodes))
	for i, n := range c.Content.Nodes {
		nodes[i] = physics.Node{ID: n.ID, Label: n.Label, Link: n.Link, X: n.X, Y: n.Y, R: n.R}
	}
	return nodes
}

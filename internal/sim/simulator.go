package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/termresume/internal/physics"
)

type Simulator struct {
	params    physics.Params
	nodes     []physics.Node
	metrics   []Metric
	observers []Observer
}

// New prepares a simulator over copies of nodes; every Run starts from them.
func New(p physics.Params, nodes []physics.Node) *Simulator {
	return &Simulator{
		params:    p,
		nodes:     append([]physics.Node(nil), nodes...),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Graph builds the seeded graph a Run with cfg would start from.
func (s *Simulator) Graph(cfg Config) *physics.Graph {
	g := physics.NewGraph(s.params, s.nodes, rand.New(rand.NewSource(cfg.Seed)))
	g.Seed()
	return g
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	every := max(cfg.Every, 1)
	result := &Result{
		Seed:      cfg.Seed,
		Snapshots: make([]Snapshot, 0, cfg.Frames/every+2),
		Metrics:   make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	g := s.Graph(cfg)
	result.Snapshots = append(result.Snapshots, Capture(0, g))

	for i := 1; i <= cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		hits := g.Step()
		if err := checkFinite(i, g); err != nil {
			return result, err
		}
		result.Collisions += hits
		result.Frames = i

		for _, m := range s.metrics {
			m.Observe(g, hits)
		}
		for _, obs := range s.observers {
			obs.OnStep(i, g, hits)
		}

		if i%every == 0 || i == cfg.Frames {
			result.Snapshots = append(result.Snapshots, Capture(i, g))
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, cfg.Frames)
	}
	if cfg.Every < 0 {
		return fmt.Errorf("%w: snapshot interval must not be negative, got %d", ErrInvalidConfig, cfg.Every)
	}
	if len(s.nodes) == 0 {
		return fmt.Errorf("%w: no nodes to simulate", ErrInvalidConfig)
	}
	return nil
}

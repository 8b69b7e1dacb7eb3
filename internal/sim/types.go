// Package sim runs the project graph headlessly for a fixed number of
// frames, the way the interactive loop would, and records what happened.
package sim

import (
	"github.com/san-kum/termresume/internal/physics"
)

type Metric interface {
	Name() string
	Observe(g *physics.Graph, collisions int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(frame int, g *physics.Graph, collisions int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(frame int, g *physics.Graph, collisions int)

func (f ObserverFunc) OnStep(frame int, g *physics.Graph, collisions int) { f(frame, g, collisions) }

type Config struct {
	Frames int   `yaml:"frames" json:"frames"`
	Seed   int64 `yaml:"seed" json:"seed"`

	// Every records one snapshot per Every frames; zero records every frame.
	Every int `yaml:"every" json:"every"`
}

// NodeState is one node's position and velocity at a snapshot.
type NodeState struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type Snapshot struct {
	Frame int         `json:"frame"`
	Nodes []NodeState `json:"nodes"`
}

type Result struct {
	Seed       int64              `json:"seed"`
	Frames     int                `json:"frames"`
	Collisions int                `json:"collisions"`
	Snapshots  []Snapshot         `json:"snapshots"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Final returns the last snapshot, or a zero snapshot when none was taken.
func (r *Result) Final() Snapshot {
	if len(r.Snapshots) == 0 {
		return Snapshot{}
	}
	return r.Snapshots[len(r.Snapshots)-1]
}

// Capture snapshots the current state of g.
func Capture(frame int, g *physics.Graph) Snapshot {
	s := Snapshot{Frame: frame, Nodes: make([]NodeState, 0, len(g.Nodes()))}
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, NodeState{ID: n.ID, X: n.X, Y: n.Y, VX: n.VX, VY: n.VY})
	}
	return s
}

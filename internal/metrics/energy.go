// Package metrics observes the project graph as it steps.
package metrics

import (
	"github.com/san-kum/termresume/internal/physics"
)

// KineticEnergy is the mean total kinetic energy per observed frame, taking
// each node's mass as proportional to its area.
type KineticEnergy struct {
	name    string
	total   float64
	last    float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(g *physics.Graph, collisions int) {
	e.last = Energy(g)
	e.total += e.last
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last is the energy of the most recent frame.
func (e *KineticEnergy) Last() float64 { return e.last }

func (e *KineticEnergy) Reset() {
	e.total, e.last = 0, 0
	e.samples = 0
}

// Energy sums 0.5*m*v^2 over the graph with m = r^2 scaled down so typical
// values stay readable.
func Energy(g *physics.Graph) float64 {
	var sum float64
	for _, n := range g.Nodes() {
		m := n.R * n.R / 1000
		sum += 0.5 * m * (n.VX*n.VX + n.VY*n.VY)
	}
	return sum
}

// Collisions counts resolved node-node contacts.
type Collisions struct {
	name  string
	count int
}

func NewCollisions() *Collisions {
	return &Collisions{name: "collisions"}
}

func (c *Collisions) Name() string { return c.name }

func (c *Collisions) Observe(g *physics.Graph, collisions int) {
	c.count += collisions
}

func (c *Collisions) Value() float64 { return float64(c.count) }
func (c *Collisions) Reset()         { c.count = 0 }

// PeakSpeed is the highest node speed seen.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(g *physics.Graph, collisions int) {
	for _, n := range g.Nodes() {
		p.peak = max(p.peak, n.Speed())
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }

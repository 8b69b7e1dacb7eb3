package physics

import (
	"math"
	"math/rand"
	"time"
)

// Params are the tuning constants of the node graph. Distances are in
// arena units and velocities in arena units per frame.
type Params struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	Damping         float64       `yaml:"damping"`
	Restitution     float64       `yaml:"restitution"`
	WallRestitution float64       `yaml:"wall_restitution"`
	Jitter          float64       `yaml:"jitter"`
	Accel           float64       `yaml:"accel"`
	MaxSpeed        float64       `yaml:"max_speed"`
	SeedSpeed       float64       `yaml:"seed_speed"`
	Epsilon         float64       `yaml:"epsilon"`
	ClickWindow     time.Duration `yaml:"click_window"`
	MoveThreshold   float64       `yaml:"move_threshold"`
	VelocityScale   float64       `yaml:"velocity_scale"`
}

func DefaultParams() Params {
	return Params{
		Width:           1500,
		Height:          494.5,
		Damping:         0.992,
		Restitution:     0.96,
		WallRestitution: 0.985,
		Jitter:          0.004,
		Accel:           0.09,
		MaxSpeed:        14,
		SeedSpeed:       10,
		Epsilon:         0.001,
		ClickWindow:     250 * time.Millisecond,
		MoveThreshold:   2,
		VelocityScale:   16,
	}
}

type Node struct {
	ID    string
	Label string
	Link  string

	X, Y   float64
	R      float64
	VX, VY float64

	Drag DragState
}

// Speed is the magnitude of the node's velocity.
func (n *Node) Speed() float64 { return math.Hypot(n.VX, n.VY) }

// Contains reports whether the arena point (x, y) lies inside the node.
func (n *Node) Contains(x, y float64) bool {
	return math.Hypot(x-n.X, y-n.Y) <= n.R
}

type Graph struct {
	params Params
	nodes  []*Node
	rng    *rand.Rand
	opener Opener
}

// NewGraph copies nodes into a new graph. A nil rng gets a time-seeded source.
func NewGraph(p Params, nodes []Node, rng *rand.Rand) *Graph {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Graph{params: p, rng: rng, nodes: make([]*Node, len(nodes))}
	for i := range nodes {
		n := nodes[i]
		g.nodes[i] = &n
	}
	return g
}

func (g *Graph) Params() Params     { return g.params }
func (g *Graph) Nodes() []*Node     { return g.nodes }
func (g *Graph) SetOpener(o Opener) { g.opener = o }

func (g *Graph) Node(id string) *Node {
	for _, n := range g.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// At returns the topmost node under the arena point (x, y). Later nodes are
// drawn over earlier ones.
func (g *Graph) At(x, y float64) *Node {
	for i := len(g.nodes) - 1; i >= 0; i-- {
		if g.nodes[i].Contains(x, y) {
			return g.nodes[i]
		}
	}
	return nil
}

// Seed gives every node a random initial velocity in
// [-SeedSpeed/2, SeedSpeed/2) per axis.
func (g *Graph) Seed() {
	for _, n := range g.nodes {
		n.VX = (g.rng.Float64() - 0.5) * g.params.SeedSpeed
		n.VY = (g.rng.Float64() - 0.5) * g.params.SeedSpeed
	}
}

// Step advances the graph by one frame and returns the number of
// colliding pairs that were resolved.
func (g *Graph) Step() int {
	p := g.params
	for _, n := range g.nodes {
		if n.Drag.Phase == Dragging {
			continue
		}
		n.VX += (g.rng.Float64()-0.5)*p.Accel + (g.rng.Float64()-0.5)*p.Jitter
		n.VY += (g.rng.Float64()-0.5)*p.Accel + (g.rng.Float64()-0.5)*p.Jitter

		n.VX *= p.Damping
		n.VY *= p.Damping

		if s := n.Speed(); s > p.MaxSpeed {
			n.VX *= p.MaxSpeed / s
			n.VY *= p.MaxSpeed / s
		}

		n.X += n.VX
		n.Y += n.VY
	}

	for _, n := range g.nodes {
		g.bounce(n)
	}

	// Separation runs after the clamp, so a pair against a wall can leave
	// the outer node past it until the next frame.
	hits := 0
	for i := 0; i < len(g.nodes); i++ {
		for j := i + 1; j < len(g.nodes); j++ {
			if resolve(g.nodes[i], g.nodes[j], p.Restitution, p.Epsilon) {
				hits++
			}
		}
	}
	return hits
}

// bounce clamps n into the arena and points the offending velocity
// component back inside, scaled by the wall restitution.
func (g *Graph) bounce(n *Node) {
	p := g.params
	if n.X < n.R {
		n.X = n.R
		n.VX = math.Abs(n.VX) * p.WallRestitution
	}
	if n.X > p.Width-n.R {
		n.X = p.Width - n.R
		n.VX = -math.Abs(n.VX) * p.WallRestitution
	}
	if n.Y < n.R {
		n.Y = n.R
		n.VY = math.Abs(n.VY) * p.WallRestitution
	}
	if n.Y > p.Height-n.R {
		n.Y = p.Height - n.R
		n.VY = -math.Abs(n.VY) * p.WallRestitution
	}
}

// resolve separates an overlapping pair and exchanges an equal and
// opposite impulse along the contact normal. Coincident centres have no
// normal and are left alone.
func resolve(a, b *Node, restitution, eps float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return false
	}
	minDist := a.R + b.R
	if d >= minDist {
		return false
	}

	nx, ny := dx/d, dy/d
	vn := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	j := -(1 + restitution) * vn / 2
	a.VX -= j * nx
	a.VY -= j * ny
	b.VX += j * nx
	b.VY += j * ny

	half := ((minDist - d) + eps) * 0.5
	a.X -= half * nx
	a.Y -= half * ny
	b.X += half * nx
	b.Y += half * ny
	return true
}

// clamp keeps (x, y) inside the arena for a node of radius r.
func (g *Graph) clamp(r, x, y float64) (float64, float64) {
	return math.Max(r, math.Min(g.params.Width-r, x)), math.Max(r, math.Min(g.params.Height-r, y))
}

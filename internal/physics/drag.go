package physics

import (
	"math"
	"time"
)

// Phase is the pointer interaction state of a node.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragState is the per-node pointer state machine. Positions are in
// rendered (screen) units; the graph converts deltas into arena units.
type DragState struct {
	Phase Phase
	Moved bool
	LastX float64
	LastY float64
	LastT time.Time
	DownT time.Time
}

// Pointer is one pointer sample in rendered units.
type Pointer struct {
	X, Y float64
	T    time.Time
}

// Scale converts rendered units to arena units per axis.
type Scale struct {
	X, Y float64
}

// ScaleFor returns the scale from a rendered extent of w×h to the arena.
func (g *Graph) ScaleFor(w, h float64) Scale {
	s := Scale{X: 1, Y: 1}
	if w > 0 {
		s.X = g.params.Width / w
	}
	if h > 0 {
		s.Y = g.params.Height / h
	}
	return s
}

// Opener opens a node's external link.
type Opener interface {
	Open(url string) error
}

// Release describes how a drag ended.
type Release int

const (
	Ignored Release = iota
	Thrown
	Clicked
)

// PointerDown captures n: its velocity is zeroed until release.
func (g *Graph) PointerDown(n *Node, p Pointer) {
	if n == nil {
		return
	}
	n.Drag = DragState{
		Phase: Dragging,
		LastX: p.X,
		LastY: p.Y,
		LastT: p.T,
		DownT: p.T,
	}
	n.VX, n.VY = 0, 0
}

// PointerMove drags a captured node by the pointer delta and estimates its
// throw velocity from the delta and the time since the previous sample.
func (g *Graph) PointerMove(n *Node, p Pointer, s Scale) {
	if n == nil || n.Drag.Phase != Dragging {
		return
	}
	d := &n.Drag
	dx := (p.X - d.LastX) * s.X
	dy := (p.Y - d.LastY) * s.Y

	if !d.Moved && (math.Abs(dx) > g.params.MoveThreshold || math.Abs(dy) > g.params.MoveThreshold) {
		d.Moved = true
	}

	n.X, n.Y = g.clamp(n.R, n.X+dx, n.Y+dy)

	ms := math.Max(1, float64(p.T.Sub(d.LastT))/float64(time.Millisecond))
	n.VX = dx / ms * g.params.VelocityScale
	n.VY = dy / ms * g.params.VelocityScale

	d.LastX, d.LastY, d.LastT = p.X, p.Y, p.T
}

// PointerUp releases a captured node. A press that never moved past the
// threshold and ended within the click window is a click: the node stops
// and its link is opened. Anything else keeps the estimated velocity.
func (g *Graph) PointerUp(n *Node, p Pointer) Release {
	if n == nil || n.Drag.Phase != Dragging {
		return Ignored
	}
	d := n.Drag
	n.Drag = DragState{}

	if !d.Moved && p.T.Sub(d.DownT) < g.params.ClickWindow && n.Link != "" {
		n.VX, n.VY = 0, 0
		if g.opener != nil {
			_ = g.opener.Open(n.Link)
		}
		return Clicked
	}
	return Thrown
}

// PointerCancel ends a drag the same way a release does.
func (g *Graph) PointerCancel(n *Node, p Pointer) Release {
	return g.PointerUp(n, p)
}

// Dragged returns the node currently captured, if any.
func (g *Graph) Dragged() *Node {
	for _, n := range g.nodes {
		if n.Drag.Phase == Dragging {
			return n
		}
	}
	return nil
}

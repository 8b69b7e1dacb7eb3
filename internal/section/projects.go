package section

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/metrics"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/viz"
)

const energyWidth = 48

// Projects owns the bouncing node graph. The graph stays hidden until the
// header has been typed, then the physics loop starts.
type Projects struct {
	Graph  *physics.Graph
	View   *viz.GraphView
	Loop   *physics.Loop
	Energy *viz.History

	graph   *doc.Node
	meter   *doc.Node
	reduced bool
}

func NewProjects(g *physics.Graph, reduced bool) *Projects {
	p := &Projects{
		Graph:   g,
		View:    viz.NewGraphView(g, 90, 14),
		Loop:    physics.NewLoop(g, physics.FrameRate),
		Energy:  viz.NewHistory(0),
		reduced: reduced,
	}
	p.Loop.OnStep(func(g *physics.Graph, _ int) {
		p.Energy.Add(metrics.Energy(g))
	})
	return p
}

// Node is the document node holding the graph, nil before the first build.
func (p *Projects) Node() *doc.Node { return p.graph }

func (p *Projects) body() []*doc.Node {
	p.Graph.Seed()
	p.Energy.Add(metrics.Energy(p.Graph))

	p.graph = doc.NewNode(doc.KindGraph, "")
	p.graph.Data = p.View
	p.graph.Hidden = true

	p.meter = doc.NewNode(doc.KindText, "")
	p.meter.Data = energyMeter{hist: p.Energy}
	p.meter.Hidden = true
	return []*doc.Node{p.graph, p.meter}
}

// afterReveal shows the graph and starts the loop. Under reduced motion the
// nodes are drawn at rest and never move. If the pane was left while its
// header was typing, the loop waits for the pane to be shown again.
func (p *Projects) afterReveal() tea.Cmd {
	p.graph.Hidden = false
	p.meter.Hidden = false
	if p.reduced {
		for _, n := range p.Graph.Nodes() {
			n.VX, n.VY = 0, 0
		}
		return nil
	}
	if mount := p.graph.Parent(); mount != nil && mount.Hidden {
		p.Loop.Arm()
		return nil
	}
	return p.Loop.Start()
}

// Show resumes the loop when the pane comes back into view.
func (p *Projects) Show() tea.Cmd {
	if !p.Loop.Started() {
		return nil
	}
	return p.Loop.Resume()
}

func (p *Projects) Hide()     { p.Loop.Pause() }
func (p *Projects) Teardown() { p.Loop.Teardown() }

type energyMeter struct {
	hist *viz.History
}

func (m energyMeter) View() string {
	st := viz.NewStyles(viz.CurrentTheme)
	return st.Muted.Render(fmt.Sprintf("energy %6.1f ", m.hist.Last())) +
		viz.Sparkline(m.hist.Values(), energyWidth, st.Node)
}

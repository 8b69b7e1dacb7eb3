package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/section"
)

// handleMouse gives presses on a graph node to the physics drag handlers;
// every other press/release pair is a swipe gesture for the router.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	g := m.set.Projects.Graph
	p := physics.Pointer{X: float64(msg.X), Y: float64(msg.Y), T: m.clock()}

	if m.drag != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			g.PointerMove(m.drag, p, m.set.Projects.View.Scale())
			return nil
		case tea.MouseActionRelease:
			m.endDrag(p, g.PointerUp)
			return nil
		case tea.MouseActionPress:
			// The release of the held node never arrived.
			m.endDrag(p, g.PointerCancel)
		default:
			return nil
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if n := m.nodeAt(msg.X, msg.Y); n != nil {
			g.PointerDown(n, p)
			m.drag = n
			return nil
		}
	}
	return m.perform(m.router.Mouse(msg))
}

// endDrag lets go of the held node through end.
func (m *Model) endDrag(p physics.Pointer, end func(*physics.Node, physics.Pointer) physics.Release) {
	n := m.drag
	m.drag = nil
	if end(n, p) == physics.Clicked {
		m.flash("opening " + n.Link)
	}
}

// nodeAt hit-tests the screen cell (col, row) against the graph.
func (m *Model) nodeAt(col, row int) *physics.Node {
	top, ok := m.graphTop()
	if !ok {
		return nil
	}
	v := m.set.Projects.View
	row -= top
	if col < 0 || col >= v.Cols || row < 0 || row >= v.Rows {
		return nil
	}
	return v.Graph.At(v.ToArena(col, row))
}

// graphTop is the screen row of the graph's first line while the projects
// pane shows it.
func (m *Model) graphTop() (int, bool) {
	node := m.set.Projects.Node()
	if m.Current() != section.ProjectsID || node == nil || !node.Visible() {
		return 0, false
	}
	mount, ok := m.doc.Mount(section.ProjectsID)
	if !ok {
		return 0, false
	}

	r := m.renderer()
	rows := 0
	for _, c := range mount.Children() {
		if c == node {
			break
		}
		if s := r.Render(c); s != "" {
			rows += lipgloss.Height(s)
		}
	}
	_, scrolled := m.body(lipgloss.Height(m.footer()))
	return rows - scrolled, true
}

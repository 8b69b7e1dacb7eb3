package viz

import (
	"strings"

	"github.com/san-kum/termresume/internal/physics"
)

// GraphView draws a node graph onto a braille canvas of Cols×Rows cells.
// It is stored as a document node payload and resized by the application.
type GraphView struct {
	Graph      *physics.Graph
	Cols, Rows int
}

func NewGraphView(g *physics.Graph, cols, rows int) *GraphView {
	return &GraphView{Graph: g, Cols: cols, Rows: rows}
}

// Fit sizes the view to width cells, keeping the arena's aspect ratio in
// braille dots and capping the height at maxRows.
func (v *GraphView) Fit(width, maxRows int) {
	p := v.Graph.Params()
	v.Cols = max(width, 10)
	rows := int(float64(v.Cols*2) * p.Height / p.Width / 4)
	v.Rows = max(4, min(rows, maxRows))
}

// Scale converts cell deltas into arena deltas.
func (v *GraphView) Scale() physics.Scale {
	return v.Graph.ScaleFor(float64(v.Cols), float64(v.Rows))
}

// ToArena maps the centre of cell (col, row) into arena coordinates.
func (v *GraphView) ToArena(col, row int) (float64, float64) {
	s := v.Scale()
	return (float64(col) + 0.5) * s.X, (float64(row) + 0.5) * s.Y
}

func (v *GraphView) View() string {
	st := NewStyles(CurrentTheme)
	return st.Node.Render(v.Canvas().String())
}

// Canvas rasterises the graph: every node becomes an outline with its
// label centred inside.
func (v *GraphView) Canvas() *Canvas {
	c := NewCanvas(v.Cols, v.Rows)
	p := v.Graph.Params()
	sx := float64(c.DotsWide()) / p.Width
	sy := float64(c.DotsHigh()) / p.Height

	for _, n := range v.Graph.Nodes() {
		c.DrawEllipse(int(n.X*sx), int(n.Y*sy), int(n.R*sx), int(n.R*sy))
	}
	for _, n := range v.Graph.Nodes() {
		lines := strings.Split(n.Label, "\n")
		row := int(n.Y*sy/4) - (len(lines)-1)/2
		for i, l := range lines {
			col := int(n.X*sx/2) - len([]rune(l))/2
			c.Text(col, row+i, l)
		}
	}
	return c
}

// Package export draws the project graph as SVG or PNG.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/sim"
	"github.com/san-kum/termresume/internal/viz"
)

// GraphToSVG draws every node as a circle with its label, in arena units.
// Each node's path through trail, if given, is drawn underneath.
func GraphToSVG(g *physics.Graph, trail []sim.Snapshot, th viz.Theme) string {
	p := g.Params()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, p.Width, p.Height, p.Width, p.Height, th.Background))

	if len(trail) > 1 {
		sb.WriteString(fmt.Sprintf(`<g fill="none" stroke="%s" stroke-width="1.5" stroke-opacity="0.5">
`, th.Muted))
		for _, n := range g.Nodes() {
			sb.WriteString(trailPath(n.ID, trail))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="2" fill="%s" fill-opacity="0.15">
`, th.Accent, th.Accent))
	for _, n := range g.Nodes() {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, n.X, n.Y, n.R))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="16" text-anchor="middle">
`, th.Text))
	for _, n := range g.Nodes() {
		lines := strings.Split(n.Label, "\n")
		y := n.Y - float64(len(lines)-1)*9
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" dominant-baseline="middle">`, n.X, y))
		for i, l := range lines {
			dy := 0
			if i > 0 {
				dy = 18
			}
			sb.WriteString(fmt.Sprintf(`<tspan x="%.1f" dy="%d">%s</tspan>`, n.X, dy, html.EscapeString(l)))
		}
		sb.WriteString("</text>\n")
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func trailPath(id string, trail []sim.Snapshot) string {
	var sb strings.Builder
	for _, snap := range trail {
		for _, n := range snap.Nodes {
			if n.ID != id {
				continue
			}
			if sb.Len() == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", n.X, n.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", n.X, n.Y))
			}
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return fmt.Sprintf(`<path d="%s"/>
`, sb.String())
}

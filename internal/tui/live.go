// Package tui writes the resume and the headless simulation straight to a
// terminal, without the interactive program.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/termresume/internal/metrics"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the graph on every simulation step it observes, at
// most frameRate times a second. A zero frameRate draws every step.
type LiveRenderer struct {
	w         io.Writer
	view      *viz.GraphView
	frameRate int
	lastFrame time.Time
	now       func() time.Time
	hits      int
}

func NewLiveRenderer(w io.Writer, cols, rows, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		w:         w,
		view:      &viz.GraphView{Cols: cols, Rows: rows},
		frameRate: frameRate,
		now:       time.Now,
	}
}

func (r *LiveRenderer) OnStep(frame int, g *physics.Graph, collisions int) {
	r.hits += collisions
	if r.frameRate > 0 {
		if r.now().Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = r.now()
	r.view.Graph = g
	r.render(frame, g)
}

func (r *LiveRenderer) render(frame int, g *physics.Graph) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  projects  frame=%d\n", frame))
	b.WriteString("  " + strings.Repeat("-", r.view.Cols) + "\n")
	for _, row := range strings.Split(r.view.Canvas().String(), "\n") {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", r.view.Cols) + "\n")
	b.WriteString(fmt.Sprintf("  energy=%.1f  collisions=%d\n", metrics.Energy(g), r.hits))
	io.WriteString(r.w, b.String())
}

func (r *LiveRenderer) Start() { io.WriteString(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.w, showCursor) }

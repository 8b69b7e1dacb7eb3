package physics

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameRate is the display refresh cadence the loop ticks at.
const FrameRate = time.Second / 60

var lastLoopID atomic.Int64

// FrameMsg asks the loop with the matching ID to step the graph. Gen
// distinguishes tick chains so a pause followed by a resume never leaves
// two chains running.
type FrameMsg struct {
	ID   int64
	Gen  int
	Time time.Time
}

// StepFunc observes each frame after the graph has stepped.
type StepFunc func(g *Graph, collisions int)

// Loop gates the frame ticks of one graph. It starts at most once, stops
// requesting frames while paused and never ticks again after Teardown.
type Loop struct {
	id    int64
	gen   int
	graph *Graph
	rate  time.Duration

	started bool
	running bool
	torn    bool
	frames  int

	onStep []StepFunc
}

func NewLoop(g *Graph, rate time.Duration) *Loop {
	if rate <= 0 {
		rate = FrameRate
	}
	return &Loop{id: lastLoopID.Add(1), graph: g, rate: rate}
}

func (l *Loop) Graph() *Graph      { return l.graph }
func (l *Loop) Started() bool      { return l.started }
func (l *Loop) Running() bool      { return l.running }
func (l *Loop) TornDown() bool     { return l.torn }
func (l *Loop) Frames() int        { return l.frames }
func (l *Loop) OnStep(fn StepFunc) { l.onStep = append(l.onStep, fn) }

// Start begins ticking the first time it is called; later calls do nothing.
func (l *Loop) Start() tea.Cmd {
	if l.started || l.torn {
		return nil
	}
	l.started = true
	return l.run()
}

// Arm marks the loop started without requesting frames, for a loop whose
// pane is not on screen. The next Resume begins ticking.
func (l *Loop) Arm() {
	if l.torn {
		return
	}
	l.started = true
}

// Pause stops requesting frames. The in-flight tick is dropped on arrival.
func (l *Loop) Pause() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

// Resume restarts a paused loop that has been started before.
func (l *Loop) Resume() tea.Cmd {
	if !l.started || l.running || l.torn {
		return nil
	}
	return l.run()
}

// Teardown stops the loop for good.
func (l *Loop) Teardown() {
	l.Pause()
	l.torn = true
	l.onStep = nil
}

// Update steps the graph for a frame addressed to this loop and schedules
// the next one.
func (l *Loop) Update(msg FrameMsg) tea.Cmd {
	if msg.ID != l.id || msg.Gen != l.gen || !l.running {
		return nil
	}
	hits := l.graph.Step()
	l.frames++
	for _, fn := range l.onStep {
		fn(l.graph, hits)
	}
	return l.tick()
}

func (l *Loop) run() tea.Cmd {
	l.running = true
	l.gen++
	return l.tick()
}

func (l *Loop) tick() tea.Cmd {
	id, gen := l.id, l.gen
	return tea.Tick(l.rate, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}

// Package app is the root Bubble Tea model of the resume.
package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/input"
	"github.com/san-kum/termresume/internal/pane"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/reveal"
	"github.com/san-kum/termresume/internal/section"
	"github.com/san-kum/termresume/internal/video"
	"github.com/san-kum/termresume/internal/viz"
)

const (
	clockRate = time.Second
	statusTTL = 3 * time.Second
)

type clockMsg time.Time

type Option func(*Model)

// WithOpener sets where node and post links are sent.
func WithOpener(o physics.Opener) Option {
	return func(m *Model) { m.opener = o }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.clock = now }
}

// WithRand seeds the physics graph.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.rng = r }
}

// WithFullscreen reports whether the terminal can take the video
// fullscreen.
func WithFullscreen(ok bool) Option {
	return func(m *Model) { m.fullscreen = ok }
}

type Model struct {
	cfg *config.Config
	log *zap.Logger

	doc    *doc.Document
	intro  *section.Intro
	set    *section.Set
	seq    *pane.Sequencer
	router *input.Router
	help   help.Model

	opener     physics.Opener
	clock      func() time.Time
	rng        *rand.Rand
	fullscreen bool

	width, height int
	now           time.Time
	status        string
	statusAt      time.Time
	drag          *physics.Node
}

func New(cfg *config.Config, log *zap.Logger, opts ...Option) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		cfg:    cfg,
		log:    log,
		doc:    doc.New(),
		router: input.NewRouter(input.Config{DeadZonePx: cfg.Input.DeadZonePx, CellHeightPx: cfg.Input.CellHeightPx}),
		help:   help.New(),
		clock:  time.Now,
		width:  100,
		height: 30,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.now = m.clock()
	viz.SetTheme(cfg.Theme)

	env := section.Env{
		Doc:     m.doc,
		Caret:   doc.NewCaret(m.doc),
		Content: &cfg.Content,
		Rate:    cfg.RevealRate,
		Reduced: cfg.ReducedMotion,
		Log:     log,
	}

	g := physics.NewGraph(cfg.Physics, cfg.GraphNodes(), m.rng)
	if m.opener != nil {
		g.SetOpener(m.opener)
	}
	player := video.New(cfg.Content.Video.Source, cfg.Content.Video.Duration, video.WithFullscreen(m.fullscreen))

	m.intro = section.NewIntro(env, cfg.Content.Intro, cfg.Intro.Pause, cfg.Intro.Hold)
	m.set = section.NewSet(env, g, player)
	m.seq = pane.NewSequencer(m.doc, log, m.set.Panes()...)
	m.set.Attach(m.seq)
	m.resize()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.cfg.Content.Owner+" · resume"),
		m.intro.Start(),
		m.tickClock(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case clockMsg:
		m.now = time.Time(msg)
		if m.status != "" && m.now.Sub(m.statusAt) > statusTTL {
			m.status = ""
		}
		return m, m.tickClock()

	case section.IntroDoneMsg:
		m.log.Debug("intro finished")
		return m, m.navigate(m.seq.Start())

	case reveal.TickMsg, reveal.DoneMsg:
		return m, tea.Batch(m.intro.Update(msg), m.set.Update(msg))

	case physics.FrameMsg, video.TickMsg:
		return m, m.set.Update(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	if m.set.Posts.Focused() {
		return m, m.set.Posts.Update(msg)
	}
	return m, nil
}

// Current is the ID of the shown pane, or "" during the intro.
func (m *Model) Current() string {
	if !m.seq.Started() {
		return ""
	}
	return m.seq.CurrentPane().ID
}

func (m *Model) Document() *doc.Document    { return m.doc }
func (m *Model) Set() *section.Set           { return m.set }
func (m *Model) Sequencer() *pane.Sequencer { return m.seq }

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	focus := input.TargetNone
	if m.set.Posts.Focused() {
		focus = input.TargetInput
	}
	action := m.router.Key(msg, focus, m.Current() == section.VideoID)
	if action == input.None && focus == input.TargetInput {
		return m.set.Posts.Update(msg)
	}
	return m.perform(action)
}

func (m *Model) perform(action input.Action) tea.Cmd {
	player := m.set.Player
	switch action {
	case input.Quit:
		return tea.Quit
	case input.Blur:
		m.set.Posts.Blur()
	case input.Advance:
		if !m.intro.Done() {
			return m.intro.Skip()
		}
		return m.navigate(m.seq.Advance())
	case input.Retreat:
		if m.seq.Started() {
			return m.navigate(m.seq.Retreat())
		}
	case input.PlayPause:
		return player.Toggle()
	case input.SeekBack:
		player.Seek(-video.SeekStep)
	case input.SeekForward:
		player.Seek(video.SeekStep)
	case input.ToggleMute:
		player.ToggleMute()
	case input.ToggleFullscreen:
		if err := player.ToggleFullscreen(); err != nil {
			m.log.Debug("fullscreen unavailable", zap.Error(err))
			m.flash("fullscreen unavailable")
		}
	case input.CycleTheme:
		t := viz.NextTheme()
		m.flash("theme: " + t.Name)
	case input.ToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
	case input.FocusFilter:
		if m.Current() == section.BlogID {
			return m.set.Posts.Focus()
		}
	case input.OpenLink:
		if m.Current() == section.BlogID {
			m.openPostLink()
		}
	}
	return nil
}

func (m *Model) navigate(cmd tea.Cmd) tea.Cmd {
	if m.drag != nil {
		m.endDrag(physics.Pointer{T: m.clock()}, m.set.Projects.Graph.PointerCancel)
	}
	return tea.Batch(cmd, m.set.Flush())
}

func (m *Model) openPostLink() {
	link, ok := m.set.Posts.Link()
	if !ok || m.opener == nil {
		return
	}
	if err := m.opener.Open(link.Href); err != nil {
		m.flash(fmt.Sprintf("cannot open %q", link.Href))
		return
	}
	m.flash("opened " + link.Label)
}

func (m *Model) flash(s string) {
	m.status, m.statusAt = s, m.now
}

func (m *Model) tickClock() tea.Cmd {
	return tea.Tick(clockRate, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func (m *Model) resize() {
	w := max(m.width-2, 20)
	m.set.Projects.View.Fit(w, max(m.height-8, 6))
	m.set.Posts.SetWidth(w)
	m.set.VideoView.Width = min(w, 80)
	m.help.Width = w
}

func (m *Model) View() string {
	footer := m.footer()
	lines, _ := m.body(lipgloss.Height(footer))
	return strings.Join(lines, "\n") + "\n" + footer
}

func (m *Model) renderer() *viz.Renderer {
	return viz.NewRenderer(max(m.width-2, 20))
}

// body renders the document into exactly the rows left above a footer of
// the given height. Like a terminal, it keeps the newest (bottom) lines and
// reports how many were scrolled off the top.
func (m *Model) body(footerRows int) (lines []string, scrolled int) {
	rows := max(m.height-footerRows, 1)
	lines = strings.Split(m.renderer().Render(m.doc.Root()), "\n")
	if len(lines) > rows {
		scrolled = len(lines) - rows
		lines = lines[scrolled:]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lines, scrolled
}

func (m *Model) footer() string {
	st := viz.NewStyles(viz.CurrentTheme)
	th := viz.CurrentTheme

	left := st.Footer.Render(fmt.Sprintf("© %d ", m.now.Year())) +
		viz.GradientText(m.cfg.Content.Owner, th.Primary, th.Accent)
	if m.seq.Started() {
		left += st.Footer.Render(fmt.Sprintf("  [%d/%d]", m.seq.Current()+1, m.seq.Len()))
	}
	right := st.Footer.Render(m.now.Format("Mon Jan 2 2006 15:04:05"))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	top := left + strings.Repeat(" ", gap) + right

	var keys string
	if m.Current() == section.VideoID {
		keys = m.help.View(helpKeys{m.router.Keys(), m.router.Video(), true})
	} else {
		keys = m.help.View(helpKeys{nav: m.router.Keys()})
	}
	if m.status != "" {
		keys = st.Status.Render(m.status) + "  " + keys
	}
	return top + "\n" + keys
}

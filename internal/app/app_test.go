package app

import (
	"errors"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/section"
	"github.com/san-kum/termresume/internal/viz"
)

type recorder struct {
	links []string
	err   error
}

func (r *recorder) Open(link string) error {
	r.links = append(r.links, link)
	return r.err
}

// drain runs cmd and every command that follows from it, expanding
// batches, until nothing is left.
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 500; i++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		_, next := m.Update(msg)
		queue = append(queue, next)
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }
func runes(r rune) tea.KeyMsg         { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

var _ = Describe("Model", func() {
	var (
		m      *Model
		opener *recorder
		now    time.Time
	)

	press := func(msg tea.KeyMsg) {
		_, cmd := m.Update(msg)
		drain(m, cmd)
	}

	goTo := func(id string) {
		for i, p := range section.PaneIDs {
			if p == id {
				drain(m, m.navigate(m.seq.Activate(i)))
				return
			}
		}
		Fail("unknown pane " + id)
	}

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		cfg.ReducedMotion = true
		opener = &recorder{}
		now = time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
		m = New(cfg, nil,
			WithOpener(opener),
			WithRand(rand.New(rand.NewSource(1))),
			WithClock(func() time.Time { return now }),
		)
		m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	})

	It("plays the intro before the first pane", func() {
		drain(m, m.intro.Start())
		Expect(m.Current()).To(Equal(section.SkillsID))
		_, ok := m.doc.Mount(section.IntroID)
		Expect(ok).To(BeFalse())
	})

	It("skips the intro on enter and shows the skills pane", func() {
		Expect(m.Current()).To(BeEmpty())
		press(keyMsg(tea.KeyEnter))

		Expect(m.Current()).To(Equal(section.SkillsID))
		view := m.View()
		Expect(view).To(ContainSubstring("> ./skills"))
		Expect(view).To(ContainSubstring("© 2025 ShadowMP252"))
		Expect(view).To(ContainSubstring("[1/6]"))
	})

	It("navigates with keys and clamps at both ends", func() {
		press(keyMsg(tea.KeyEnter))
		for range 10 {
			press(keyMsg(tea.KeyDown))
		}
		Expect(m.Current()).To(Equal(section.BlogID))

		press(runes('k'))
		Expect(m.Current()).To(Equal(section.VideoID))

		for range 10 {
			press(keyMsg(tea.KeyUp))
		}
		Expect(m.Current()).To(Equal(section.SkillsID))
	})

	It("advances on an upward swipe", func() {
		press(keyMsg(tea.KeyEnter))
		m.Update(tea.MouseMsg{X: 5, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		_, cmd := m.Update(tea.MouseMsg{X: 5, Y: 17, Action: tea.MouseActionRelease})
		drain(m, cmd)
		Expect(m.Current()).To(Equal(section.CertificationsID))

		m.Update(tea.MouseMsg{X: 5, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m.Update(tea.MouseMsg{X: 5, Y: 19, Action: tea.MouseActionRelease})
		Expect(m.Current()).To(Equal(section.CertificationsID))
	})

	Context("on the video pane", func() {
		BeforeEach(func() {
			press(keyMsg(tea.KeyEnter))
			goTo(section.VideoID)
		})

		It("drives the player", func() {
			player := m.set.Player
			m.Update(keyMsg(tea.KeyRight))
			Expect(player.Position()).To(Equal(5 * time.Second))
			m.Update(keyMsg(tea.KeyLeft))
			m.Update(keyMsg(tea.KeyLeft))
			Expect(player.Position()).To(BeZero())

			m.Update(runes('m'))
			Expect(player.Muted()).To(BeTrue())

			m.Update(runes('f'))
			Expect(player.Fullscreen()).To(BeFalse())
			Expect(m.View()).To(ContainSubstring("fullscreen unavailable"))

			m.Update(runes(' '))
			Expect(player.Playing()).To(BeTrue())
			press(keyMsg(tea.KeyDown))
			Expect(player.Playing()).To(BeFalse())
		})

		It("shows the transport keys", func() {
			Expect(m.View()).To(ContainSubstring("play/pause"))
		})
	})

	Context("on the blog pane", func() {
		BeforeEach(func() {
			press(keyMsg(tea.KeyEnter))
			goTo(section.BlogID)
		})

		It("filters posts while keeping navigation keys for the input", func() {
			m.Update(runes('/'))
			Expect(m.set.Posts.Focused()).To(BeTrue())

			for _, r := range "collision" {
				m.Update(runes(r))
			}
			Expect(m.set.Posts.Matches()).To(HaveLen(1))

			m.Update(runes('j'))
			Expect(m.Current()).To(Equal(section.BlogID))
			Expect(m.set.Posts.Input.Value()).To(Equal("collisionj"))
			m.Update(keyMsg(tea.KeyBackspace))

			m.Update(keyMsg(tea.KeyEsc))
			Expect(m.set.Posts.Focused()).To(BeFalse())
		})

		It("opens the link of a single match", func() {
			opener.err = errors.New("unsupported")
			m.set.Posts.Apply("embedded")
			m.Update(runes('o'))
			Expect(opener.links).To(Equal([]string{"#"}))
			Expect(m.View()).To(ContainSubstring(`cannot open "#"`))
		})
	})

	Context("on the projects pane", func() {
		var graph *physics.Graph

		BeforeEach(func() {
			press(keyMsg(tea.KeyEnter))
			goTo(section.ProjectsID)
			graph = m.set.Projects.Graph
		})

		cellOf := func(n *physics.Node) (int, int) {
			top, ok := m.graphTop()
			Expect(ok).To(BeTrue())
			s := m.set.Projects.View.Scale()
			return int(n.X / s.X), int(n.Y/s.Y) + top
		}

		It("draws the graph", func() {
			Expect(m.View()).To(ContainSubstring("Robotics"))
		})

		It("throws a dragged node", func() {
			n := graph.Node("ai")
			col, row := cellOf(n)
			x0 := n.X

			m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			Expect(m.drag).To(BeIdenticalTo(n))
			Expect(n.Drag.Phase).To(Equal(physics.Dragging))

			now = now.Add(40 * time.Millisecond)
			m.Update(tea.MouseMsg{X: col + 3, Y: row, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			Expect(n.X).To(BeNumerically(">", x0))

			now = now.Add(10 * time.Millisecond)
			m.Update(tea.MouseMsg{X: col + 3, Y: row, Action: tea.MouseActionRelease})
			Expect(m.drag).To(BeNil())
			Expect(n.Drag.Phase).To(Equal(physics.Idle))
			Expect(n.VX).To(BeNumerically(">", 0))
			Expect(m.Current()).To(Equal(section.ProjectsID))
			Expect(opener.links).To(BeEmpty())
		})

		It("opens a node's link on a click", func() {
			n := graph.Node("rob")
			col, row := cellOf(n)

			m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			now = now.Add(100 * time.Millisecond)
			m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease})

			Expect(opener.links).To(Equal([]string{n.Link}))
		})

		It("lets go of a held node when the pane is left", func() {
			n := graph.Node("ai")
			col, row := cellOf(n)

			m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			Expect(graph.Dragged()).To(BeIdenticalTo(n))

			now = now.Add(time.Second)
			press(keyMsg(tea.KeyDown))
			Expect(m.Current()).To(Equal(section.VideoID))
			Expect(m.drag).To(BeNil())
			Expect(n.Drag.Phase).To(Equal(physics.Idle))
			Expect(graph.Dragged()).To(BeNil())
			Expect(opener.links).To(BeEmpty())
		})

		It("recovers from a lost release", func() {
			a, b := graph.Node("ai"), graph.Node("web")
			colA, rowA := cellOf(a)
			colB, rowB := cellOf(b)

			m.Update(tea.MouseMsg{X: colA, Y: rowA, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			now = now.Add(time.Second)
			m.Update(tea.MouseMsg{X: colB, Y: rowB, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

			Expect(a.Drag.Phase).To(Equal(physics.Idle))
			Expect(m.drag).To(BeIdenticalTo(b))
			Expect(b.Drag.Phase).To(Equal(physics.Dragging))
		})

		It("ignores presses outside the nodes", func() {
			Expect(m.nodeAt(0, 0)).To(BeNil())
			Expect(m.nodeAt(-1, 5)).To(BeNil())
		})
	})

	It("cycles the theme", func() {
		DeferCleanup(viz.SetTheme, viz.ThemeTerminal.Name)
		press(keyMsg(tea.KeyEnter))
		m.Update(runes('t'))
		Expect(m.View()).To(ContainSubstring("theme: cyberpunk"))
	})
})

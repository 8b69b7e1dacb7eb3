package section

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/pane"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/reveal"
	"github.com/san-kum/termresume/internal/video"
	"github.com/san-kum/termresume/internal/viz"
)

// drain runs cmd and feeds each resulting message to update until no
// command is left.
func drain(cmd tea.Cmd, update func(tea.Msg) tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	for i := 0; cmd != nil && i < 1000; i++ {
		msg := cmd()
		seen = append(seen, msg)
		cmd = update(msg)
	}
	return seen
}

func newEnv(reduced bool) Env {
	cfg := config.DefaultConfig()
	d := doc.New()
	return Env{
		Doc:     d,
		Caret:   doc.NewCaret(d),
		Content: &cfg.Content,
		Rate:    time.Millisecond,
		Reduced: reduced,
	}
}

func newSet(env Env) *Set {
	cfg := config.DefaultConfig()
	g := physics.NewGraph(cfg.Physics, cfg.GraphNodes(), rand.New(rand.NewSource(3)))
	return NewSet(env, g, video.New(env.Content.Video.Source, env.Content.Video.Duration))
}

func onlyJob(s *Set) *Job {
	Expect(s.jobs).To(HaveLen(1))
	for _, j := range s.jobs {
		return j
	}
	return nil
}

var _ = Describe("Build", func() {
	var env Env

	BeforeEach(func() {
		env = newEnv(false)
	})

	descriptor := func(body ...*doc.Node) Descriptor {
		return Descriptor{
			PaneID: SkillsID,
			Header: "> ./skills",
			Hint:   `echo "Press Enter to Continue...."`,
			Body:   func() []*doc.Node { return body },
		}
	}

	It("does nothing without a mount point", func() {
		job, err := Build(env, descriptor())
		Expect(err).To(MatchError(ErrMissingMount))
		Expect(job).To(BeNil())
		Expect(env.Doc.Root().Children()).To(BeEmpty())
	})

	It("mounts header, body and hint with the caret after the command", func() {
		m := env.Doc.AddMount(SkillsID)
		body := doc.NewNode(doc.KindText, "body")

		job, err := Build(env, descriptor(body))
		Expect(err).NotTo(HaveOccurred())

		kids := m.Children()
		Expect(kids).To(HaveLen(3))
		Expect(kids[0]).To(BeIdenticalTo(job.Header))
		Expect(kids[1]).To(BeIdenticalTo(body))
		Expect(kids[2]).To(BeIdenticalTo(job.Hint))
		Expect(m.Opacity).To(Equal(1.0))

		cmd := job.Hint.Children()[1]
		Expect(cmd.Class).To(Equal(doc.ClassCmd))
		Expect(env.Caret.Placement().Anchor).To(BeIdenticalTo(cmd))
		Expect(cmd.Next()).To(BeIdenticalTo(env.Caret.Node()))

		Expect(job.Header.Content()).To(BeEmpty())
		drain(job.Start(), func(msg tea.Msg) tea.Cmd {
			if t, ok := msg.(reveal.TickMsg); ok {
				return job.Revealer.Update(t)
			}
			return nil
		})
		Expect(job.Header.Content()).To(Equal("> ./skills"))
	})

	It("replaces earlier content on a rebuild", func() {
		m := env.Doc.AddMount(SkillsID)
		m.Append(doc.NewNode(doc.KindText, "stale"))

		_, err := Build(env, descriptor())
		Expect(err).NotTo(HaveOccurred())
		_, err = Build(env, descriptor())
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Children()).To(HaveLen(2))
		Expect(env.Doc.FindClass(doc.CaretClass)).To(HaveLen(1))
	})

	It("finishes at once under reduced motion", func() {
		env.Reduced = true
		env.Doc.AddMount(SkillsID)
		job, err := Build(env, descriptor())
		Expect(err).NotTo(HaveOccurred())

		msg := job.Start()()
		Expect(msg).To(Equal(reveal.DoneMsg{ID: job.Revealer.ID()}))
		Expect(job.Header.Content()).To(Equal("> ./skills"))
	})
})

var _ = Describe("Set", func() {
	var (
		env Env
		set *Set
		seq *pane.Sequencer
	)

	setup := func(reduced bool) {
		env = newEnv(reduced)
		set = newSet(env)
		seq = pane.NewSequencer(env.Doc, nil, set.Panes()...)
		set.Attach(seq)
	}

	render := func(id string) string {
		m, ok := env.Doc.Mount(id)
		Expect(ok).To(BeTrue())
		return viz.NewRenderer(120).Render(m)
	}

	It("creates a hidden mount per pane", func() {
		setup(true)
		Expect(seq.Len()).To(Equal(len(PaneIDs)))
		for _, id := range PaneIDs {
			m, ok := env.Doc.Mount(id)
			Expect(ok).To(BeTrue())
			Expect(m.Hidden).To(BeTrue())
		}
	})

	It("builds the skills pane with its list and table", func() {
		setup(true)
		drain(seq.Start(), set.Update)
		Expect(seq.Building(SkillsID)).To(BeFalse())
		Expect(set.Building()).To(BeFalse())

		out := render(SkillsID)
		Expect(out).To(ContainSubstring("> ./skills"))
		Expect(out).To(ContainSubstring("Tooling Proficiency"))
		Expect(out).To(ContainSubstring("Embedded-Devices"))
		Expect(out).To(ContainSubstring(`echo "Press Enter to Continue...."`))
	})

	It("builds the certification and experience panes", func() {
		setup(true)
		drain(seq.Activate(1), set.Update)
		Expect(render(CertificationsID)).To(ContainSubstring("CompTIA Network+"))

		drain(seq.Advance(), set.Update)
		Expect(render(ExperienceID)).To(ContainSubstring("Robotics / Embedded R&D"))
	})

	It("reveals the graph after the header and ties the loop to visibility", func() {
		setup(false)
		Expect(seq.Activate(3)).NotTo(BeNil())
		Expect(set.Projects.Node().Hidden).To(BeTrue())
		Expect(seq.Building(ProjectsID)).To(BeTrue())

		job := onlyJob(set)
		job.Revealer.Sequence().Finish()
		Expect(set.Update(reveal.DoneMsg{ID: job.Revealer.ID()})).NotTo(BeNil())
		Expect(seq.Building(ProjectsID)).To(BeFalse())
		Expect(set.Projects.Node().Hidden).To(BeFalse())
		Expect(set.Projects.Loop.Running()).To(BeTrue())

		seq.Advance()
		Expect(set.Projects.Loop.Running()).To(BeFalse())

		seq.Retreat()
		Expect(set.Flush()).NotTo(BeNil())
		Expect(set.Projects.Loop.Running()).To(BeTrue())

		seq.Unmount(ProjectsID)
		Expect(set.Projects.Loop.TornDown()).To(BeTrue())
	})

	It("holds the loop back when the pane is left while its header types", func() {
		setup(false)
		Expect(seq.Activate(3)).NotTo(BeNil())
		job := onlyJob(set)

		seq.Advance()
		job.Revealer.Sequence().Finish()
		Expect(set.Update(reveal.DoneMsg{ID: job.Revealer.ID()})).To(BeNil())
		Expect(set.Projects.Loop.Started()).To(BeTrue())
		Expect(set.Projects.Loop.Running()).To(BeFalse())

		seq.Retreat()
		Expect(set.Flush()).NotTo(BeNil())
		Expect(set.Projects.Loop.Running()).To(BeTrue())
	})

	It("keeps the graph still under reduced motion", func() {
		setup(true)
		drain(seq.Activate(3), set.Update)
		Expect(set.Projects.Node().Hidden).To(BeFalse())
		Expect(set.Projects.Loop.Started()).To(BeFalse())
		for _, n := range set.Projects.Graph.Nodes() {
			Expect(n.Speed()).To(BeZero())
		}
	})

	It("pauses the video when its pane is left", func() {
		setup(true)
		drain(seq.Activate(4), set.Update)
		Expect(render(VideoID)).To(ContainSubstring("developing.mp4"))

		Expect(set.Player.Play()).NotTo(BeNil())
		seq.Advance()
		Expect(set.Player.Playing()).To(BeFalse())
	})

	It("ignores messages it does not own", func() {
		setup(true)
		Expect(set.Update(reveal.TickMsg{ID: -1})).To(BeNil())
		Expect(set.Update(reveal.DoneMsg{ID: -1})).To(BeNil())
		Expect(set.Update(tea.WindowSizeMsg{})).To(BeNil())
	})
})

var _ = Describe("Posts", func() {
	var (
		env Env
		set *Set
	)

	BeforeEach(func() {
		env = newEnv(true)
		set = newSet(env)
		seq := pane.NewSequencer(env.Doc, nil, set.Panes()...)
		set.Attach(seq)
		drain(seq.Activate(5), set.Update)
	})

	It("lists every post until filtered", func() {
		Expect(set.Posts.Matches()).To(HaveLen(6))
		Expect(set.Posts.detail.Hidden).To(BeTrue())
	})

	It("narrows the cards and details a single match", func() {
		Expect(set.Posts.Apply("COLLISION")).To(Equal(1))
		Expect(set.Posts.Matches()[0].Title).To(Equal("Physics Nodes"))
		Expect(set.Posts.detail.Hidden).To(BeFalse())
		link, ok := set.Posts.Link()
		Expect(ok).To(BeTrue())
		Expect(link.Label).To(Equal("Read more"))

		v, ok := set.Posts.detail.Data.(viz.Viewer)
		Expect(ok).To(BeTrue())
		Expect(v.View()).To(ContainSubstring("Physics"))

		Expect(set.Posts.Apply("pipelines and more")).To(Equal(0))
		Expect(set.Posts.detail.Hidden).To(BeTrue())

		Expect(set.Posts.Apply("")).To(Equal(6))
		_, ok = set.Posts.Link()
		Expect(ok).To(BeFalse())
	})

	It("filters as the user types and leaves on enter", func() {
		set.Posts.Focus()
		Expect(set.Posts.Focused()).To(BeTrue())
		for _, r := range "embedded" {
			set.Posts.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
		Expect(set.Posts.Matches()).To(HaveLen(1))

		set.Posts.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(set.Posts.Focused()).To(BeFalse())
		Expect(set.Posts.Input.Value()).To(Equal("embedded"))
	})
})

var _ = Describe("Intro", func() {
	It("types every prompt and then removes itself", func() {
		env := newEnv(false)
		prompts := env.Content.Intro
		in := NewIntro(env, prompts, time.Millisecond, time.Millisecond)

		var cmds []string
		msgs := drain(in.Start(), func(msg tea.Msg) tea.Cmd {
			if _, ok := msg.(introStepMsg); ok && len(cmds) < len(prompts) {
				m, _ := env.Doc.Mount(IntroID)
				cmds = append(cmds, viz.NewRenderer(80).Render(m))
			}
			return in.Update(msg)
		})

		Expect(msgs[len(msgs)-1]).To(BeAssignableToTypeOf(IntroDoneMsg{}))
		Expect(in.Done()).To(BeTrue())
		_, ok := env.Doc.Mount(IntroID)
		Expect(ok).To(BeFalse())
		Expect(strings.Join(cmds, "\n")).To(ContainSubstring("./resume --interactive"))
	})

	It("can be skipped", func() {
		env := newEnv(false)
		in := NewIntro(env, env.Content.Intro, time.Hour, time.Hour)
		in.Start()

		msg := in.Skip()()
		Expect(msg).To(BeAssignableToTypeOf(IntroDoneMsg{}))
		Expect(in.Skip()).To(BeNil())
		Expect(in.Update(reveal.TickMsg{})).To(BeNil())
	})

	It("runs without delays under reduced motion", func() {
		env := newEnv(true)
		in := NewIntro(env, env.Content.Intro, time.Hour, time.Hour)
		msgs := drain(in.Start(), in.Update)
		Expect(msgs[len(msgs)-1]).To(BeAssignableToTypeOf(IntroDoneMsg{}))
	})
})

package pane_test

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/pane"
)

var ids = []string{
	"skills-section",
	"certifications-section",
	"experience-section",
	"projects-section",
	"video-section",
	"blog-section",
}

type doneMsg struct{}

var _ = Describe("Sequencer", func() {
	var (
		d      *doc.Document
		seq    *pane.Sequencer
		builds map[string]int
	)

	BeforeEach(func() {
		d = doc.New()
		builds = make(map[string]int)
		panes := make([]*pane.Pane, 0, len(ids))
		for _, id := range ids {
			d.AddMount(id)
			panes = append(panes, pane.New(id, func() tea.Cmd {
				builds[id]++
				return func() tea.Msg { return doneMsg{} }
			}))
		}
		seq = pane.NewSequencer(d, nil, panes...)
	})

	visible := func() []string {
		var out []string
		for _, id := range ids {
			m, ok := d.Mount(id)
			Expect(ok).To(BeTrue())
			if !m.Hidden {
				out = append(out, id)
			}
		}
		return out
	}

	It("starts on the first pane", func() {
		Expect(seq.Started()).To(BeFalse())
		Expect(seq.Start()).NotTo(BeNil())
		Expect(seq.Current()).To(Equal(0))
		Expect(visible()).To(Equal([]string{"skills-section"}))
	})

	It("clamps advance at the last pane", func() {
		seq.Start()
		for i := 0; i < 5; i++ {
			seq.Advance()
		}
		Expect(seq.Current()).To(Equal(5))

		Expect(seq.Advance()).To(BeNil())
		Expect(seq.Current()).To(Equal(5))
		Expect(visible()).To(Equal([]string{"blog-section"}))
	})

	It("clamps retreat at the first pane", func() {
		seq.Start()
		seq.Retreat()
		Expect(seq.Current()).To(Equal(0))
	})

	It("builds each pane exactly once", func() {
		seq.Start()
		seq.Advance()
		seq.Retreat()
		seq.Advance()

		Expect(builds["skills-section"]).To(Equal(1))
		Expect(builds["certifications-section"]).To(Equal(1))
		Expect(seq.CurrentPane().Ready()).To(BeTrue())
	})

	It("tracks an in-flight build until it is marked done", func() {
		seq.Start()
		Expect(seq.Building("skills-section")).To(BeTrue())

		seq.Advance()
		seq.Retreat()
		Expect(builds["skills-section"]).To(Equal(1))

		seq.BuildDone("skills-section")
		Expect(seq.Building("skills-section")).To(BeFalse())
	})

	It("emits show and hide events", func() {
		var shown, hidden []string
		seq.OnShow(func(id string) { shown = append(shown, id) })
		seq.OnHide(func(id string) { hidden = append(hidden, id) })

		seq.Start()
		seq.Advance()
		seq.Advance()
		seq.Retreat()

		Expect(shown).To(Equal([]string{"skills-section", "certifications-section", "experience-section", "certifications-section"}))
		Expect(hidden).To(Equal([]string{"skills-section", "certifications-section", "experience-section"}))
	})

	It("emits unmount events and tolerates the missing mount afterwards", func() {
		var unmounted []string
		seq.OnUnmount(func(id string) { unmounted = append(unmounted, id) })

		seq.Unmount("projects-section")
		seq.Unmount("projects-section")
		Expect(unmounted).To(Equal([]string{"projects-section"}))

		seq.Start()
		for i := 0; i < 3; i++ {
			seq.Advance()
		}
		Expect(seq.Current()).To(Equal(3))
		Expect(builds["projects-section"]).To(Equal(1))
	})

	It("does nothing when there are no panes", func() {
		empty := pane.NewSequencer(doc.New(), nil)
		Expect(empty.Start()).To(BeNil())
		Expect(empty.CurrentPane()).To(BeNil())
	})
})

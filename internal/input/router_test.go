package input_test

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termresume/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var _ = Describe("Router", func() {
	var r *input.Router

	BeforeEach(func() {
		r = input.NewRouter(input.Config{})
	})

	DescribeTable("navigation keys",
		func(msg tea.KeyMsg, want input.Action) {
			Expect(r.Key(msg, input.TargetNone, false)).To(Equal(want))
		},
		Entry("down arrow", tea.KeyMsg{Type: tea.KeyDown}, input.Advance),
		Entry("page down", tea.KeyMsg{Type: tea.KeyPgDown}, input.Advance),
		Entry("j", runeKey('j'), input.Advance),
		Entry("enter", tea.KeyMsg{Type: tea.KeyEnter}, input.Advance),
		Entry("up arrow", tea.KeyMsg{Type: tea.KeyUp}, input.Retreat),
		Entry("page up", tea.KeyMsg{Type: tea.KeyPgUp}, input.Retreat),
		Entry("k", runeKey('k'), input.Retreat),
		Entry("q", runeKey('q'), input.Quit),
		Entry("o", runeKey('o'), input.OpenLink),
		Entry("unbound", runeKey('z'), input.None),
	)

	DescribeTable("focus suppression",
		func(focus input.Target) {
			Expect(r.Key(runeKey('j'), focus, false)).To(Equal(input.None))
			Expect(r.Key(tea.KeyMsg{Type: tea.KeyDown}, focus, false)).To(Equal(input.None))
			Expect(r.Key(tea.KeyMsg{Type: tea.KeyEsc}, focus, false)).To(Equal(input.Blur))
			Expect(r.Key(tea.KeyMsg{Type: tea.KeyCtrlC}, focus, false)).To(Equal(input.Quit))
		},
		Entry("input", input.TargetInput),
		Entry("textarea", input.TargetTextarea),
		Entry("select", input.TargetSelect),
		Entry("button", input.TargetButton),
		Entry("link", input.TargetLink),
	)

	It("does not suppress for the video element", func() {
		Expect(r.Key(runeKey('j'), input.TargetVideo, false)).To(Equal(input.Advance))
	})

	Context("on the video pane", func() {
		It("intercepts transport keys regardless of focus", func() {
			Expect(r.Key(runeKey(' '), input.TargetInput, true)).To(Equal(input.PlayPause))
			Expect(r.Key(tea.KeyMsg{Type: tea.KeyLeft}, input.TargetInput, true)).To(Equal(input.SeekBack))
			Expect(r.Key(tea.KeyMsg{Type: tea.KeyRight}, input.TargetNone, true)).To(Equal(input.SeekForward))
		})

		It("maps mute and fullscreen when nothing is focused", func() {
			Expect(r.Key(runeKey('m'), input.TargetNone, true)).To(Equal(input.ToggleMute))
			Expect(r.Key(runeKey('f'), input.TargetVideo, true)).To(Equal(input.ToggleFullscreen))
		})

		It("still navigates", func() {
			Expect(r.Key(runeKey('j'), input.TargetNone, true)).To(Equal(input.Advance))
		})
	})

	Context("vertical gestures", func() {
		It("ignores moves inside the dead zone", func() {
			r.TouchStart(300)
			Expect(r.TouchEnd(261)).To(Equal(input.None))
		})

		It("advances on an upward swipe", func() {
			r.TouchStart(300)
			Expect(r.TouchEnd(200)).To(Equal(input.Advance))
		})

		It("retreats on a downward swipe", func() {
			r.TouchStart(100)
			Expect(r.TouchEnd(140)).To(Equal(input.Retreat))
		})

		It("ignores a release without a start", func() {
			Expect(r.TouchEnd(0)).To(Equal(input.None))
		})

		It("converts terminal rows to pixels", func() {
			press := tea.MouseMsg{X: 1, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
			release := tea.MouseMsg{X: 1, Y: 17, Action: tea.MouseActionRelease}

			Expect(r.Mouse(press)).To(Equal(input.None))
			Expect(r.Mouse(release)).To(Equal(input.Advance))

			r.Mouse(press)
			Expect(r.Mouse(tea.MouseMsg{Y: 22, Action: tea.MouseActionRelease})).To(Equal(input.None))
		})
	})
})

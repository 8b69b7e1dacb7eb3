package section

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/reveal"
)

// IntroID is the mount point of the opening prompts.
const IntroID = "intro"

var lastIntroID atomic.Int64

// IntroDoneMsg reports that the opening prompts have been typed, held and
// removed.
type IntroDoneMsg struct{ ID int64 }

type introStepMsg struct {
	ID   int64
	Step int
}

// Intro types each prompt's command in turn, pauses between prompts and
// holds the finished screen before removing it.
type Intro struct {
	id      int64
	env     Env
	prompts []config.Prompt
	pause   time.Duration
	hold    time.Duration

	mount *doc.Node
	lines []*doc.Node
	step  int
	rev   *reveal.Revealer
	done  bool
}

func NewIntro(env Env, prompts []config.Prompt, pause, hold time.Duration) *Intro {
	if env.Reduced {
		pause, hold = 0, 0
	}
	return &Intro{id: lastIntroID.Add(1), env: env, prompts: prompts, pause: pause, hold: hold}
}

func (in *Intro) Done() bool { return in.done }

// Start mounts every prompt (invisible) and begins typing the first one.
func (in *Intro) Start() tea.Cmd {
	in.mount = in.env.Doc.AddMount(IntroID)
	for _, p := range in.prompts {
		line := doc.NewNode(doc.KindPrompt, "")
		line.Opacity = 0
		line.Append(text(doc.ClassSig, p.Sig), text(doc.ClassCmd, p.Cmd))
		in.mount.Append(line)
		in.lines = append(in.lines, line)
	}
	rule := doc.NewNode(doc.KindRule, "")
	in.mount.Append(rule)
	return in.begin(0)
}

// Update handles the intro's own reveal ticks and timers.
func (in *Intro) Update(msg tea.Msg) tea.Cmd {
	if in.done {
		return nil
	}
	switch msg := msg.(type) {
	case reveal.TickMsg:
		if in.rev != nil {
			return in.rev.Update(msg)
		}
	case reveal.DoneMsg:
		if in.rev == nil || msg.ID != in.rev.ID() {
			return nil
		}
		in.rev = nil
		next := in.step + 1
		delay := in.pause
		if next >= len(in.lines) {
			delay += in.hold
		}
		return in.after(delay, next)
	case introStepMsg:
		if msg.ID != in.id {
			return nil
		}
		if msg.Step < len(in.lines) {
			return in.begin(msg.Step)
		}
		return in.finish()
	}
	return nil
}

// Skip ends the intro at once.
func (in *Intro) Skip() tea.Cmd {
	if in.done {
		return nil
	}
	in.rev = nil
	return in.finish()
}

func (in *Intro) begin(step int) tea.Cmd {
	in.step = step
	if step >= len(in.lines) {
		return in.after(in.hold, step)
	}
	line := in.lines[step]
	cmd := line.Children()[1]
	units := doc.WrapText(cmd)
	in.env.Caret.PlaceAfter(cmd)
	line.Opacity = 1

	in.rev = reveal.New(reveal.NewSequence(units...), in.env.Rate, in.env.Reduced)
	return in.rev.Start()
}

func (in *Intro) after(d time.Duration, step int) tea.Cmd {
	id := in.id
	msg := introStepMsg{ID: id, Step: step}
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (in *Intro) finish() tea.Cmd {
	in.done = true
	in.env.Doc.Unmount(IntroID)
	id := in.id
	return func() tea.Msg { return IntroDoneMsg{ID: id} }
}

package section

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/pane"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/reveal"
	"github.com/san-kum/termresume/internal/video"
	"github.com/san-kum/termresume/internal/viz"
)

// Set holds the interactive components of every pane and routes their
// messages. Each pane's lifecycle hooks are wired through Attach.
type Set struct {
	Projects  *Projects
	Player    *video.Player
	VideoView *viz.VideoView
	Posts     *Posts

	env     Env
	seq     *pane.Sequencer
	jobs    map[int64]*Job
	pending []tea.Cmd
}

func NewSet(env Env, g *physics.Graph, player *video.Player) *Set {
	if env.Log == nil {
		env.Log = zap.NewNop()
	}
	return &Set{
		Projects:  NewProjects(g, env.Reduced),
		Player:    player,
		VideoView: viz.NewVideoView(player),
		Posts:     NewPosts(env.Content.Posts, env.Log),
		env:       env,
		jobs:      make(map[int64]*Job),
	}
}

// Descriptor returns the build description of the pane with the given ID.
// Unknown IDs get a header and hint line only.
func (s *Set) Descriptor(id string) Descriptor {
	d := Descriptor{PaneID: id}
	if p, ok := s.env.Content.Pane(id); ok {
		d.Header, d.Hint = p.Header, p.Hint
	}

	c := s.env.Content
	switch id {
	case SkillsID:
		d.Body = func() []*doc.Node { return skillsBody(c) }
	case CertificationsID:
		d.Body = func() []*doc.Node { return certificationsBody(c) }
	case ExperienceID:
		d.Body = func() []*doc.Node { return experienceBody(c) }
	case ProjectsID:
		d.Body = s.Projects.body
		d.AfterReveal = s.Projects.afterReveal
	case VideoID:
		d.Body = s.videoBody
	case BlogID:
		d.Body = s.Posts.body
	}
	return d
}

// Panes returns one lazily built pane per configured pane, in order, and
// adds a mount point for each to the document.
func (s *Set) Panes() []*pane.Pane {
	var out []*pane.Pane
	for _, p := range s.env.Content.Panes {
		d := s.Descriptor(p.ID)
		if _, ok := s.env.Doc.Mount(p.ID); !ok {
			m := s.env.Doc.AddMount(p.ID)
			m.Hidden = true
		}
		out = append(out, pane.New(p.ID, func() tea.Cmd { return s.build(d) }))
	}
	return out
}

// Attach subscribes the components to the sequencer's lifecycle: the
// physics loop pauses while its pane is hidden and is torn down on unmount;
// the player pauses when the video pane is left.
func (s *Set) Attach(seq *pane.Sequencer) {
	s.seq = seq
	seq.OnShow(func(id string) {
		if id == ProjectsID {
			s.pending = append(s.pending, s.Projects.Show())
		}
	})
	seq.OnHide(func(id string) {
		switch id {
		case ProjectsID:
			s.Projects.Hide()
		case VideoID:
			s.Player.Pause()
		case BlogID:
			s.Posts.Blur()
		}
	})
	seq.OnUnmount(func(id string) {
		if id == ProjectsID {
			s.Projects.Teardown()
		}
	})
}

// Flush returns the commands queued by lifecycle hooks.
func (s *Set) Flush() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Building reports whether a header reveal is still running.
func (s *Set) Building() bool { return len(s.jobs) > 0 }

// Update routes reveal, frame and video messages to their owners.
func (s *Set) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case reveal.TickMsg:
		if job, ok := s.jobs[msg.ID]; ok {
			return job.Revealer.Update(msg)
		}
	case reveal.DoneMsg:
		job, ok := s.jobs[msg.ID]
		if !ok {
			return nil
		}
		delete(s.jobs, msg.ID)
		if s.seq != nil {
			s.seq.BuildDone(job.PaneID)
		}
		s.env.Log.Debug("pane revealed", zap.String("pane", job.PaneID))
		return job.Finish()
	case physics.FrameMsg:
		return s.Projects.Loop.Update(msg)
	case video.TickMsg:
		return s.Player.Update(msg)
	}
	return nil
}

func (s *Set) build(d Descriptor) tea.Cmd {
	job, err := Build(s.env, d)
	if err != nil {
		return nil
	}
	s.jobs[job.Revealer.ID()] = job
	return job.Start()
}

func (s *Set) videoBody() []*doc.Node {
	n := doc.NewNode(doc.KindVideo, "")
	n.Data = s.VideoView
	return []*doc.Node{n}
}

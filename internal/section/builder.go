// Package section builds the content of each resume pane.
//
// Every pane goes through the same [Build]: its mount is cleared and filled
// with a header and a body, the hint line is appended with the caret after
// its command, and the header is typed out by a [reveal.Revealer]. Panes
// differ only in their [Descriptor].
package section

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/reveal"
)

// Pane mount point IDs, in navigation order.
const (
	SkillsID         = "skills-section"
	CertificationsID = "certifications-section"
	ExperienceID     = "experience-section"
	ProjectsID       = "projects-section"
	VideoID          = "video-section"
	BlogID           = "blog-section"
)

var PaneIDs = []string{SkillsID, CertificationsID, ExperienceID, ProjectsID, VideoID, BlogID}

// ErrMissingMount is reported when a pane's mount point is not in the
// document. Building such a pane does nothing.
var ErrMissingMount = errors.New("section: mount point not found")

// Env is what every builder needs from the application.
type Env struct {
	Doc     *doc.Document
	Caret   *doc.Caret
	Content *config.Content
	Rate    time.Duration
	Reduced bool
	Log     *zap.Logger
}

// Descriptor is the per-pane part of a build.
type Descriptor struct {
	PaneID string
	Header string
	Hint   string

	// Body returns the nodes placed between the header and the hint line.
	Body func() []*doc.Node

	// AfterReveal runs once the header has been typed.
	AfterReveal func() tea.Cmd
}

// Job is a build whose header reveal is still running.
type Job struct {
	PaneID   string
	Header   *doc.Node
	Hint     *doc.Node
	Revealer *reveal.Revealer

	after func() tea.Cmd
}

// Start begins the header reveal.
func (j *Job) Start() tea.Cmd { return j.Revealer.Start() }

// Finish runs the descriptor's post-reveal step, if any.
func (j *Job) Finish() tea.Cmd {
	if j.after == nil {
		return nil
	}
	return j.after()
}

// Build mounts d's content into its pane. The returned job must be started
// to type the header; the pane is complete when the job's revealer reports
// done.
func Build(env Env, d Descriptor) (*Job, error) {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}

	mount, ok := env.Doc.Mount(d.PaneID)
	if !ok {
		log.Debug("skipping build", zap.String("pane", d.PaneID), zap.Error(ErrMissingMount))
		return nil, ErrMissingMount
	}

	header := doc.NewNode(doc.KindHeader, d.Header)
	mount.Clear()
	mount.Append(header)
	if d.Body != nil {
		mount.Append(d.Body()...)
	}
	mount.Opacity = 0

	units := doc.WrapText(header)

	hint, cmd := HintLine(d.Hint)
	mount.Append(hint)
	env.Caret.PlaceAfter(cmd)
	mount.Opacity = 1

	seq := reveal.NewSequence(units...)
	log.Debug("pane built", zap.String("pane", d.PaneID), zap.Int("units", len(units)))
	return &Job{
		PaneID:   d.PaneID,
		Header:   header,
		Hint:     hint,
		Revealer: reveal.New(seq, env.Rate, env.Reduced),
		after:    d.AfterReveal,
	}, nil
}

// HintLine returns a "> command" line and its command node.
func HintLine(command string) (line, cmd *doc.Node) {
	line = doc.NewNode(doc.KindHint, "")
	sig := doc.NewNode(doc.KindText, ">")
	sig.Class = doc.ClassSig
	cmd = doc.NewNode(doc.KindText, command)
	cmd.Class = doc.ClassCmd
	line.Append(sig, cmd)
	return line, cmd
}

func text(class, s string) *doc.Node {
	n := doc.NewNode(doc.KindText, s)
	n.Class = class
	return n
}

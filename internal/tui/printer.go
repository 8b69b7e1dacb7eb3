package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/reveal"
	"github.com/san-kum/termresume/internal/section"
	"github.com/san-kum/termresume/internal/video"
	"github.com/san-kum/termresume/internal/viz"
)

// Printer types the resume top to bottom: the intro prompts, then every
// pane's header followed by its rendered body.
type Printer struct {
	w     io.Writer
	cfg   *config.Config
	width int
	log   *zap.Logger
}

func NewPrinter(w io.Writer, cfg *config.Config, width int, log *zap.Logger) *Printer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Printer{w: w, cfg: cfg, width: max(width, 20), log: log}
}

// Print writes the whole resume, returning early if ctx is cancelled.
func (p *Printer) Print(ctx context.Context) error {
	viz.SetTheme(p.cfg.Theme)
	io.WriteString(p.w, hideCursor)
	defer io.WriteString(p.w, showCursor)

	for _, pr := range p.cfg.Content.Intro {
		fmt.Fprintf(p.w, "%s ", pr.Sig)
		if err := p.typeOut(ctx, reveal.NewSequence(reveal.NewUnit(pr.Cmd))); err != nil {
			return err
		}
		io.WriteString(p.w, "\n")
	}

	d := doc.New()
	env := section.Env{
		Doc:     d,
		Caret:   doc.NewCaret(d),
		Content: &p.cfg.Content,
		Rate:    p.cfg.RevealRate,
		Reduced: p.cfg.ReducedMotion,
		Log:     p.log,
	}
	g := physics.NewGraph(p.cfg.Physics, p.cfg.GraphNodes(), rand.New(rand.NewSource(1)))
	player := video.New(p.cfg.Content.Video.Source, p.cfg.Content.Video.Duration)
	set := section.NewSet(env, g, player)
	set.Panes()
	set.Projects.View.Fit(p.width, 14)
	set.Posts.SetWidth(p.width)
	set.VideoView.Width = min(p.width, 80)
	r := viz.NewRenderer(p.width)

	for _, pn := range p.cfg.Content.Panes {
		job, err := section.Build(env, set.Descriptor(pn.ID))
		if err != nil {
			p.log.Warn("pane skipped", zap.String("pane", pn.ID), zap.Error(err))
			continue
		}
		io.WriteString(p.w, "\n")
		if err := p.typeOut(ctx, job.Revealer.Sequence()); err != nil {
			return err
		}
		io.WriteString(p.w, "\n")
		job.Finish()

		mount, _ := d.Mount(pn.ID)
		mount.Hidden = false
		for _, c := range mount.Children()[1:] {
			if !c.Visible() {
				continue
			}
			io.WriteString(p.w, r.Render(c)+"\n")
		}
	}
	set.Projects.Teardown()
	return nil
}

// typeOut reveals seq, writing each rune as it appears.
func (p *Printer) typeOut(ctx context.Context, seq *reveal.Sequence) error {
	written := make(map[*reveal.Unit]int)
	return reveal.Run(ctx, seq, p.cfg.RevealRate, p.cfg.ReducedMotion, func(s *reveal.Sequence) {
		for _, u := range s.Units() {
			if n := u.Shown(); n > written[u] {
				io.WriteString(p.w, string([]rune(u.Full())[written[u]:n]))
				written[u] = n
			}
		}
	})
}

// Package pane implements the ordered, lazily built list of resume panes.
//
// Exactly one pane is shown at a time. A pane's builder runs the first
// time the pane is activated and never again for the rest of the session;
// later activations only toggle visibility. Components that care about
// visibility subscribe to OnShow/OnHide/OnUnmount instead of inspecting the
// document.
package pane

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/doc"
)

// BuildFunc constructs a pane's content. The returned command, if any,
// completes the build (typically a header reveal).
type BuildFunc func() tea.Cmd

// Listener receives the ID of the pane whose lifecycle changed.
type Listener func(id string)

type Pane struct {
	ID    string
	build BuildFunc
	ready bool
}

func New(id string, build BuildFunc) *Pane {
	return &Pane{ID: id, build: build}
}

func (p *Pane) Ready() bool { return p.ready }

type Sequencer struct {
	doc     *doc.Document
	log     *zap.Logger
	panes   []*Pane
	current int
	shown   int
	pending map[string]bool

	onShow    []Listener
	onHide    []Listener
	onUnmount []Listener
}

func NewSequencer(d *doc.Document, log *zap.Logger, panes ...*Pane) *Sequencer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sequencer{
		doc:     d,
		log:     log,
		panes:   panes,
		shown:   -1,
		pending: make(map[string]bool),
	}
}

func (s *Sequencer) OnShow(fn Listener)    { s.onShow = append(s.onShow, fn) }
func (s *Sequencer) OnHide(fn Listener)    { s.onHide = append(s.onHide, fn) }
func (s *Sequencer) OnUnmount(fn Listener) { s.onUnmount = append(s.onUnmount, fn) }

func (s *Sequencer) Len() int     { return len(s.panes) }
func (s *Sequencer) Current() int { return s.current }

// Started reports whether any pane has been activated yet.
func (s *Sequencer) Started() bool { return s.shown >= 0 }

func (s *Sequencer) CurrentPane() *Pane {
	if len(s.panes) == 0 {
		return nil
	}
	return s.panes[s.current]
}

// Building reports whether the pane's first build has not finished yet.
func (s *Sequencer) Building(id string) bool { return s.pending[id] }

// BuildDone marks the in-flight build of id as finished.
func (s *Sequencer) BuildDone(id string) { delete(s.pending, id) }

func (s *Sequencer) Start() tea.Cmd   { return s.Activate(0) }
func (s *Sequencer) Advance() tea.Cmd { return s.Activate(s.current + 1) }
func (s *Sequencer) Retreat() tea.Cmd { return s.Activate(s.current - 1) }

// Activate shows pane idx (clamped to the valid range), hiding every other
// pane and building the target on its first visit.
func (s *Sequencer) Activate(idx int) tea.Cmd {
	if len(s.panes) == 0 {
		return nil
	}
	idx = max(0, min(idx, len(s.panes)-1))
	if idx == s.shown {
		s.current = idx
		return nil
	}

	for i, p := range s.panes {
		if i == idx {
			continue
		}
		if m, ok := s.doc.Mount(p.ID); ok {
			m.Hidden = true
		}
		if i == s.shown {
			s.emit(s.onHide, p.ID)
		}
	}

	target := s.panes[idx]
	var cmd tea.Cmd
	if !target.ready {
		target.ready = true
		s.pending[target.ID] = true
		s.log.Debug("building pane", zap.String("pane", target.ID), zap.Int("index", idx))
		if target.build != nil {
			cmd = target.build()
		}
		if cmd == nil {
			delete(s.pending, target.ID)
		}
	}

	if m, ok := s.doc.Mount(target.ID); ok {
		m.Hidden = false
	}
	s.current, s.shown = idx, idx
	s.emit(s.onShow, target.ID)
	return cmd
}

// Unmount removes a pane's root from the document and notifies listeners.
func (s *Sequencer) Unmount(id string) {
	if !s.doc.Unmount(id) {
		return
	}
	s.log.Debug("pane unmounted", zap.String("pane", id))
	s.emit(s.onUnmount, id)
}

func (s *Sequencer) emit(ls []Listener, id string) {
	for _, fn := range ls {
		fn(id)
	}
}

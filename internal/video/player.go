// Package video holds the transport state of the video pane: play/pause,
// seeking, mute and fullscreen. The terminal cannot decode the clip, so the
// player advances a position clock and the pane renders it as a progress
// bar.
package video

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SeekStep is how far the arrow keys move the playhead.
const SeekStep = 5 * time.Second

const tickRate = 250 * time.Millisecond

// ErrUnsupported is returned when the terminal cannot honour a request.
var ErrUnsupported = errors.New("video: unsupported")

var lastID atomic.Int64

// TickMsg advances a playing player's clock.
type TickMsg struct {
	ID   int64
	Gen  int
	Time time.Time
}

type Option func(*Player)

// WithFullscreen declares whether the host can switch to fullscreen.
func WithFullscreen(ok bool) Option {
	return func(p *Player) { p.canFullscreen = ok }
}

type Player struct {
	id       int64
	gen      int
	source   string
	duration time.Duration
	position time.Duration
	last     time.Time

	playing       bool
	muted         bool
	fullscreen    bool
	canFullscreen bool
}

func New(source string, duration time.Duration, opts ...Option) *Player {
	p := &Player{id: lastID.Add(1), source: source, duration: max(duration, 0), canFullscreen: true}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Player) Source() string          { return p.source }
func (p *Player) Duration() time.Duration { return p.duration }
func (p *Player) Position() time.Duration { return p.position }
func (p *Player) Playing() bool           { return p.playing }
func (p *Player) Muted() bool             { return p.muted }
func (p *Player) Fullscreen() bool        { return p.fullscreen }

// Progress is the playhead position as a fraction of the duration.
func (p *Player) Progress() float64 {
	if p.duration <= 0 {
		return 0
	}
	return float64(p.position) / float64(p.duration)
}

// Play starts the clock. Playing from the end restarts the clip.
func (p *Player) Play() tea.Cmd {
	if p.playing {
		return nil
	}
	if p.position >= p.duration {
		p.position = 0
	}
	p.playing = true
	p.gen++
	p.last = time.Time{}
	return p.tick()
}

func (p *Player) Pause() {
	if !p.playing {
		return
	}
	p.playing = false
	p.gen++
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() tea.Cmd {
	if p.playing {
		p.Pause()
		return nil
	}
	return p.Play()
}

// Seek moves the playhead by d, clamped to the clip.
func (p *Player) Seek(d time.Duration) {
	p.position = min(max(p.position+d, 0), p.duration)
}

func (p *Player) ToggleMute() { p.muted = !p.muted }

// ToggleFullscreen flips fullscreen. It returns ErrUnsupported, leaving the
// state unchanged, when the host cannot go fullscreen.
func (p *Player) ToggleFullscreen() error {
	if !p.canFullscreen {
		return ErrUnsupported
	}
	p.fullscreen = !p.fullscreen
	return nil
}

// Update advances the clock for a tick addressed to this player.
func (p *Player) Update(msg TickMsg) tea.Cmd {
	if msg.ID != p.id || msg.Gen != p.gen || !p.playing {
		return nil
	}
	elapsed := tickRate
	if !p.last.IsZero() {
		elapsed = msg.Time.Sub(p.last)
	}
	p.last = msg.Time
	p.position = min(p.position+elapsed, p.duration)
	if p.position >= p.duration {
		p.Pause()
		return nil
	}
	return p.tick()
}

// Status renders the transport state as a short label.
func (p *Player) Status() string {
	state := "paused"
	if p.playing {
		state = "playing"
	}
	if p.muted {
		state += " · muted"
	}
	return fmt.Sprintf("%s %s / %s", state, clock(p.position), clock(p.duration))
}

func (p *Player) tick() tea.Cmd {
	id, gen := p.id, p.gen
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: t}
	})
}

func clock(d time.Duration) string {
	s := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

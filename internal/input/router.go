// Package input maps keys and vertical drag gestures to resume actions.
package input

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Action int

const (
	None Action = iota
	Advance
	Retreat
	PlayPause
	SeekBack
	SeekForward
	ToggleMute
	ToggleFullscreen
	Quit
	CycleTheme
	ToggleHelp
	FocusFilter
	Blur
	OpenLink
)

var actionNames = [...]string{"none", "advance", "retreat", "play_pause", "seek_back", "seek_forward", "mute", "fullscreen", "quit", "theme", "help", "focus_filter", "blur", "open_link"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Target is the kind of element that currently holds focus.
type Target int

const (
	TargetNone Target = iota
	TargetInput
	TargetTextarea
	TargetSelect
	TargetButton
	TargetLink
	TargetVideo
)

// Interactive reports whether typing into the target takes precedence over
// navigation keys.
func (t Target) Interactive() bool {
	switch t {
	case TargetInput, TargetTextarea, TargetSelect, TargetButton, TargetLink:
		return true
	}
	return false
}

const (
	DefaultDeadZonePx   = 40.0
	DefaultCellHeightPx = 16.0
)

type Config struct {
	DeadZonePx   float64
	CellHeightPx float64
}

type Router struct {
	keys       KeyMap
	video      VideoKeyMap
	deadZone   float64
	cellHeight float64

	touching bool
	startY   float64
}

func NewRouter(cfg Config) *Router {
	if cfg.DeadZonePx <= 0 {
		cfg.DeadZonePx = DefaultDeadZonePx
	}
	if cfg.CellHeightPx <= 0 {
		cfg.CellHeightPx = DefaultCellHeightPx
	}
	return &Router{
		keys:       DefaultKeyMap(),
		video:      DefaultVideoKeyMap(),
		deadZone:   cfg.DeadZonePx,
		cellHeight: cfg.CellHeightPx,
	}
}

func (r *Router) Keys() KeyMap       { return r.keys }
func (r *Router) Video() VideoKeyMap { return r.video }

// Key resolves a key press. The video handler runs first while the video
// pane is active and wins regardless of focus; otherwise navigation yields
// to an interactive focus target.
func (r *Router) Key(msg tea.KeyMsg, focus Target, videoActive bool) Action {
	if videoActive {
		switch {
		case key.Matches(msg, r.video.PlayPause):
			return PlayPause
		case key.Matches(msg, r.video.SeekBack):
			return SeekBack
		case key.Matches(msg, r.video.SeekForward):
			return SeekForward
		case key.Matches(msg, r.video.Mute) && !focus.Interactive():
			return ToggleMute
		case key.Matches(msg, r.video.Fullscreen) && !focus.Interactive():
			return ToggleFullscreen
		}
	}

	if msg.Type == tea.KeyCtrlC {
		return Quit
	}
	if focus.Interactive() {
		if key.Matches(msg, r.keys.Blur) {
			return Blur
		}
		return None
	}

	switch {
	case key.Matches(msg, r.keys.Advance):
		return Advance
	case key.Matches(msg, r.keys.Retreat):
		return Retreat
	case key.Matches(msg, r.keys.Quit):
		return Quit
	case key.Matches(msg, r.keys.Theme):
		return CycleTheme
	case key.Matches(msg, r.keys.Help):
		return ToggleHelp
	case key.Matches(msg, r.keys.Filter):
		return FocusFilter
	case key.Matches(msg, r.keys.Open):
		return OpenLink
	}
	return None
}

// TouchStart records the start of a vertical gesture, in pixels.
func (r *Router) TouchStart(y float64) {
	r.touching = true
	r.startY = y
}

// TouchEnd finishes a gesture. Moves shorter than the dead zone are
// ignored; an upward swipe advances and a downward swipe retreats.
func (r *Router) TouchEnd(y float64) Action {
	if !r.touching {
		return None
	}
	r.touching = false
	delta := y - r.startY
	if math.Abs(delta) < r.deadZone {
		return None
	}
	if delta < 0 {
		return Advance
	}
	return Retreat
}

// Mouse turns a left-button press/release pair on the pane background into
// a gesture, converting terminal rows to pixels.
func (r *Router) Mouse(msg tea.MouseMsg) Action {
	y := float64(msg.Y) * r.cellHeight
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		r.TouchStart(y)
	case msg.Action == tea.MouseActionRelease:
		return r.TouchEnd(y)
	}
	return None
}

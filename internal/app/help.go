package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/san-kum/termresume/internal/input"
)

// helpKeys merges the navigation and video bindings for the help view.
type helpKeys struct {
	nav       input.KeyMap
	video     input.VideoKeyMap
	withVideo bool
}

func (h helpKeys) ShortHelp() []key.Binding {
	if h.withVideo {
		return append(h.video.ShortHelp(), h.nav.Advance, h.nav.Retreat, h.nav.Quit)
	}
	return h.nav.ShortHelp()
}

func (h helpKeys) FullHelp() [][]key.Binding {
	if h.withVideo {
		return append(h.video.FullHelp(), h.nav.FullHelp()...)
	}
	return h.nav.FullHelp()
}

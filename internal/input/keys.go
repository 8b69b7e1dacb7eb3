package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the navigation bindings routed to the pane sequencer.
type KeyMap struct {
	Advance key.Binding
	Retreat key.Binding
	Quit    key.Binding
	Theme   key.Binding
	Help    key.Binding
	Filter  key.Binding
	Blur    key.Binding
	Open    key.Binding
}

// VideoKeyMap holds the bindings owned by the video pane.
type VideoKeyMap struct {
	PlayPause   key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
	Mute        key.Binding
	Fullscreen  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(key.WithKeys("down", "pgdown", "j", "enter"), key.WithHelp("↓/j", "next")),
		Retreat: key.NewBinding(key.WithKeys("up", "pgup", "k"), key.WithHelp("↑/k", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Blur:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
	}
}

func DefaultVideoKeyMap() VideoKeyMap {
	return VideoKeyMap{
		PlayPause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		SeekBack:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "-5s")),
		SeekForward: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "+5s")),
		Mute:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Fullscreen:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Retreat, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Retreat},
		{k.Filter, k.Blur, k.Open},
		{k.Theme, k.Help, k.Quit},
	}
}

func (v VideoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{v.PlayPause, v.SeekBack, v.SeekForward, v.Mute, v.Fullscreen}
}

func (v VideoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{v.ShortHelp()}
}

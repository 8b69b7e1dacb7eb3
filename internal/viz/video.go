package viz

import (
	"path/filepath"
	"strings"

	"github.com/san-kum/termresume/internal/video"
)

// VideoView draws the video pane's transport: a screen placeholder, a
// progress bar and the player status.
type VideoView struct {
	Player *video.Player
	Width  int
	Height int
}

func NewVideoView(p *video.Player) *VideoView {
	return &VideoView{Player: p, Width: 60, Height: 8}
}

func (v *VideoView) View() string {
	st := NewStyles(CurrentTheme)
	p := v.Player
	w, h := max(v.Width, 20), max(v.Height, 3)
	if p.Fullscreen() {
		h *= 2
	}

	icon := "▶"
	if p.Playing() {
		icon = "❚❚"
	}
	screen := make([]string, h)
	for i := range screen {
		screen[i] = strings.Repeat(" ", w-4)
	}
	mid := h / 2
	label := icon + "  " + filepath.Base(p.Source())
	pad := max(0, (w-4-len([]rune(label)))/2)
	screen[mid] = strings.Repeat(" ", pad) + label

	var b strings.Builder
	b.WriteString(st.Panel.Width(w).Padding(0, 1).Render(strings.Join(screen, "\n")))
	b.WriteString("\n")
	b.WriteString(ProgressBar(p.Progress(), w, st.Status, st.Muted))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(p.Status()))
	return b.String()
}

package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles are the lipgloss styles for one theme.
type Styles struct {
	Header  lipgloss.Style
	Caption lipgloss.Style
	Sig     lipgloss.Style
	Cmd     lipgloss.Style
	Hint    lipgloss.Style
	Caret   lipgloss.Style
	Text    lipgloss.Style
	Item    lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style
	Rule    lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Node      lipgloss.Style
	Panel     lipgloss.Style
	Footer    lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles derives the styles for t.
func NewStyles(t Theme) Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Caption: lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Sig:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Cmd:     lipgloss.NewStyle().Foreground(t.Text),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted),
		Caret:   lipgloss.NewStyle().Foreground(t.Primary).Blink(true),
		Text:    lipgloss.NewStyle().Foreground(t.Text),
		Item:    lipgloss.NewStyle().Foreground(t.Secondary),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Link:    lipgloss.NewStyle().Underline(true).Foreground(t.Accent),
		Rule:    lipgloss.NewStyle().Foreground(t.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Node:      lipgloss.NewStyle().Foreground(t.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
		Footer: lipgloss.NewStyle().Foreground(t.Muted),
		Status: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
	}
}

// GradientText colours each rune of text along a blend from start to end.
// Colours that do not parse render unstyled.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	from, err1 := colorful.Hex(string(start))
	to, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return text
	}

	var b strings.Builder
	n := len(runes)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders a progress bar of the given width in cells.
func ProgressBar(percent float64, width int, filled, empty lipgloss.Style) string {
	n := int(percent * float64(width))
	n = max(0, min(n, width))
	return filled.Render(strings.Repeat("█", n)) + empty.Render(strings.Repeat("░", width-n))
}

// Separator draws a decorative rule.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-1)
	return style.Render(left + " ◆ " + right)
}

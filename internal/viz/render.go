package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/san-kum/termresume/internal/doc"
)

// Viewer is implemented by node payloads that draw themselves, such as
// tables, the node graph and the video transport.
type Viewer interface {
	View() string
}

const (
	caretGlyph   = "█"
	minCardWidth = 28
	maxCardCols  = 3
)

// Renderer draws a document subtree with the current theme.
type Renderer struct {
	Width  int
	styles Styles
}

func NewRenderer(width int) *Renderer {
	return &Renderer{Width: width}
}

// Render draws n and its visible descendants.
func (r *Renderer) Render(n *doc.Node) string {
	r.styles = NewStyles(CurrentTheme)
	return r.block(n, max(r.Width, 1))
}

func (r *Renderer) block(n *doc.Node, width int) string {
	if n == nil || !n.Visible() {
		return ""
	}
	if v, ok := n.Data.(Viewer); ok {
		return r.withCaption(n, v.View())
	}

	switch {
	case n.Kind.Inline():
		return r.line(n, width)
	case n.Kind == doc.KindText:
		return r.textStyle(n).Render(wordwrap.String(n.Content(), width))
	case n.Kind == doc.KindRule:
		return Separator(width, r.styles.Rule)
	case n.Kind == doc.KindCaret:
		return r.styles.Caret.Render(caretGlyph)
	case n.Kind == doc.KindCards:
		return r.cards(n, width)
	case n.Kind == doc.KindList:
		return r.list(n, width)
	}

	var parts []string
	for _, c := range n.Children() {
		if s := r.block(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// line renders an inline node: its own text followed by its children on a
// single logical line, wrapped to width.
func (r *Renderer) line(n *doc.Node, width int) string {
	var b strings.Builder
	if s := n.Content(); s != "" {
		b.WriteString(r.inlineStyle(n).Render(s))
	}
	for _, c := range n.Children() {
		if !c.Visible() {
			continue
		}
		s := r.inlineStyle(c).Render(c.Content())
		switch {
		case c.Kind == doc.KindCaret:
			s = r.styles.Caret.Render(caretGlyph)
		case c.Content() == "":
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s)
	}
	return wordwrap.String(b.String(), width)
}

func (r *Renderer) list(n *doc.Node, width int) string {
	var lines []string
	for _, c := range n.Children() {
		if !c.Visible() {
			continue
		}
		lines = append(lines, r.styles.Muted.Render("  › ")+r.line(c, width-4))
	}
	return strings.Join(lines, "\n")
}

// cards lays the visible cards of n out in as many columns as fit.
func (r *Renderer) cards(n *doc.Node, width int) string {
	var visible []*doc.Node
	for _, c := range n.Children() {
		if c.Visible() {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return ""
	}

	cols := max(1, min(width/minCardWidth, maxCardCols, len(visible)))
	cardWidth := width/cols - 2
	inner := max(cardWidth-4, 1)

	var rows []string
	for i := 0; i < len(visible); i += cols {
		var row []string
		for _, card := range visible[i:min(i+cols, len(visible))] {
			var lines []string
			for _, part := range card.Children() {
				if s := r.block(part, inner); s != "" {
					lines = append(lines, s)
				}
			}
			row = append(row, r.styles.Card.Width(cardWidth).Render(strings.Join(lines, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) withCaption(n *doc.Node, body string) string {
	if n.Text == "" {
		return body
	}
	return r.styles.Caption.Render(n.Text) + "\n" + body
}

func (r *Renderer) inlineStyle(n *doc.Node) lipgloss.Style {
	switch n.Kind {
	case doc.KindHeader:
		return r.styles.Header
	case doc.KindHint:
		return r.styles.Hint
	case doc.KindItem:
		return r.styles.Item
	}
	return r.textStyle(n)
}

func (r *Renderer) textStyle(n *doc.Node) lipgloss.Style {
	switch n.Class {
	case doc.ClassSig:
		return r.styles.Sig
	case doc.ClassCmd:
		return r.styles.Cmd
	case doc.ClassCaption, doc.ClassSubtitle:
		return r.styles.Caption
	case doc.ClassTitle:
		return r.styles.CardTitle
	case doc.ClassLink:
		return r.styles.Link
	}
	return r.styles.Text
}

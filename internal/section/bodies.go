package section

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/viz"
)

// Table is a read-only bubbles table sized to its content.
type Table struct {
	model table.Model
}

func NewTable(t config.Table) *Table {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c)
	}
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make(table.Row, len(t.Columns))
		for i := range row {
			if i < len(r) {
				row[i] = r[i]
				widths[i] = max(widths[i], lipgloss.Width(r[i]))
			}
		}
		rows = append(rows, row)
	}

	cols := make([]table.Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = table.Column{Title: c, Width: widths[i] + 1}
	}

	m := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	return &Table{model: m}
}

func (t *Table) Rows() []table.Row { return t.model.Rows() }

func (t *Table) View() string {
	th := viz.CurrentTheme
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(th.Primary)
	s.Cell = s.Cell.Foreground(th.Text)
	s.Selected = lipgloss.NewStyle()
	t.model.SetStyles(s)
	return t.model.View()
}

func tableNode(t config.Table) *doc.Node {
	n := doc.NewNode(doc.KindTable, t.Caption)
	n.Data = NewTable(t)
	return n
}

func skillsBody(c *config.Content) []*doc.Node {
	list := doc.NewNode(doc.KindList, "")
	for _, item := range c.Skills.Items {
		list.Append(doc.NewNode(doc.KindItem, item))
	}
	return []*doc.Node{list, tableNode(c.Skills.Table)}
}

func certificationsBody(c *config.Content) []*doc.Node {
	return []*doc.Node{tableNode(c.Certifications)}
}

func card(title, subtitle, body string) *doc.Node {
	n := doc.NewNode(doc.KindBlock, "")
	n.Class = doc.ClassCard
	n.Append(text(doc.ClassTitle, title))
	if subtitle != "" {
		n.Append(text(doc.ClassSubtitle, subtitle))
	}
	n.Append(text(doc.ClassBody, body))
	return n
}

func experienceBody(c *config.Content) []*doc.Node {
	cards := doc.NewNode(doc.KindCards, "")
	for _, e := range c.Experience {
		cards.Append(card(e.Title, "", e.Body))
	}
	return []*doc.Node{cards}
}

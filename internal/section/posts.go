package section

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/doc"
	"github.com/san-kum/termresume/internal/viz"
)

// Posts is the blog pane: a card per post and a filter box. When the
// filter narrows the list to exactly one post, its full entry is rendered
// as markdown below the cards.
type Posts struct {
	Input textinput.Model

	posts  []config.Post
	cards  []*doc.Node
	detail *doc.Node
	log    *zap.Logger

	width    int
	markdown *glamour.TermRenderer
	mdWidth  int
}

func NewPosts(posts []config.Post, log *zap.Logger) *Posts {
	if log == nil {
		log = zap.NewNop()
	}
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "filter posts"
	in.CharLimit = 64
	return &Posts{Input: in, posts: posts, log: log, width: 80}
}

func (p *Posts) SetWidth(w int) { p.width = max(w, 20) }

func (p *Posts) Focused() bool  { return p.Input.Focused() }
func (p *Posts) Focus() tea.Cmd { return p.Input.Focus() }
func (p *Posts) Blur()          { p.Input.Blur() }

// Update feeds a message to the filter box and re-applies the filter.
// Enter leaves the box.
func (p *Posts) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		p.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	p.Apply(p.Input.Value())
	return cmd
}

// Apply hides every card that does not mention query (case-insensitive)
// and returns the number of cards left.
func (p *Posts) Apply(query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	var matched []config.Post
	for i, post := range p.posts {
		ok := q == "" || strings.Contains(strings.ToLower(post.Title+"\n"+post.Subtitle+"\n"+post.Blurb), q)
		if i < len(p.cards) {
			p.cards[i].Hidden = !ok
		}
		if ok {
			matched = append(matched, post)
		}
	}

	if p.detail != nil {
		p.detail.Hidden = true
		if q != "" && len(matched) == 1 {
			p.detail.Data = static(p.render(matched[0]))
			p.detail.Hidden = false
		}
	}
	return len(matched)
}

// Matches returns the posts the current filter lets through.
func (p *Posts) Matches() []config.Post {
	var out []config.Post
	for i, post := range p.posts {
		if i >= len(p.cards) || !p.cards[i].Hidden {
			out = append(out, post)
		}
	}
	return out
}

// Link returns the first link of the only post left by the filter.
func (p *Posts) Link() (config.Link, bool) {
	m := p.Matches()
	if len(m) != 1 || len(m[0].Links) == 0 {
		return config.Link{}, false
	}
	return m[0].Links[0], true
}

func (p *Posts) body() []*doc.Node {
	filter := doc.NewNode(doc.KindBlock, "")
	filter.Data = filterBox{p}

	grid := doc.NewNode(doc.KindCards, "")
	p.cards = p.cards[:0]
	for _, post := range p.posts {
		c := card(post.Title, post.Subtitle, post.Blurb)
		var labels []string
		for _, l := range post.Links {
			labels = append(labels, l.Label)
		}
		if len(labels) > 0 {
			c.Append(text(doc.ClassLink, strings.Join(labels, " · ")))
		}
		grid.Append(c)
		p.cards = append(p.cards, c)
	}

	p.detail = doc.NewNode(doc.KindBlock, "")
	p.detail.Hidden = true
	return []*doc.Node{filter, grid, p.detail}
}

func (p *Posts) render(post config.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n*%s*\n\n%s\n\n", post.Title, post.Subtitle, post.Blurb)
	for _, l := range post.Links {
		fmt.Fprintf(&b, "- [%s](%s)\n", l.Label, l.Href)
	}
	md := b.String()

	if p.markdown == nil || p.mdWidth != p.width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(p.width),
		)
		if err != nil {
			p.log.Warn("markdown renderer unavailable", zap.Error(err))
			return md
		}
		p.markdown, p.mdWidth = r, p.width
	}
	out, err := p.markdown.Render(md)
	if err != nil {
		p.log.Warn("markdown render failed", zap.String("post", post.Title), zap.Error(err))
		return md
	}
	return strings.TrimRight(out, "\n")
}

type filterBox struct {
	p *Posts
}

func (f filterBox) View() string {
	st := viz.NewStyles(viz.CurrentTheme)
	if !f.p.Focused() && f.p.Input.Value() == "" {
		return st.Muted.Render("press / to filter posts")
	}
	return f.p.Input.View()
}

type static string

func (s static) View() string { return string(s) }

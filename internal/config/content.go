package config

import (
	_ "embed"
	"time"
)

//go:embed content.yaml
var defaultContent []byte

// Content is the resume copy rendered by the panes.
type Content struct {
	Owner          string      `yaml:"owner"`
	Intro          []Prompt    `yaml:"intro"`
	Panes          []Pane      `yaml:"panes"`
	Skills         Skills      `yaml:"skills"`
	Certifications Table       `yaml:"certifications"`
	Experience     []Card      `yaml:"experience"`
	Nodes          []GraphNode `yaml:"nodes"`
	Video          Video       `yaml:"video"`
	Posts          []Post      `yaml:"posts"`
}

// Prompt is one intro line: a signature followed by a typed command.
type Prompt struct {
	Sig string `yaml:"sig"`
	Cmd string `yaml:"cmd"`
}

// Pane is the header and hint line of one pane.
type Pane struct {
	ID     string `yaml:"id"`
	Header string `yaml:"header"`
	Hint   string `yaml:"hint"`
}

type Skills struct {
	Items []string `yaml:"items"`
	Table Table    `yaml:"table"`
}

type Table struct {
	Caption string     `yaml:"caption"`
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type GraphNode struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	Link  string  `yaml:"link"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	R     float64 `yaml:"r"`
}

type Video struct {
	Source   string        `yaml:"source"`
	Duration time.Duration `yaml:"duration"`
}

type Post struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Blurb    string `yaml:"blurb"`
	Links    []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Pane returns the pane copy with the given ID.
func (c *Content) Pane(id string) (Pane, bool) {
	for _, p := range c.Panes {
		if p.ID == id {
			return p, true
		}
	}
	return Pane{}, false
}

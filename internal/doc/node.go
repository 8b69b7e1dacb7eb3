// Package doc is the retained document the resume renders from.
//
// Each pane owns one mount point (a [Node] with a well-known ID) below the
// document root. Section builders mutate only their own mount's subtree and
// its Hidden/Opacity fields; the renderer in package viz walks the tree.
package doc

import (
	"strings"

	"github.com/san-kum/termresume/internal/reveal"
)

type Kind int

const (
	KindBlock Kind = iota
	KindHeader
	KindText
	KindPrompt
	KindHint
	KindList
	KindItem
	KindTable
	KindCards
	KindGraph
	KindVideo
	KindRule
	KindCaret
)

var kindNames = [...]string{"block", "header", "text", "prompt", "hint", "list", "item", "table", "cards", "graph", "video", "rule", "caret"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Inline reports whether children of this kind render on one line.
func (k Kind) Inline() bool {
	switch k {
	case KindHeader, KindPrompt, KindHint, KindItem:
		return true
	}
	return false
}

// Classes tag inline text so the renderer can style it.
const (
	ClassSig      = "sig"
	ClassCmd      = "cmd"
	ClassCaption  = "caption"
	ClassTitle    = "title"
	ClassSubtitle = "subtitle"
	ClassBody     = "body"
	ClassLink     = "link"
	ClassCard     = "card"
)

type Node struct {
	ID      string
	Class   string
	Kind    Kind
	Text    string
	Unit    *reveal.Unit
	Hidden  bool
	Opacity float64
	Data    any

	parent   *Node
	children []*Node
}

func NewNode(kind Kind, text string) *Node {
	return &Node{Kind: kind, Text: text, Opacity: 1}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// Content is the text currently visible for n: the revealed prefix when a
// unit is attached, the plain text otherwise.
func (n *Node) Content() string {
	if n.Unit != nil {
		return n.Unit.Text()
	}
	return n.Text
}

// Visible reports whether n would be drawn (display and opacity).
func (n *Node) Visible() bool { return !n.Hidden && n.Opacity > 0 }

// Append moves each child under n, detaching it from any previous parent.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// After inserts sib immediately after n in n's parent.
func (n *Node) After(sib *Node) {
	if n.parent == nil || sib == nil || sib == n {
		return
	}
	sib.Remove()
	p := n.parent
	idx := p.indexOf(n)
	p.children = append(p.children, nil)
	copy(p.children[idx+2:], p.children[idx+1:])
	p.children[idx+1] = sib
	sib.parent = p
}

// Next returns the following sibling, if any.
func (n *Node) Next() *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.parent.indexOf(n)
	if idx+1 < len(n.parent.children) {
		return n.parent.children[idx+1]
	}
	return nil
}

func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	p := n.parent
	idx := p.indexOf(n)
	if idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	n.parent = nil
}

// Clear drops every child of n.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Walk visits n and its descendants depth-first; returning false from fn
// skips the subtree below the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range append([]*Node(nil), n.children...) {
		c.Walk(fn)
	}
}

func (n *Node) indexOf(c *Node) int {
	for i, x := range n.children {
		if x == c {
			return i
		}
	}
	return -1
}

// Document is the tree of pane mount points.
type Document struct {
	root *Node
}

func New() *Document {
	return &Document{root: NewNode(KindBlock, "")}
}

func (d *Document) Root() *Node { return d.root }

// AddMount appends an empty mount point with the given ID.
func (d *Document) AddMount(id string) *Node {
	n := NewNode(KindBlock, "")
	n.ID = id
	d.root.Append(n)
	return n
}

// Mount finds the mount point with the given ID.
func (d *Document) Mount(id string) (*Node, bool) {
	var found *Node
	d.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Unmount removes the mount point with the given ID from the document.
func (d *Document) Unmount(id string) bool {
	n, ok := d.Mount(id)
	if !ok {
		return false
	}
	n.Remove()
	return true
}

// Contains reports whether n is attached below the document root.
func (d *Document) Contains(n *Node) bool {
	return n != nil && n.Root() == d.root
}

// FindClass returns every node carrying class, in document order.
func (d *Document) FindClass(class string) []*Node {
	var out []*Node
	d.root.Walk(func(n *Node) bool {
		if n.Class == class {
			out = append(out, n)
		}
		return true
	})
	return out
}

// WrapText moves the text of every non-blank node under root into a reveal
// unit and returns the units in document order. The nodes start empty.
func WrapText(root *Node) []*reveal.Unit {
	var units []*reveal.Unit
	root.Walk(func(n *Node) bool {
		if n.Kind == KindCaret || n.Unit != nil {
			return true
		}
		if strings.TrimSpace(n.Text) == "" {
			return true
		}
		n.Unit = reveal.NewUnit(n.Text)
		n.Text = ""
		units = append(units, n.Unit)
		return true
	})
	return units
}

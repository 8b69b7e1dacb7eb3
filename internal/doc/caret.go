package doc

// CaretClass marks caret nodes; any stray node with this class is evicted
// when the caret moves.
const CaretClass = "cursor"

// Placement records where the caret was last put.
type Placement struct {
	Anchor *Node
}

// Caret is the single blinking cursor shared by every pane. Whoever calls
// PlaceAfter last owns it.
type Caret struct {
	doc  *Document
	node *Node
	last Placement
}

func NewCaret(d *Document) *Caret {
	n := NewNode(KindCaret, " ")
	n.Class = CaretClass
	return &Caret{doc: d, node: n}
}

func (c *Caret) Node() *Node          { return c.node }
func (c *Caret) Placement() Placement { return c.last }

// PlaceAfter moves the caret directly behind anchor and returns the new
// placement. A nil or detached anchor leaves the caret where it is.
func (c *Caret) PlaceAfter(anchor *Node) Placement {
	if anchor == nil || anchor == c.node || !c.doc.Contains(anchor) {
		return c.last
	}
	if c.last.Anchor == anchor && anchor.Next() == c.node {
		return c.last
	}

	for _, stray := range c.doc.FindClass(CaretClass) {
		if stray != c.node {
			stray.Remove()
		}
	}
	c.node.Remove()
	anchor.After(c.node)
	c.last = Placement{Anchor: anchor}
	return c.last
}

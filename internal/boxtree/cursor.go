package boxtree

import "github.com/gogpu/layout"

// Mode selects the boundary rule of a region query.
type Mode uint8

const (
	// Touching selects elements sharing at least one point with the region.
	Touching Mode = iota

	// Overlapping selects elements that meet the region in more than
	// boundary contacts. A degenerate element strictly inside the region
	// is selected.
	Overlapping
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Touching:
		return "Touching"
	case Overlapping:
		return "Overlapping"
	default:
		return "Unknown"
	}
}

// Match applies the boundary rule of m to two boxes.
func (m Mode) Match(b, region layout.Box) bool {
	if m == Overlapping {
		return b.Overlaps(region)
	}
	return b.Touches(region)
}

// Cursor walks the elements of a Tree that match a region.
// A Cursor is a value: copies advance independently. It becomes invalid
// when the tree is rebuilt.
type Cursor struct {
	tree   *Tree
	region layout.Box
	mode   Mode
	node   int32
	pos    int32 // -1 while the current node has not been entered
}

// Query returns a cursor positioned at the first element matching region.
func (t *Tree) Query(region layout.Box, mode Mode) Cursor {
	c := Cursor{tree: t, region: region, mode: mode, pos: -1}
	c.settle()
	return c
}

// settle moves forward from the current position to the next matching
// element, starting with the current one.
func (c *Cursor) settle() {
	t := c.tree
	for int(c.node) < len(t.nodes) {
		n := &t.nodes[c.node]
		if c.pos < 0 {
			if !c.mode.Match(n.box, c.region) {
				c.node = n.skip
				continue
			}
			c.pos = n.lo
		}
		for ; c.pos < n.hi; c.pos++ {
			if c.mode.Match(t.boxes[c.pos], c.region) {
				return
			}
		}
		c.node++
		c.pos = -1
	}
}

// AtEnd reports whether all matching elements have been visited.
func (c *Cursor) AtEnd() bool {
	return c.tree == nil || int(c.node) >= len(c.tree.nodes)
}

// Elem returns the id of the current element.
func (c *Cursor) Elem() int32 {
	return c.tree.elems[c.pos]
}

// Box returns the box of the current element as recorded at build time.
func (c *Cursor) Box() layout.Box {
	return c.tree.boxes[c.pos]
}

// Next advances to the next matching element.
func (c *Cursor) Next() {
	if c.AtEnd() {
		return
	}
	c.pos++
	c.settle()
}

// SkipQuad abandons the current quad including its child quads and
// advances to the next matching element after it.
func (c *Cursor) SkipQuad() {
	if c.AtEnd() {
		return
	}
	c.node = c.tree.nodes[c.node].skip
	c.pos = -1
	c.settle()
}

// QuadID returns an id of the current quad. Ids are positive and unique
// within one build of the tree; 0 means the cursor is at its end.
func (c *Cursor) QuadID() int {
	if c.AtEnd() {
		return 0
	}
	return int(c.node) + 1
}

// QuadBox returns the box enclosing all elements of the current quad and
// its children.
func (c *Cursor) QuadBox() layout.Box {
	if c.AtEnd() {
		return layout.EmptyBox()
	}
	return c.tree.nodes[c.node].box
}

// Package boxtree implements the quad tree used to answer region queries
// on shape layers.
//
// A Tree is built in one pass from a set of element ids and their boxes.
// Each node covers the elements that straddle its center; the rest are
// distributed into up to four child quadrants. Nodes are stored in
// preorder with a skip link to the end of their subtree, so traversal
// needs no stack and a Cursor is a plain value that may be copied freely.
package boxtree

import "github.com/gogpu/layout"

// DefaultLeafSize is the number of elements below which a node is not split.
const DefaultLeafSize = 16

// maxDepth bounds the recursion for degenerate inputs such as many
// identical boxes.
const maxDepth = 32

// node is one quad of the tree.
type node struct {
	box    layout.Box // bounding box of all elements in the subtree
	lo, hi int32      // elements of this node: elems[lo:hi]
	skip   int32      // index of the first node after the subtree
}

// Tree is a static quad tree over element ids.
// The zero value is an empty tree.
type Tree struct {
	nodes []node
	elems []int32
	boxes []layout.Box // boxes[i] is the box of elems[i]
}

// Build replaces the tree contents with the given elements.
// boxOf is called once per id. Elements with empty boxes are dropped
// since no region query can match them.
func (t *Tree) Build(ids []int32, boxOf func(id int32) layout.Box, leafSize int) {
	if leafSize <= 0 {
		leafSize = DefaultLeafSize
	}
	t.nodes = t.nodes[:0]
	t.elems = t.elems[:0]
	t.boxes = t.boxes[:0]

	items := make([]item, 0, len(ids))
	for _, id := range ids {
		if b := boxOf(id); !b.Empty() {
			items = append(items, item{id: id, box: b})
		}
	}
	if len(items) == 0 {
		return
	}
	t.build(items, leafSize, 0)
}

type item struct {
	id  int32
	box layout.Box
}

func (t *Tree) build(items []item, leafSize, depth int) {
	bbox := layout.EmptyBox()
	for _, it := range items {
		bbox = bbox.Union(it.box)
	}

	self := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{box: bbox, lo: int32(len(t.elems))})

	if len(items) <= leafSize || depth >= maxDepth {
		t.add(items)
		t.close(self)
		return
	}

	c := bbox.Center()
	var quads [4][]item
	var stay []item
	for _, it := range items {
		q := quadrant(it.box, c)
		if q < 0 {
			stay = append(stay, it)
		} else {
			quads[q] = append(quads[q], it)
		}
	}

	// A split that moves everything into one quad without shrinking it
	// would recurse forever.
	for _, qi := range quads {
		if len(qi) == len(items) {
			qb := layout.EmptyBox()
			for _, it := range qi {
				qb = qb.Union(it.box)
			}
			if qb == bbox {
				t.add(items)
				t.close(self)
				return
			}
		}
	}

	t.add(stay)
	t.nodes[self].hi = int32(len(t.elems))
	for _, qi := range quads {
		if len(qi) > 0 {
			t.build(qi, leafSize, depth+1)
		}
	}
	t.nodes[self].skip = int32(len(t.nodes))
}

func (t *Tree) add(items []item) {
	for _, it := range items {
		t.elems = append(t.elems, it.id)
		t.boxes = append(t.boxes, it.box)
	}
}

func (t *Tree) close(n int32) {
	t.nodes[n].hi = int32(len(t.elems))
	t.nodes[n].skip = int32(len(t.nodes))
}

// quadrant returns the child quadrant of b relative to the center c,
// or -1 if b straddles one of the center lines.
func quadrant(b layout.Box, c layout.Point) int {
	q := 0
	switch {
	case b.Right < c.X:
	case b.Left >= c.X:
		q |= 1
	default:
		return -1
	}
	switch {
	case b.Top < c.Y:
	case b.Bottom >= c.Y:
		q |= 2
	default:
		return -1
	}
	return q
}

// Len returns the number of indexed elements.
func (t *Tree) Len() int {
	return len(t.elems)
}

// Nodes returns the number of quads.
func (t *Tree) Nodes() int {
	return len(t.nodes)
}

// BBox returns the box of all indexed elements.
func (t *Tree) BBox() layout.Box {
	if len(t.nodes) == 0 {
		return layout.EmptyBox()
	}
	return t.nodes[0].box
}

// Reset drops all elements, keeping the allocated storage.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:0]
	t.elems = t.elems[:0]
	t.boxes = t.boxes[:0]
}

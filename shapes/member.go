package shapes

import (
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/internal/boxtree"
)

// arrayView describes the member placement of one stored array without
// knowing its element type.
type arrayView struct {
	bbox    layout.Box
	objBox  layout.Box
	regular bool
	a, b    layout.Vector
	na, nb  int
	offsets []layout.Vector
}

func newArrayView(arr arrayObject) arrayView {
	v := arrayView{bbox: arr.BBox(), objBox: arr.ObjectBBox()}
	if a, b, na, nb, ok := arr.Regular(); ok {
		v.regular = true
		v.a, v.b, v.na, v.nb = a, b, na, nb
	} else {
		v.offsets = arr.Offsets()
	}
	return v
}

func (v *arrayView) size() int {
	if v.regular {
		return v.na * v.nb
	}
	return len(v.offsets)
}

func (v *arrayView) offset(i int) layout.Vector {
	if v.regular {
		return v.a.Mul(i % v.na).Add(v.b.Mul(i / v.na))
	}
	return v.offsets[i]
}

func (v *arrayView) memberBox(i int) layout.Box {
	return v.objBox.Moved(v.offset(i))
}

// rowBox returns the box of row j of a regular array.
func (v *arrayView) rowBox(j int) layout.Box {
	first := v.objBox.Moved(v.b.Mul(j))
	return first.Union(first.Moved(v.a.Mul(v.na - 1)))
}

// memberCursor walks the members of one array, optionally restricted to
// a region. Rows of a regular array form its quads; an iterated array is
// a single quad.
type memberCursor struct {
	view   arrayView
	filter bool
	mode   boxtree.Mode
	region layout.Box
	i, n   int
}

func newMemberCursor(v arrayView, filter bool, mode boxtree.Mode, region layout.Box) memberCursor {
	c := memberCursor{view: v, filter: filter, mode: mode, region: region, n: v.size()}
	c.settle()
	return c
}

func (c *memberCursor) settle() {
	if !c.filter {
		return
	}
	for c.i < c.n {
		if c.view.regular && c.i%c.view.na == 0 &&
			!c.mode.Match(c.view.rowBox(c.i/c.view.na), c.region) {
			c.i += c.view.na
			continue
		}
		if c.mode.Match(c.view.memberBox(c.i), c.region) {
			return
		}
		c.i++
	}
}

func (c *memberCursor) atEnd() bool {
	return c.i >= c.n
}

func (c *memberCursor) next() {
	c.i++
	c.settle()
}

func (c *memberCursor) skipQuad() {
	if c.view.regular {
		c.i = (c.i/c.view.na + 1) * c.view.na
	} else {
		c.i = c.n
	}
	c.settle()
}

func (c *memberCursor) finish() {
	c.i = c.n
}

func (c *memberCursor) quadID() int {
	switch {
	case c.atEnd():
		return 0
	case c.view.regular:
		return c.i/c.view.na + 1
	default:
		return 1
	}
}

func (c *memberCursor) quadBox() layout.Box {
	switch {
	case c.atEnd():
		return layout.EmptyBox()
	case c.view.regular:
		return c.view.rowBox(c.i / c.view.na)
	default:
		return c.view.bbox
	}
}

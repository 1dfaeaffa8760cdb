package shapes

import (
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/internal/boxtree"
)

// regionMode selects how an iterator filters by region.
type regionMode uint8

const (
	regionNone regionMode = iota
	regionTouching
	regionOverlapping
)

// advance modes.
const (
	advanceSkipQuad    = -1 // drop the rest of the current quad
	advanceValidate    = 0  // settle on the current position
	advanceNext        = 1  // move to the next element
	advanceFinishArray = 2  // drop the rest of the current array
)

// ShapeIterator walks the shapes of a container in kind order. Within a
// kind, shapes without properties come first. Flat iteration visits a
// layer in insertion order, region iteration in index order.
//
// Arrays are not delivered as a whole: the iterator steps through their
// members, reporting InArray. FinishArray abandons the rest of an array.
//
// A fresh iterator already points at the first shape or is at its end.
//
//	for it := s.Begin(shapes.All); !it.AtEnd(); it.Next() {
//		fmt.Println(it.Shape())
//	}
type ShapeIterator struct {
	shapes   *Shapes
	flags    Flags
	region   regionMode
	box      layout.Box
	selector map[PropertiesID]struct{}
	inverse  bool

	key     int
	view    layerView
	pos     int            // flat mode
	tc      boxtree.Cursor // region mode
	inArray bool
	member  memberCursor
	atEnd   bool
	shape   Shape
}

// Begin returns an iterator over all shapes selected by flags. Editable
// containers sort their layers first.
func (s *Shapes) Begin(flags Flags, opts ...IteratorOption) *ShapeIterator {
	if s.state.editable {
		s.Sort()
	}
	return s.newIterator(flags, regionNone, layout.WorldBox(), opts)
}

// BeginTouching returns an iterator over the selected shapes whose bounding
// box shares at least one point with box.
func (s *Shapes) BeginTouching(box layout.Box, flags Flags, opts ...IteratorOption) *ShapeIterator {
	s.Sort()
	return s.newIterator(flags, regionTouching, box, opts)
}

// BeginOverlapping returns an iterator over the selected shapes whose
// bounding box overlaps box, as defined by layout.Box.Overlaps. Points
// and texts strictly inside box are included.
func (s *Shapes) BeginOverlapping(box layout.Box, flags Flags, opts ...IteratorOption) *ShapeIterator {
	s.Sort()
	return s.newIterator(flags, regionOverlapping, box, opts)
}

func (s *Shapes) newIterator(flags Flags, mode regionMode, box layout.Box, opts []IteratorOption) *ShapeIterator {
	var o iteratorOptions
	for _, opt := range opts {
		opt(&o)
	}
	it := &ShapeIterator{shapes: s, flags: flags, region: mode, box: box}
	if o.hasSel {
		it.selector = make(map[PropertiesID]struct{}, len(o.selector))
		for _, id := range o.selector {
			it.selector[id] = struct{}{}
		}
		it.inverse = o.inverse
	}
	it.start()
	return it
}

func (it *ShapeIterator) start() {
	it.atEnd = false
	it.inArray = false
	it.openLayer(0)
	it.advance(advanceValidate)
}

func (it *ShapeIterator) treeMode() boxtree.Mode {
	if it.region == regionOverlapping {
		return boxtree.Overlapping
	}
	return boxtree.Touching
}

func (it *ShapeIterator) selected(pid PropertiesID) bool {
	if it.selector == nil {
		return true
	}
	_, in := it.selector[pid]
	return in != it.inverse
}

// openLayer positions the iterator at the first selected layer with a key
// of at least from.
func (it *ShapeIterator) openLayer(from int) {
	for key := from; key < numKeys; key++ {
		l := it.shapes.byKey[key]
		if l == nil || l.Empty() {
			continue
		}
		k, props := Kind(key/2), key%2 == 1
		if !selectsLayer(it.flags, k, props) || (!props && !it.selected(0)) {
			continue
		}
		it.key = key
		it.view = l.view()
		if it.region == regionNone {
			it.pos = 0
		} else {
			it.tc = it.view.tree.Query(it.box, it.treeMode())
		}
		return
	}
	it.key = numKeys
	it.view = layerView{}
	it.atEnd = true
	it.shape = Shape{}
}

// advance implements all movements of the iterator; see the advance
// mode constants.
func (it *ShapeIterator) advance(mode int) {
	if it.atEnd {
		return
	}
	if it.inArray {
		switch mode {
		case advanceValidate:
			return
		case advanceNext:
			it.member.next()
		case advanceSkipQuad:
			it.member.skipQuad()
		case advanceFinishArray:
			it.member.finish()
		}
		if !it.member.atEnd() {
			it.cacheShape()
			return
		}
		it.inArray = false
		mode = advanceNext
	}
	switch mode {
	case advanceNext, advanceFinishArray:
		it.step()
	case advanceSkipQuad:
		it.skip()
	}
	it.settle()
}

func (it *ShapeIterator) step() {
	if it.region == regionNone {
		it.pos++
	} else {
		it.tc.Next()
	}
}

func (it *ShapeIterator) skip() {
	if it.region == regionNone {
		it.pos = it.view.n
	} else {
		it.tc.SkipQuad()
	}
}

func (it *ShapeIterator) current() int {
	if it.region == regionNone {
		return it.pos
	}
	return int(it.tc.Elem())
}

// accept applies the tombstone and properties filters to one position.
func (it *ShapeIterator) accept(pos int) bool {
	if dead := *it.view.dead; dead != nil && dead[pos] {
		return false
	}
	if it.selector != nil && it.view.props && !it.selected((*it.view.pids)[pos]) {
		return false
	}
	return true
}

// findInLayer moves to the next acceptable position of the current layer,
// starting with the current one.
func (it *ShapeIterator) findInLayer() bool {
	if it.region == regionNone {
		for ; it.pos < it.view.n; it.pos++ {
			if it.accept(it.pos) {
				return true
			}
		}
		return false
	}
	for ; !it.tc.AtEnd(); it.tc.Next() {
		if it.accept(int(it.tc.Elem())) {
			return true
		}
	}
	return false
}

// settle moves to the next deliverable position, entering arrays and
// further layers as needed.
func (it *ShapeIterator) settle() {
	for !it.atEnd {
		if !it.findInLayer() {
			it.openLayer(it.key + 1)
			continue
		}
		if !it.view.kind.IsArray() {
			it.cacheShape()
			return
		}
		it.member = newMemberCursor(it.view.layer.arrayAt(it.current()),
			it.region != regionNone, it.treeMode(), it.box)
		if !it.member.atEnd() {
			it.inArray = true
			it.cacheShape()
			return
		}
		it.step()
	}
}

func (it *ShapeIterator) cacheShape() {
	it.shape = Shape{shapes: it.shapes, kind: it.view.kind, props: it.view.props, pos: it.current()}
	if it.inArray {
		it.shape.member = it.member.i
		it.shape.isMember = true
	}
}

// AtEnd reports whether all shapes have been visited.
func (it *ShapeIterator) AtEnd() bool {
	return it.atEnd
}

// Next moves to the next shape or array member.
func (it *ShapeIterator) Next() {
	it.advance(advanceNext)
}

// Shape returns a handle to the current shape. The handle is a copy and
// may be kept after the iterator moves on.
func (it *ShapeIterator) Shape() Shape {
	return it.shape
}

// InArray reports whether the iterator is inside an array.
func (it *ShapeIterator) InArray() bool {
	return it.inArray
}

// Array returns the handle of the array being iterated, or the null
// handle outside arrays.
func (it *ShapeIterator) Array() Shape {
	if !it.inArray {
		return Shape{}
	}
	return it.shape.Array()
}

// FinishArray skips the remaining members of the current array. Outside
// arrays it behaves like Next.
func (it *ShapeIterator) FinishArray() {
	it.advance(advanceFinishArray)
}

// QuadID identifies the index node the current shape comes from. It is
// 0 without a spatial index and at the end.
func (it *ShapeIterator) QuadID() uint64 {
	if it.atEnd || it.region == regionNone {
		return 0
	}
	return uint64(it.key)<<32 | uint64(it.tc.QuadID())
}

// QuadBox returns the box of the current index node, or the world box
// without a spatial index.
func (it *ShapeIterator) QuadBox() layout.Box {
	switch {
	case it.region == regionNone:
		return layout.WorldBox()
	case it.atEnd:
		return layout.EmptyBox()
	default:
		return it.tc.QuadBox()
	}
}

// SkipQuad drops the remaining shapes of the current index node, including
// the rest of an array being iterated. Without a spatial index it drops the
// rest of the current layer.
func (it *ShapeIterator) SkipQuad() {
	it.inArray = false
	it.advance(advanceSkipQuad)
}

// ArrayQuadID identifies the group of members the current array member
// belongs to: a row of a regular array, or the whole of an iterated one.
// It is 0 outside arrays.
func (it *ShapeIterator) ArrayQuadID() int {
	if !it.inArray {
		return 0
	}
	return it.member.quadID()
}

// ArrayQuadBox returns the box of the current member group, or the world
// box outside arrays.
func (it *ShapeIterator) ArrayQuadBox() layout.Box {
	if !it.inArray {
		return layout.WorldBox()
	}
	return it.member.quadBox()
}

// SkipArrayQuad drops the remaining members of the current member group.
// Outside arrays it behaves like Next.
func (it *ShapeIterator) SkipArrayQuad() {
	if !it.inArray {
		it.advance(advanceNext)
		return
	}
	it.advance(advanceSkipQuad)
}

// Clone returns an independent copy positioned at the same shape.
func (it *ShapeIterator) Clone() *ShapeIterator {
	c := *it
	return &c
}

// Reset moves the iterator back to the first shape.
func (it *ShapeIterator) Reset() {
	if it.shapes == nil {
		return
	}
	it.start()
}

// Close releases the iterator's references. The iterator is at its end
// afterwards.
func (it *ShapeIterator) Close() {
	*it = ShapeIterator{key: numKeys, atEnd: true}
}

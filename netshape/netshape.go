// Package netshape provides NetShape, a compact stand-in for a polygon or
// text placed at a displacement.
//
// Net extraction keeps very many references to shapes. A NetShape holds
// only a repository pointer and a displacement; the geometry stays in the
// repository, which must outlive every NetShape referring into it.
package netshape

import (
	"fmt"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/shapes"
)

// Type classifies what a NetShape refers to.
type Type uint8

// NetShape types.
const (
	None Type = iota
	Polygon
	Text
)

// String returns a human-readable name for the type.
func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Polygon:
		return "Polygon"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// NetShape is a polygon or text reference with an accumulated
// displacement. At most one of poly and text is set. The zero value is
// the None shape.
//
// Equality and ordering compare the referenced repository entry and the
// displacement, not the geometry: congruent shapes interned separately
// compare unequal.
type NetShape struct {
	poly layout.Ptr[layout.Polygon]
	text layout.Ptr[layout.Text]
	disp layout.Vector
}

// FromPolygonRef creates a polygon net shape.
func FromPolygonRef(r layout.PolygonRef) NetShape {
	return NetShape{poly: r.Ptr(), disp: r.Disp()}
}

// FromTextRef creates a text net shape.
func FromTextRef(r layout.TextRef) NetShape {
	return NetShape{text: r.Ptr(), disp: r.Disp()}
}

// FromPolygon interns p into repo and creates a polygon net shape.
func FromPolygon(p layout.Polygon, repo *layout.ShapeRepository) NetShape {
	return FromPolygonRef(layout.NewPolygonRef(repo.Polygons, p))
}

// FromText interns t into repo and creates a text net shape.
func FromText(t layout.Text, repo *layout.ShapeRepository) NetShape {
	return FromTextRef(layout.NewTextRef(repo.Texts, t))
}

// Type returns what the net shape refers to.
func (s NetShape) Type() Type {
	switch {
	case !s.poly.IsNil():
		return Polygon
	case !s.text.IsNil():
		return Text
	default:
		return None
	}
}

// PolygonRef returns the shape as a polygon reference.
// It panics unless the type is Polygon.
func (s NetShape) PolygonRef() layout.PolygonRef {
	if s.poly.IsNil() {
		panic("netshape: PolygonRef called on a " + s.Type().String() + " shape")
	}
	return layout.RefAt(s.poly, s.disp)
}

// TextRef returns the shape as a text reference.
// It panics unless the type is Text.
func (s NetShape) TextRef() layout.TextRef {
	if s.text.IsNil() {
		panic("netshape: TextRef called on a " + s.Type().String() + " shape")
	}
	return layout.RefAt(s.text, s.disp)
}

// Transform adds v to the displacement. The referenced geometry is not
// touched.
func (s *NetShape) Transform(v layout.Vector) {
	s.disp = s.disp.Add(v)
}

// Transformed returns the shape displaced by v.
func (s NetShape) Transformed(v layout.Vector) NetShape {
	s.Transform(v)
	return s
}

// BBox returns the bounding box of the displaced shape. It is empty for
// the None shape.
func (s NetShape) BBox() layout.Box {
	switch s.Type() {
	case Polygon:
		return s.poly.Get().BBox().Moved(s.disp)
	case Text:
		return s.text.Get().BBox().Moved(s.disp)
	default:
		return layout.EmptyBox()
	}
}

// InteractsWith reports whether both shapes share at least one point.
// A text counts as the single point of its position.
func (s NetShape) InteractsWith(other NetShape) bool {
	if !s.BBox().Touches(other.BBox()) {
		return false
	}
	return s.interacts(other, nil)
}

// InteractsWithTransformed reports whether s interacts with other placed
// by t.
func (s NetShape) InteractsWithTransformed(other NetShape, t layout.Trans) bool {
	if t.IsUnity() {
		return s.InteractsWith(other)
	}
	ct := t.ICplxTrans()
	if !s.BBox().Touches(other.BBox().Transformed(ct)) {
		return false
	}
	return s.interacts(other, &ct)
}

// interacts runs the exact test once the boxes are known to touch.
func (s NetShape) interacts(other NetShape, t *layout.ICplxTrans) bool {
	st, ot := s.Type(), other.Type()
	switch {
	case st == Polygon && ot == Polygon:
		return layout.PolygonsInteract(s.polygon(), other.polygonUnder(t))
	case st == Polygon && ot == Text:
		return layout.PolygonContainsPoint(s.polygon(), other.positionUnder(t))
	case st == Text && ot == Polygon:
		return layout.PolygonContainsPoint(other.polygonUnder(t), s.position())
	case st == Text && ot == Text:
		return s.position() == other.positionUnder(t)
	default:
		return false
	}
}

func (s NetShape) polygon() layout.Polygon {
	return s.poly.Get().Moved(s.disp)
}

func (s NetShape) polygonUnder(t *layout.ICplxTrans) layout.Polygon {
	p := s.polygon()
	if t != nil {
		p = p.Transformed(*t)
	}
	return p
}

func (s NetShape) position() layout.Point {
	return s.text.Get().Position().Add(s.disp)
}

func (s NetShape) positionUnder(t *layout.ICplxTrans) layout.Point {
	p := s.position()
	if t != nil {
		p = t.Apply(p)
	}
	return p
}

// Equal reports whether both shapes refer to the same entry at the same
// displacement.
func (s NetShape) Equal(o NetShape) bool {
	return s == o
}

// Less orders net shapes by type, referenced entry and displacement.
func (s NetShape) Less(o NetShape) bool {
	if st, ot := s.Type(), o.Type(); st != ot {
		return st < ot
	}
	if s.poly != o.poly {
		return s.poly.Less(o.poly)
	}
	if s.text != o.text {
		return s.text.Less(o.text)
	}
	return s.disp.Less(o.disp)
}

// String returns the displaced object, or "()" for the None shape.
func (s NetShape) String() string {
	switch s.Type() {
	case Polygon:
		return s.polygon().String()
	case Text:
		return fmt.Sprintf("%v", s.text.Get().Moved(s.disp))
	default:
		return "()"
	}
}

// InsertInto stores the shape as a reference in a container. A pid of 0
// inserts without properties. The None shape inserts nothing.
func (s NetShape) InsertInto(dst *shapes.Shapes, pid shapes.PropertiesID) shapes.Shape {
	switch s.Type() {
	case Polygon:
		if pid == 0 {
			return shapes.Insert(dst, s.PolygonRef())
		}
		return shapes.InsertWithProperties(dst, s.PolygonRef(), pid)
	case Text:
		if pid == 0 {
			return shapes.Insert(dst, s.TextRef())
		}
		return shapes.InsertWithProperties(dst, s.TextRef(), pid)
	default:
		return shapes.Shape{}
	}
}

package shapes

import (
	"fmt"

	"github.com/gogpu/layout"
)

// Shape is a handle to one stored shape, or to one member of a stored
// array. It does not own geometry and many handles may refer to the same
// shape. The zero value is the null handle.
//
// A handle into a stable (editable) container stays valid until its own
// shape is erased. A handle into a bulk container becomes invalid with
// any mutation of the layer it points into.
type Shape struct {
	shapes   *Shapes
	kind     Kind
	props    bool
	pos      int
	member   int
	isMember bool
}

// IsNull reports whether sh is the null handle.
func (sh Shape) IsNull() bool {
	return sh.shapes == nil
}

// Shapes returns the container the handle points into.
func (sh Shape) Shapes() *Shapes {
	return sh.shapes
}

// Type returns what the handle refers to.
func (sh Shape) Type() Type {
	if sh.IsNull() {
		return TypeNull
	}
	return typeOf(sh.kind, sh.isMember)
}

// Kind returns the storage kind. For an array member this is the kind of
// the array.
func (sh Shape) Kind() Kind {
	return sh.kind
}

// HasProperties reports whether the shape carries a properties id.
func (sh Shape) HasProperties() bool {
	return sh.props
}

func (sh Shape) layer() LayerBase {
	return sh.shapes.layerOf(sh.kind, sh.props)
}

// PropID returns the properties id, or 0 for shapes without properties.
func (sh Shape) PropID() PropertiesID {
	if sh.IsNull() || !sh.props {
		return 0
	}
	return sh.layer().pidAt(sh.pos)
}

// IsArrayMember reports whether the handle refers to one array member.
func (sh Shape) IsArrayMember() bool {
	return sh.isMember
}

// MemberIndex returns the index of the array member, or -1.
func (sh Shape) MemberIndex() int {
	if !sh.isMember {
		return -1
	}
	return sh.member
}

// Array returns the handle of the array a member belongs to, or the null
// handle if sh is not an array member.
func (sh Shape) Array() Shape {
	if !sh.isMember {
		return Shape{}
	}
	return Shape{shapes: sh.shapes, kind: sh.kind, props: sh.props, pos: sh.pos}
}

// Object returns the stored value, or the member value for array
// members. It returns nil for the null handle.
func (sh Shape) Object() any {
	if sh.IsNull() {
		return nil
	}
	l := sh.layer()
	if sh.isMember {
		return l.memberAt(sh.pos, sh.member)
	}
	return l.objectAt(sh.pos)
}

// ObjectOf returns the value sh refers to if it has type T.
func ObjectOf[T Object[T]](sh Shape) (T, bool) {
	v, ok := sh.Object().(T)
	return v, ok
}

// BBox returns the bounding box of the shape or member.
func (sh Shape) BBox() layout.Box {
	if sh.IsNull() {
		return layout.EmptyBox()
	}
	l := sh.layer()
	if sh.isMember {
		v := l.arrayAt(sh.pos)
		return v.memberBox(sh.member)
	}
	return l.boxAt(sh.pos)
}

// Polygon returns the shape as a polygon. It succeeds for all polygon
// kinds, simple polygons and boxes.
func (sh Shape) Polygon() (layout.Polygon, bool) {
	switch o := sh.Object().(type) {
	case layout.Polygon:
		return o, true
	case layout.PolygonRef:
		return o.Obj(), true
	case layout.SimplePolygon:
		return o.Polygon(), true
	case layout.SimplePolygonRef:
		return o.Obj().Polygon(), true
	case layout.Box:
		return layout.PolygonFromBox(o), true
	case layout.ShortBox:
		return layout.PolygonFromBox(o.Box()), true
	default:
		return layout.Polygon{}, false
	}
}

// Path returns the shape as a path for path kinds.
func (sh Shape) Path() (layout.Path, bool) {
	switch o := sh.Object().(type) {
	case layout.Path:
		return o, true
	case layout.PathRef:
		return o.Obj(), true
	default:
		return layout.Path{}, false
	}
}

// Box returns the shape as a box for box kinds.
func (sh Shape) Box() (layout.Box, bool) {
	switch o := sh.Object().(type) {
	case layout.Box:
		return o, true
	case layout.ShortBox:
		return o.Box(), true
	default:
		return layout.Box{}, false
	}
}

// Text returns the shape as a text for text kinds.
func (sh Shape) Text() (layout.Text, bool) {
	switch o := sh.Object().(type) {
	case layout.Text:
		return o, true
	case layout.TextRef:
		return o.Obj(), true
	default:
		return layout.Text{}, false
	}
}

// Edge returns the shape for the Edge kind.
func (sh Shape) Edge() (layout.Edge, bool) {
	return ObjectOf[layout.Edge](sh)
}

// EdgePair returns the shape for the EdgePair kind.
func (sh Shape) EdgePair() (layout.EdgePair, bool) {
	return ObjectOf[layout.EdgePair](sh)
}

// Point returns the shape for the Point kind.
func (sh Shape) Point() (layout.Point, bool) {
	return ObjectOf[layout.Point](sh)
}

// UserObject returns the shape for the UserObject kind.
func (sh Shape) UserObject() (layout.UserObject, bool) {
	return ObjectOf[layout.UserObject](sh)
}

// Equal reports whether both handles refer to the same shape or member.
func (sh Shape) Equal(o Shape) bool {
	return sh == o
}

// Less orders handles by kind, properties flag and position. A whole
// array sorts before its members.
func (sh Shape) Less(o Shape) bool {
	if sh.kind != o.kind {
		return sh.kind < o.kind
	}
	if sh.props != o.props {
		return !sh.props
	}
	if sh.pos != o.pos {
		return sh.pos < o.pos
	}
	if sh.isMember != o.isMember {
		return !sh.isMember
	}
	return sh.member < o.member
}

// String returns the shape type and value, plus the properties id if any.
func (sh Shape) String() string {
	if sh.IsNull() {
		return "null"
	}
	s := fmt.Sprintf("%s %v", sh.Type(), sh.Object())
	if sh.props {
		s += fmt.Sprintf(" prop_id=%d", sh.PropID())
	}
	return s
}

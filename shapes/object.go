package shapes

import "github.com/gogpu/layout"

// Object is the constraint satisfied by every value type a Shapes
// container can store. The set of types is closed: see Kind.
type Object[T any] interface {
	BBox() layout.Box
	Equal(T) bool
	Moved(layout.Vector) T
	Transformed(layout.ICplxTrans) T
	String() string
}

// PropertiesID is an opaque handle into an external properties repository.
// The container stores and copies it but never interprets it.
type PropertiesID uint64

// PropertyMapper translates properties ids when shapes are copied between
// containers that use different properties repositories. A nil mapper
// keeps the ids unchanged.
type PropertyMapper func(PropertiesID) PropertiesID

func (pm PropertyMapper) apply(id PropertiesID) PropertiesID {
	if pm == nil {
		return id
	}
	return pm(id)
}

// kindOf returns the kind storing values of type T.
func kindOf[T Object[T]]() Kind {
	var zero T
	k, ok := kindOfValue(zero)
	if !ok {
		panic("shapes: unsupported object type")
	}
	return k
}

// kindOfValue returns the kind storing v.
func kindOfValue(v any) (Kind, bool) {
	switch v.(type) {
	case layout.Polygon:
		return KindPolygon, true
	case layout.PolygonRef:
		return KindPolygonRef, true
	case layout.PolygonPtrArray:
		return KindPolygonPtrArray, true
	case layout.SimplePolygon:
		return KindSimplePolygon, true
	case layout.SimplePolygonRef:
		return KindSimplePolygonRef, true
	case layout.SimplePolygonPtrArray:
		return KindSimplePolygonPtrArray, true
	case layout.Edge:
		return KindEdge, true
	case layout.EdgePair:
		return KindEdgePair, true
	case layout.Path:
		return KindPath, true
	case layout.PathRef:
		return KindPathRef, true
	case layout.PathPtrArray:
		return KindPathPtrArray, true
	case layout.Box:
		return KindBox, true
	case layout.BoxArray:
		return KindBoxArray, true
	case layout.ShortBox:
		return KindShortBox, true
	case layout.ShortBoxArray:
		return KindShortBoxArray, true
	case layout.Text:
		return KindText, true
	case layout.TextRef:
		return KindTextRef, true
	case layout.TextPtrArray:
		return KindTextPtrArray, true
	case layout.Point:
		return KindPoint, true
	case layout.UserObject:
		return KindUserObject, true
	default:
		return 0, false
	}
}

// arrayObject is the kind-independent view of layout.Array values.
type arrayObject interface {
	BBox() layout.Box
	ObjectBBox() layout.Box
	Regular() (a, b layout.Vector, na, nb int, ok bool)
	Offsets() []layout.Vector
}

// arrayMember returns member i of an array value.
func arrayMember(arr any, i int) any {
	switch a := arr.(type) {
	case layout.PolygonPtrArray:
		return a.Member(i)
	case layout.SimplePolygonPtrArray:
		return a.Member(i)
	case layout.PathPtrArray:
		return a.Member(i)
	case layout.BoxArray:
		return a.Member(i)
	case layout.ShortBoxArray:
		return a.Member(i)
	case layout.TextPtrArray:
		return a.Member(i)
	default:
		panic("shapes: not an array object")
	}
}

// forEachMember calls f with every member of an array value.
func forEachMember(arr any, f func(any)) {
	n := 0
	switch a := arr.(type) {
	case layout.PolygonPtrArray:
		n = a.Size()
	case layout.SimplePolygonPtrArray:
		n = a.Size()
	case layout.PathPtrArray:
		n = a.Size()
	case layout.BoxArray:
		n = a.Size()
	case layout.ShortBoxArray:
		n = a.Size()
	case layout.TextPtrArray:
		n = a.Size()
	default:
		panic("shapes: not an array object")
	}
	for i := range n {
		f(arrayMember(arr, i))
	}
}

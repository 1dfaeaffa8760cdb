package layout

import (
	"fmt"
	"slices"
)

// Arrayable is the constraint for objects that can be repeated in an Array.
type Arrayable[T any] interface {
	BBox() Box
	Equal(T) bool
	Moved(Vector) T
	Transformed(ICplxTrans) T
}

// Array repeats one object at a set of offsets. A regular array places
// members on the lattice i*A + j*B (0 <= i < NA, 0 <= j < NB); an iterated
// array lists the offsets explicitly. Member 0 of a regular array is the
// object itself.
type Array[T Arrayable[T]] struct {
	obj     T
	a, b    Vector
	na, nb  int
	offsets []Vector
	bbox    Box
}

// Array shape kinds.
type (
	PolygonPtrArray       = Array[PolygonRef]
	SimplePolygonPtrArray = Array[SimplePolygonRef]
	PathPtrArray          = Array[PathRef]
	BoxArray              = Array[Box]
	ShortBoxArray         = Array[ShortBox]
	TextPtrArray          = Array[TextRef]
)

// NewRegularArray creates a lattice array with na columns along a and
// nb rows along b. Counts below one are raised to one.
func NewRegularArray[T Arrayable[T]](obj T, a, b Vector, na, nb int) Array[T] {
	arr := Array[T]{obj: obj, a: a, b: b, na: max(na, 1), nb: max(nb, 1)}
	arr.bbox = arr.computeBBox()
	return arr
}

// NewIteratedArray creates an array with explicit member offsets.
// The offsets slice is copied.
func NewIteratedArray[T Arrayable[T]](obj T, offsets []Vector) Array[T] {
	arr := Array[T]{obj: obj, offsets: slices.Clone(offsets)}
	if arr.offsets == nil {
		arr.offsets = []Vector{}
	}
	arr.bbox = arr.computeBBox()
	return arr
}

func (arr Array[T]) computeBBox() Box {
	ob := arr.obj.BBox()
	if arr.offsets != nil {
		b := EmptyBox()
		for _, o := range arr.offsets {
			b = b.Union(ob.Moved(o))
		}
		return b
	}
	// The extreme members of a lattice sit at its four corners.
	ea, eb := arr.a.Mul(arr.na-1), arr.b.Mul(arr.nb-1)
	return ob.Union(ob.Moved(ea)).Union(ob.Moved(eb)).Union(ob.Moved(ea.Add(eb)))
}

// Object returns the repeated object at offset zero.
func (arr Array[T]) Object() T {
	return arr.obj
}

// ObjectBBox returns the bounding box of the repeated object.
func (arr Array[T]) ObjectBBox() Box {
	return arr.obj.BBox()
}

// IsRegular reports whether the array is a lattice.
func (arr Array[T]) IsRegular() bool {
	return arr.offsets == nil
}

// Regular returns the lattice parameters. ok is false for iterated arrays.
func (arr Array[T]) Regular() (a, b Vector, na, nb int, ok bool) {
	return arr.a, arr.b, arr.na, arr.nb, arr.offsets == nil
}

// Offsets returns the member offsets of an iterated array, nil otherwise.
// The slice must not be modified.
func (arr Array[T]) Offsets() []Vector {
	return arr.offsets
}

// Size returns the number of members.
func (arr Array[T]) Size() int {
	if arr.offsets != nil {
		return len(arr.offsets)
	}
	return arr.na * arr.nb
}

// Offset returns the displacement of member i. Regular arrays number
// their members row by row: i = j*NA + k is at k*A + j*B.
func (arr Array[T]) Offset(i int) Vector {
	if arr.offsets != nil {
		return arr.offsets[i]
	}
	return arr.a.Mul(i % arr.na).Add(arr.b.Mul(i / arr.na))
}

// Member returns the object of member i.
func (arr Array[T]) Member(i int) T {
	return arr.obj.Moved(arr.Offset(i))
}

// BBox returns the box enclosing all members.
func (arr Array[T]) BBox() Box {
	return arr.bbox
}

// Equal reports whether both arrays have the same object and offsets.
func (arr Array[T]) Equal(o Array[T]) bool {
	if !arr.obj.Equal(o.obj) || (arr.offsets == nil) != (o.offsets == nil) {
		return false
	}
	if arr.offsets != nil {
		return slices.Equal(arr.offsets, o.offsets)
	}
	return arr.a == o.a && arr.b == o.b && arr.na == o.na && arr.nb == o.nb
}

// WithObject returns the array with its object replaced.
func (arr Array[T]) WithObject(obj T) Array[T] {
	r := arr
	r.obj = obj
	r.bbox = r.computeBBox()
	return r
}

// Moved returns the array displaced by v.
func (arr Array[T]) Moved(v Vector) Array[T] {
	r := arr
	r.obj = arr.obj.Moved(v)
	r.bbox = arr.bbox.Moved(v)
	return r
}

// Transformed returns the array under t. The object is transformed as a
// whole; lattice vectors and offsets follow the linear part of t.
func (arr Array[T]) Transformed(t ICplxTrans) Array[T] {
	r := Array[T]{obj: arr.obj.Transformed(t), na: arr.na, nb: arr.nb}
	if arr.offsets != nil {
		r.offsets = make([]Vector, len(arr.offsets))
		for i, o := range arr.offsets {
			r.offsets[i] = t.ApplyVector(o)
		}
	} else {
		r.a, r.b = t.ApplyVector(arr.a), t.ApplyVector(arr.b)
	}
	r.bbox = r.computeBBox()
	return r
}

// String returns the object followed by the array parameters.
func (arr Array[T]) String() string {
	if arr.offsets != nil {
		return fmt.Sprintf("%v [%d offsets]", arr.obj, len(arr.offsets))
	}
	return fmt.Sprintf("%v [%s*%d;%s*%d]", arr.obj, arr.a, arr.na, arr.b, arr.nb)
}

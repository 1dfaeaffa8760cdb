package layout

import "fmt"

// Referable is the constraint for objects that can be shared through
// a Repository and placed by displacement.
type Referable[T any] interface {
	Hashable[T]
	BBox() Box
	Moved(Vector) T
	Transformed(ICplxTrans) T
	String() string
}

// Ref places an interned object at a displacement. Many refs may share
// one stored object; the repository owns it, the Ref never does.
//
// The stored object is normalized so that its bounding box starts at the
// origin, which lets congruent objects at different places share storage.
type Ref[T Referable[T]] struct {
	ptr  Ptr[T]
	disp Vector
}

// Shared reference kinds.
type (
	PolygonRef       = Ref[Polygon]
	SimplePolygonRef = Ref[SimplePolygon]
	PathRef          = Ref[Path]
	TextRef          = Ref[Text]
)

// NewRef interns obj in repo and returns a reference placing it at its
// original location.
func NewRef[T Referable[T]](repo *Repository[T], obj T) Ref[T] {
	var d Vector
	if b := obj.BBox(); !b.Empty() {
		d = b.P1().Vector()
	}
	return Ref[T]{ptr: repo.Intern(obj.Moved(d.Neg())), disp: d}
}

// RefAt builds a reference from an existing pointer and a displacement.
func RefAt[T Referable[T]](ptr Ptr[T], disp Vector) Ref[T] {
	return Ref[T]{ptr: ptr, disp: disp}
}

// NewPolygonRef interns p in repo.
func NewPolygonRef(repo *Repository[Polygon], p Polygon) PolygonRef {
	return NewRef(repo, p)
}

// NewSimplePolygonRef interns p in repo.
func NewSimplePolygonRef(repo *Repository[SimplePolygon], p SimplePolygon) SimplePolygonRef {
	return NewRef(repo, p)
}

// NewPathRef interns p in repo.
func NewPathRef(repo *Repository[Path], p Path) PathRef {
	return NewRef(repo, p)
}

// NewTextRef interns t in repo.
func NewTextRef(repo *Repository[Text], t Text) TextRef {
	return NewRef(repo, t)
}

// Ptr returns the reference to the shared object.
func (r Ref[T]) Ptr() Ptr[T] {
	return r.ptr
}

// Disp returns the displacement applied to the shared object.
func (r Ref[T]) Disp() Vector {
	return r.disp
}

// IsNil reports whether r refers to nothing.
func (r Ref[T]) IsNil() bool {
	return r.ptr.IsNil()
}

// Obj returns the displaced object.
func (r Ref[T]) Obj() T {
	return r.ptr.Get().Moved(r.disp)
}

// BBox returns the bounding box of the displaced object.
func (r Ref[T]) BBox() Box {
	if r.ptr.IsNil() {
		return EmptyBox()
	}
	return r.ptr.Get().BBox().Moved(r.disp)
}

// Equal reports whether both refs share the same object and displacement.
func (r Ref[T]) Equal(o Ref[T]) bool {
	return r == o
}

// Less orders refs by shared object, then displacement.
func (r Ref[T]) Less(o Ref[T]) bool {
	if r.ptr != o.ptr {
		return r.ptr.Less(o.ptr)
	}
	return r.disp.Less(o.disp)
}

// Moved returns the ref displaced by v. The shared object is not touched.
func (r Ref[T]) Moved(v Vector) Ref[T] {
	return Ref[T]{ptr: r.ptr, disp: r.disp.Add(v)}
}

// Transformed returns the ref under t. Anything beyond a displacement
// interns the transformed object in the repository of r.
func (r Ref[T]) Transformed(t ICplxTrans) Ref[T] {
	if r.ptr.IsNil() {
		return r
	}
	if t.IsDisplacement() {
		return r.Moved(t.Disp())
	}
	return NewRef(r.ptr.Repository(), r.Obj().Transformed(t))
}

// In returns an equivalent ref whose object lives in repo.
func (r Ref[T]) In(repo *Repository[T]) Ref[T] {
	if r.ptr.IsNil() || r.ptr.Repository() == repo {
		return r
	}
	return Ref[T]{ptr: repo.Intern(r.ptr.Get()), disp: r.disp}
}

// String returns the displaced object followed by the displacement.
func (r Ref[T]) String() string {
	if r.ptr.IsNil() {
		return "()"
	}
	return fmt.Sprintf("%s->%s", r.ptr.Get(), r.disp)
}

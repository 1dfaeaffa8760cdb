package layout

// UserObjectBase is implemented by caller-defined geometric objects that
// are stored alongside the built-in shape kinds.
type UserObjectBase interface {
	BBox() Box
	Equal(other UserObjectBase) bool
	Transformed(t ICplxTrans) UserObjectBase
	String() string
}

// UserObject wraps a caller-defined object so it can be stored as a shape.
// The zero value is an empty user object.
type UserObject struct {
	obj UserObjectBase
}

// NewUserObject wraps obj.
func NewUserObject(obj UserObjectBase) UserObject {
	return UserObject{obj: obj}
}

// Object returns the wrapped object, or nil.
func (u UserObject) Object() UserObjectBase {
	return u.obj
}

// BBox returns the bounding box of the wrapped object.
func (u UserObject) BBox() Box {
	if u.obj == nil {
		return EmptyBox()
	}
	return u.obj.BBox()
}

// Equal reports whether both wrapped objects are equal.
func (u UserObject) Equal(o UserObject) bool {
	if u.obj == nil || o.obj == nil {
		return u.obj == nil && o.obj == nil
	}
	return u.obj.Equal(o.obj)
}

// Moved returns the object displaced by v.
func (u UserObject) Moved(v Vector) UserObject {
	return u.Transformed(DispCplxTrans(v))
}

// Transformed returns the object under t.
func (u UserObject) Transformed(t ICplxTrans) UserObject {
	if u.obj == nil {
		return u
	}
	return UserObject{obj: u.obj.Transformed(t)}
}

// String returns the text form of the wrapped object.
func (u UserObject) String() string {
	if u.obj == nil {
		return "()"
	}
	return u.obj.String()
}

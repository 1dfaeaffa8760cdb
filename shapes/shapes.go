package shapes

import (
	"slices"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/undo"
)

// Cell is the owner of a Shapes container. The container only needs the
// shape repository of the cell's layout.
//
// If a Cell also implements
//
//	Invalidate()
//
// it is called once whenever the container turns dirty.
type Cell interface {
	ShapeRepository() *layout.ShapeRepository
}

// invalidator is the optional Cell extension notified of changes.
type invalidator interface {
	Invalidate()
}

// owner groups the owning cell with the container's mode bits.
type owner struct {
	cell     Cell
	dirty    bool
	editable bool
}

const numKeys = 2 * numKinds

// layerKey returns the registry slot of a (kind, properties) pair.
// Slot order is iteration order.
func layerKey(k Kind, props bool) int {
	key := int(k) * 2
	if props {
		key++
	}
	return key
}

// Shapes stores shapes of all kinds, each kind in its own layer.
//
// A Shapes container is not safe for concurrent use. Handles and
// iterators obtained from it are invalidated by mutations as described
// for Shape.
type Shapes struct {
	layers   []LayerBase
	byKey    [numKeys]LayerBase
	state    owner
	manager  *undo.Manager
	leafSize int

	bbox      layout.Box
	bboxDirty bool
}

// New creates an empty container.
func New(opts ...Option) *Shapes {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Shapes{
		state:    owner{cell: o.cell, editable: o.editable},
		manager:  o.manager,
		leafSize: o.leafSize,
		bbox:     layout.EmptyBox(),
	}
}

// Editable reports whether the container is in editable mode.
func (s *Shapes) Editable() bool { return s.state.editable }

// Cell returns the owning cell or nil.
func (s *Shapes) Cell() Cell { return s.state.cell }

// Manager returns the undo manager or nil.
func (s *Shapes) Manager() *undo.Manager { return s.manager }

// IsDirty reports whether an Update is owed since the last mutation.
func (s *Shapes) IsDirty() bool { return s.state.dirty }

// Layers returns the layers in creation order.
func (s *Shapes) Layers() []LayerBase {
	return slices.Clone(s.layers)
}

func (s *Shapes) transacting() bool {
	return s.manager != nil && s.manager.Transacting()
}

func (s *Shapes) repository() *layout.ShapeRepository {
	if s.state.cell == nil {
		return nil
	}
	return s.state.cell.ShapeRepository()
}

// invalidateState must run before every mutation.
func (s *Shapes) invalidateState() {
	if !s.state.dirty {
		s.state.dirty = true
		if inv, ok := s.state.cell.(invalidator); ok {
			inv.Invalidate()
		}
	}
	s.bboxDirty = true
}

func (s *Shapes) layerOf(k Kind, props bool) LayerBase {
	return s.byKey[layerKey(k, props)]
}

func (s *Shapes) addLayer(l LayerBase) {
	s.layers = append(s.layers, l)
	s.byKey[layerKey(l.Kind(), l.HasProperties())] = l
}

func (s *Shapes) removeLayer(l LayerBase) {
	key := layerKey(l.Kind(), l.HasProperties())
	if s.byKey[key] != l {
		return
	}
	s.byKey[key] = nil
	s.layers = slices.DeleteFunc(s.layers, func(x LayerBase) bool { return x == l })
}

// restoreLayer puts a removed layer back, merging it into a layer of the
// same type created since.
func (s *Shapes) restoreLayer(l LayerBase) {
	s.invalidateState()
	if cur := s.layerOf(l.Kind(), l.HasProperties()); cur != nil {
		cur.absorb(l)
		return
	}
	s.addLayer(l.Clone())
}

// layerFor returns the layer for values of type T, creating it on first use.
func layerFor[T Object[T]](s *Shapes, k Kind, props bool) *layer[T] {
	if l := s.layerOf(k, props); l != nil {
		return l.(*layer[T])
	}
	l := newLayer[T](k, props, s.state.editable, s.leafSize)
	s.addLayer(l)
	return l
}

// Insert stores obj without properties and returns a handle to it.
//
// Arrays inserted into an editable container are expanded: every member
// is stored individually and the returned handle is null.
func Insert[T Object[T]](s *Shapes, obj T) Shape {
	return insertValue(s, obj, false, 0)
}

// InsertWithProperties stores obj with a properties id.
func InsertWithProperties[T Object[T]](s *Shapes, obj T, pid PropertiesID) Shape {
	return insertValue(s, obj, true, pid)
}

func insertValue[T Object[T]](s *Shapes, obj T, props bool, pid PropertiesID) Shape {
	k := kindOf[T]()
	if k.IsArray() && s.state.editable {
		forEachMember(obj, func(m any) {
			s.insertAny(m, props, pid)
		})
		return Shape{}
	}
	s.invalidateState()
	l := layerFor[T](s, k, props)
	if s.transacting() {
		queueOp(s, true, props, []T{obj}, []PropertiesID{pid})
	}
	pos := l.insert(obj, pid)
	return Shape{shapes: s, kind: k, props: props, pos: pos}
}

// insertAny inserts a value whose type is only known at run time.
func (s *Shapes) insertAny(obj any, props bool, pid PropertiesID) Shape {
	switch o := obj.(type) {
	case layout.Polygon:
		return insertValue(s, o, props, pid)
	case layout.PolygonRef:
		return insertValue(s, o, props, pid)
	case layout.PolygonPtrArray:
		return insertValue(s, o, props, pid)
	case layout.SimplePolygon:
		return insertValue(s, o, props, pid)
	case layout.SimplePolygonRef:
		return insertValue(s, o, props, pid)
	case layout.SimplePolygonPtrArray:
		return insertValue(s, o, props, pid)
	case layout.Edge:
		return insertValue(s, o, props, pid)
	case layout.EdgePair:
		return insertValue(s, o, props, pid)
	case layout.Path:
		return insertValue(s, o, props, pid)
	case layout.PathRef:
		return insertValue(s, o, props, pid)
	case layout.PathPtrArray:
		return insertValue(s, o, props, pid)
	case layout.Box:
		return insertValue(s, o, props, pid)
	case layout.BoxArray:
		return insertValue(s, o, props, pid)
	case layout.ShortBox:
		return insertValue(s, o, props, pid)
	case layout.ShortBoxArray:
		return insertValue(s, o, props, pid)
	case layout.Text:
		return insertValue(s, o, props, pid)
	case layout.TextRef:
		return insertValue(s, o, props, pid)
	case layout.TextPtrArray:
		return insertValue(s, o, props, pid)
	case layout.Point:
		return insertValue(s, o, props, pid)
	case layout.UserObject:
		return insertValue(s, o, props, pid)
	default:
		panic("shapes: unsupported object type")
	}
}

// Find returns a handle to a stored shape without properties equal to obj,
// or a null handle.
func Find[T Object[T]](s *Shapes, obj T) Shape {
	return findValue(s, obj, false, 0)
}

// FindWithProperties returns a handle to a stored shape equal to obj with
// the given properties id, or a null handle.
func FindWithProperties[T Object[T]](s *Shapes, obj T, pid PropertiesID) Shape {
	return findValue(s, obj, true, pid)
}

func findValue[T Object[T]](s *Shapes, obj T, props bool, pid PropertiesID) Shape {
	k := kindOf[T]()
	l := s.layerOf(k, props)
	if l == nil {
		return Shape{}
	}
	pos := l.(*layer[T]).findValue(obj, pid)
	if pos < 0 {
		return Shape{}
	}
	return Shape{shapes: s, kind: k, props: props, pos: pos}
}

// FindShape returns the handle of a shape in s equal to the shape sh
// refers to, which may live in another container. Array members are
// looked up as plain objects.
func (s *Shapes) FindShape(sh Shape) Shape {
	if sh.IsNull() {
		return Shape{}
	}
	obj := sh.Object()
	k, _ := kindOfValue(obj)
	l := s.layerOf(k, sh.props)
	if l == nil {
		return Shape{}
	}
	pos := l.find(obj, sh.PropID())
	if pos < 0 {
		return Shape{}
	}
	return Shape{shapes: s, kind: k, props: sh.props, pos: pos}
}

// checkHandle validates a handle for a mutating operation fn.
func (s *Shapes) checkHandle(fn string, sh Shape) error {
	switch {
	case !s.state.editable:
		return usageError(fn, ErrNotEditable)
	case sh.IsNull():
		return usageError(fn, ErrInvalidShape)
	case sh.shapes != s:
		return usageError(fn, ErrForeignShape)
	case sh.isMember:
		return usageError(fn, ErrArrayMember)
	}
	if l := s.layerOf(sh.kind, sh.props); l == nil || !l.isLive(sh.pos) {
		return usageError(fn, ErrInvalidShape)
	}
	return nil
}

// Erase removes the shape sh refers to. It fails with ErrNotEditable
// unless the container is editable.
func (s *Shapes) Erase(sh Shape) error {
	if err := s.checkHandle("erase", sh); err != nil {
		return err
	}
	s.eraseSorted(s.layerOf(sh.kind, sh.props), []int{sh.pos})
	return nil
}

// EraseShapes removes a batch of shapes. The handles must be sorted in
// ascending Shape.Less order; an unsorted batch fails with ErrEraseOrder
// and erases nothing. Duplicate handles are erased once.
func (s *Shapes) EraseShapes(handles []Shape) error {
	for i, sh := range handles {
		if err := s.checkHandle("erase", sh); err != nil {
			return err
		}
		if i > 0 && sh.Less(handles[i-1]) {
			return usageError("erase", ErrEraseOrder)
		}
	}
	for i := 0; i < len(handles); {
		first := handles[i]
		var pos []int
		for ; i < len(handles) && handles[i].kind == first.kind && handles[i].props == first.props; i++ {
			pos = append(pos, handles[i].pos)
		}
		s.eraseSorted(s.layerOf(first.kind, first.props), slices.Compact(pos))
	}
	return nil
}

// eraseSorted erases sorted positions of l, queueing the undo op first.
func (s *Shapes) eraseSorted(l LayerBase, pos []int) {
	s.invalidateState()
	if s.transacting() {
		l.queueErase(s, pos)
	}
	l.erasePositions(pos)
}

// Replace stores obj in place of the shape sh refers to, keeping its
// properties id. If obj has another kind than the old shape, the old shape
// is erased and obj inserted, and the returned handle differs from sh.
func Replace[T Object[T]](s *Shapes, sh Shape, obj T) (Shape, error) {
	if err := s.checkHandle("replace", sh); err != nil {
		return Shape{}, err
	}
	return s.replaceAny(sh, obj), nil
}

func (s *Shapes) replaceAny(sh Shape, obj any) Shape {
	k, ok := kindOfValue(obj)
	if !ok {
		panic("shapes: unsupported object type")
	}
	l := s.layerOf(sh.kind, sh.props)
	if k != sh.kind {
		pid := l.pidAt(sh.pos)
		s.eraseSorted(l, []int{sh.pos})
		return s.insertAny(obj, sh.props, pid)
	}
	s.invalidateState()
	if s.transacting() {
		l.queueErase(s, []int{sh.pos})
		l.queueInsert(s, obj, l.pidAt(sh.pos))
	}
	l.setAt(sh.pos, obj)
	return sh
}

// ReplaceProperties changes the properties id of a shape. An id of 0
// moves the shape into the layer without properties.
func (s *Shapes) ReplaceProperties(sh Shape, pid PropertiesID) (Shape, error) {
	if err := s.checkHandle("replace_prop_id", sh); err != nil {
		return Shape{}, err
	}
	if !sh.props && pid == 0 {
		return sh, nil
	}
	l := s.layerOf(sh.kind, sh.props)
	if sh.props && l.pidAt(sh.pos) == pid {
		return sh, nil
	}
	if sh.props && pid != 0 {
		s.invalidateState()
		if s.transacting() {
			l.queueErase(s, []int{sh.pos})
			l.queueInsert(s, l.objectAt(sh.pos), pid)
		}
		l.setPid(sh.pos, pid)
		return sh, nil
	}
	obj := l.objectAt(sh.pos)
	s.eraseSorted(l, []int{sh.pos})
	return s.insertAny(obj, pid != 0, pid), nil
}

// Transform replaces the shape sh refers to by its image under t.
// References are resolved into plain objects and boxes turn into polygons
// unless t is orthogonal.
func (s *Shapes) Transform(sh Shape, t layout.ICplxTrans) (Shape, error) {
	if err := s.checkHandle("transform", sh); err != nil {
		return Shape{}, err
	}
	obj := sh.Object()
	if sh.kind.IsRef() {
		derefObject(obj, func(o any) { obj = o })
	}
	var out []any
	transformObject(obj, t, nil, func(o any) { out = append(out, o) })
	if len(out) == 1 {
		return s.replaceAny(sh, out[0]), nil
	}
	pid := sh.PropID()
	s.eraseSorted(s.layerOf(sh.kind, sh.props), []int{sh.pos})
	for _, o := range out {
		s.insertAny(o, sh.props, pid)
	}
	return Shape{}, nil
}

// BBox returns the box enclosing all shapes.
func (s *Shapes) BBox() layout.Box {
	if s.bboxDirty {
		b := layout.EmptyBox()
		for _, l := range s.layers {
			l.UpdateBBox()
			b = b.Union(l.BBox())
		}
		s.bbox = b
		s.bboxDirty = false
	}
	return s.bbox
}

// Sort rebuilds the spatial indexes of all layers that need it.
func (s *Shapes) Sort() {
	for _, l := range s.layers {
		l.Sort()
	}
}

// Update rebuilds indexes and bounding boxes and clears the dirty state.
func (s *Shapes) Update() {
	s.Sort()
	s.BBox()
	s.state.dirty = false
}

// Size returns the number of stored shapes. Arrays count as one.
func (s *Shapes) Size() int {
	n := 0
	for _, l := range s.layers {
		n += l.Size()
	}
	return n
}

// SizeOf returns the number of stored shapes selected by flags.
func (s *Shapes) SizeOf(flags Flags) int {
	n := 0
	for _, l := range s.layers {
		if selectsLayer(flags, l.Kind(), l.HasProperties()) {
			n += l.Size()
		}
	}
	return n
}

// Empty reports whether the container holds no shapes.
func (s *Shapes) Empty() bool {
	for _, l := range s.layers {
		if !l.Empty() {
			return false
		}
	}
	return true
}

// selectsLayer applies flags to a layer.
func selectsLayer(flags Flags, k Kind, props bool) bool {
	if flags&k.Flag() == 0 {
		return false
	}
	return props || flags&Properties == 0
}

// Clear removes all shapes and layers.
func (s *Shapes) Clear() {
	s.ClearKinds(All)
}

// ClearKinds removes the layers selected by flags.
func (s *Shapes) ClearKinds(flags Flags) {
	var drop []LayerBase
	for _, l := range s.layers {
		if selectsLayer(flags, l.Kind(), l.HasProperties()) {
			drop = append(drop, l)
		}
	}
	if len(drop) == 0 {
		return
	}
	s.invalidateState()
	for _, l := range drop {
		if s.transacting() && !l.Empty() {
			s.manager.Queue(s, &fullLayerOp{layer: l})
		}
		s.removeLayer(l)
	}
}

// Swap exchanges the contents of s and other. The editable mode goes
// with the contents since it decides how the layers store arrays. Cell
// and manager stay.
func (s *Shapes) Swap(other *Shapes) {
	s.invalidateState()
	other.invalidateState()
	s.state.editable, other.state.editable = other.state.editable, s.state.editable
	s.layers, other.layers = other.layers, s.layers
	s.byKey, other.byKey = other.byKey, s.byKey
}

// Clone returns a standalone copy with the same mode. Cell and manager
// are not copied.
func (s *Shapes) Clone() *Shapes {
	c := &Shapes{
		state:     owner{editable: s.state.editable, dirty: true},
		leafSize:  s.leafSize,
		bbox:      layout.EmptyBox(),
		bboxDirty: true,
	}
	for _, l := range s.layers {
		c.addLayer(l.Clone())
	}
	return c
}

// InsertShape copies the shape sh refers to into s, keeping its properties
// id. Array members are inserted as plain objects.
func (s *Shapes) InsertShape(sh Shape) Shape {
	if sh.IsNull() {
		return Shape{}
	}
	var res Shape
	transformObject(sh.Object(), layout.UnitCplxTrans(), s.repository(), func(o any) {
		res = s.insertAny(o, sh.props, sh.PropID())
	})
	return res
}

// InsertShapes copies all shapes of src into s.
func (s *Shapes) InsertShapes(src *Shapes) {
	s.InsertShapesTransformed(src, layout.UnitCplxTrans(), nil)
}

// InsertShapesTransformed copies all shapes of src into s under t,
// translating properties ids with pm.
//
// A standalone container outside a transaction receives plain objects:
// references and arrays are resolved while copying. Otherwise kinds are
// kept and references are re-interned into the repository of the cell.
// Both ways yield the same geometry.
func (s *Shapes) InsertShapesTransformed(src *Shapes, t layout.ICplxTrans, pm PropertyMapper) {
	if src == s {
		src = s.Clone()
	}
	deref := s.state.cell == nil && !s.transacting()
	for _, l := range src.layers {
		switch {
		case deref:
			l.derefInto(s, t, pm)
		case t.IsUnity():
			l.translateInto(s, pm)
		default:
			l.transformInto(s, t, pm)
		}
	}
	layout.Logger().Debug("shapes: bulk copy", "shapes", src.Size(), "deref", deref, "trans", t.String())
}

package shapes

import (
	"slices"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/internal/boxtree"
)

// LayerBase is the kind-independent view of one per-kind layer of a
// Shapes container. A layer holds the shapes of exactly one Kind, either
// all with or all without properties ids.
//
// Layers are created by the container; the interface cannot be
// implemented outside this package.
type LayerBase interface {
	// Kind returns the kind of the stored shapes.
	Kind() Kind

	// HasProperties reports whether the shapes carry properties ids.
	HasProperties() bool

	// Size returns the number of stored shapes.
	Size() int

	// Empty reports whether the layer holds no shapes.
	Empty() bool

	// BBox returns the bounding box computed by the last UpdateBBox.
	BBox() layout.Box

	// UpdateBBox recomputes the bounding box if shapes changed since the
	// last call.
	UpdateBBox()

	// Sort rebuilds the spatial index if it is dirty.
	Sort()

	// IsDirty reports whether the spatial index needs a rebuild.
	IsDirty() bool

	// Clone returns a deep copy with a dirty index.
	Clone() LayerBase

	// IsSameType reports whether other stores the same kind with the same
	// properties flag.
	IsSameType(other LayerBase) bool

	translateInto(dst *Shapes, pm PropertyMapper)
	transformInto(dst *Shapes, t layout.ICplxTrans, pm PropertyMapper)
	derefInto(dst *Shapes, t layout.ICplxTrans, pm PropertyMapper)

	view() layerView
	isLive(pos int) bool
	objectAt(pos int) any
	memberAt(pos, i int) any
	arrayAt(pos int) arrayView
	boxAt(pos int) layout.Box
	pidAt(pos int) PropertiesID
	setAt(pos int, obj any)
	setPid(pos int, pid PropertiesID)
	find(obj any, pid PropertiesID) int
	erasePositions(pos []int)
	absorb(other LayerBase)
	queueErase(s *Shapes, pos []int)
	queueInsert(s *Shapes, obj any, pid PropertiesID)
}

// layerView is the state an iterator needs to walk a layer without
// calling back into it for every element. The slices are read through
// pointers so that erasure in a stable layer is seen even after the
// layer grew.
type layerView struct {
	layer LayerBase
	kind  Kind
	props bool
	n     int
	dead  *[]bool
	pids  *[]PropertiesID
	tree  *boxtree.Tree
}

// layer stores the shapes of one kind.
//
// A stable layer never moves an element: erase leaves a tombstone and
// insert always appends, so positions stay valid until that element is
// erased. An unstable layer keeps its elements compact; any erase may
// move elements behind the erased ones.
type layer[T Object[T]] struct {
	kind   Kind
	props  bool
	stable bool

	objs []T
	pids []PropertiesID // parallel to objs, props layers only
	dead []bool         // parallel to objs, stable layers only
	live int

	tree      boxtree.Tree
	treeDirty bool
	leafSize  int

	bbox      layout.Box
	bboxDirty bool
}

func newLayer[T Object[T]](kind Kind, props, stable bool, leafSize int) *layer[T] {
	return &layer[T]{
		kind:     kind,
		props:    props,
		stable:   stable,
		leafSize: leafSize,
		bbox:     layout.EmptyBox(),
	}
}

func (l *layer[T]) Kind() Kind          { return l.kind }
func (l *layer[T]) HasProperties() bool { return l.props }
func (l *layer[T]) Size() int           { return l.live }
func (l *layer[T]) Empty() bool         { return l.live == 0 }
func (l *layer[T]) BBox() layout.Box    { return l.bbox }
func (l *layer[T]) IsDirty() bool       { return l.treeDirty }

func (l *layer[T]) IsSameType(other LayerBase) bool {
	return other != nil && other.Kind() == l.kind && other.HasProperties() == l.props
}

func (l *layer[T]) markDirty() {
	l.treeDirty = true
	l.bboxDirty = true
}

func (l *layer[T]) UpdateBBox() {
	if !l.bboxDirty {
		return
	}
	b := layout.EmptyBox()
	for pos := range l.objs {
		if l.isLive(pos) {
			b = b.Union(l.objs[pos].BBox())
		}
	}
	l.bbox = b
	l.bboxDirty = false
}

func (l *layer[T]) Sort() {
	if !l.treeDirty {
		return
	}
	ids := make([]int32, 0, l.live)
	for pos := range l.objs {
		if l.isLive(pos) {
			ids = append(ids, int32(pos))
		}
	}
	l.tree.Build(ids, func(id int32) layout.Box { return l.objs[id].BBox() }, l.leafSize)
	l.treeDirty = false
	layout.Logger().Debug("shapes: index rebuilt",
		"kind", l.kind.String(), "properties", l.props, "elements", l.tree.Len(), "quads", l.tree.Nodes())
}

func (l *layer[T]) Clone() LayerBase {
	return &layer[T]{
		kind:      l.kind,
		props:     l.props,
		stable:    l.stable,
		objs:      slices.Clone(l.objs),
		pids:      slices.Clone(l.pids),
		dead:      slices.Clone(l.dead),
		live:      l.live,
		treeDirty: true,
		leafSize:  l.leafSize,
		bbox:      l.bbox,
		bboxDirty: l.bboxDirty,
	}
}

// insert stores obj and returns its position.
func (l *layer[T]) insert(obj T, pid PropertiesID) int {
	l.markDirty()
	pos := len(l.objs)
	l.objs = append(l.objs, obj)
	if l.props {
		l.pids = append(l.pids, pid)
	}
	if l.stable {
		l.dead = append(l.dead, false)
	}
	l.live++
	return pos
}

// erasePositions removes the elements at the given positions, which must
// be sorted in ascending order. Duplicates are ignored.
func (l *layer[T]) erasePositions(pos []int) {
	if len(pos) == 0 {
		return
	}
	l.markDirty()

	if l.stable {
		var zero T
		for _, p := range pos {
			if !l.dead[p] {
				l.dead[p] = true
				l.objs[p] = zero
				l.live--
			}
		}
		return
	}

	w, pi := pos[0], 0
	for r := pos[0]; r < len(l.objs); r++ {
		for pi < len(pos) && pos[pi] < r {
			pi++
		}
		if pi < len(pos) && pos[pi] == r {
			continue
		}
		l.objs[w] = l.objs[r]
		if l.props {
			l.pids[w] = l.pids[r]
		}
		w++
	}
	clear(l.objs[w:])
	l.objs = l.objs[:w]
	if l.props {
		l.pids = l.pids[:w]
	}
	l.live = w
}

func (l *layer[T]) isLive(pos int) bool {
	return pos >= 0 && pos < len(l.objs) && (l.dead == nil || !l.dead[pos])
}

func (l *layer[T]) view() layerView {
	return layerView{
		layer: l,
		kind:  l.kind,
		props: l.props,
		n:     len(l.objs),
		dead:  &l.dead,
		pids:  &l.pids,
		tree:  &l.tree,
	}
}

func (l *layer[T]) objectAt(pos int) any {
	return l.objs[pos]
}

func (l *layer[T]) memberAt(pos, i int) any {
	return arrayMember(any(l.objs[pos]), i)
}

func (l *layer[T]) arrayAt(pos int) arrayView {
	arr, ok := any(l.objs[pos]).(arrayObject)
	if !ok {
		panic("shapes: " + l.kind.String() + " is not an array kind")
	}
	return newArrayView(arr)
}

func (l *layer[T]) boxAt(pos int) layout.Box {
	return l.objs[pos].BBox()
}

func (l *layer[T]) pidAt(pos int) PropertiesID {
	if !l.props {
		return 0
	}
	return l.pids[pos]
}

func (l *layer[T]) setAt(pos int, obj any) {
	l.markDirty()
	l.objs[pos] = obj.(T)
}

func (l *layer[T]) setPid(pos int, pid PropertiesID) {
	l.pids[pos] = pid
}

// findValue returns the position of the first live element equal to obj
// with the given properties id, or -1.
func (l *layer[T]) findValue(obj T, pid PropertiesID) int {
	for pos := range l.objs {
		if l.isLive(pos) && l.objs[pos].Equal(obj) && (!l.props || l.pids[pos] == pid) {
			return pos
		}
	}
	return -1
}

func (l *layer[T]) find(obj any, pid PropertiesID) int {
	o, ok := obj.(T)
	if !ok {
		return -1
	}
	return l.findValue(o, pid)
}

func (l *layer[T]) absorb(other LayerBase) {
	o := other.(*layer[T])
	for pos := range o.objs {
		if o.isLive(pos) {
			l.insert(o.objs[pos], o.pidAt(pos))
		}
	}
}

func (l *layer[T]) queueErase(s *Shapes, pos []int) {
	objs := make([]T, 0, len(pos))
	var pids []PropertiesID
	for _, p := range pos {
		objs = append(objs, l.objs[p])
		if l.props {
			pids = append(pids, l.pids[p])
		}
	}
	queueOp(s, false, l.props, objs, pids)
}

func (l *layer[T]) queueInsert(s *Shapes, obj any, pid PropertiesID) {
	queueOp(s, true, l.props, []T{obj.(T)}, []PropertiesID{pid})
}

func (l *layer[T]) translateInto(dst *Shapes, pm PropertyMapper) {
	l.transformInto(dst, layout.UnitCplxTrans(), pm)
}

// transformInto copies all shapes into dst under t, keeping their kinds.
// References are re-interned into the repository of dst's cell, if any.
func (l *layer[T]) transformInto(dst *Shapes, t layout.ICplxTrans, pm PropertyMapper) {
	repo := dst.repository()
	l.copyInto(dst, pm, func(obj any, emit func(any)) {
		transformObject(obj, t, repo, emit)
	})
}

// derefInto copies all shapes into dst under t, resolving references and
// arrays into plain objects.
func (l *layer[T]) derefInto(dst *Shapes, t layout.ICplxTrans, pm PropertyMapper) {
	l.copyInto(dst, pm, func(obj any, emit func(any)) {
		derefObject(obj, func(o any) {
			transformObject(o, t, nil, emit)
		})
	})
}

func (l *layer[T]) copyInto(dst *Shapes, pm PropertyMapper, conv func(any, func(any))) {
	for pos := range l.objs {
		if !l.isLive(pos) {
			continue
		}
		pid := pm.apply(l.pidAt(pos))
		conv(l.objs[pos], func(o any) {
			dst.insertAny(o, l.props, pid)
		})
	}
}

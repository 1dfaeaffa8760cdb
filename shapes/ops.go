package shapes

import (
	"slices"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/undo"
)

// layerOp records shapes inserted into or erased from one layer.
type layerOp[T Object[T]] struct {
	insert bool
	props  bool
	objs   []T
	pids   []PropertiesID
}

var (
	_ undo.Op = (*layerOp[layout.Box])(nil)
	_ undo.Op = (*fullLayerOp)(nil)
)

// queueOp records an insert or erase before it is applied. The op is
// merged into the last one queued for s if that has the same direction
// and layer.
func queueOp[T Object[T]](s *Shapes, insert, props bool, objs []T, pids []PropertiesID) {
	if last, ok := s.manager.LastQueued(s).(*layerOp[T]); ok && last.insert == insert && last.props == props {
		last.objs = append(last.objs, objs...)
		if props {
			last.pids = append(last.pids, pids...)
		}
		return
	}
	op := &layerOp[T]{insert: insert, props: props, objs: slices.Clone(objs)}
	if props {
		op.pids = slices.Clone(pids)
	}
	s.manager.Queue(s, op)
}

func (op *layerOp[T]) Undo(target any) {
	s := target.(*Shapes)
	if op.insert {
		op.erase(s)
	} else {
		op.restore(s)
	}
}

func (op *layerOp[T]) Redo(target any) {
	s := target.(*Shapes)
	if op.insert {
		op.restore(s)
	} else {
		op.erase(s)
	}
}

func (op *layerOp[T]) pid(i int) PropertiesID {
	if op.props {
		return op.pids[i]
	}
	return 0
}

// restore inserts the recorded shapes. Arrays are stored as recorded.
func (op *layerOp[T]) restore(s *Shapes) {
	s.invalidateState()
	l := layerFor[T](s, kindOf[T](), op.props)
	for i, obj := range op.objs {
		l.insert(obj, op.pid(i))
	}
}

// erase removes one stored shape per recorded shape. Editable mode is not
// required: undo must work on bulk containers too.
func (op *layerOp[T]) erase(s *Shapes) {
	lb := s.layerOf(kindOf[T](), op.props)
	if lb == nil {
		return
	}
	l := lb.(*layer[T])
	byBox := make(map[layout.Box][]int)
	for p := range l.objs {
		if l.isLive(p) {
			b := l.objs[p].BBox()
			byBox[b] = append(byBox[b], p)
		}
	}
	pos := make([]int, 0, len(op.objs))
	for i, obj := range op.objs {
		b := obj.BBox()
		cands := byBox[b]
		for j, p := range cands {
			if l.objs[p].Equal(obj) && l.pidAt(p) == op.pid(i) {
				pos = append(pos, p)
				byBox[b] = slices.Delete(cands, j, j+1)
				break
			}
		}
	}
	slices.Sort(pos)
	s.invalidateState()
	l.erasePositions(pos)
}

// fullLayerOp records a whole layer removed by Clear.
type fullLayerOp struct {
	layer LayerBase
}

func (op *fullLayerOp) Undo(target any) {
	target.(*Shapes).restoreLayer(op.layer)
}

func (op *fullLayerOp) Redo(target any) {
	s := target.(*Shapes)
	if cur := s.layerOf(op.layer.Kind(), op.layer.HasProperties()); cur != nil {
		s.invalidateState()
		s.removeLayer(cur)
	}
}

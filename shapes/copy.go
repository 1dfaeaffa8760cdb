package shapes

import (
	"math"

	"github.com/gogpu/layout"
)

// derefObject calls emit with obj, or with the plain objects a reference
// or array stands for.
func derefObject(obj any, emit func(any)) {
	switch o := obj.(type) {
	case layout.PolygonRef:
		emit(o.Obj())
	case layout.SimplePolygonRef:
		emit(o.Obj())
	case layout.PathRef:
		emit(o.Obj())
	case layout.TextRef:
		emit(o.Obj())
	case layout.PolygonPtrArray, layout.SimplePolygonPtrArray, layout.PathPtrArray,
		layout.TextPtrArray, layout.BoxArray, layout.ShortBoxArray:
		forEachMember(o, func(m any) { derefObject(m, emit) })
	default:
		emit(obj)
	}
}

// transformObject calls emit with the image of obj under t. If repo is
// set, references are re-interned into it. Boxes under a transformation
// that is not orthogonal become polygons; box arrays are expanded for it.
func transformObject(obj any, t layout.ICplxTrans, repo *layout.ShapeRepository, emit func(any)) {
	if t.IsUnity() && repo == nil {
		emit(obj)
		return
	}
	switch o := obj.(type) {
	case layout.Polygon:
		emit(o.Transformed(t))
	case layout.SimplePolygon:
		emit(o.Transformed(t))
	case layout.Edge:
		emit(o.Transformed(t))
	case layout.EdgePair:
		emit(o.Transformed(t))
	case layout.Path:
		emit(o.Transformed(t))
	case layout.Text:
		emit(o.Transformed(t))
	case layout.Point:
		emit(o.Transformed(t))
	case layout.UserObject:
		emit(o.Transformed(t))

	case layout.Box:
		emit(transformBox(o, t))
	case layout.ShortBox:
		if b, ok := transformBox(o.Box(), t).(layout.Box); ok && fitsShort(b) {
			emit(layout.NewShortBox(b))
		} else {
			emit(transformBox(o.Box(), t))
		}

	case layout.PolygonRef:
		r := o.Transformed(t)
		if repo != nil {
			r = r.In(repo.Polygons)
		}
		emit(r)
	case layout.SimplePolygonRef:
		r := o.Transformed(t)
		if repo != nil {
			r = r.In(repo.SimplePolygons)
		}
		emit(r)
	case layout.PathRef:
		r := o.Transformed(t)
		if repo != nil {
			r = r.In(repo.Paths)
		}
		emit(r)
	case layout.TextRef:
		r := o.Transformed(t)
		if repo != nil {
			r = r.In(repo.Texts)
		}
		emit(r)

	case layout.PolygonPtrArray:
		a := o.Transformed(t)
		if repo != nil {
			a = a.WithObject(a.Object().In(repo.Polygons))
		}
		emit(a)
	case layout.SimplePolygonPtrArray:
		a := o.Transformed(t)
		if repo != nil {
			a = a.WithObject(a.Object().In(repo.SimplePolygons))
		}
		emit(a)
	case layout.PathPtrArray:
		a := o.Transformed(t)
		if repo != nil {
			a = a.WithObject(a.Object().In(repo.Paths))
		}
		emit(a)
	case layout.TextPtrArray:
		a := o.Transformed(t)
		if repo != nil {
			a = a.WithObject(a.Object().In(repo.Texts))
		}
		emit(a)
	case layout.BoxArray:
		if !t.IsOrtho() {
			forEachMember(o, func(m any) { transformObject(m, t, repo, emit) })
			return
		}
		emit(o.Transformed(t))
	case layout.ShortBoxArray:
		if !t.IsOrtho() || !fitsShort(o.BBox().Transformed(t)) {
			forEachMember(o, func(m any) { transformObject(m, t, repo, emit) })
			return
		}
		emit(o.Transformed(t))

	default:
		panic("shapes: unsupported object type")
	}
}

// transformBox returns a Box for orthogonal t and a Polygon otherwise.
func transformBox(b layout.Box, t layout.ICplxTrans) any {
	if t.IsOrtho() {
		return b.Transformed(t)
	}
	return layout.PolygonFromBox(b).Transformed(t)
}

func fitsShort(b layout.Box) bool {
	return b.Left >= math.MinInt16 && b.Bottom >= math.MinInt16 &&
		b.Right <= math.MaxInt16 && b.Top <= math.MaxInt16
}

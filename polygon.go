package layout

import (
	"slices"
	"strings"
)

// Polygon is a closed outline with optional holes.
// Polygons are immutable once built; all modifiers return copies.
type Polygon struct {
	hull  []Point
	holes [][]Point
	bbox  Box
}

// NewPolygon creates a polygon from a hull and any number of holes.
// The point slices are copied.
func NewPolygon(hull []Point, holes ...[]Point) Polygon {
	p := Polygon{hull: slices.Clone(hull)}
	for _, h := range holes {
		p.holes = append(p.holes, slices.Clone(h))
	}
	p.bbox = contourBBox(p.hull)
	return p
}

// PolygonFromBox creates the rectangular polygon of b.
func PolygonFromBox(b Box) Polygon {
	if b.Empty() {
		return Polygon{bbox: EmptyBox()}
	}
	return Polygon{
		hull: []Point{
			{X: b.Left, Y: b.Bottom},
			{X: b.Left, Y: b.Top},
			{X: b.Right, Y: b.Top},
			{X: b.Right, Y: b.Bottom},
		},
		bbox: b,
	}
}

func contourBBox(pts []Point) Box {
	b := EmptyBox()
	for _, p := range pts {
		b = b.UnionPoint(p)
	}
	return b
}

// Hull returns the outer contour. The slice must not be modified.
func (p Polygon) Hull() []Point {
	return p.hull
}

// Holes returns the number of holes.
func (p Polygon) Holes() int {
	return len(p.holes)
}

// Hole returns the contour of hole i. The slice must not be modified.
func (p Polygon) Hole(i int) []Point {
	return p.holes[i]
}

// NumPoints returns the total number of points of hull and holes.
func (p Polygon) NumPoints() int {
	n := len(p.hull)
	for _, h := range p.holes {
		n += len(h)
	}
	return n
}

// IsBox reports whether the polygon is an axis-aligned rectangle.
func (p Polygon) IsBox() bool {
	if len(p.holes) > 0 || len(p.hull) != 4 {
		return false
	}
	for i, a := range p.hull {
		b := p.hull[(i+1)%4]
		if a.X != b.X && a.Y != b.Y {
			return false
		}
	}
	return true
}

// BBox returns the bounding box of the hull.
func (p Polygon) BBox() Box {
	if p.hull == nil {
		return EmptyBox()
	}
	return p.bbox
}

// Equal reports whether both polygons have identical contours.
func (p Polygon) Equal(o Polygon) bool {
	if !slices.Equal(p.hull, o.hull) || len(p.holes) != len(o.holes) {
		return false
	}
	for i := range p.holes {
		if !slices.Equal(p.holes[i], o.holes[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash over all contour points.
func (p Polygon) Hash() uint64 {
	h := hashPoints(fnvOffset, p.hull)
	for _, c := range p.holes {
		h = hashPoints(hashMix(h, uint64(len(c))), c)
	}
	return h
}

// Moved returns the polygon displaced by v.
func (p Polygon) Moved(v Vector) Polygon {
	if v.IsZero() {
		return p
	}
	return p.mapPoints(func(pt Point) Point { return pt.Add(v) }, false)
}

// Transformed returns the polygon under t. Mirroring transformations
// reverse the contour orientation so hulls keep their winding.
func (p Polygon) Transformed(t ICplxTrans) Polygon {
	if t.IsUnity() {
		return p
	}
	return p.mapPoints(t.Apply, t.IsMirror())
}

func (p Polygon) mapPoints(f func(Point) Point, reverse bool) Polygon {
	conv := func(in []Point) []Point {
		out := make([]Point, len(in))
		for i, pt := range in {
			out[i] = f(pt)
		}
		if reverse {
			slices.Reverse(out)
		}
		return out
	}
	r := Polygon{hull: conv(p.hull)}
	for _, h := range p.holes {
		r.holes = append(r.holes, conv(h))
	}
	r.bbox = contourBBox(r.hull)
	return r
}

// Edges calls f for every edge of hull and holes.
func (p Polygon) Edges(f func(Edge)) {
	contourEdges(p.hull, f)
	for _, h := range p.holes {
		contourEdges(h, f)
	}
}

func contourEdges(c []Point, f func(Edge)) {
	for i := range c {
		f(Edge{P1: c[i], P2: c[(i+1)%len(c)]})
	}
}

// String returns the polygon as "(x,y;x,y;...)", holes separated by "/".
func (p Polygon) String() string {
	var sb strings.Builder
	writeContour(&sb, p.hull)
	for _, h := range p.holes {
		sb.WriteByte('/')
		writeContour(&sb, h)
	}
	return sb.String()
}

func writeContour(sb *strings.Builder, c []Point) {
	sb.WriteByte('(')
	for i, pt := range c {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte(')')
}

// SimplePolygon is a polygon without holes.
type SimplePolygon struct {
	poly Polygon
}

// NewSimplePolygon creates a simple polygon from its hull.
func NewSimplePolygon(hull []Point) SimplePolygon {
	return SimplePolygon{poly: NewPolygon(hull)}
}

// SimplePolygonFromBox creates the rectangular simple polygon of b.
func SimplePolygonFromBox(b Box) SimplePolygon {
	return SimplePolygon{poly: PolygonFromBox(b)}
}

// Hull returns the contour. The slice must not be modified.
func (s SimplePolygon) Hull() []Point { return s.poly.hull }

// Polygon returns the equivalent polygon.
func (s SimplePolygon) Polygon() Polygon { return s.poly }

// BBox returns the bounding box.
func (s SimplePolygon) BBox() Box { return s.poly.BBox() }

// Equal reports whether both polygons have identical hulls.
func (s SimplePolygon) Equal(o SimplePolygon) bool { return s.poly.Equal(o.poly) }

// Hash returns a hash over the hull points.
func (s SimplePolygon) Hash() uint64 { return s.poly.Hash() }

// Moved returns the polygon displaced by v.
func (s SimplePolygon) Moved(v Vector) SimplePolygon {
	return SimplePolygon{poly: s.poly.Moved(v)}
}

// Transformed returns the polygon under t.
func (s SimplePolygon) Transformed(t ICplxTrans) SimplePolygon {
	return SimplePolygon{poly: s.poly.Transformed(t)}
}

// String returns the hull notation of Polygon.
func (s SimplePolygon) String() string { return s.poly.String() }

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func hashMix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= fnvPrime
		v >>= 8
	}
	return h
}

func hashPoints(h uint64, pts []Point) uint64 {
	for _, p := range pts {
		h = hashMix(h, uint64(uint32(p.X))<<32|uint64(uint32(p.Y)))
	}
	return h
}

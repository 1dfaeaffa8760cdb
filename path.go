package layout

import (
	"fmt"
	"slices"
	"strings"
)

// Path is a wire along a spine of points with a given width.
// BeginExt and EndExt extend the wire beyond its first and last point.
type Path struct {
	points   []Point
	Width    Coord
	BeginExt Coord
	EndExt   Coord
	Round    bool
}

// NewPath creates a path with flat ends. The point slice is copied.
func NewPath(points []Point, width Coord) Path {
	return Path{points: slices.Clone(points), Width: width}
}

// NewPathExt creates a path with extensions and optionally round ends.
func NewPathExt(points []Point, width, beginExt, endExt Coord, round bool) Path {
	return Path{points: slices.Clone(points), Width: width, BeginExt: beginExt, EndExt: endExt, Round: round}
}

// Points returns the spine. The slice must not be modified.
func (p Path) Points() []Point {
	return p.points
}

// BBox returns a box enclosing the wire, including extensions.
func (p Path) BBox() Box {
	b := contourBBox(p.points)
	if b.Empty() {
		return b
	}
	w := max(p.Width/2, 0)
	e := max(w, p.BeginExt, p.EndExt)
	return b.Enlarged(Vector{X: e, Y: e})
}

// Equal reports whether both paths are identical.
func (p Path) Equal(o Path) bool {
	return p.Width == o.Width && p.BeginExt == o.BeginExt && p.EndExt == o.EndExt &&
		p.Round == o.Round && slices.Equal(p.points, o.points)
}

// Hash returns a hash over the spine and the wire parameters.
func (p Path) Hash() uint64 {
	h := hashMix(fnvOffset, uint64(uint32(p.Width))<<32|uint64(uint32(p.BeginExt)))
	h = hashMix(h, uint64(uint32(p.EndExt)))
	if p.Round {
		h = hashMix(h, 1)
	}
	return hashPoints(h, p.points)
}

// Moved returns the path displaced by v.
func (p Path) Moved(v Vector) Path {
	r := p
	r.points = make([]Point, len(p.points))
	for i, pt := range p.points {
		r.points[i] = pt.Add(v)
	}
	return r
}

// Transformed returns the path under t. Width and extensions are scaled.
func (p Path) Transformed(t ICplxTrans) Path {
	r := p
	r.points = make([]Point, len(p.points))
	for i, pt := range p.points {
		r.points[i] = t.Apply(pt)
	}
	r.Width = t.ApplyDistance(p.Width)
	r.BeginExt = t.ApplyDistance(p.BeginExt)
	r.EndExt = t.ApplyDistance(p.EndExt)
	return r
}

// String returns the path as "(x,y;x,y) w=10 bx=0 ex=0 r=false".
func (p Path) String() string {
	var sb strings.Builder
	writeContour(&sb, p.points)
	fmt.Fprintf(&sb, " w=%d bx=%d ex=%d r=%t", p.Width, p.BeginExt, p.EndExt, p.Round)
	return sb.String()
}

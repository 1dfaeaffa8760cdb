package layout

import "fmt"

// Edge is a directed line segment from P1 to P2.
type Edge struct {
	P1, P2 Point
}

// NewEdge creates an edge.
func NewEdge(p1, p2 Point) Edge {
	return Edge{P1: p1, P2: p2}
}

// BBox returns the box spanned by both end points.
func (e Edge) BBox() Box {
	return BoxFromPoints(e.P1, e.P2)
}

// IsDegenerate reports whether both end points coincide.
func (e Edge) IsDegenerate() bool {
	return e.P1 == e.P2
}

// Equal reports whether both edges are identical (including direction).
func (e Edge) Equal(o Edge) bool {
	return e == o
}

// Less orders edges by start point, then end point.
func (e Edge) Less(o Edge) bool {
	if e.P1 != o.P1 {
		return e.P1.Less(o.P1)
	}
	return e.P2.Less(o.P2)
}

// Moved returns the edge displaced by v.
func (e Edge) Moved(v Vector) Edge {
	return Edge{P1: e.P1.Add(v), P2: e.P2.Add(v)}
}

// Transformed returns the edge under t.
func (e Edge) Transformed(t ICplxTrans) Edge {
	return Edge{P1: t.Apply(e.P1), P2: t.Apply(e.P2)}
}

// Contains reports whether p lies on the edge, end points included.
func (e Edge) Contains(p Point) bool {
	if e.IsDegenerate() {
		return p == e.P1
	}
	return cross(e.P1, e.P2, p) == 0 && e.BBox().Contains(p)
}

// Intersects reports whether both edges share at least one point.
// Touching end points and collinear overlaps count as intersections.
func (e Edge) Intersects(o Edge) bool {
	if !e.BBox().Touches(o.BBox()) {
		return false
	}
	d1 := sign(cross(o.P1, o.P2, e.P1))
	d2 := sign(cross(o.P1, o.P2, e.P2))
	d3 := sign(cross(e.P1, e.P2, o.P1))
	d4 := sign(cross(e.P1, e.P2, o.P2))
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && o.Contains(e.P1)) ||
		(d2 == 0 && o.Contains(e.P2)) ||
		(d3 == 0 && e.Contains(o.P1)) ||
		(d4 == 0 && e.Contains(o.P2))
}

// String returns the edge as "(x1,y1;x2,y2)".
func (e Edge) String() string {
	return fmt.Sprintf("(%s;%s)", e.P1, e.P2)
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// EdgePair is a pair of edges, typically the two sides of a DRC violation.
// A symmetric pair compares equal regardless of the order of its edges.
type EdgePair struct {
	First, Second Edge
	Symmetric     bool
}

// NewEdgePair creates an edge pair.
func NewEdgePair(first, second Edge, symmetric bool) EdgePair {
	return EdgePair{First: first, Second: second, Symmetric: symmetric}
}

// BBox returns the box enclosing both edges.
func (ep EdgePair) BBox() Box {
	return ep.First.BBox().Union(ep.Second.BBox())
}

// Equal reports whether both pairs are identical.
func (ep EdgePair) Equal(o EdgePair) bool {
	if ep.Symmetric != o.Symmetric {
		return false
	}
	if ep.First == o.First && ep.Second == o.Second {
		return true
	}
	return ep.Symmetric && ep.First == o.Second && ep.Second == o.First
}

// Moved returns the pair displaced by v.
func (ep EdgePair) Moved(v Vector) EdgePair {
	return EdgePair{First: ep.First.Moved(v), Second: ep.Second.Moved(v), Symmetric: ep.Symmetric}
}

// Transformed returns the pair under t.
func (ep EdgePair) Transformed(t ICplxTrans) EdgePair {
	return EdgePair{First: ep.First.Transformed(t), Second: ep.Second.Transformed(t), Symmetric: ep.Symmetric}
}

// String returns the pair as "e1/e2", or "e1|e2" when symmetric.
func (ep EdgePair) String() string {
	sep := "/"
	if ep.Symmetric {
		sep = "|"
	}
	return ep.First.String() + sep + ep.Second.String()
}

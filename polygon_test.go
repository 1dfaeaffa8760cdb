package layout

import "testing"

func boxHull(l, b, r, t Coord) []Point {
	return []Point{Pt(l, b), Pt(l, t), Pt(r, t), Pt(r, b)}
}

func TestPolygonFromBox(t *testing.T) {
	b := NewBox(0, 0, 10, 20)
	p := PolygonFromBox(b)
	if got := p.BBox(); got != b {
		t.Errorf("BBox() = %v, want %v", got, b)
	}
	if !p.IsBox() || p.NumPoints() != 4 || p.Holes() != 0 {
		t.Errorf("IsBox(), NumPoints(), Holes() = %v, %d, %d", p.IsBox(), p.NumPoints(), p.Holes())
	}
	if got, want := p.String(), "(0,0;0,20;10,20;10,0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !PolygonFromBox(EmptyBox()).BBox().Empty() {
		t.Error("PolygonFromBox(empty) has a non-empty box")
	}
}

func TestPolygonEqualHash(t *testing.T) {
	a := NewPolygon(boxHull(0, 0, 10, 10))
	b := PolygonFromBox(NewBox(0, 0, 10, 10))
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("identical polygons differ in Equal or Hash")
	}
	c := NewPolygon(boxHull(0, 0, 10, 10), boxHull(2, 2, 4, 4))
	if a.Equal(c) {
		t.Error("polygon with hole equals polygon without")
	}
	if got, want := c.String(), "(0,0;0,10;10,10;10,0)/(2,2;2,4;4,4;4,2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPolygonMovedTransformed(t *testing.T) {
	p := NewPolygon(boxHull(0, 0, 10, 10), boxHull(2, 2, 4, 4))
	m := p.Moved(V(5, 5))
	if got, want := m.BBox(), NewBox(5, 5, 15, 15); got != want {
		t.Errorf("Moved().BBox() = %v, want %v", got, want)
	}
	if got, want := m.Hole(0)[0], Pt(7, 7); got != want {
		t.Errorf("Moved().Hole(0)[0] = %v, want %v", got, want)
	}

	r := p.Transformed(NewICplxTrans(1, 90, false, V(0, 0)))
	if got, want := r.BBox(), NewBox(-10, 0, 0, 10); got != want {
		t.Errorf("Transformed(r90).BBox() = %v, want %v", got, want)
	}

	mir := p.Transformed(NewICplxTrans(1, 0, true, V(0, 0)))
	want := []Point{Pt(10, 0), Pt(10, -10), Pt(0, -10), Pt(0, 0)}
	for i, pt := range mir.Hull() {
		if pt != want[i] {
			t.Errorf("Transformed(m0).Hull()[%d] = %v, want %v", i, pt, want[i])
		}
	}
}

func TestSimplePolygon(t *testing.T) {
	s := SimplePolygonFromBox(NewBox(0, 0, 10, 10))
	if !s.Polygon().Equal(PolygonFromBox(NewBox(0, 0, 10, 10))) {
		t.Error("Polygon() differs from the box polygon")
	}
	if got, want := s.Moved(V(1, 1)).BBox(), NewBox(1, 1, 11, 11); got != want {
		t.Errorf("Moved().BBox() = %v, want %v", got, want)
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	p := NewPolygon(boxHull(0, 0, 100, 100), boxHull(40, 40, 60, 60))
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"inside", Pt(10, 10), true},
		{"outside", Pt(150, 50), false},
		{"hull edge", Pt(0, 50), true},
		{"hull corner", Pt(100, 100), true},
		{"in hole", Pt(50, 50), false},
		{"hole edge", Pt(40, 50), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonContainsPoint(p, tt.pt); got != tt.want {
				t.Errorf("PolygonContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}

	tri := NewPolygon([]Point{Pt(0, 0), Pt(50, 100), Pt(100, 0)})
	if !PolygonContainsPoint(tri, Pt(50, 50)) || PolygonContainsPoint(tri, Pt(10, 80)) {
		t.Error("PolygonContainsPoint() wrong for a triangle")
	}
}

func TestPolygonsInteract(t *testing.T) {
	a := PolygonFromBox(NewBox(0, 0, 10, 10))
	tests := []struct {
		name string
		b    Polygon
		want bool
	}{
		{"overlap", PolygonFromBox(NewBox(5, 5, 15, 15)), true},
		{"corner", PolygonFromBox(NewBox(10, 10, 20, 20)), true},
		{"edge", PolygonFromBox(NewBox(10, 0, 20, 10)), true},
		{"inside", PolygonFromBox(NewBox(2, 2, 4, 4)), true},
		{"around", PolygonFromBox(NewBox(-10, -10, 20, 20)), true},
		{"apart", PolygonFromBox(NewBox(11, 0, 20, 10)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonsInteract(a, tt.b); got != tt.want {
				t.Errorf("PolygonsInteract() = %v, want %v", got, tt.want)
			}
			if got := PolygonsInteract(tt.b, a); got != tt.want {
				t.Errorf("reverse PolygonsInteract() = %v, want %v", got, tt.want)
			}
		})
	}

	holed := NewPolygon(boxHull(0, 0, 100, 100), boxHull(20, 20, 80, 80))
	if PolygonsInteract(holed, PolygonFromBox(NewBox(40, 40, 60, 60))) {
		t.Error("polygon inside a hole interacts")
	}
}

func TestEdgeIntersects(t *testing.T) {
	e := NewEdge(Pt(0, 0), Pt(10, 10))
	tests := []struct {
		name string
		o    Edge
		want bool
	}{
		{"crossing", NewEdge(Pt(0, 10), Pt(10, 0)), true},
		{"end point", NewEdge(Pt(10, 10), Pt(20, 0)), true},
		{"collinear overlap", NewEdge(Pt(5, 5), Pt(20, 20)), true},
		{"collinear apart", NewEdge(Pt(11, 11), Pt(20, 20)), false},
		{"parallel", NewEdge(Pt(1, 0), Pt(11, 10)), false},
		{"t junction", NewEdge(Pt(5, 5), Pt(10, 0)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathBBox(t *testing.T) {
	p := NewPath([]Point{Pt(0, 0), Pt(100, 0)}, 10)
	if got, want := p.BBox(), NewBox(-5, -5, 105, 5); got != want {
		t.Errorf("BBox() = %v, want %v", got, want)
	}
	ext := NewPathExt([]Point{Pt(0, 0), Pt(100, 0)}, 10, 20, 0, false)
	if got, want := ext.BBox(), NewBox(-20, -20, 120, 20); got != want {
		t.Errorf("BBox() with extension = %v, want %v", got, want)
	}
	tr := p.Transformed(NewICplxTrans(2, 0, false, V(0, 0)))
	if tr.Width != 20 || tr.Points()[1] != Pt(200, 0) {
		t.Errorf("Transformed() = %v", tr)
	}
	if got, want := p.String(), "(0,0;100,0) w=10 bx=0 ex=0 r=false"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTextTransformed(t *testing.T) {
	txt := NewText("A", NewTrans(R0, V(10, 0)))
	txt.Size = 5
	got := txt.Transformed(NewICplxTrans(1, 90, false, V(0, 0)))
	if got.Position() != Pt(0, 10) || got.Trans.Rot != R90 || got.Size != 5 {
		t.Errorf("Transformed(r90) = %v size %d", got, got.Size)
	}
	// magnifying transformations keep the orientation
	got = txt.Transformed(NewICplxTrans(2, 90, false, V(0, 0)))
	if got.Position() != Pt(0, 20) || got.Trans.Rot != R0 || got.Size != 10 {
		t.Errorf("Transformed(r90 *2) = %v size %d", got, got.Size)
	}
	if got, want := txt.Moved(V(1, 1)).Position(), Pt(11, 1); got != want {
		t.Errorf("Moved().Position() = %v, want %v", got, want)
	}
	if got, want := txt.String(), `("A",r0 10,0)`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

type circle struct {
	c Point
	r Coord
}

func (c circle) BBox() Box { return NewBox(c.c.X-c.r, c.c.Y-c.r, c.c.X+c.r, c.c.Y+c.r) }
func (c circle) Equal(o UserObjectBase) bool {
	oc, ok := o.(circle)
	return ok && oc == c
}
func (c circle) Transformed(t ICplxTrans) UserObjectBase {
	return circle{c: t.Apply(c.c), r: t.ApplyDistance(c.r)}
}
func (c circle) String() string { return "circle " + c.c.String() }

func TestUserObject(t *testing.T) {
	var zero UserObject
	if !zero.BBox().Empty() || zero.String() != "()" || !zero.Equal(UserObject{}) {
		t.Error("zero UserObject is not empty")
	}
	u := NewUserObject(circle{c: Pt(0, 0), r: 5})
	if got, want := u.Moved(V(10, 0)).BBox(), NewBox(5, -5, 15, 5); got != want {
		t.Errorf("Moved().BBox() = %v, want %v", got, want)
	}
	if u.Equal(zero) || !u.Equal(NewUserObject(circle{c: Pt(0, 0), r: 5})) {
		t.Error("Equal() wrong")
	}
}

package layout

import "testing"

func TestNewBoxNormalizes(t *testing.T) {
	got := NewBox(10, 20, 0, 5)
	want := Box{Left: 0, Bottom: 5, Right: 10, Top: 20}
	if got != want {
		t.Errorf("NewBox() = %v, want %v", got, want)
	}
	if got.Width() != 10 || got.Height() != 15 || got.Area() != 150 {
		t.Errorf("Width(), Height(), Area() = %d, %d, %d, want 10, 15, 150", got.Width(), got.Height(), got.Area())
	}
}

func TestEmptyBox(t *testing.T) {
	e := EmptyBox()
	if !e.Empty() {
		t.Error("EmptyBox().Empty() = false")
	}
	if got := e.String(); got != "()" {
		t.Errorf("EmptyBox().String() = %q, want %q", got, "()")
	}
	if e.Width() != 0 || e.Area() != 0 {
		t.Errorf("EmptyBox() Width(), Area() = %d, %d, want 0, 0", e.Width(), e.Area())
	}
	b := NewBox(0, 0, 10, 10)
	if got := e.Union(b); got != b {
		t.Errorf("EmptyBox().Union(b) = %v, want %v", got, b)
	}
	if got := b.Union(e); got != b {
		t.Errorf("b.Union(EmptyBox()) = %v, want %v", got, b)
	}
	if e.Touches(b) || b.Touches(e) {
		t.Error("EmptyBox() touches a box")
	}
	if !e.Equal(Box{Left: 5, Right: 0}) {
		t.Error("empty boxes compare unequal")
	}
}

func TestBoxRelations(t *testing.T) {
	b := NewBox(0, 0, 10, 10)
	tests := []struct {
		name     string
		other    Box
		touches  bool
		overlaps bool
	}{
		{"same", b, true, true},
		{"inside", NewBox(2, 2, 8, 8), true, true},
		{"overlap", NewBox(5, 5, 20, 20), true, true},
		{"shared edge", NewBox(10, 0, 20, 10), true, false},
		{"shared corner", NewBox(10, 10, 20, 20), true, false},
		{"apart", NewBox(11, 0, 20, 10), false, false},
		{"degenerate inside", Pt(5, 5).BBox(), true, true},
		{"degenerate on edge", Pt(10, 5).BBox(), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Touches(tt.other); got != tt.touches {
				t.Errorf("Touches() = %v, want %v", got, tt.touches)
			}
			if got := tt.other.Touches(b); got != tt.touches {
				t.Errorf("reverse Touches() = %v, want %v", got, tt.touches)
			}
			if got := b.Overlaps(tt.other); got != tt.overlaps {
				t.Errorf("Overlaps() = %v, want %v", got, tt.overlaps)
			}
		})
	}
}

func TestBoxIntersection(t *testing.T) {
	b := NewBox(0, 0, 10, 10)
	if got, want := b.Intersection(NewBox(5, 5, 20, 20)), NewBox(5, 5, 10, 10); got != want {
		t.Errorf("Intersection() = %v, want %v", got, want)
	}
	if got := b.Intersection(NewBox(20, 20, 30, 30)); !got.Empty() {
		t.Errorf("Intersection() of disjoint boxes = %v, want empty", got)
	}
}

func TestBoxGeometry(t *testing.T) {
	b := NewBox(0, 0, 10, 20)
	if got, want := b.Center(), Pt(5, 10); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got, want := b.Moved(V(5, -5)), NewBox(5, -5, 15, 15); got != want {
		t.Errorf("Moved() = %v, want %v", got, want)
	}
	if got, want := b.Enlarged(V(1, 2)), NewBox(-1, -2, 11, 22); got != want {
		t.Errorf("Enlarged() = %v, want %v", got, want)
	}
	if !b.Contains(Pt(10, 20)) || b.Contains(Pt(11, 0)) {
		t.Error("Contains() wrong at the boundary")
	}
	if !NewBox(1, 1, 2, 2).Inside(b) || b.Inside(NewBox(1, 1, 2, 2)) {
		t.Error("Inside() wrong")
	}
	if got, want := b.String(), "(0,0;10,20)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBoxTransformed(t *testing.T) {
	b := NewBox(0, 0, 10, 20)
	tests := []struct {
		name string
		t    ICplxTrans
		want Box
	}{
		{"unit", UnitCplxTrans(), b},
		{"r90", NewICplxTrans(1, 90, false, V(0, 0)), NewBox(-20, 0, 0, 10)},
		{"mirror", NewICplxTrans(1, 0, true, V(0, 0)), NewBox(0, -20, 10, 0)},
		{"mag", NewICplxTrans(2, 0, false, V(1, 1)), NewBox(1, 1, 21, 41)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Transformed(tt.t); got != tt.want {
				t.Errorf("Transformed() = %v, want %v", got, tt.want)
			}
		})
	}

	// a 45 degree rotation yields the box around the rotated corners
	got := NewBox(0, 0, 10, 10).Transformed(NewICplxTrans(1, 45, false, V(0, 0)))
	if want := NewBox(-7, 0, 7, 14); got != want {
		t.Errorf("Transformed(45 degree) = %v, want %v", got, want)
	}
}

func TestShortBox(t *testing.T) {
	b := NewBox(-100, 0, 200, 300)
	sb := NewShortBox(b)
	if got := sb.Box(); got != b {
		t.Errorf("Box() = %v, want %v", got, b)
	}
	if got, want := sb.Moved(V(10, 10)).BBox(), b.Moved(V(10, 10)); got != want {
		t.Errorf("Moved() = %v, want %v", got, want)
	}
	if got := sb.String(); got != b.String() {
		t.Errorf("String() = %q, want %q", got, b.String())
	}
}

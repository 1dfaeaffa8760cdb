package shapes

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/layout"
)

func TestIteratorVisitsEveryKind(t *testing.T) {
	s := New(WithEditable(false))
	for _, v := range oneOfEachKind(layout.NewShapeRepository()) {
		s.insertAny(v, false, 0)
	}

	got := collect(s.Begin(All))
	if len(got) != numKinds {
		t.Fatalf("iteration yielded %d shapes, want %d", len(got), numKinds)
	}
	for i, sh := range got {
		if sh.Kind() != Kind(i) {
			t.Errorf("shape %d kind = %v, want %v", i, sh.Kind(), Kind(i))
		}
		if sh.IsArrayMember() != Kind(i).IsArray() {
			t.Errorf("shape %d IsArrayMember() = %v, want %v", i, sh.IsArrayMember(), Kind(i).IsArray())
		}
	}

	if it := s.Begin(Nothing); !it.AtEnd() {
		t.Errorf("Begin(Nothing) is at %v, want end", it.Shape())
	}
	if got := len(collect(s.Begin(Texts))); got != 3 {
		t.Errorf("Begin(Texts) yielded %d shapes, want 3", got)
	}
	if got := len(collect(s.BeginTouching(layout.WorldBox(), All))); got != numKinds {
		t.Errorf("BeginTouching(world) yielded %d shapes, want %d", got, numKinds)
	}
}

func TestIteratorPropertiesOrder(t *testing.T) {
	s := New()
	hp := InsertWithProperties(s, box(0, 0), 1)
	h := Insert(s, box(0, 0))

	got := collect(s.Begin(All))
	if want := []Shape{h, hp}; !slices.Equal(got, want) {
		t.Errorf("Begin(All) = %v, want %v", got, want)
	}
	got = collect(s.Begin(AllWithProperties))
	if want := []Shape{hp}; !slices.Equal(got, want) {
		t.Errorf("Begin(AllWithProperties) = %v, want %v", got, want)
	}
}

func TestIteratorPropertySelector(t *testing.T) {
	s := New()
	h0 := Insert(s, box(0, 0))
	h1 := InsertWithProperties(s, box(0, 0), 1)
	h2 := InsertWithProperties(s, box(0, 0), 2)

	tests := []struct {
		name    string
		ids     []PropertiesID
		inverse bool
		want    []Shape
	}{
		{"one", []PropertiesID{1}, false, []Shape{h1}},
		{"inverse", []PropertiesID{1}, true, []Shape{h0, h2}},
		{"zero", []PropertiesID{0}, false, []Shape{h0}},
		{"empty inverse", nil, true, []Shape{h0, h1, h2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(s.Begin(All, WithPropertySelector(tt.ids, tt.inverse)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Begin() = %v, want %v", got, tt.want)
			}
			got = collect(s.BeginTouching(box(0, 0), All, WithPropertySelector(tt.ids, tt.inverse)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("BeginTouching() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIteratorSkipsErased(t *testing.T) {
	s := New()
	var hs []Shape
	for i := range 5 {
		hs = append(hs, Insert(s, box(Coord(i*20), 0)))
	}
	if err := s.EraseShapes([]Shape{hs[1], hs[3]}); err != nil {
		t.Fatal(err)
	}
	want := []Shape{hs[0], hs[2], hs[4]}
	if got := collect(s.Begin(All)); !slices.Equal(got, want) {
		t.Errorf("Begin() = %v, want %v", got, want)
	}
	if got := collect(s.BeginTouching(layout.WorldBox(), All)); len(got) != 3 {
		t.Errorf("BeginTouching() yielded %d shapes, want 3", len(got))
	}
}

func TestRegionBoundaries(t *testing.T) {
	s := New()
	a := Insert(s, layout.NewBox(0, 0, 10, 10))
	b := Insert(s, layout.NewBox(20, 0, 30, 10))
	Insert(s, layout.NewBox(40, 0, 50, 10))

	tests := []struct {
		name        string
		region      layout.Box
		touching    []Shape
		overlapping []Shape
	}{
		{"gap", layout.NewBox(10, 0, 20, 10), []Shape{a, b}, nil},
		{"inside", layout.NewBox(5, 5, 25, 8), []Shape{a, b}, []Shape{a, b}},
		{"corner", layout.NewBox(-5, -5, 0, 0), []Shape{a}, nil},
		{"outside", layout.NewBox(100, 100, 200, 200), nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(s.BeginTouching(tt.region, All))
			sortShapes(got)
			if !slices.Equal(got, tt.touching) {
				t.Errorf("BeginTouching() = %v, want %v", got, tt.touching)
			}
			got = collect(s.BeginOverlapping(tt.region, All))
			sortShapes(got)
			if !slices.Equal(got, tt.overlapping) {
				t.Errorf("BeginOverlapping() = %v, want %v", got, tt.overlapping)
			}
		})
	}

	// points and texts have degenerate boxes: strictly inside overlaps,
	// on the boundary only touches
	d := New()
	p := Insert(d, layout.Pt(5, 5))
	txt := Insert(d, layout.NewText("A", layout.Disp(layout.V(3, 3))))
	edge := Insert(d, layout.Pt(10, 5))
	region := layout.NewBox(0, 0, 10, 10)
	if got := collect(d.BeginTouching(region, All)); len(got) != 3 {
		t.Errorf("BeginTouching() on degenerate shapes = %v, want 3 shapes", got)
	}
	got := collect(d.BeginOverlapping(region, All))
	sortShapes(got)
	want := []Shape{p, txt}
	sortShapes(want)
	if !slices.Equal(got, want) {
		t.Errorf("BeginOverlapping() on degenerate shapes = %v, want %v", got, want)
	}
	if slices.Contains(got, edge) {
		t.Errorf("BeginOverlapping() includes %v on the region boundary", edge)
	}
}

func sortShapes(shs []Shape) {
	slices.SortFunc(shs, func(a, b Shape) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}

// randomShapes fills s with boxes and points spread over a 1000x1000 area.
func randomShapes(s *Shapes, n int) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range n {
		x, y := Coord(r.IntN(1000)), Coord(r.IntN(1000))
		switch i % 4 {
		case 0:
			Insert(s, layout.Pt(x, y))
		case 1:
			InsertWithProperties(s, layout.NewBox(x, y, x+Coord(r.IntN(300)), y+Coord(r.IntN(20))), PropertiesID(i%3))
		default:
			Insert(s, layout.NewBox(x, y, x+Coord(r.IntN(60)+1), y+Coord(r.IntN(60)+1)))
		}
	}
}

func TestRegionQueryMatchesBruteForce(t *testing.T) {
	s := New(WithLeafSize(4))
	randomShapes(s, 600)

	var all []Shape
	for it := s.Begin(All); !it.AtEnd(); it.Next() {
		all = append(all, it.Shape())
	}

	r := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		x, y := Coord(r.IntN(1000)), Coord(r.IntN(1000))
		region := layout.NewBox(x, y, x+Coord(r.IntN(200)), y+Coord(r.IntN(200)))

		for _, mode := range []struct {
			name  string
			begin func(layout.Box, Flags, ...IteratorOption) *ShapeIterator
			match func(layout.Box) bool
		}{
			{"touching", s.BeginTouching, func(b layout.Box) bool { return b.Touches(region) }},
			{"overlapping", s.BeginOverlapping, func(b layout.Box) bool { return b.Overlaps(region) }},
		} {
			var want []Shape
			for _, sh := range all {
				if mode.match(sh.BBox()) {
					want = append(want, sh)
				}
			}
			got := collect(mode.begin(region, All))
			sortShapes(got)
			sortShapes(want)
			if !slices.Equal(got, want) {
				t.Errorf("%s %v: got %d shapes, want %d", mode.name, region, len(got), len(want))
			}
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	s := New(WithLeafSize(4))
	randomShapes(s, 200)
	region := layout.NewBox(200, 200, 600, 600)

	s.Sort()
	for _, l := range s.Layers() {
		if l.IsDirty() {
			t.Fatalf("layer %v dirty after Sort()", l.Kind())
		}
	}
	first := collect(s.BeginTouching(region, All))
	s.Sort()
	second := collect(s.BeginTouching(region, All))
	if !slices.Equal(first, second) {
		t.Errorf("second Sort() changed the query result:\n%v\n%v", first, second)
	}
}

func TestRegionArrayMembers(t *testing.T) {
	s := New(WithEditable(false))
	arr := Insert(s, layout.NewRegularArray(box(0, 0), layout.V(20, 0), layout.V(0, 20), 5, 1))

	var members []int
	for it := s.BeginTouching(layout.NewBox(25, 0, 45, 10), All); !it.AtEnd(); it.Next() {
		if it.Array() != arr {
			t.Errorf("Array() = %v, want %v", it.Array(), arr)
		}
		members = append(members, it.Shape().MemberIndex())
	}
	if want := []int{1, 2}; !slices.Equal(members, want) {
		t.Errorf("members = %v, want %v", members, want)
	}

	members = members[:0]
	for it := s.BeginOverlapping(layout.NewBox(30, 0, 40, 10), All); !it.AtEnd(); it.Next() {
		members = append(members, it.Shape().MemberIndex())
	}
	if len(members) != 0 {
		t.Errorf("BeginOverlapping(gap) members = %v, want none", members)
	}
}

func TestArrayQuads(t *testing.T) {
	s := New(WithEditable(false))
	Insert(s, layout.NewRegularArray(box(0, 0), layout.V(20, 0), layout.V(0, 20), 3, 2))
	Insert(s, layout.Pt(500, 500))

	it := s.Begin(All)
	if got := it.ArrayQuadID(); got != 1 {
		t.Errorf("ArrayQuadID() = %d, want 1", got)
	}
	if got, want := it.ArrayQuadBox(), layout.NewBox(0, 0, 50, 10); got != want {
		t.Errorf("ArrayQuadBox() = %v, want %v", got, want)
	}
	it.SkipArrayQuad()
	if got := it.Shape().MemberIndex(); got != 3 {
		t.Errorf("MemberIndex() after SkipArrayQuad() = %d, want 3", got)
	}
	if got := it.ArrayQuadID(); got != 2 {
		t.Errorf("ArrayQuadID() = %d, want 2", got)
	}
	it.SkipArrayQuad()
	if it.InArray() {
		t.Fatal("InArray() = true after skipping the last row")
	}
	if p, ok := it.Shape().Point(); !ok || p != layout.Pt(500, 500) {
		t.Errorf("Shape() = %v, want the point", it.Shape())
	}
	if got := it.ArrayQuadID(); got != 0 {
		t.Errorf("ArrayQuadID() outside arrays = %d, want 0", got)
	}
	if got := it.ArrayQuadBox(); got != layout.WorldBox() {
		t.Errorf("ArrayQuadBox() outside arrays = %v, want world", got)
	}
	it.SkipArrayQuad()
	if !it.AtEnd() {
		t.Error("SkipArrayQuad() outside arrays did not advance")
	}
}

func TestIteratedArrayIsOneQuad(t *testing.T) {
	s := New(WithEditable(false))
	offs := []layout.Vector{layout.V(0, 0), layout.V(100, 0), layout.V(0, 100)}
	Insert(s, layout.NewIteratedArray(box(0, 0), offs))

	it := s.Begin(All)
	for n := 0; !it.AtEnd(); n++ {
		if got := it.ArrayQuadID(); got != 1 {
			t.Errorf("member %d ArrayQuadID() = %d, want 1", n, got)
		}
		it.Next()
	}
	it.Reset()
	it.SkipArrayQuad()
	if !it.AtEnd() {
		t.Errorf("SkipArrayQuad() left the iterator at %v", it.Shape())
	}
}

func TestQuads(t *testing.T) {
	s := New()
	for i := range 3 {
		Insert(s, box(Coord(i*20), 0))
	}
	text := Insert(s, layout.NewText("T", layout.Disp(layout.V(5, 5))))

	flat := s.Begin(All)
	if flat.QuadID() != 0 || flat.QuadBox() != layout.WorldBox() {
		t.Errorf("flat QuadID(), QuadBox() = %d, %v, want 0, world", flat.QuadID(), flat.QuadBox())
	}

	it := s.BeginTouching(layout.WorldBox(), All)
	if it.QuadID() == 0 {
		t.Error("QuadID() = 0 in region mode")
	}
	if got, want := it.QuadBox(), layout.NewBox(0, 0, 50, 10); got != want {
		t.Errorf("QuadBox() = %v, want %v", got, want)
	}
	it.SkipQuad()
	if got := it.Shape(); got != text {
		t.Errorf("Shape() after SkipQuad() = %v, want %v", got, text)
	}
	it.Next()
	if !it.AtEnd() || it.QuadID() != 0 || !it.QuadBox().Empty() {
		t.Errorf("at end: QuadID(), QuadBox() = %d, %v", it.QuadID(), it.QuadBox())
	}

	flat.SkipQuad()
	if got := flat.Shape(); got != text {
		t.Errorf("flat Shape() after SkipQuad() = %v, want %v", got, text)
	}
}

func TestIteratorCloneReset(t *testing.T) {
	s := New()
	for i := range 4 {
		Insert(s, box(Coord(i*20), 0))
	}
	it := s.Begin(All)
	it.Next()
	c := it.Clone()
	it.Next()
	it.Next()
	if c.Shape() == it.Shape() {
		t.Error("Clone() follows the original")
	}
	if got := len(collect(c)); got != 3 {
		t.Errorf("clone yielded %d shapes, want 3", got)
	}
	it.Reset()
	if got := len(collect(it)); got != 4 {
		t.Errorf("after Reset() yielded %d shapes, want 4", got)
	}
	it.Close()
	if !it.AtEnd() || !it.Shape().IsNull() {
		t.Error("Close() did not end the iterator")
	}
	it.Reset()
	if !it.AtEnd() {
		t.Error("Reset() revived a closed iterator")
	}
}

func TestIteratorSeesErasureAfterGrowth(t *testing.T) {
	s := New()
	h := Insert(s, box(0, 0))
	Insert(s, box(20, 0))
	it := s.Begin(All)

	for i := range 20 {
		Insert(s, box(Coord(i), 100))
	}
	if err := s.Erase(Find(s, box(20, 0))); err != nil {
		t.Fatal(err)
	}
	if got := it.Shape(); got != h {
		t.Fatalf("Shape() = %v, want %v", got, h)
	}
	it.Next()
	if !it.AtEnd() {
		t.Errorf("iterator delivered erased shape %v", it.Shape())
	}
}

func BenchmarkIterateFlat(b *testing.B) {
	s := New()
	randomShapes(s, 10000)
	b.ReportAllocs()
	for b.Loop() {
		for it := s.Begin(All); !it.AtEnd(); it.Next() {
			_ = it.Shape()
		}
	}
}

func BenchmarkIterateTouching(b *testing.B) {
	s := New()
	randomShapes(s, 10000)
	s.Sort()
	probe := layout.NewBox(400, 400, 500, 500)
	b.ReportAllocs()
	for b.Loop() {
		for it := s.BeginTouching(probe, All); !it.AtEnd(); it.Next() {
			_ = it.Shape()
		}
	}
}

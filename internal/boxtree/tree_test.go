package boxtree

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/layout"
)

func randomBoxes(n int) []layout.Box {
	r := rand.New(rand.NewPCG(7, 11))
	boxes := make([]layout.Box, n)
	for i := range boxes {
		x, y := layout.Coord(r.IntN(10000)), layout.Coord(r.IntN(10000))
		boxes[i] = layout.NewBox(x, y, x+layout.Coord(r.IntN(500)), y+layout.Coord(r.IntN(500)))
	}
	return boxes
}

func build(boxes []layout.Box, leafSize int) *Tree {
	ids := make([]int32, len(boxes))
	for i := range ids {
		ids[i] = int32(i)
	}
	var t Tree
	t.Build(ids, func(id int32) layout.Box { return boxes[id] }, leafSize)
	return &t
}

func query(t *Tree, region layout.Box, mode Mode) []int32 {
	var got []int32
	for c := t.Query(region, mode); !c.AtEnd(); c.Next() {
		got = append(got, c.Elem())
	}
	slices.Sort(got)
	return got
}

func TestQueryMatchesBruteForce(t *testing.T) {
	boxes := randomBoxes(2000)
	tree := build(boxes, 8)
	if got := tree.Len(); got != len(boxes) {
		t.Fatalf("Len() = %d, want %d", got, len(boxes))
	}
	if tree.Nodes() < 2 {
		t.Fatalf("Nodes() = %d, the tree was not split", tree.Nodes())
	}

	r := rand.New(rand.NewPCG(1, 1))
	for range 100 {
		x, y := layout.Coord(r.IntN(10000)), layout.Coord(r.IntN(10000))
		region := layout.NewBox(x, y, x+layout.Coord(r.IntN(2000)), y+layout.Coord(r.IntN(2000)))
		for _, mode := range []Mode{Touching, Overlapping} {
			var want []int32
			for i, b := range boxes {
				if mode.Match(b, region) {
					want = append(want, int32(i))
				}
			}
			if got := query(tree, region, mode); !slices.Equal(got, want) {
				t.Errorf("%v %v: got %d elements, want %d", mode, region, len(got), len(want))
			}
		}
	}
}

func TestQueryBoundary(t *testing.T) {
	boxes := []layout.Box{
		layout.NewBox(0, 0, 10, 10),
		layout.NewBox(10, 0, 20, 10),
		layout.NewBox(30, 30, 40, 40),
	}
	tree := build(boxes, 1)
	region := layout.NewBox(10, 0, 10, 10)
	if got, want := query(tree, region, Touching), []int32{0, 1}; !slices.Equal(got, want) {
		t.Errorf("Touching = %v, want %v", got, want)
	}
	if got := query(tree, region, Overlapping); len(got) != 0 {
		t.Errorf("Overlapping = %v, want none", got)
	}
}

func TestEmptyElementsDropped(t *testing.T) {
	boxes := []layout.Box{layout.EmptyBox(), layout.NewBox(0, 0, 1, 1)}
	tree := build(boxes, 4)
	if got := tree.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if got, want := query(tree, layout.WorldBox(), Touching), []int32{1}; !slices.Equal(got, want) {
		t.Errorf("query = %v, want %v", got, want)
	}
}

func TestIdenticalBoxesTerminate(t *testing.T) {
	boxes := make([]layout.Box, 100)
	for i := range boxes {
		boxes[i] = layout.NewBox(5, 5, 6, 6)
	}
	tree := build(boxes, 2)
	if got := len(query(tree, layout.NewBox(0, 0, 10, 10), Touching)); got != 100 {
		t.Errorf("query yielded %d elements, want 100", got)
	}
}

func TestSkipQuad(t *testing.T) {
	boxes := randomBoxes(500)
	tree := build(boxes, 4)

	c := tree.Query(layout.WorldBox(), Touching)
	if !c.QuadBox().Inside(tree.BBox()) {
		t.Errorf("QuadBox() = %v outside %v", c.QuadBox(), tree.BBox())
	}
	first := c.QuadID()
	if first == 0 {
		t.Fatal("QuadID() = 0 at the start")
	}
	c.SkipQuad()
	if !c.AtEnd() && c.QuadID() == first {
		t.Error("SkipQuad() stayed in the same quad")
	}

	// walking with SkipQuad visits no element twice
	seen := map[int32]bool{}
	for c := tree.Query(layout.WorldBox(), Touching); !c.AtEnd(); {
		if seen[c.Elem()] {
			t.Fatalf("element %d visited twice", c.Elem())
		}
		seen[c.Elem()] = true
		if len(seen)%7 == 0 {
			c.SkipQuad()
		} else {
			c.Next()
		}
	}
}

func TestCursorIsValue(t *testing.T) {
	boxes := randomBoxes(100)
	tree := build(boxes, 4)
	c := tree.Query(layout.WorldBox(), Touching)
	c.Next()
	d := c
	c.Next()
	c.Next()
	if d.Elem() == c.Elem() {
		t.Error("copied cursor follows the original")
	}
	n := 0
	for ; !d.AtEnd(); d.Next() {
		n++
	}
	if n != 99 {
		t.Errorf("copy visited %d elements, want 99", n)
	}
}

func TestZeroTree(t *testing.T) {
	var tree Tree
	c := tree.Query(layout.WorldBox(), Touching)
	if !c.AtEnd() || c.QuadID() != 0 || !c.QuadBox().Empty() || !tree.BBox().Empty() {
		t.Error("zero tree is not empty")
	}
	tree = *build(randomBoxes(10), 4)
	tree.Reset()
	if tree.Len() != 0 || tree.Nodes() != 0 {
		t.Error("Reset() kept elements")
	}
}

func TestModeString(t *testing.T) {
	if Touching.String() != "Touching" || Overlapping.String() != "Overlapping" {
		t.Error("Mode.String() wrong")
	}
}

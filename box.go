package layout

import (
	"fmt"
	"math"
)

// Box is an axis-aligned rectangle with integer coordinates.
// A box with Left > Right or Bottom > Top is empty.
type Box struct {
	Left, Bottom, Right, Top Coord
}

// NewBox creates a box from two opposite corners in any order.
func NewBox(x1, y1, x2, y2 Coord) Box {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Box{Left: x1, Bottom: y1, Right: x2, Top: y2}
}

// BoxFromPoints creates the box spanned by two points.
func BoxFromPoints(p1, p2 Point) Box {
	return NewBox(p1.X, p1.Y, p2.X, p2.Y)
}

// EmptyBox returns the canonical empty box.
func EmptyBox() Box {
	return Box{Left: 1, Bottom: 1, Right: -1, Top: -1}
}

// WorldBox returns a box covering the whole coordinate space.
func WorldBox() Box {
	return Box{Left: math.MinInt32, Bottom: math.MinInt32, Right: math.MaxInt32, Top: math.MaxInt32}
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Left > b.Right || b.Bottom > b.Top
}

// P1 returns the lower left corner.
func (b Box) P1() Point { return Point{X: b.Left, Y: b.Bottom} }

// P2 returns the upper right corner.
func (b Box) P2() Point { return Point{X: b.Right, Y: b.Top} }

// Width returns the horizontal extension of the box.
func (b Box) Width() Coord {
	if b.Empty() {
		return 0
	}
	return b.Right - b.Left
}

// Height returns the vertical extension of the box.
func (b Box) Height() Coord {
	if b.Empty() {
		return 0
	}
	return b.Top - b.Bottom
}

// Area returns the box area in square database units.
func (b Box) Area() int64 {
	return int64(b.Width()) * int64(b.Height())
}

// Center returns the center of the box, rounded towards negative infinity.
func (b Box) Center() Point {
	return Point{
		X: Coord((int64(b.Left) + int64(b.Right)) >> 1),
		Y: Coord((int64(b.Bottom) + int64(b.Top)) >> 1),
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box{
		Left:   min(b.Left, o.Left),
		Bottom: min(b.Bottom, o.Bottom),
		Right:  max(b.Right, o.Right),
		Top:    max(b.Top, o.Top),
	}
}

// UnionPoint returns the smallest box containing b and p.
func (b Box) UnionPoint(p Point) Box {
	return b.Union(p.BBox())
}

// Intersection returns the common part of both boxes.
func (b Box) Intersection(o Box) Box {
	r := Box{
		Left:   max(b.Left, o.Left),
		Bottom: max(b.Bottom, o.Bottom),
		Right:  min(b.Right, o.Right),
		Top:    min(b.Top, o.Top),
	}
	if r.Empty() {
		return EmptyBox()
	}
	return r
}

// Touches reports whether both boxes share at least one point,
// including contacts along the boundary.
func (b Box) Touches(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Left <= o.Right && o.Left <= b.Right &&
		b.Bottom <= o.Top && o.Bottom <= b.Top
}

// Overlaps reports whether the boxes meet in more than boundary
// contacts: on both axes each box reaches strictly past the other's near
// edge. Boxes meeting only at their boundaries do not overlap, while a
// degenerate box strictly inside o does.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Left < o.Right && o.Left < b.Right &&
		b.Bottom < o.Top && o.Bottom < b.Top
}

// Contains reports whether p is inside the box or on its boundary.
func (b Box) Contains(p Point) bool {
	return !b.Empty() && p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// Inside reports whether b is entirely contained in o.
func (b Box) Inside(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Left >= o.Left && b.Right <= o.Right && b.Bottom >= o.Bottom && b.Top <= o.Top
}

// Moved returns the box displaced by v. Empty boxes stay empty.
func (b Box) Moved(v Vector) Box {
	if b.Empty() {
		return b
	}
	return Box{Left: b.Left + v.X, Bottom: b.Bottom + v.Y, Right: b.Right + v.X, Top: b.Top + v.Y}
}

// Enlarged returns the box grown by v on each side.
func (b Box) Enlarged(v Vector) Box {
	if b.Empty() {
		return b
	}
	return NewBox(b.Left-v.X, b.Bottom-v.Y, b.Right+v.X, b.Top+v.Y)
}

// Transformed returns the bounding box of the transformed corners.
// Under rotations by other than multiples of 90 degree the result is
// larger than the transformed rectangle.
func (b Box) Transformed(t ICplxTrans) Box {
	if b.Empty() {
		return b
	}
	r := BoxFromPoints(t.Apply(b.P1()), t.Apply(b.P2()))
	if !t.IsOrtho() {
		r = r.UnionPoint(t.Apply(Point{X: b.Left, Y: b.Top}))
		r = r.UnionPoint(t.Apply(Point{X: b.Right, Y: b.Bottom}))
	}
	return r
}

// BBox returns the box itself.
func (b Box) BBox() Box {
	return b
}

// Equal reports whether both boxes are identical. All empty boxes are equal.
func (b Box) Equal(o Box) bool {
	if b.Empty() || o.Empty() {
		return b.Empty() == o.Empty()
	}
	return b == o
}

// Less orders boxes by lower left, then upper right corner.
func (b Box) Less(o Box) bool {
	if b.P1() != o.P1() {
		return b.P1().Less(o.P1())
	}
	return b.P2().Less(o.P2())
}

// String returns the box as "(l,b;r,t)" or "()" for the empty box.
func (b Box) String() string {
	if b.Empty() {
		return "()"
	}
	return fmt.Sprintf("(%d,%d;%d,%d)", b.Left, b.Bottom, b.Right, b.Top)
}

// ShortBox is a box stored with 16 bit coordinates.
// It trades coordinate range for memory in large static layouts.
type ShortBox struct {
	Left, Bottom, Right, Top int16
}

// NewShortBox converts b. The box coordinates must fit into 16 bits.
func NewShortBox(b Box) ShortBox {
	return ShortBox{Left: int16(b.Left), Bottom: int16(b.Bottom), Right: int16(b.Right), Top: int16(b.Top)}
}

// Box returns the box with full-range coordinates.
func (s ShortBox) Box() Box {
	return Box{Left: Coord(s.Left), Bottom: Coord(s.Bottom), Right: Coord(s.Right), Top: Coord(s.Top)}
}

// BBox returns the box with full-range coordinates.
func (s ShortBox) BBox() Box {
	return s.Box()
}

// Equal reports whether both boxes are identical.
func (s ShortBox) Equal(o ShortBox) bool {
	return s.Box().Equal(o.Box())
}

// Moved returns the box displaced by v.
func (s ShortBox) Moved(v Vector) ShortBox {
	return NewShortBox(s.Box().Moved(v))
}

// Transformed returns the bounding box of the transformed box.
func (s ShortBox) Transformed(t ICplxTrans) ShortBox {
	return NewShortBox(s.Box().Transformed(t))
}

// String returns the box in the same notation as Box.
func (s ShortBox) String() string {
	return s.Box().String()
}

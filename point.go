package layout

import (
	"fmt"
	"math"
)

// Coord is an integer coordinate in database units.
type Coord int32

// Point represents a location in the integer layout plane.
type Point struct {
	X, Y Coord
}

// Pt is a convenience function to create a Point.
func Pt(x, y Coord) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Moved is an alias for Add. It lets Point be stored like any other shape.
func (p Point) Moved(v Vector) Point {
	return p.Add(v)
}

// Vector returns the vector from the origin to p.
func (p Point) Vector() Vector {
	return Vector(p)
}

// BBox returns the degenerate box covering just this point.
func (p Point) BBox() Box {
	return Box{Left: p.X, Bottom: p.Y, Right: p.X, Top: p.Y}
}

// Equal reports whether both points are identical.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Less orders points by Y, then X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Transformed returns the point under t.
func (p Point) Transformed(t ICplxTrans) Point {
	return t.Apply(p)
}

// String returns the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Vector represents a displacement in the integer layout plane.
type Vector struct {
	X, Y Coord
}

// V is a convenience function to create a Vector.
func V(x, y Coord) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the inverted vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Mul returns the vector scaled by an integer factor.
func (v Vector) Mul(n int) Vector {
	return Vector{X: v.X * Coord(n), Y: v.Y * Coord(n)}
}

// IsZero reports whether v is the null vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the euclidian length of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Less orders vectors by Y, then X.
func (v Vector) Less(w Vector) bool {
	if v.Y != w.Y {
		return v.Y < w.Y
	}
	return v.X < w.X
}

// String returns the vector as "x,y".
func (v Vector) String() string {
	return fmt.Sprintf("%d,%d", v.X, v.Y)
}

// cross returns the z component of (b-a) x (c-a) in 64 bit precision.
func cross(a, b, c Point) int64 {
	return (int64(b.X)-int64(a.X))*(int64(c.Y)-int64(a.Y)) -
		(int64(b.Y)-int64(a.Y))*(int64(c.X)-int64(a.X))
}

// roundCoord rounds a float to the nearest coordinate.
func roundCoord(f float64) Coord {
	return Coord(math.Round(f))
}

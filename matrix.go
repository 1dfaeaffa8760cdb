package layout

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// ICplxTrans is a complex transformation in the integer plane:
// an optional mirroring at the x axis, a rotation by an arbitrary angle,
// a magnification and a displacement, applied in that order.
// Results are rounded to the nearest integer coordinate.
//
// The zero value is not usable; start from UnitCplxTrans.
type ICplxTrans struct {
	mag      float64
	sin, cos float64
	mirror   bool
	dx, dy   float64
}

// cplxEpsilon is the tolerance for classifying angles and magnifications.
const cplxEpsilon = 1e-10

// UnitCplxTrans returns the identity transformation.
func UnitCplxTrans() ICplxTrans {
	return ICplxTrans{mag: 1, cos: 1}
}

// NewICplxTrans creates a transformation from magnification, rotation angle
// in degree, mirror flag and displacement.
func NewICplxTrans(mag, angle float64, mirror bool, disp Vector) ICplxTrans {
	a := angle * math.Pi / 180
	t := ICplxTrans{
		mag:    mag,
		sin:    math.Sin(a),
		cos:    math.Cos(a),
		mirror: mirror,
		dx:     float64(disp.X),
		dy:     float64(disp.Y),
	}
	t.snap()
	return t
}

// DispCplxTrans creates a pure displacement.
func DispCplxTrans(v Vector) ICplxTrans {
	return ICplxTrans{mag: 1, cos: 1, dx: float64(v.X), dy: float64(v.Y)}
}

// snap removes the floating-point noise of multiples of 90 degree.
func (t *ICplxTrans) snap() {
	for _, f := range []*float64{&t.sin, &t.cos} {
		switch {
		case math.Abs(*f) < cplxEpsilon:
			*f = 0
		case math.Abs(*f-1) < cplxEpsilon:
			*f = 1
		case math.Abs(*f+1) < cplxEpsilon:
			*f = -1
		}
	}
}

// Mag returns the magnification.
func (t ICplxTrans) Mag() float64 { return t.mag }

// IsMirror reports whether the transformation mirrors.
func (t ICplxTrans) IsMirror() bool { return t.mirror }

// Angle returns the rotation angle in degree, in the range (-180, 180].
func (t ICplxTrans) Angle() float64 {
	return math.Atan2(t.sin, t.cos) * 180 / math.Pi
}

// Disp returns the displacement rounded to integer coordinates.
func (t ICplxTrans) Disp() Vector {
	return Vector{X: roundCoord(t.dx), Y: roundCoord(t.dy)}
}

// IsOrtho reports whether the rotation is a multiple of 90 degree.
func (t ICplxTrans) IsOrtho() bool {
	return t.sin == 0 || t.cos == 0
}

// IsMag reports whether the transformation scales.
func (t ICplxTrans) IsMag() bool {
	return math.Abs(t.mag-1) > cplxEpsilon
}

// IsUnity reports whether t is the identity.
func (t ICplxTrans) IsUnity() bool {
	return t.IsDisplacement() && t.dx == 0 && t.dy == 0
}

// IsDisplacement reports whether t only shifts.
func (t ICplxTrans) IsDisplacement() bool {
	return !t.IsMag() && !t.mirror && t.cos == 1 && t.sin == 0
}

// Trans returns the fixpoint equivalent of t. The second result is false
// if t scales or rotates by an angle other than a multiple of 90 degree.
func (t ICplxTrans) Trans() (Trans, bool) {
	if t.IsMag() || !t.IsOrtho() {
		return Trans{}, false
	}
	m := [4]Coord{Coord(t.cos), Coord(-t.sin), Coord(t.sin), Coord(t.cos)}
	if t.mirror {
		m[1], m[3] = -m[1], -m[3]
	}
	return Trans{Rot: rotFromMatrix(m), Disp: t.Disp()}, true
}

// linear applies the linear part to floating-point coordinates.
func (t ICplxTrans) linear(x, y float64) (float64, float64) {
	if t.mirror {
		y = -y
	}
	return t.mag * (t.cos*x - t.sin*y), t.mag * (t.sin*x + t.cos*y)
}

// Apply transforms p.
func (t ICplxTrans) Apply(p Point) Point {
	x, y := t.linear(float64(p.X), float64(p.Y))
	return Point{X: roundCoord(x + t.dx), Y: roundCoord(y + t.dy)}
}

// ApplyVector transforms v without the displacement.
func (t ICplxTrans) ApplyVector(v Vector) Vector {
	x, y := t.linear(float64(v.X), float64(v.Y))
	return Vector{X: roundCoord(x), Y: roundCoord(y)}
}

// ApplyDistance scales a distance by the magnification.
func (t ICplxTrans) ApplyDistance(d Coord) Coord {
	return roundCoord(float64(d) * t.mag)
}

// Concat returns t*o, the transformation that applies o first, then t.
func (t ICplxTrans) Concat(o ICplxTrans) ICplxTrans {
	return ICplxTransFromAff3(mulAff3(t.Aff3(), o.Aff3()))
}

// Inverted returns the inverse transformation.
func (t ICplxTrans) Inverted() ICplxTrans {
	m := t.Aff3()
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < cplxEpsilon {
		return UnitCplxTrans()
	}
	inv := 1 / det
	return ICplxTransFromAff3(f64.Aff3{
		m[4] * inv, -m[1] * inv, (m[1]*m[5] - m[2]*m[4]) * inv,
		-m[3] * inv, m[0] * inv, (m[2]*m[3] - m[0]*m[5]) * inv,
	})
}

// Aff3 returns the transformation as a row-major affine matrix:
//
//	| m[0]  m[1]  m[2] |
//	| m[3]  m[4]  m[5] |
func (t ICplxTrans) Aff3() f64.Aff3 {
	s := 1.0
	if t.mirror {
		s = -1
	}
	return f64.Aff3{
		t.mag * t.cos, -s * t.mag * t.sin, t.dx,
		t.mag * t.sin, s * t.mag * t.cos, t.dy,
	}
}

// ICplxTransFromAff3 decomposes an affine matrix without shear into
// magnification, rotation, mirroring and displacement.
func ICplxTransFromAff3(m f64.Aff3) ICplxTrans {
	mag := math.Hypot(m[0], m[3])
	if mag < cplxEpsilon {
		return UnitCplxTrans()
	}
	t := ICplxTrans{
		mag:    mag,
		cos:    m[0] / mag,
		sin:    m[3] / mag,
		mirror: m[0]*m[4]-m[1]*m[3] < 0,
		dx:     m[2],
		dy:     m[5],
	}
	t.snap()
	return t
}

// mulAff3 returns a*b.
func mulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// String returns the transformation as "m45 *1.5 10,20" style text.
func (t ICplxTrans) String() string {
	r := "r"
	if t.mirror {
		r = "m"
	}
	return fmt.Sprintf("%s%g *%g %g,%g", r, t.Angle(), t.mag, t.dx, t.dy)
}

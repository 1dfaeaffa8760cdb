package layout

import "fmt"

// Rot is one of the eight fixpoint rotations and mirrorings.
// Mirrored codes mirror at the x axis before rotating.
type Rot uint8

// Fixpoint rotation codes.
const (
	R0   Rot = iota // identity
	R90             // rotation by 90 degree counterclockwise
	R180            // rotation by 180 degree
	R270            // rotation by 270 degree counterclockwise
	M0              // mirror at the x axis
	M45             // mirror at the 45 degree axis
	M90             // mirror at the y axis
	M135            // mirror at the 135 degree axis
)

// rotMatrix holds the 2x2 integer matrix {a, b, c, d} of each rotation code:
//
//	x' = a*x + b*y
//	y' = c*x + d*y
var rotMatrix = [8][4]Coord{
	R0:   {1, 0, 0, 1},
	R90:  {0, -1, 1, 0},
	R180: {-1, 0, 0, -1},
	R270: {0, 1, -1, 0},
	M0:   {1, 0, 0, -1},
	M45:  {0, 1, 1, 0},
	M90:  {-1, 0, 0, 1},
	M135: {0, -1, -1, 0},
}

var rotNames = [8]string{"r0", "r90", "r180", "r270", "m0", "m45", "m90", "m135"}

// String returns the conventional short name ("r90", "m45", ...).
func (r Rot) String() string {
	if int(r) < len(rotNames) {
		return rotNames[r]
	}
	return "r?"
}

// IsMirror reports whether the code includes a mirroring.
func (r Rot) IsMirror() bool {
	return r >= M0
}

// Angle returns the rotation angle in units of 90 degree.
func (r Rot) Angle() int {
	return int(r & 3)
}

// rotFromMatrix maps an orthogonal integer matrix back to its code.
func rotFromMatrix(m [4]Coord) Rot {
	for r, rm := range rotMatrix {
		if rm == m {
			return Rot(r)
		}
	}
	panic("layout: not a fixpoint rotation matrix")
}

// Trans is a rigid fixpoint transformation: one of the eight
// orthogonal rotations/mirrorings followed by a displacement.
type Trans struct {
	Rot  Rot
	Disp Vector
}

// NewTrans creates a transformation from a rotation code and a displacement.
func NewTrans(rot Rot, disp Vector) Trans {
	return Trans{Rot: rot, Disp: disp}
}

// Disp creates a pure displacement.
func Disp(v Vector) Trans {
	return Trans{Disp: v}
}

// IsUnity reports whether t is the identity.
func (t Trans) IsUnity() bool {
	return t.Rot == R0 && t.Disp.IsZero()
}

// ApplyVector applies the rotation part to v.
func (t Trans) ApplyVector(v Vector) Vector {
	m := rotMatrix[t.Rot&7]
	return Vector{X: m[0]*v.X + m[1]*v.Y, Y: m[2]*v.X + m[3]*v.Y}
}

// Apply transforms p.
func (t Trans) Apply(p Point) Point {
	return Point(t.ApplyVector(Vector(p))).Add(t.Disp)
}

// Concat returns t*o, the transformation that applies o first, then t.
func (t Trans) Concat(o Trans) Trans {
	a, b := rotMatrix[t.Rot&7], rotMatrix[o.Rot&7]
	m := [4]Coord{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
	return Trans{Rot: rotFromMatrix(m), Disp: t.ApplyVector(o.Disp).Add(t.Disp)}
}

// Inverted returns the inverse transformation.
func (t Trans) Inverted() Trans {
	m := rotMatrix[t.Rot&7]
	inv := Trans{Rot: rotFromMatrix([4]Coord{m[0], m[2], m[1], m[3]})}
	inv.Disp = inv.ApplyVector(t.Disp).Neg()
	return inv
}

// ICplxTrans converts t into the equivalent complex transformation.
func (t Trans) ICplxTrans() ICplxTrans {
	m := rotMatrix[t.Rot&7]
	c := ICplxTrans{
		mag:    1,
		cos:    float64(m[0]),
		sin:    float64(m[2]),
		mirror: t.Rot.IsMirror(),
		dx:     float64(t.Disp.X),
		dy:     float64(t.Disp.Y),
	}
	return c
}

// String returns the transformation as "r90 10,20".
func (t Trans) String() string {
	return fmt.Sprintf("%s %s", t.Rot, t.Disp)
}

// Package layout provides the geometric primitives of an IC mask layout
// database.
//
// # Overview
//
// All coordinates are integer database units ([Coord]). The package defines
// the value types that shape containers store:
//   - Scalars: [Point], [Box], [ShortBox], [Edge], [EdgePair], [Polygon],
//     [SimplePolygon], [Path], [Text], [UserObject]
//   - Shared references: [PolygonRef], [SimplePolygonRef], [PathRef],
//     [TextRef] place an object interned in a [Repository] at a displacement
//   - Arrays: [PolygonPtrArray], [BoxArray], ... repeat one object on a
//     lattice or at explicit offsets
//
// Transformations come in two flavors: [Trans] is one of the eight
// orthogonal rotations/mirrorings plus a displacement, [ICplxTrans] adds
// arbitrary angles and magnification and rounds its results.
//
// # Quick Start
//
//	repo := layout.NewShapeRepository()
//	p := layout.PolygonFromBox(layout.NewBox(0, 0, 100, 200))
//	ref := layout.NewPolygonRef(repo.Polygons, p)
//	arr := layout.NewRegularArray(ref, layout.V(200, 0), layout.V(0, 300), 10, 4)
//
// Containers for these objects live in the shapes sub-package.
//
// # Coordinate System
//
// X increases to the right, Y increases upwards. Angles are in degree and
// counterclockwise.
package layout

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

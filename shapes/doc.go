// Package shapes implements the shape container of a layout cell.
//
// # Overview
//
// A [Shapes] container stores geometric objects of the twenty kinds listed
// by [Kind]: plain objects, repository references and arrays. Each kind
// lives in its own layer, created on first use, one for shapes without
// and one for shapes with a [PropertiesID]. Every layer carries a spatial
// index that is rebuilt lazily before region queries.
//
// Shapes are addressed through [Shape] handles and enumerated with a
// [ShapeIterator], which visits kinds in a fixed order and steps through
// the members of arrays.
//
// # Quick Start
//
//	s := shapes.New()
//	shapes.Insert(s, layout.NewBox(0, 0, 100, 100))
//	shapes.InsertWithProperties(s, layout.PolygonFromBox(layout.NewBox(50, 50, 150, 150)), 7)
//
//	for it := s.BeginTouching(layout.NewBox(90, 90, 95, 95), shapes.All); !it.AtEnd(); it.Next() {
//		fmt.Println(it.Shape())
//	}
//
// # Modes
//
// Editable containers (the default) expand arrays into their members on
// insertion and keep every shape at a fixed position, so handles survive
// unrelated edits. Bulk containers, created with WithEditable(false), store
// arrays as one object in compact storage and reject erase and replace
// with a [UsageError].
//
// # Undo
//
// With an [undo.Manager] attached, every mutation inside a transaction
// queues an op before it is applied. Consecutive inserts into the same
// layer are merged into one op.
package shapes

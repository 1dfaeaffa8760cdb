package shapes

import (
	"github.com/gogpu/layout/internal/boxtree"
	"github.com/gogpu/layout/undo"
)

// Option configures a Shapes container during creation.
//
// Example:
//
//	// Standalone editable container
//	s := shapes.New()
//
//	// Bulk container of a cell, with undo support
//	s := shapes.New(shapes.WithCell(cell), shapes.WithManager(mgr), shapes.WithEditable(false))
type Option func(*options)

// options holds optional configuration for container creation.
type options struct {
	manager  *undo.Manager
	cell     Cell
	editable bool
	leafSize int
}

// defaultOptions returns the default container options.
func defaultOptions() options {
	return options{
		editable: true,
		leafSize: boxtree.DefaultLeafSize,
	}
}

// WithManager attaches an undo manager. The container queues undo ops
// whenever the manager has an open transaction.
func WithManager(m *undo.Manager) Option {
	return func(o *options) {
		o.manager = m
	}
}

// WithCell binds the container to its owning cell. References inserted by
// copy operations are re-interned into the cell's repository.
func WithCell(c Cell) Option {
	return func(o *options) {
		o.cell = c
	}
}

// WithEditable selects editable mode (the default) or bulk mode.
//
// Editable containers expand arrays into their members on insertion and
// permit erase and replace. Bulk containers store arrays as one object,
// keep their storage compact and reject erase and replace.
func WithEditable(editable bool) Option {
	return func(o *options) {
		o.editable = editable
	}
}

// WithLeafSize sets the number of shapes below which a spatial index node
// is not split further. Values below one select the default.
func WithLeafSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.leafSize = n
		}
	}
}

// IteratorOption configures a ShapeIterator.
type IteratorOption func(*iteratorOptions)

type iteratorOptions struct {
	selector []PropertiesID
	inverse  bool
	hasSel   bool
}

// WithPropertySelector restricts iteration to shapes whose properties id
// is in ids, or not in ids if inverse is set. Shapes without properties
// count as properties id 0.
func WithPropertySelector(ids []PropertiesID, inverse bool) IteratorOption {
	return func(o *iteratorOptions) {
		o.selector = ids
		o.inverse = inverse
		o.hasSel = true
	}
}

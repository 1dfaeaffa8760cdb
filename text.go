package layout

import (
	"fmt"
	"strconv"
)

// HAlign is the horizontal alignment of a text label.
type HAlign int8

// Horizontal alignments.
const (
	HAlignDefault HAlign = iota - 1
	HAlignLeft
	HAlignCenter
	HAlignRight
)

// VAlign is the vertical alignment of a text label.
type VAlign int8

// Vertical alignments.
const (
	VAlignDefault VAlign = iota - 1
	VAlignBottom
	VAlignCenter
	VAlignTop
)

// Text is a label placed by a rigid transformation.
// Geometrically a text is a single point, the origin of its transformation.
type Text struct {
	Label  string
	Trans  Trans
	Size   Coord
	Font   int
	HAlign HAlign
	VAlign VAlign
}

// NewText creates a label with default font and alignment.
func NewText(s string, t Trans) Text {
	return Text{Label: s, Trans: t, Font: -1, HAlign: HAlignDefault, VAlign: VAlignDefault}
}

// Position returns the location of the label.
func (t Text) Position() Point {
	return Point(t.Trans.Disp)
}

// BBox returns the degenerate box at the label position.
func (t Text) BBox() Box {
	return t.Position().BBox()
}

// Equal reports whether both labels are identical.
func (t Text) Equal(o Text) bool {
	return t == o
}

// Hash returns a hash over all label attributes.
func (t Text) Hash() uint64 {
	h := uint64(fnvOffset)
	for i := 0; i < len(t.Label); i++ {
		h ^= uint64(t.Label[i])
		h *= fnvPrime
	}
	h = hashMix(h, uint64(t.Trans.Rot)<<32|uint64(uint32(t.Size)))
	h = hashMix(h, uint64(uint32(t.Trans.Disp.X))<<32|uint64(uint32(t.Trans.Disp.Y)))
	return hashMix(h, uint64(uint32(t.Font))<<16|uint64(uint8(t.HAlign))<<8|uint64(uint8(t.VAlign)))
}

// Moved returns the label displaced by v.
func (t Text) Moved(v Vector) Text {
	r := t
	r.Trans.Disp = t.Trans.Disp.Add(v)
	return r
}

// Transformed returns the label under c. The orientation snaps to the
// nearest fixpoint rotation; the size follows the magnification.
func (t Text) Transformed(c ICplxTrans) Text {
	r := t
	r.Trans.Disp = Vector(c.Apply(t.Position()))
	r.Size = c.ApplyDistance(t.Size)
	if ft, ok := c.Trans(); ok {
		r.Trans.Rot = ft.Concat(Trans{Rot: t.Trans.Rot}).Rot
	}
	return r
}

// String returns the label as ("text",r0 10,20).
func (t Text) String() string {
	return fmt.Sprintf("(%s,%s)", strconv.Quote(t.Label), t.Trans)
}

// Package layout implements C11 (the typesetter) and the top-level Layout
// entry point: it drives every other package in the module through the
// full pipeline (style defaults -> paragraph split -> script/bidi/font
// adapters -> flatten -> shape -> tokenize -> break -> finalize -> justify
// -> decorate) and owns
// the Container/Block/LineFragment output tree.
//
// Adapted from: skia/paragraph/{paragraph_impl,paragraph_impl_layout,
// paragraph_builder,block,text_line}.go for the overall column-flow driver
// shape, generalized from Skia's single-paragraph/single-column model to
// the spec's multi-container, multi-column one.
package layout

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/decorate"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
)

// LineFragment is one laid-out, finalized line (§3).
type LineFragment struct {
	Rect            geom.Rect
	String          glyph.GlyphString
	OverflowLeft    float64
	OverflowRight   float64
	DecorationLines []decorate.Line
	Truncated       bool
}

// AdvanceWidth is the sum of the fragment's glyph advances.
func (l LineFragment) AdvanceWidth() float64 { return l.String.AdvanceWidth() }

// Block is an ordered run of LineFragments belonging to one paragraph,
// plus the paragraph style that produced them (§3).
type Block struct {
	Fragments []LineFragment
	Style     attrstring.ParagraphStyle
}

// BBox returns the accumulated bounding box of every fragment's rect.
func (b Block) BBox() geom.Rect {
	box := geom.NewBBox()
	for _, f := range b.Fragments {
		box.AddRect(f.Rect)
	}
	return box.Rect()
}

// Height is the sum of the block's fragment rect heights.
func (b Block) Height() float64 {
	h := 0.0
	for _, f := range b.Fragments {
		h += f.Rect.Height
	}
	return h
}

// Container is a layout region: a bounding box, optionally split into
// equal-width columns separated by gaps, accumulating the Blocks the
// typesetter places into it (§3, §4.11).
type Container struct {
	BBox      geom.Rect
	Columns   int
	ColumnGap float64
	Blocks    []Block
}

// columnRects splits c.BBox into c.Columns equal-width rects separated by
// ColumnGap (§4.11 step: "derive columns rectangles by splitting bbox.width
// into equal columns separated by columnGap").
func (c *Container) columnRects() []geom.Rect {
	n := c.Columns
	if n <= 0 {
		n = 1
	}
	totalGap := c.ColumnGap * float64(n-1)
	colWidth := (c.BBox.Width - totalGap) / float64(n)
	rects := make([]geom.Rect, n)
	x := c.BBox.X
	for i := 0; i < n; i++ {
		rects[i] = geom.NewRect(x, c.BBox.Y, colWidth, c.BBox.Height)
		x += colWidth + c.ColumnGap
	}
	return rects
}

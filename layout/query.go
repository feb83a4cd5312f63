package layout

import (
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
)

// Affinity records which side of a position a hit-test result is
// associated with, used when a coordinate falls exactly between two
// glyphs (SPEC_FULL §D.4).
//
// Adapted from: skia/paragraph/position.go's PositionWithAffinity.
type Affinity int

const (
	AffinityDownstream Affinity = iota
	AffinityUpstream
)

// GlyphPosition locates a coordinate hit within a finished layout: which
// block and fragment it landed in, and which glyph of that fragment's
// string it resolves to.
type GlyphPosition struct {
	Block, Fragment int
	Glyph           int
	Affinity        Affinity
}

// RectsForGlyphRange returns the bounding rect, in the same coordinate
// space as the fragment's Rect, spanning
// glyphs [start, end) of the fragment's shaped string (SPEC_FULL §D.4's
// GetRectsForRange, scoped to one fragment since LineFragment's String is
// the finest-grained unit the layout tree retains per-glyph geometry for).
func (l LineFragment) RectsForGlyphRange(start, end int) []geom.Rect {
	n := l.String.Length()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return nil
	}
	left := advanceBefore(l.String, start)
	width := advanceBefore(l.String, end) - left
	return []geom.Rect{geom.NewRect(l.Rect.X+left, l.Rect.Y, width, l.Rect.Height)}
}

// GlyphPositionAtX resolves an x-coordinate (relative to the fragment's own
// rect origin) to a glyph index and affinity: upstream if x falls in the
// left half of the glyph's advance, downstream otherwise. Mirrors the
// midpoint rule in skia/paragraph/paragraph_impl_methods.go's
// GetGlyphPositionAtCoordinate.
func (l LineFragment) GlyphPositionAtX(x float64) (int, Affinity) {
	pos := 0.0
	idx := 0
	for _, r := range l.String.Runs {
		for _, p := range r.Positions {
			if x < pos {
				return idx, AffinityUpstream
			}
			if x < pos+p.XAdvance {
				if x < pos+p.XAdvance/2 {
					return idx, AffinityUpstream
				}
				return idx, AffinityDownstream
			}
			pos += p.XAdvance
			idx++
		}
	}
	return idx, AffinityDownstream
}

// GetGlyphPositionAtCoordinate implements SPEC_FULL §D.4's read-only
// hit-test: find the block/fragment whose rect contains pt.Y, then resolve
// pt.X within it. Returns ok=false if pt falls outside every fragment.
func (c Container) GetGlyphPositionAtCoordinate(pt geom.Point) (GlyphPosition, bool) {
	for bi, b := range c.Blocks {
		for fi, f := range b.Fragments {
			if pt.Y < f.Rect.Top() || pt.Y >= f.Rect.Bottom() {
				continue
			}
			idx, aff := f.GlyphPositionAtX(pt.X - f.Rect.X)
			return GlyphPosition{Block: bi, Fragment: fi, Glyph: idx, Affinity: aff}, true
		}
	}
	return GlyphPosition{}, false
}

// GetRectsForRange implements SPEC_FULL §D.4's read-only range query: the
// rects covering glyphs [start, end) of the named fragment.
func (c Container) GetRectsForRange(blockIndex, fragmentIndex, start, end int) []geom.Rect {
	if blockIndex < 0 || blockIndex >= len(c.Blocks) {
		return nil
	}
	frags := c.Blocks[blockIndex].Fragments
	if fragmentIndex < 0 || fragmentIndex >= len(frags) {
		return nil
	}
	return frags[fragmentIndex].RectsForGlyphRange(start, end)
}

// advanceBefore sums glyph advances up to (but not including) glyph index
// upto, in the string's glyph-space numbering.
func advanceBefore(gs glyph.GlyphString, upto int) float64 {
	w := 0.0
	idx := 0
	for _, r := range gs.Runs {
		for _, p := range r.Positions {
			if idx >= upto {
				return w
			}
			w += p.XAdvance
			idx++
		}
	}
	return w
}

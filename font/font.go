// Package font declares the narrow Font-oracle interface the core consumes
// per §6: font-file parsing and shaping are an external collaborator, never
// implemented inside the layout pipeline itself.
//
// Adapted from: skia/interfaces/font.go (SkFont) and skia/interfaces/typeface.go
// (zodimo/go-skia-support), trimmed to exactly the surface §6 names.
package font

// Glyph is a single shaped glyph identity (§3's Glyph, referenced from
// GlyphRun.glyphs and from Oracle.GlyphForCodePoint).
type Glyph struct {
	ID     uint16
	IsMark bool
}

// Position is a glyph's placement delta in font units (§3).
type Position struct {
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// LayoutResult is what Oracle.Layout returns for one shaped substring: glyphs
// in shaped (visual) order, their positions, and the character offset (into
// the substring passed to Layout) that produced each glyph.
type LayoutResult struct {
	Glyphs        []Glyph
	Positions     []Position
	StringIndices []int
}

// Oracle is the Font oracle collaborator (§6): "layout(str, features,
// script) -> {glyphs, positions, stringIndices}; glyphForCodePoint(cp) ->
// Glyph; unitsPerEm; per-glyph id, isMark, render(ctx, size); tables sbix,
// COLR, CPAL presence flags; underlinePosition, underlineThickness."
//
// render(ctx, size) for color fonts and the table presence flags are
// consumed by the renderer, not by the core pipeline, and are therefore
// not part of this interface; RenderContext (also out of scope, §1) is
// where a caller would bridge from a Glyph back to drawing it.
type Oracle interface {
	Layout(str string, features []string, script string) (LayoutResult, error)
	GlyphForCodePoint(cp rune) Glyph
	UnitsPerEm() float64
	UnderlinePosition() float64
	UnderlineThickness() float64

	// Ascent and Descent are in font units, used to derive a run's line
	// height (font metrics x fontSize / unitsPerEm, §3's GlyphString.height).
	// Descent is positive (distance below the baseline).
	Ascent() float64
	Descent() float64
}

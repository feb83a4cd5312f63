// Package fontshape is the default Font oracle (§6) wiring: it shapes text
// with go-text/typesetting's HarfBuzz-compatible shaper and reports the
// font metrics the core needs, so that a caller who has no font-rendering
// opinion of their own still gets a working engine.
//
// Adapted from: skia/shaper/harfbuzz.go HarfbuzzShaper.ShapeWithIterators
// (the run-splitting and shape-call structure) and
// skia/paragraph/one_line_shaper.go (per-block shape invocation), ported
// from Skia's font-manager abstraction onto go-text/typesetting directly.
package fontshape

import (
	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/inkwell/richtext/font"
)

// Default is a font.Oracle over a single go-text/typesetting face, shaped
// at a fixed size. One Default is constructed per (font handle, fontSize)
// pair the pipeline encounters; caching that construction, if a caller
// wants it, belongs to the layout.Options.Font resolver, not this package.
type Default struct {
	face   *gofont.Face
	size   fixed.Int26_6
	shaper shaping.HarfbuzzShaper
}

// New constructs a Default oracle for face at sizePx pixels.
func New(face *gofont.Face, sizePx float64) *Default {
	return &Default{face: face, size: fixed.I(int(sizePx))}
}

// Layout implements font.Oracle. features are OpenType feature tags
// (e.g. "liga", "kern"); script is an ISO 15924 tag as produced by package
// script.
func (d *Default) Layout(str string, features []string, script string) (font.LayoutResult, error) {
	if str == "" {
		return font.LayoutResult{}, nil
	}
	runes := []rune(str)

	// The oracle's own signature (§6) carries no direction parameter: glyph
	// order within a run is resolved upstream from bidiLevel runs before
	// a substring ever reaches Layout, so every call here shapes LTR.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      d.face,
		Size:      d.size,
		Script:    scriptTag(script),
		Language:  language.NewLanguage("en"),
	}
	for _, tag := range features {
		input.FontFeatures = append(input.FontFeatures, shaping.FontFeature{
			Tag:   shaping.MakeTag(tag),
			Value: 1,
		})
	}

	out := d.shaper.Shape(input)

	// Map go-text's shaped-glyph-space back to byte offsets: ClusterIndex
	// is reported as a rune index into Text, so translate to bytes per the
	// same byte-offset convention the rest of the pipeline uses.
	byteOffsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		byteOffsets[i] = pos
		pos += len(string(r))
	}
	byteOffsets[len(runes)] = pos

	result := font.LayoutResult{
		Glyphs:        make([]font.Glyph, len(out.Glyphs)),
		Positions:     make([]font.Position, len(out.Glyphs)),
		StringIndices: make([]int, len(out.Glyphs)),
	}
	for i, g := range out.Glyphs {
		result.Glyphs[i] = font.Glyph{ID: uint16(g.GlyphID), IsMark: g.GlyphCount == 0 && g.RuneCount == 0}
		result.Positions[i] = font.Position{
			XAdvance: fixedToFloat(g.XAdvance),
			YAdvance: fixedToFloat(g.YAdvance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
		idx := g.ClusterIndex
		if idx < 0 {
			idx = 0
		}
		if idx > len(runes) {
			idx = len(runes)
		}
		result.StringIndices[i] = byteOffsets[idx]
	}
	return result, nil
}

// GlyphForCodePoint implements font.Oracle, used by C6 to find the glyph
// that stands in for an attachment (U+FFFC).
func (d *Default) GlyphForCodePoint(cp rune) font.Glyph {
	gid, ok := d.face.NominalGlyph(cp)
	if !ok {
		return font.Glyph{}
	}
	return font.Glyph{ID: uint16(gid)}
}

// UnitsPerEm implements font.Oracle.
func (d *Default) UnitsPerEm() float64 {
	return float64(d.face.Upem())
}

// UnderlinePosition implements font.Oracle, in font units.
func (d *Default) UnderlinePosition() float64 {
	m := d.face.FontHExtents()
	return float64(m.Ascender) * -0.1
}

// UnderlineThickness implements font.Oracle, in font units.
func (d *Default) UnderlineThickness() float64 {
	return float64(d.face.Upem()) * 0.05
}

// Ascent implements font.Oracle, in font units.
func (d *Default) Ascent() float64 {
	return float64(d.face.FontHExtents().Ascender)
}

// Descent implements font.Oracle, in font units. go-text reports Descender
// as a negative offset from the baseline; Oracle.Descent is positive.
func (d *Default) Descent() float64 {
	return -float64(d.face.FontHExtents().Descender)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// scriptTag maps an ISO 15924 tag (as produced by package script) to
// go-text/typesetting's language.Script.
func scriptTag(tag string) language.Script {
	if tag == "" {
		return language.NewScript("Latn")
	}
	return language.NewScript(tag)
}

// Package decorate implements C10: computing underline and strike-through
// geometry for a shaped line.
//
// Adapted from: skia/paragraph/decoration.go, whose TextDecoration/
// TextDecorationStyle vocabulary (solid/double/dashed/dotted/wavy) this
// package reuses verbatim via attrstring.DecorationStyle, and
// skia/paragraph/text_shadow.go for the convention of recording a line's
// geometry without drawing it — geometric expansion (dash pattern, wave
// amplitude) is left to the renderer, per §1/§6.
package decorate

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
)

// Line is a single decoration stroke to be drawn by the renderer (§3's
// DecorationLine): a rect spanning the decorated glyph range at the
// decoration's vertical offset, plus the color/style/opacity the renderer
// needs to paint it.
type Line struct {
	Rect    geom.Rect
	Color   string
	Style   attrstring.DecorationStyle
	Opacity float64
}

// strikeAscentFraction places the strike line ascent/3 above the baseline
// (§4.10: "baseline - ascent/3 or font-specific"); the ascent comes from
// the run's font oracle, or is the run's fontSize when it has none.
const strikeAscentFraction = 1.0 / 3.0

// ForLine computes the underline and strike decoration lines for one
// finalized line fragment. baselineY is the line's baseline in the same
// coordinate space as rect; rect.X is where the first run's decorations
// start, and their vertical position comes from baselineY. Runs with neither Underline
// nor Strike set contribute nothing.
func ForLine(gs glyph.GlyphString, rect geom.Rect, baselineY float64) []Line {
	var lines []Line
	x := rect.X
	for _, r := range gs.Runs {
		width := advanceOf(r)
		if r.Attributes.Underline {
			lines = append(lines, underlineFor(r, x, width, baselineY))
		}
		if r.Attributes.Strike {
			lines = append(lines, strikeFor(r, x, width, baselineY))
		}
		x += width
	}
	return lines
}

func underlineFor(r glyph.GlyphRun, x, width, baselineY float64) Line {
	scale := unitScale(r)
	position := 0.0
	thickness := r.Attributes.FontSize * 0.05
	if r.Font != nil {
		position = r.Font.UnderlinePosition() * scale
		thickness = r.Font.UnderlineThickness() * scale
	}
	return Line{
		Rect:    geom.NewRect(x, baselineY+position, width, thickness),
		Color:   r.Attributes.UnderlineColor,
		Style:   r.Attributes.UnderlineStyle,
		Opacity: 1,
	}
}

func strikeFor(r glyph.GlyphRun, x, width, baselineY float64) Line {
	scale := unitScale(r)
	thickness := r.Attributes.FontSize * 0.05
	offset := -r.Attributes.FontSize * strikeAscentFraction
	if r.Font != nil {
		thickness = r.Font.UnderlineThickness() * scale
		offset = -r.Font.Ascent() * scale * strikeAscentFraction
	}
	return Line{
		Rect:    geom.NewRect(x, baselineY+offset, width, thickness),
		Color:   r.Attributes.StrikeColor,
		Style:   r.Attributes.StrikeStyle,
		Opacity: 1,
	}
}

// unitScale converts font-unit metrics to the line's logical units:
// fontSize/unitsPerEm, per §4.10's thickness formula.
func unitScale(r glyph.GlyphRun) float64 {
	if r.Font == nil || r.Font.UnitsPerEm() == 0 {
		return 1
	}
	return r.Attributes.FontSize / r.Font.UnitsPerEm()
}

func advanceOf(r glyph.GlyphRun) float64 {
	w := 0.0
	for _, p := range r.Positions {
		w += p.XAdvance
	}
	return w
}

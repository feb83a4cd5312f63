package layout

import (
	"unicode"

	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
)

// FinalizeLine implements line finalization (§4.12): align selection,
// truncation, whitespace trimming into overflow, hanging-punctuation
// overflow, rect expansion, alignment offset, and justification, in that
// fixed order.
//
// Adapted from: skia/paragraph/text_line.go's format-time pass (trim,
// ellipsis, shift-per-alignment) generalized into a single explicit
// function rather than TextLine's mutate-in-place method set.
func FinalizeLine(line glyph.GlyphString, style attrstring.ParagraphStyle, rect geom.Rect, isLastFragment, isTruncated bool, engines Engines, ellipsis string) LineFragment {
	align := style.Align
	if isLastFragment && !isTruncated {
		align = style.AlignLastLine
	}

	truncated := false
	if isTruncated && style.TruncationMode != attrstring.TruncateNone {
		out, did := engines.Truncate(line, rect.Width, style.TruncationMode, ellipsis)
		line = out
		truncated = did
	}

	line, overflowLeft, overflowRight := trimWhitespace(line)

	if style.HangingPunctuation {
		if align == attrstring.AlignLeft || align == attrstring.AlignJustify {
			if r, ok := sourceRuneAt(line, 0); ok && isHangingStartPunct(r) {
				overflowLeft += advanceAt(line, 0)
				line = line.Slice(1, line.Length())
			}
		}
		if align == attrstring.AlignRight || align == attrstring.AlignJustify {
			if n := line.Length(); n > 0 {
				if r, ok := sourceRuneAt(line, n-1); ok && isHangingEndPunct(r) {
					overflowRight += advanceAt(line, n-1)
					line = line.Slice(0, n-1)
				}
			}
		}
	}

	finalRect := rect
	finalRect.X -= overflowLeft
	finalRect.Width += overflowLeft + overflowRight

	advanceWidth := line.AdvanceWidth()
	finalRect.X += (finalRect.Width - advanceWidth) * alignFactor(align)

	if align == attrstring.AlignJustify || advanceWidth > finalRect.Width {
		// JustificationFactor (§3) dampens how much of the available
		// slack actually gets redistributed; 1.0 (the default) passes
		// the full gap through unchanged.
		gap := (finalRect.Width - advanceWidth) * style.JustificationFactor
		engines.Justify(line, gap, func(i int) bool { return isWhitespaceAt(line, i) })
	}

	baseline := finalRect.Y + lineAscent(line)
	decorations := engines.Decorate(line, finalRect, baseline)

	return LineFragment{
		Rect:            finalRect,
		String:          line,
		OverflowLeft:    overflowLeft,
		OverflowRight:   overflowRight,
		DecorationLines: decorations,
		Truncated:       truncated,
	}
}

// trimWhitespace strips leading/trailing whitespace glyphs, converting
// their width into overflowLeft/overflowRight (§4.12, open question (b):
// the trim happens before the alignment offset is computed).
func trimWhitespace(line glyph.GlyphString) (glyph.GlyphString, float64, float64) {
	n := line.Length()
	start, end := 0, n
	var left, right float64
	for start < end && isWhitespaceAt(line, start) {
		left += advanceAt(line, start)
		start++
	}
	for end > start && isWhitespaceAt(line, end-1) {
		right += advanceAt(line, end-1)
		end--
	}
	if start == 0 && end == n {
		return line, left, right
	}
	return line.Slice(start, end), left, right
}

func alignFactor(align attrstring.Align) float64 {
	switch align {
	case attrstring.AlignCenter:
		return 0.5
	case attrstring.AlignRight:
		return 1
	default:
		return 0
	}
}

// isHangingStartPunct/isHangingEndPunct classify punctuation allowed to
// hang past the line's visual edge (§4.12, GLOSSARY "hanging punctuation"):
// opening brackets/quotes at the start, closing brackets/quotes and
// terminal punctuation at the end.
func isHangingStartPunct(r rune) bool {
	return unicode.Is(unicode.Ps, r) || unicode.Is(unicode.Pi, r)
}

func isHangingEndPunct(r rune) bool {
	if unicode.Is(unicode.Pe, r) || unicode.Is(unicode.Pf, r) {
		return true
	}
	switch r {
	case '.', ',', ';', ':', '!', '?':
		return true
	}
	return false
}

func lineAscent(gs glyph.GlyphString) float64 {
	h := 0.0
	for _, r := range gs.Runs {
		if a := ascentOf(r); a > h {
			h = a
		}
	}
	return h
}

func ascentOf(r glyph.GlyphRun) float64 {
	if r.Font == nil || r.Font.UnitsPerEm() == 0 {
		return r.Attributes.FontSize * 0.8
	}
	scale := r.Attributes.FontSize / r.Font.UnitsPerEm()
	return r.Font.Ascent() * scale
}

func glyphAt(gs glyph.GlyphString, i int) (glyph.GlyphRun, int, bool) {
	for _, r := range gs.Runs {
		if i >= r.Start && i < r.End {
			return r, i - r.Start, true
		}
	}
	return glyph.GlyphRun{}, 0, false
}

func isWhitespaceAt(gs glyph.GlyphString, i int) bool {
	r, local, ok := glyphAt(gs, i)
	if !ok || local >= len(r.IsWhitespace) {
		return false
	}
	return r.IsWhitespace[local]
}

func advanceAt(gs glyph.GlyphString, i int) float64 {
	r, local, ok := glyphAt(gs, i)
	if !ok || local >= len(r.Positions) {
		return 0
	}
	return r.Positions[local].XAdvance
}

func sourceRuneAt(gs glyph.GlyphString, i int) (rune, bool) {
	r, local, ok := glyphAt(gs, i)
	if !ok || local >= len(r.SourceRune) {
		return 0, false
	}
	return r.SourceRune[local], true
}

// Package truncate implements C9: eliding part of an overlong line's
// glyph string with an ellipsis so the result fits within maxWidth,
// minimizing how much of the content is dropped.
//
// Adapted from: skia/paragraph/text_line.go's CreateEllipsis, which walks
// the line's ghost-cluster range backwards, reshaping a candidate ellipsis
// run against each cut point and stopping at the first that fits. This
// package generalizes that single (tail) direction to head and middle
// truncation per TruncationMode.
package truncate

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/font"
	"github.com/inkwell/richtext/glyph"
)

// Truncate implements the C9 contract: given a line that overflows
// maxWidth, elide glyphs per mode and splice in an ellipsis shaped with the
// font of the glyph run adjacent to the cut. Returns the line unchanged and
// false if mode is TruncateNone or the line already fits.
func Truncate(line glyph.GlyphString, maxWidth float64, mode attrstring.TruncationMode, ellipsis string) (glyph.GlyphString, bool) {
	if mode == attrstring.TruncateNone || line.AdvanceWidth() <= maxWidth {
		return line, false
	}
	total := line.Length()
	if total == 0 {
		return line, false
	}
	switch mode {
	case attrstring.TruncateTail:
		return truncateTail(line, maxWidth, ellipsis, total), true
	case attrstring.TruncateHead:
		return truncateHead(line, maxWidth, ellipsis, total), true
	case attrstring.TruncateMiddle:
		return truncateMiddle(line, maxWidth, ellipsis, total), true
	default:
		return line, false
	}
}

// truncateTail keeps a shrinking prefix and appends the ellipsis, per
// CreateEllipsis's own direction: the loop tries the widest prefix first,
// ending at an empty prefix (an all-ellipsis line) if nothing else fits.
func truncateTail(line glyph.GlyphString, maxWidth float64, ellipsis string, total int) glyph.GlyphString {
	for cut := total; cut >= 0; cut-- {
		attrs, ora := runAt(line, clampIndex(cut-1, total))
		erun, ok := shapeEllipsis(ora, attrs, ellipsis)
		if !ok {
			continue
		}
		kept := line.Slice(0, cut)
		if kept.AdvanceWidth()+advanceOf(erun) <= maxWidth || cut == 0 {
			return join(kept, erun, glyph.GlyphString{})
		}
	}
	return hardTruncate(line, maxWidth, 0, total)
}

// truncateHead keeps a shrinking suffix and prepends the ellipsis.
func truncateHead(line glyph.GlyphString, maxWidth float64, ellipsis string, total int) glyph.GlyphString {
	for cut := total; cut >= 0; cut-- {
		start := total - cut
		attrs, ora := runAt(line, clampIndex(start, total))
		erun, ok := shapeEllipsis(ora, attrs, ellipsis)
		if !ok {
			continue
		}
		kept := line.Slice(start, total)
		if advanceOf(erun)+kept.AdvanceWidth() <= maxWidth || cut == 0 {
			return join(glyph.GlyphString{}, erun, kept)
		}
	}
	return hardTruncate(line, maxWidth, total, total)
}

// truncateMiddle keeps a head and tail of shrinking combined length,
// widening the elided middle span by one glyph per iteration until the
// result fits.
func truncateMiddle(line glyph.GlyphString, maxWidth float64, ellipsis string, total int) glyph.GlyphString {
	for removed := 0; removed <= total; removed++ {
		kept := total - removed
		headLen := (kept + 1) / 2
		tailLen := kept - headLen
		tailStart := total - tailLen

		attrs, ora := runAt(line, clampIndex(headLen, total))
		erun, ok := shapeEllipsis(ora, attrs, ellipsis)
		if !ok {
			continue
		}
		head := line.Slice(0, headLen)
		tail := line.Slice(tailStart, total)
		width := head.AdvanceWidth() + advanceOf(erun) + tail.AdvanceWidth()
		if width <= maxWidth || removed == total {
			return join(head, erun, tail)
		}
	}
	return hardTruncate(line, maxWidth, 0, total)
}

// hardTruncate is the fallback when the ellipsis cannot be shaped at all
// (no font oracle reachable, or an empty ellipsis string): it drops glyphs
// from the tail until the remainder fits, with no ellipsis spliced in,
// rather than leaving the caller with an overfull line.
func hardTruncate(line glyph.GlyphString, maxWidth float64, keepFromHead, total int) glyph.GlyphString {
	for cut := total; cut >= 0; cut-- {
		candidate := line.Slice(0, cut)
		if candidate.AdvanceWidth() <= maxWidth || cut == 0 {
			return candidate
		}
	}
	return line.Slice(0, 0)
}

// join concatenates head, an ellipsis run, and tail into one renumbered
// GlyphString, dropping any of the three that is empty.
func join(head glyph.GlyphString, erun glyph.GlyphRun, tail glyph.GlyphString) glyph.GlyphString {
	var out glyph.GlyphString
	out.Runs = append(out.Runs, head.Runs...)
	if len(erun.Glyphs) > 0 {
		out.Runs = append(out.Runs, erun)
	}
	out.Runs = append(out.Runs, tail.Runs...)
	renumber(&out)
	return out
}

func renumber(gs *glyph.GlyphString) {
	pos := 0
	for i := range gs.Runs {
		n := len(gs.Runs[i].Glyphs)
		gs.Runs[i].Start = pos
		gs.Runs[i].End = pos + n
		pos += n
	}
}

// shapeEllipsis shapes the ellipsis string with ora using attrs' features
// and script, producing a GlyphRun ready to splice into a line. Returns
// ok=false when there is no oracle to shape with or the ellipsis is empty.
func shapeEllipsis(ora font.Oracle, attrs attrstring.Attributes, ellipsis string) (glyph.GlyphRun, bool) {
	if ora == nil || ellipsis == "" {
		return glyph.GlyphRun{}, false
	}
	result, err := ora.Layout(ellipsis, attrs.Features, attrs.Script)
	if err != nil || len(result.Glyphs) == 0 {
		return glyph.GlyphRun{}, false
	}
	return glyph.GlyphRun{
		Start:         0,
		End:           len(result.Glyphs),
		Attributes:    attrs,
		Glyphs:        result.Glyphs,
		Positions:     result.Positions,
		StringIndices: result.StringIndices,
		GlyphIndices:  glyph.Reconcile(result.StringIndices, len(ellipsis)),
		IsWhitespace:  make([]bool, len(result.Glyphs)),
		Font:          ora,
	}, true
}

// runAt returns the attributes and font oracle of the run covering glyph
// index i in line's global glyph-space numbering, falling back to the last
// run if i is past the end (e.g. an empty line has no runs to fall back to,
// in which case the zero Attributes and a nil oracle are returned).
func runAt(line glyph.GlyphString, i int) (attrstring.Attributes, font.Oracle) {
	for _, r := range line.Runs {
		if i >= r.Start && i < r.End {
			return r.Attributes, r.Font
		}
	}
	if len(line.Runs) > 0 {
		last := line.Runs[len(line.Runs)-1]
		return last.Attributes, last.Font
	}
	return attrstring.Attributes{}, nil
}

func advanceOf(r glyph.GlyphRun) float64 {
	w := 0.0
	for _, p := range r.Positions {
		w += p.XAdvance
	}
	return w
}

func clampIndex(i, total int) int {
	if i < 0 {
		return 0
	}
	if i >= total {
		return total - 1
	}
	return i
}

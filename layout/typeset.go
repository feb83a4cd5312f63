package layout

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
	"github.com/inkwell/richtext/linebreak"
)

// typesetter walks the container/column list in document order, handing
// each paragraph's lines to whichever column currently has room and
// spilling into the next column or container when one fills up (§4.11).
//
// Adapted from: skia/paragraph/paragraph_impl_layout.go's per-line
// column-advance loop, generalized from Skia's single container to a
// caller-supplied container list.
type typesetter struct {
	containers []*Container
	ci, coli   int
	columns    []geom.Rect
	colY       float64
}

func newTypesetter(containers []*Container) *typesetter {
	t := &typesetter{containers: containers}
	t.resetColumns()
	return t
}

func (t *typesetter) resetColumns() {
	if t.ci >= len(t.containers) {
		return
	}
	t.columns = t.containers[t.ci].columnRects()
	if len(t.columns) > 0 {
		t.colY = t.columns[0].Y
	}
}

func (t *typesetter) done() bool { return t.ci >= len(t.containers) }

func (t *typesetter) container() *Container { return t.containers[t.ci] }

func (t *typesetter) column() geom.Rect { return t.columns[t.coli] }

// advanceColumn moves to the next column, or the next container's first
// column when the current container's columns are exhausted. Reports false
// when there is no container left (§7 Overflow: the caller stops placing
// content, silently, rather than erroring).
func (t *typesetter) advanceColumn() bool {
	t.coli++
	if t.coli >= len(t.columns) {
		t.ci++
		t.coli = 0
		if t.done() {
			return false
		}
		t.resetColumns()
		return true
	}
	t.colY = t.columns[t.coli].Y
	return true
}

// layoutParagraph drains gs (one paragraph's shaped text) line by line into
// the typesetter's current column, spilling across columns/containers as
// needed, and appends the resulting Block(s) to whichever container(s)
// ended up holding its lines (§4.11 steps 2-5).
func (t *typesetter) layoutParagraph(gs glyph.GlyphString, candidates []linebreak.Candidate, style attrstring.ParagraphStyle, engines Engines, ellipsis string) {
	total := gs.Length()
	if total == 0 {
		return
	}

	naturalHeight := gs.Height()
	lineHeight := naturalHeight
	if style.Strut.Enabled {
		strutHeight := style.Strut.FontSize * style.Strut.Height
		if style.Strut.ForceApply || strutHeight > lineHeight {
			lineHeight = strutHeight
		}
	}

	// surplus is the extra leading strut adds over the glyphs' own metrics,
	// split evenly above and below the text (§D.1/§D.2); HeightBehavior
	// suppresses one half or the other on the paragraph's first/last line.
	surplus := lineHeight - naturalHeight
	if surplus < 0 {
		surplus = 0
	}

	block := Block{Style: style}
	pos := 0
	lineCount := 0
	firstLine := true

	for pos < total {
		if !style.UnlimitedLines() && lineCount >= style.MaxLines {
			break
		}
		if t.done() {
			return
		}
		col := t.column()
		if t.colY >= col.MaxY() {
			cur := t.container()
			if len(block.Fragments) > 0 {
				cur.Blocks = append(cur.Blocks, block)
				block = Block{Style: style}
			}
			if !t.advanceColumn() {
				markTailTruncated(cur, pos < total)
				return
			}
			continue
		}

		lineRect := geom.NewRect(col.X+style.MarginLeft, t.colY, col.Width-style.MarginLeft-style.MarginRight, lineHeight)
		if firstLine {
			lineRect.X += style.Indent
			lineRect.Width -= style.Indent
			if style.HeightBehavior&attrstring.HeightBehaviorDisableFirstAscent != 0 {
				lineRect.Y += surplus / 2
				lineRect.Height -= surplus / 2
			}
		}

		// budget is the line-count cap passed to the break engine: when
		// exactly one allowed line remains, the engine is required to dump
		// every remaining glyph onto it (§4.7: "if maxLines is reached,
		// remaining content is placed on the last line and flagged for
		// truncation"), which is why isCapped below always passes
		// isTruncated=true to FinalizeLine regardless of whether that dump
		// actually overflows lineRect — C9 itself is a no-op when it fits.
		budget := 0
		isCapped := false
		if !style.UnlimitedLines() {
			budget = style.MaxLines - lineCount
			isCapped = budget == 1
		}

		remaining := gs.Slice(pos, total)
		localCandidates := shiftCandidates(candidates, pos)
		lines := engines.LineBreak(remaining, localCandidates, lineRect.Width, budget)
		if len(lines) == 0 {
			break
		}
		lineGS := lines[0]
		pos += lineGS.Length()
		lineCount++

		isLast := pos >= total
		if isLast && style.HeightBehavior&attrstring.HeightBehaviorDisableLastDescent != 0 {
			lineRect.Height -= surplus / 2
		}

		fragment := FinalizeLine(lineGS, style, lineRect, isLast, isCapped, engines, ellipsis)
		block.Fragments = append(block.Fragments, fragment)
		t.colY += lineRect.Height + style.LineSpacing
		firstLine = false

		if isCapped {
			break
		}
	}

	if len(block.Fragments) > 0 {
		t.container().Blocks = append(t.container().Blocks, block)
	}
}

// markTailTruncated flags the last fragment of the last block placed in
// container as truncated, used when the container list is exhausted with
// paragraph text still unplaced (§7 Overflow). It does not re-run C9's
// ellipsis shaping — only the maxLines path (handled directly in
// layoutParagraph, before content is dropped) gets a shaped ellipsis; this
// marks the struct-level fact that content beyond this line didn't fit.
func markTailTruncated(container *Container, hasUnplacedTail bool) {
	if !hasUnplacedTail || len(container.Blocks) == 0 {
		return
	}
	last := &container.Blocks[len(container.Blocks)-1]
	if n := len(last.Fragments); n > 0 {
		last.Fragments[n-1].Truncated = true
	}
}

func shiftCandidates(candidates []linebreak.Candidate, pos int) []linebreak.Candidate {
	var out []linebreak.Candidate
	for _, c := range candidates {
		if c.GlyphPos < pos {
			continue
		}
		out = append(out, linebreak.Candidate{
			GlyphPos:  c.GlyphPos - pos,
			Penalty:   c.Penalty,
			Mandatory: c.Mandatory,
			Flagged:   c.Flagged,
		})
	}
	return out
}

func offsetRuns(runs []attrstring.Run, delta int) []attrstring.Run {
	out := make([]attrstring.Run, len(runs))
	for i, r := range runs {
		out[i] = attrstring.Run{Start: r.Start + delta, End: r.End + delta, Attributes: r.Attributes}
	}
	return out
}

// Package glyph implements C6: shaping each run through a font.Oracle,
// reconciling the resulting many-to-many character<->glyph mapping, and
// resolving attachment widths and y-offsets.
//
// Adapted from: skia/paragraph/run.go (Run's glyph/position/clusterIndexes
// fields, the shape this package's GlyphRun generalizes) and
// skia/paragraph/one_line_shaper.go (per-block shape-then-resolve flow).
package glyph

import (
	"unicode"
	"unicode/utf8"

	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/font"
	"github.com/inkwell/richtext/rterr"
)

// GlyphRun is a shaped run in glyph-space (§3). Start/End are glyph
// indices into the owning GlyphString; StringIndices[i] is the character
// offset (relative to the run's source substring) that produced glyph i;
// GlyphIndices[c] is the glyph offset for character c, built by the index
// reconciliation in Reconcile.
type GlyphRun struct {
	Start, End    int
	Attributes    attrstring.Attributes
	Glyphs        []font.Glyph
	Positions     []font.Position
	StringIndices []int
	GlyphIndices  []int

	// IsWhitespace[i] records whether glyph i's source character is
	// Unicode whitespace, computed once at shape time (§4.12 needs this
	// for trimming and hanging-punctuation). Mirrors the teacher's
	// Cluster.isWhitespaceBreak flag (skia/paragraph/cluster.go).
	IsWhitespace []bool

	// SourceRune[i] is the rune glyph i was shaped from, used by line
	// finalization to classify hanging punctuation (§4.12).
	SourceRune []rune

	// Font is the oracle the run was shaped with; needed downstream for
	// attachment/ellipsis glyph lookup and unitsPerEm-scaled metrics.
	Font font.Oracle
}

// Height returns the run's line-box contribution: (ascent + descent) in
// font units, scaled by fontSize/unitsPerEm, per §3's "height (max of run
// heights derived from font metrics x fontSize / unitsPerEm)". Falls back
// to the run's fontSize when no oracle is attached (e.g. in unit tests
// that construct a GlyphRun directly).
func (r GlyphRun) Height() float64 {
	if r.Font == nil || r.Font.UnitsPerEm() == 0 {
		return r.Attributes.FontSize
	}
	scale := r.Attributes.FontSize / r.Font.UnitsPerEm()
	return (r.Font.Ascent() + r.Font.Descent()) * scale
}

// GlyphString is an ordered sequence of GlyphRuns sharing the underlying
// string (§3).
type GlyphString struct {
	Runs []GlyphRun
}

// Length returns the total glyph count across all runs.
func (g GlyphString) Length() int {
	n := 0
	for _, r := range g.Runs {
		n += len(r.Glyphs)
	}
	return n
}

// Slice extracts the glyph-space range [start, end) as an independent
// GlyphString, renumbering run Start/End relative to the new slice. Used by
// C7 to materialize each candidate line as its own GlyphString.
func (g GlyphString) Slice(start, end int) GlyphString {
	var out GlyphString
	pos := 0
	for _, r := range g.Runs {
		runLen := len(r.Glyphs)
		runStart, runEnd := r.Start, r.Start+runLen
		lo, hi := max(start, runStart), min(end, runEnd)
		if lo >= hi {
			continue
		}
		off := lo - runStart
		n := hi - lo
		sub := GlyphRun{
			Start:      pos,
			End:        pos + n,
			Attributes: r.Attributes,
			Glyphs:     append([]font.Glyph(nil), r.Glyphs[off:off+n]...),
			Positions:  append([]font.Position(nil), r.Positions[off:off+n]...),
			Font:       r.Font,
		}
		if len(r.StringIndices) >= off+n {
			sub.StringIndices = append([]int(nil), r.StringIndices[off:off+n]...)
		}
		if len(r.IsWhitespace) >= off+n {
			sub.IsWhitespace = append([]bool(nil), r.IsWhitespace[off:off+n]...)
		}
		if len(r.SourceRune) >= off+n {
			sub.SourceRune = append([]rune(nil), r.SourceRune[off:off+n]...)
		}
		out.Runs = append(out.Runs, sub)
		pos += n
	}
	return out
}

// AdvanceWidth returns the sum of xAdvance across every glyph in the string.
func (g GlyphString) AdvanceWidth() float64 {
	w := 0.0
	for _, r := range g.Runs {
		for _, p := range r.Positions {
			w += p.XAdvance
		}
	}
	return w
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Height returns the max of each run's Height.
func (g GlyphString) Height() float64 {
	h := 0.0
	for _, r := range g.Runs {
		if rh := r.Height(); rh > h {
			h = rh
		}
	}
	return h
}

const objectReplacementChar = '￼'

// Generate implements C6's top-level contract: for each flattened run
// (character range), invoke font.Layout(substring, features, script) and
// assemble the GlyphString, reconciling indices, then resolving attachment
// widths and y-offsets in the fixed order the spec mandates (§5: attachments
// before y-offset).
func Generate(s string, runs []attrstring.Run, oracle func(attrstring.FontHandle) font.Oracle) (GlyphString, error) {
	var gs GlyphString
	for _, r := range runs {
		substr := s[r.Start:r.End]
		ora := oracle(r.Attributes.Font)
		if ora == nil {
			return GlyphString{}, rterr.NewRange(rterr.MissingFont,
				"no font oracle registered for run's font handle", r.Start, r.End)
		}

		result, err := ora.Layout(substr, r.Attributes.Features, r.Attributes.Script)
		if err != nil {
			return GlyphString{}, rterr.NewRange(rterr.ShapingFailed, err.Error(), r.Start, r.End)
		}
		if len(result.Positions) != len(result.Glyphs) || len(result.StringIndices) != len(result.Glyphs) {
			return GlyphString{}, rterr.NewRange(rterr.ShapingFailed,
				"font oracle returned mismatched glyph, position, and string-index counts", r.Start, r.End)
		}
		for _, si := range result.StringIndices {
			if si < 0 || si >= len(substr) {
				return GlyphString{}, rterr.NewRange(rterr.ShapingFailed,
					"font oracle returned a string index outside the run", r.Start, r.End)
			}
		}

		glyphIndices := Reconcile(result.StringIndices, len(substr))
		run := GlyphRun{
			Start:         0,
			End:           len(result.Glyphs),
			Attributes:    r.Attributes,
			Glyphs:        result.Glyphs,
			Positions:     result.Positions,
			StringIndices: result.StringIndices,
			GlyphIndices:  glyphIndices,
			IsWhitespace:  glyphWhitespaceFlags(result.StringIndices, substr),
			SourceRune:    glyphSourceRunes(result.StringIndices, substr),
			Font:          ora,
		}
		resolveAttachment(&run, r.Attributes)
		resolveYOffset(&run, r.Attributes, ora)
		resolveSpacing(&run, r.Attributes, substr)
		gs.Runs = append(gs.Runs, run)
	}
	renumber(&gs)
	return gs, nil
}

// renumber assigns contiguous glyph-space Start/End across runs in document
// order (§4.6: "allocate glyph indices contiguously across runs").
func renumber(gs *GlyphString) {
	pos := 0
	for i := range gs.Runs {
		n := len(gs.Runs[i].Glyphs)
		gs.Runs[i].Start = pos
		gs.Runs[i].End = pos + n
		pos += n
	}
}

// Reconcile builds glyphIndices[0..n) from stringIndices by the three-pass
// algorithm in §4.6: nearest-following defined value, back-filled from the
// tail, then forward-filled from the head. Handles ligatures (one glyph,
// several characters) and decomposition (one character, several glyphs)
// alike, and is always total and monotone non-decreasing over [0, n).
func Reconcile(stringIndices []int, n int) []int {
	out := make([]int, n)
	undefined := make([]bool, n)
	for i := range out {
		out[i] = -1
		undefined[i] = true
	}

	// Pass 1: glyphIndices[i] = min{ j : stringIndices[j] >= i }.
	j := 0
	for i := 0; i < n; i++ {
		for j < len(stringIndices) && stringIndices[j] < i {
			j++
		}
		if j < len(stringIndices) {
			out[i] = j
			undefined[i] = false
		}
	}

	// Pass 2: back-fill undefined tail values with the last defined value,
	// found by scanning right-to-left.
	last := -1
	for i := n - 1; i >= 0; i-- {
		if !undefined[i] {
			last = out[i]
			break
		}
	}
	if last != -1 {
		for i := n - 1; i >= 0 && undefined[i]; i-- {
			out[i] = last
			undefined[i] = false
		}
	}

	// Pass 3: forward-fill any still-undefined head, left-to-right.
	first := -1
	for i := 0; i < n; i++ {
		if !undefined[i] {
			first = out[i]
			break
		}
	}
	if first == -1 {
		first = 0
	}
	for i := 0; i < n; i++ {
		if undefined[i] {
			out[i] = first
		}
	}
	return out
}

// glyphWhitespaceFlags reports, for each glyph, whether its source
// character (per stringIndices) is Unicode whitespace.
func glyphWhitespaceFlags(stringIndices []int, substr string) []bool {
	if len(stringIndices) == 0 {
		return nil
	}
	flags := make([]bool, len(stringIndices))
	for i, charIdx := range stringIndices {
		if charIdx >= 0 && charIdx < len(substr) {
			r, _ := utf8.DecodeRuneInString(substr[charIdx:])
			flags[i] = unicode.IsSpace(r)
		}
	}
	return flags
}

// glyphSourceRunes reports, for each glyph, the rune at its source
// character offset (per stringIndices).
func glyphSourceRunes(stringIndices []int, substr string) []rune {
	if len(stringIndices) == 0 {
		return nil
	}
	out := make([]rune, len(stringIndices))
	for i, charIdx := range stringIndices {
		if charIdx >= 0 && charIdx < len(substr) {
			out[i], _ = utf8.DecodeRuneInString(substr[charIdx:])
		}
	}
	return out
}

// resolveAttachment overwrites the xAdvance of any glyph matching the
// font's glyph for U+FFFC with the run's attachment width, and positions
// it vertically per the attachment's Alignment plus any caller-supplied
// XOffset/YOffset nudge (§4.6, SPEC_FULL §D.3).
func resolveAttachment(run *GlyphRun, attrs attrstring.Attributes) {
	if attrs.Attachment == nil || run.Font == nil {
		return
	}
	a := attrs.Attachment
	placeholder := run.Font.GlyphForCodePoint(objectReplacementChar)
	yOffset := placeholderYOffset(run.Font, attrs.FontSize, *a) + a.YOffset
	for i, g := range run.Glyphs {
		if g.ID == placeholder.ID {
			run.Positions[i].XAdvance = a.Width
			run.Positions[i].XOffset += a.XOffset
			run.Positions[i].YOffset += yOffset
		}
	}
}

// placeholderYOffset computes the baseline-relative vertical offset (§3's
// sign convention: positive moves down, matching resolveYOffset and
// decorate.ForLine's baselineY+position) of the top of an attachment's box
// of height a.Height, per its AttachmentAlignment (SPEC_FULL §D.3).
//
// Adapted from: skia/paragraph/placeholder.go's PlaceholderAlignment,
// generalized from Skia's line-metrics-object into this package's plain
// ascent/descent scalars.
func placeholderYOffset(ora font.Oracle, fontSize float64, a attrstring.Attachment) float64 {
	scale := fontSize / ora.UnitsPerEm()
	ascent := ora.Ascent() * scale
	descent := ora.Descent() * scale
	switch a.Alignment {
	case attrstring.AttachmentAlignAboveBaseline:
		// Clears the descent region entirely, not just the baseline.
		return -a.Height - descent
	case attrstring.AttachmentAlignBelowBaseline:
		return descent
	case attrstring.AttachmentAlignTop:
		return -ascent
	case attrstring.AttachmentAlignBottom:
		return descent - a.Height
	case attrstring.AttachmentAlignMiddle:
		return (descent-ascent)/2 - a.Height/2
	default: // AttachmentAlignBaseline: bottom of the box rests on the baseline.
		return -a.Height
	}
}

// cursiveScripts lists the ISO 15924 tags whose glyphs glue together
// (Arabic-family joining scripts), where letter-spacing must not be
// applied since it would break the visual joins.
//
// Adapted from: skia/paragraph/run.go Run.IsCursiveScript.
var cursiveScripts = map[string]bool{
	"Arab": true, "Rohg": true, "Mand": true, "Mong": true,
	"Nkoo": true, "Phag": true, "Syrc": true,
}

// resolveSpacing adds per-glyph characterSpacing (skipped for marks and for
// cursive scripts, which glue glyphs together) and per-whitespace-glyph
// wordSpacing to xAdvance, keyed by the source character each glyph maps to.
func resolveSpacing(run *GlyphRun, attrs attrstring.Attributes, substr string) {
	if attrs.CharacterSpacing == 0 && attrs.WordSpacing == 0 {
		return
	}
	cursive := cursiveScripts[attrs.Script]
	for i := range run.Positions {
		if attrs.CharacterSpacing != 0 && !cursive && !run.Glyphs[i].IsMark {
			run.Positions[i].XAdvance += attrs.CharacterSpacing
		}
		if attrs.WordSpacing != 0 && i < len(run.StringIndices) {
			if c := run.StringIndices[i]; c >= 0 && c < len(substr) {
				if r, _ := utf8.DecodeRuneInString(substr[c:]); unicode.IsSpace(r) {
					run.Positions[i].XAdvance += attrs.WordSpacing
				}
			}
		}
	}
}

// resolveYOffset adds yOffset x unitsPerEm to every glyph's y position when
// the run's attributes specify a nonzero yOffset (§4.6).
func resolveYOffset(run *GlyphRun, attrs attrstring.Attributes, ora font.Oracle) {
	if attrs.YOffset == 0 || ora == nil {
		return
	}
	delta := attrs.YOffset * ora.UnitsPerEm()
	for i := range run.Positions {
		run.Positions[i].YOffset += delta
	}
}

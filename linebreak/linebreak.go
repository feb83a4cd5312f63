// Package linebreak implements C7: choosing paragraph break points over a
// shaped GlyphString given variable-width glyphs and a set of candidate
// break opportunities (whitespace boundaries, syllable boundaries, forced
// paragraph breaks).
//
// Adapted from: skia/paragraph/text_wrapper.go (the per-line greedy
// advance-and-trim walk) combined with the box/glue/penalty badness model
// in other_examples/tdewolff-canvas text-linebreak.go (Item, DemeritsLine,
// DemeritsFlagged, HyphenPenalty) — generalized into a single per-break
// badness score evaluated greedily per line rather than that file's global
// dynamic-programming optimum, since the core layout call is required to
// be single-threaded and synchronous with a fixed, bounded-size window per
// line (§5).
package linebreak

import (
	"math"

	"github.com/inkwell/richtext/glyph"
)

// Candidate is one legal place to end a line, expressed in glyph-space
// coordinates: GlyphPos is the index of the first glyph of the *next*
// line, i.e. the break falls between glyph GlyphPos-1 and GlyphPos.
type Candidate struct {
	GlyphPos  int
	Penalty   float64
	Mandatory bool // forced break (paragraph-terminal \n)
	Flagged   bool // ends in a hyphen; consecutive flagged breaks cost extra
}

// Demerit weights, named after and valued like tdewolff-canvas's
// DemeritsFlagged/HyphenPenalty: this package does not need DemeritsLine or
// DemeritsFitness since it does not compare alternate total-line-count
// solutions, only candidates within one line.
const (
	flaggedDemerit = 100.0
)

// SuggestLineBreak implements the C7 contract: `suggestLineBreak(glyphString,
// availableWidth, paragraphStyle.maxLines) -> ordered list of GlyphString
// lines` whose concatenation equals the input. candidates must be sorted by
// GlyphPos ascending and need not include a trailing candidate at
// gs.Length(); one is added implicitly.
//
// Required properties (§4.7): (a) the union of emitted lines is the input;
// (b) no non-whitespace glyph straddles a break — guaranteed because every
// Candidate the caller supplies already falls on a legal boundary; (c) when
// a single token exceeds availableWidth, it gets its own overfull line
// rather than vanishing, handled by the "no candidate fits" fallback below.
func SuggestLineBreak(gs glyph.GlyphString, candidates []Candidate, availableWidth float64, maxLines int) []glyph.GlyphString {
	total := gs.Length()
	if total == 0 {
		return nil
	}
	prefix := prefixAdvances(gs)
	ends := withTerminalCandidate(candidates, total)

	var lines []glyph.GlyphString
	pos := 0
	lastFlagged := false
	for pos < total {
		if maxLines > 0 && len(lines) == maxLines-1 {
			lines = append(lines, gs.Slice(pos, total))
			break
		}

		idx, c := bestBreak(ends, pos, prefix, availableWidth, lastFlagged)
		lines = append(lines, gs.Slice(pos, c.GlyphPos))
		lastFlagged = c.Flagged
		pos = c.GlyphPos
		ends = ends[idx+1:]
	}
	return lines
}

// bestBreak scans candidates after pos (in order) and returns the one with
// the lowest badness among those that still fit, stopping at the first
// break past availableWidth once a fitting candidate has been seen. If no
// candidate fits at all, the first candidate past pos is used regardless —
// an overfull line rather than a vanished glyph (§4.7 property c).
func bestBreak(candidates []Candidate, pos int, prefix []float64, availableWidth float64, lastFlagged bool) (int, Candidate) {
	best := -1
	bestBadness := math.Inf(1)
	for i, c := range candidates {
		if c.GlyphPos <= pos {
			continue
		}
		width := prefix[c.GlyphPos] - prefix[pos]
		overflows := width > availableWidth

		if overflows && best != -1 {
			break
		}

		gap := availableWidth - width
		badness := gap * gap
		badness += c.Penalty
		if c.Flagged && lastFlagged {
			badness += flaggedDemerit
		}

		if badness < bestBadness {
			bestBadness = badness
			best = i
		}
		if c.Mandatory {
			return i, c
		}
		if overflows {
			break
		}
	}
	if best == -1 {
		// Nothing fit (or no candidates remained): take the very next
		// candidate so the line is overfull but the content is never lost.
		for i, c := range candidates {
			if c.GlyphPos > pos {
				return i, c
			}
		}
	}
	return best, candidates[best]
}

// withTerminalCandidate ensures the candidate list ends exactly at total,
// so the final line is always reachable even if the caller's candidates
// stop short (e.g. a trailing word with no trailing whitespace).
func withTerminalCandidate(candidates []Candidate, total int) []Candidate {
	if len(candidates) > 0 && candidates[len(candidates)-1].GlyphPos == total {
		return candidates
	}
	return append(append([]Candidate(nil), candidates...), Candidate{GlyphPos: total, Mandatory: true})
}

func prefixAdvances(gs glyph.GlyphString) []float64 {
	prefix := make([]float64, gs.Length()+1)
	i := 1
	for _, r := range gs.Runs {
		for _, p := range r.Positions {
			prefix[i] = prefix[i-1] + p.XAdvance
			i++
		}
	}
	return prefix
}

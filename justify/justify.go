// Package justify implements C8: redistributing horizontal slack across a
// line using a prioritized stretch/shrink model (KASHIDA < WHITESPACE <
// LETTER < NULL).
//
// The priority/factor model itself has no teacher analogue — Skia's own
// justification in skia/paragraph/text_wrapper.go works by inserting
// "ghost" glue glyphs at whitespace rather than assigning per-glyph
// before/after factors — so this package is new, but it is written in the
// teacher's idiom: mutate positions in place, plain structs, no
// allocations beyond the per-glyph factor slice.
package justify

import (
	"math"

	"github.com/inkwell/richtext/glyph"
)

// Priority orders glyph classes for justification (§4.8), low to high.
type Priority int

const (
	Kashida Priority = iota
	Whitespace
	Letter
	Null
)

// Factor is a glyph's stretch/shrink budget (§4.8).
type Factor struct {
	Before        float64
	After         float64
	Priority      Priority
	Unconstrained bool
}

// Direction is the justification direction for a line: grow to fill extra
// space, or shrink to remove overflow.
type Direction int

const (
	Grow Direction = iota
	Shrink
)

const (
	whitespaceGrow = 0.5
	letterGrow     = 37.0 / 256.0
	letterShrink   = -11.0 / 256.0
)

// DefaultFactor returns the factor table entry for a non-mark glyph (§4.8's
// defaults: whitespace +-0.5/+-0.5 at WHITESPACE; letters +37/256 grow,
// -11/256 shrink at LETTER). Mark handling is layered on top by BuildFactors.
func DefaultFactor(isWhitespace bool) Factor {
	if isWhitespace {
		return Factor{Before: whitespaceGrow, After: whitespaceGrow, Priority: Whitespace}
	}
	return Factor{Before: letterGrow, After: letterGrow, Priority: Letter}
}

// BuildFactors assigns a Factor to every glyph in gs using isWhitespace to
// classify each glyph, applies the boundary rule (before=0 at the first
// glyph, after=0 at the last), and the mark rule: a mark glyph inherits the
// previous factor's Priority/Unconstrained with its own Before zeroed and
// the previous glyph's After zeroed, since marks glue to their base.
func BuildFactors(gs glyph.GlyphString, isWhitespace func(glyphIdx int) bool) []Factor {
	n := gs.Length()
	if n == 0 {
		return nil
	}
	factors := make([]Factor, n)
	i := 0
	for _, r := range gs.Runs {
		for gi := range r.Glyphs {
			ws := isWhitespace != nil && isWhitespace(i)
			isMark := r.Glyphs[gi].IsMark
			f := DefaultFactor(ws)
			if isMark && i > 0 {
				prev := factors[i-1]
				f = Factor{Before: 0, After: prev.After, Priority: prev.Priority, Unconstrained: prev.Unconstrained}
				factors[i-1].After = 0
			}
			factors[i] = f
			i++
		}
	}
	factors[0].Before = 0
	factors[n-1].After = 0
	return factors
}

// Justify redistributes gap (box width minus advance width) across gs's
// glyph xAdvances per the assignment algorithm in §4.8. When gap is
// negative (overflow), factors use their shrink counterpart
// (letterShrink instead of letterGrow); whitespace shrinks symmetrically
// around its single magnitude since §4.8 only names one whitespace factor.
func Justify(gs glyph.GlyphString, gap float64, isWhitespace func(glyphIdx int) bool) {
	n := gs.Length()
	if n == 0 || gap == 0 {
		return
	}
	dir := Grow
	if gap < 0 {
		dir = Shrink
	}

	factors := buildSignedFactors(gs, isWhitespace, dir)

	sums := [4]float64{}
	for _, f := range factors {
		sums[f.Priority] += f.Before + f.After
	}

	remaining := gap
	scale := [4]float64{}
	var overdrivePriority = -1
	for p := Kashida; p <= Null; p++ {
		sum := sums[p]
		if sum == 0 {
			continue
		}
		overdrivePriority = int(p)
		if math.Abs(remaining) <= math.Abs(sum) {
			if sum != 0 {
				scale[p] = remaining / sum
			}
			remaining = 0
			break
		}
		scale[p] = 1
		remaining -= sum
		if hasUnconstrained(factors, p) {
			absorbUnconstrained(factors, p, remaining)
			remaining = 0
			break
		}
	}
	if remaining != 0 && overdrivePriority >= 0 {
		// Overdrive the highest observed priority to consume leftover slack
		// (§4.8: "only reached in extreme cases").
		if s := sums[overdrivePriority]; s != 0 {
			scale[overdrivePriority] += remaining / s
		}
		remaining = 0
	}

	applyScale(gs, factors, scale)
}

func hasUnconstrained(factors []Factor, p Priority) bool {
	for _, f := range factors {
		if f.Priority == p && f.Unconstrained {
			return true
		}
	}
	return false
}

func absorbUnconstrained(factors []Factor, p Priority, remaining float64) {
	for i := range factors {
		if factors[i].Priority == p && factors[i].Unconstrained {
			factors[i].After += remaining
			return
		}
	}
}

func buildSignedFactors(gs glyph.GlyphString, isWhitespace func(glyphIdx int) bool, dir Direction) []Factor {
	base := BuildFactors(gs, isWhitespace)
	if dir == Grow {
		return base
	}
	out := make([]Factor, len(base))
	for i, f := range base {
		shrink := f
		if f.Priority == Letter {
			shrink.Before = magnitudeForLetter(f.Before, letterShrink)
			shrink.After = magnitudeForLetter(f.After, letterShrink)
		} else {
			shrink.Before = -f.Before
			shrink.After = -f.After
		}
		out[i] = shrink
	}
	return out
}

func magnitudeForLetter(growValue, shrinkValue float64) float64 {
	if growValue == 0 {
		return 0
	}
	return shrinkValue
}

// applyScale mutates each glyph's xAdvance by f[i].after*scale[p(i)] +
// f[i+1].before*scale[p(i+1)], per §4.8.
func applyScale(gs glyph.GlyphString, factors []Factor, scale [4]float64) {
	i := 0
	for ri := range gs.Runs {
		r := &gs.Runs[ri]
		for gi := range r.Positions {
			add := factors[i].After * scale[factors[i].Priority]
			if i+1 < len(factors) {
				add += factors[i+1].Before * scale[factors[i+1].Priority]
			}
			r.Positions[gi].XAdvance += add
			i++
		}
	}
}

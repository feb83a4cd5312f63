package layout

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/glyph"
	"github.com/inkwell/richtext/linebreak"
	"github.com/inkwell/richtext/tokenize"
)

// hyphenPenalty is the badness added for breaking at a hyphenation
// opportunity rather than a plain whitespace boundary, valued like
// other_examples/a8043ddc_tdewolff-canvas__text-linebreak.go.go's
// HyphenPenalty.
const hyphenPenalty = 50.0

// charToGlyph maps a character offset (into the paragraph-local text that
// flatRuns and gs.Runs both cover) to the corresponding glyph-space index,
// via the run whose character range contains it and that run's
// GlyphIndices (§4.6). flatRuns and gs.Runs are the same length and order
// by construction: gs was produced by glyph.Generate(text, flatRuns, ...).
func charToGlyph(flatRuns []attrstring.Run, gs glyph.GlyphString, charPos int) int {
	for i, r := range flatRuns {
		if i >= len(gs.Runs) {
			break
		}
		if charPos < r.Start || charPos > r.End {
			continue
		}
		gr := gs.Runs[i]
		local := charPos - r.Start
		if local >= len(gr.GlyphIndices) {
			return gr.End
		}
		return gr.Start + gr.GlyphIndices[local]
	}
	return gs.Length()
}

// candidatesFromTokens translates tokenize.Token boundaries (character
// space) into linebreak.Candidate values (glyph space): every space token's
// end is a plain break opportunity, and every internal syllable boundary
// inside a hyphenated word is a flagged, penalized one (§4.4's "hyphenation
// syllable boundaries become flagged, penalized line-break candidates").
func candidatesFromTokens(tokens []tokenize.Token, flatRuns []attrstring.Run, gs glyph.GlyphString) []linebreak.Candidate {
	var out []linebreak.Candidate
	for _, tok := range tokens {
		if tok.IsSpace {
			out = append(out, linebreak.Candidate{GlyphPos: charToGlyph(flatRuns, gs, tok.End)})
			continue
		}
		if len(tok.Syllables) < 2 {
			continue
		}
		pos := tok.Start
		for i, syl := range tok.Syllables {
			pos += len(syl)
			if i == len(tok.Syllables)-1 {
				break
			}
			out = append(out, linebreak.Candidate{
				GlyphPos: charToGlyph(flatRuns, gs, pos),
				Penalty:  hyphenPenalty,
				Flagged:  true,
			})
		}
	}
	return out
}

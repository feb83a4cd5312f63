package layout

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/decorate"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
	"github.com/inkwell/richtext/justify"
	"github.com/inkwell/richtext/linebreak"
	"github.com/inkwell/richtext/truncate"
)

// Engines is the "inject engines" contract (§6): the line breaker,
// truncation, justification, and decoration passes are pluggable, each
// defaulting to the package implementing that component when left nil.
//
// Adapted from: the teacher's font_collection.go pattern of registering a
// caller-supplied implementation per collaborator with a built-in fallback.
type Engines struct {
	LineBreak func(gs glyph.GlyphString, candidates []linebreak.Candidate, availableWidth float64, maxLines int) []glyph.GlyphString
	Truncate  func(line glyph.GlyphString, maxWidth float64, mode attrstring.TruncationMode, ellipsis string) (glyph.GlyphString, bool)
	Justify   func(gs glyph.GlyphString, gap float64, isWhitespace func(int) bool)
	Decorate  func(gs glyph.GlyphString, rect geom.Rect, baselineY float64) []decorate.Line
}

// defaultEngines returns the built-in implementation of every engine,
// wired directly to the sibling packages (§4.7-§4.10's default behavior).
func defaultEngines() Engines {
	return Engines{
		LineBreak: linebreak.SuggestLineBreak,
		Truncate:  truncate.Truncate,
		Justify:   justify.Justify,
		Decorate:  decorate.ForLine,
	}
}

// WithDefaults fills any nil field of overrides with the built-in engine,
// implementing §6's "constructor accepts a partial override map; missing
// entries are filled by defaults."
func (overrides Engines) WithDefaults() Engines {
	out := defaultEngines()
	if overrides.LineBreak != nil {
		out.LineBreak = overrides.LineBreak
	}
	if overrides.Truncate != nil {
		out.Truncate = overrides.Truncate
	}
	if overrides.Justify != nil {
		out.Justify = overrides.Justify
	}
	if overrides.Decorate != nil {
		out.Decorate = overrides.Decorate
	}
	return out
}

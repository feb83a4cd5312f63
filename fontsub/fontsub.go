// Package fontsub implements the font-substitution half of C4: choosing a
// concrete font per character subrange from a fallback cascade when the
// caller's requested font cannot render a character.
//
// Adapted from: skia/shaper/font_mgr_iterator.go FontMgrRunIterator (the
// consume-one-char-at-a-time cascade walk), generalized from a single
// current/fallback font pair into an arbitrary ordered cascade, and from
// skia/paragraph/font_collection.go's family-cascade concept.
package fontsub

import (
	"unicode/utf8"

	"github.com/inkwell/richtext/attrstring"
)

// Cascade reports whether a font handle can render a code point, used to
// drive fallback resolution. Implementations typically wrap a Font oracle's
// glyphForCodePoint (§6).
type Cascade interface {
	CanRender(font attrstring.FontHandle, r rune) bool
}

// Resolver implements the font-substitution adapter (§4.5): for a run of
// text already assigned a requested font, it returns font-substitution runs
// covering the same range, falling back through Fonts in order wherever the
// requested font cannot render a character.
type Resolver struct {
	Cascade Cascade
	// Fonts is the fallback order consulted when the requested font can't
	// render a character: Fonts[0] is tried first, etc.
	Fonts []attrstring.FontHandle
}

// GetRuns returns font-substitution runs over s (byte offsets), given the
// font requested for the whole range. A character that the requested font
// can render stays on it; otherwise the first cascade font that can render
// it is used, and the run continues on that substitute font for as long as
// consecutive characters keep needing it.
func (r Resolver) GetRuns(s string, requested attrstring.FontHandle) []attrstring.Run {
	if len(s) == 0 {
		return nil
	}

	var runs []attrstring.Run
	start := 0
	current := requested
	pos := 0
	for pos < len(s) {
		ch, size := utf8.DecodeRuneInString(s[pos:])
		chosen := r.resolve(requested, current, ch)
		if chosen != current {
			if pos > start {
				runs = append(runs, r.run(start, pos, current))
			}
			start = pos
			current = chosen
		}
		pos += size
	}
	runs = append(runs, r.run(start, pos, current))
	return runs
}

// resolve picks the font to use for a single character: the requested font
// if it can render it, else the current run's font if it still can (keeps
// a fallback run from fragmenting one character at a time), else the first
// cascade entry that can.
func (r Resolver) resolve(requested, current attrstring.FontHandle, ch rune) attrstring.FontHandle {
	if r.Cascade == nil || r.Cascade.CanRender(requested, ch) {
		return requested
	}
	if current != requested && r.Cascade.CanRender(current, ch) {
		return current
	}
	for _, f := range r.Fonts {
		if r.Cascade.CanRender(f, ch) {
			return f
		}
	}
	return requested
}

func (r Resolver) run(start, end int, font attrstring.FontHandle) attrstring.Run {
	return attrstring.Run{
		Start: start,
		End:   end,
		Attributes: attrstring.Attributes{
			Set:  attrstring.FieldFont,
			Font: font,
		},
	}
}

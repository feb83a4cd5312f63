// Package script implements the script-itemization half of C4: it partitions
// text into runs of a single Unicode script, resolving Common/Inherited
// characters (punctuation, digits, combining marks) into the script of their
// neighbors so that e.g. a comma inside an Arabic run is itemized as Arabic.
//
// Adapted from: skia/shaper/script_iterator.go (zodimo/go-skia-support),
// generalized from a consume-style iterator into a single getRuns call per
// the Itemizer interface in SPEC_FULL §F. Per-rune script classification
// is stdlib unicode.Scripts (golang.org/x/text has no rune-to-script
// property table of its own — language.Script only parses/canonicalizes
// ISO 15924 tag strings, it does not classify runes); see DESIGN.md.
package script

import (
	"unicode"

	"github.com/inkwell/richtext/attrstring"
)

// Itemizer partitions a string into script runs (§6: "script itemizer").
// getRuns(string) -> runs covering [0, len(s)).
type Itemizer interface {
	GetRuns(s string) []attrstring.Run
}

// Default is the built-in Itemizer: Unicode-script-table lookups with
// Common/Inherited resolved to the preceding strong script; a leading run
// of them takes the first following strong script, and a string with no
// strong script at all is Latin.
type Default struct{}

// ISO15924 maps the tag names used internally to the four-letter codes the
// Attributes.Script field is populated with.
var iso15924 = map[string]string{
	"Latin": "Latn", "Greek": "Grek", "Cyrillic": "Cyrl", "Arabic": "Arab",
	"Hebrew": "Hebr", "Han": "Hani", "Hiragana": "Hira", "Katakana": "Kana",
	"Hangul": "Hang", "Thai": "Thai", "Devanagari": "Deva", "Bengali": "Beng",
	"Gurmukhi": "Guru", "Gujarati": "Gujr", "Oriya": "Orya", "Tamil": "Taml",
	"Telugu": "Telu", "Kannada": "Knda", "Malayalam": "Mlym", "Sinhala": "Sinh",
	"Myanmar": "Mymr", "Khmer": "Khmr", "Lao": "Laoo", "Tibetan": "Tibt",
	"Georgian": "Geor", "Armenian": "Armn", "Braille": "Brai",
	"Common": "Zyyy", "Inherited": "Zinh",
}

const (
	tagCommon    = "Zyyy"
	tagInherited = "Zinh"
	tagLatin     = "Latn"
)

// scriptTable pairs one unicode.Scripts range table with the ISO 15924 tag
// it maps to, precomputed once at init instead of ranging unicode.Scripts
// (an 150+ entry map) on every rune classified.
type scriptTable struct {
	tag   string
	table *unicode.RangeTable
}

var scriptTables = buildScriptTables()

func buildScriptTables() []scriptTable {
	out := make([]scriptTable, 0, len(iso15924))
	for name, table := range unicode.Scripts {
		tag, ok := iso15924[name]
		if !ok || tag == tagLatin || tag == tagCommon || tag == tagInherited {
			continue // Latin/Common/Inherited: fast paths in tagFor; untagged scripts: Common
		}
		out = append(out, scriptTable{tag: tag, table: table})
	}
	return out
}

// GetRuns implements Itemizer.
func (Default) GetRuns(s string) []attrstring.Run {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	tags := make([]string, len(runes))
	for i, r := range runes {
		tags[i] = tagFor(r)
	}
	resolveWeak(tags)

	byteOffsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		byteOffsets[i] = pos
		pos += len(string(r))
	}
	byteOffsets[len(runes)] = pos

	var runs []attrstring.Run
	start := 0
	for i := 1; i <= len(tags); i++ {
		if i == len(tags) || tags[i] != tags[start] {
			runs = append(runs, attrstring.Run{
				Start: byteOffsets[start],
				End:   byteOffsets[i],
				Attributes: attrstring.Attributes{
					Set:       attrstring.FieldScript,
					HasScript: true,
					Script:    tags[start],
				},
			})
			start = i
		}
	}
	return runs
}

// resolveWeak resolves Common/Inherited runs to the nearest strong script:
// forward pass carries the last strong script into following weak runs,
// backward pass fills any still-weak prefix from the first strong script
// after it, and anything left over (an all-weak string) becomes Latin.
//
// Mirrors computeScriptRuns's three-pass resolution in script_iterator.go.
func resolveWeak(tags []string) {
	isWeak := func(t string) bool { return t == tagCommon || t == tagInherited }

	last := tagCommon
	for i := range tags {
		if isWeak(tags[i]) {
			if !isWeak(last) {
				tags[i] = last
			}
		} else {
			last = tags[i]
		}
	}
	for i := len(tags) - 1; i >= 0; i-- {
		if isWeak(tags[i]) && i+1 < len(tags) {
			tags[i] = tags[i+1]
		}
	}
	for i := range tags {
		if isWeak(tags[i]) {
			tags[i] = tagLatin
		}
	}
}

func tagFor(r rune) string {
	if unicode.Is(unicode.Latin, r) {
		return tagLatin
	}
	if unicode.Is(unicode.Common, r) {
		return tagCommon
	}
	if unicode.Is(unicode.Inherited, r) {
		return tagInherited
	}
	for _, st := range scriptTables {
		if unicode.Is(st.table, r) {
			return st.tag
		}
	}
	return tagCommon
}

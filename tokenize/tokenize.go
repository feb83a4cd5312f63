// Package tokenize implements C5: splitting a run's substring into tokens
// (runs of one-or-more spaces as their own tokens, spaces preserved) and
// hyphenating each non-space token via an injected hyphenation oracle.
//
// Adapted from: Krispeckt-glimo/instructions/text_wrap.go
// splitWordsPreserveNBSP (the space-run tokenization policy) and
// splitGraphemes (grapheme-safe scanning via github.com/rivo/uniseg).
package tokenize

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Token is one run of the tokenizer: either a maximal run of space
// characters, or a non-space word. Start/End are byte offsets into the
// original run substring passed to Tokenize.
type Token struct {
	Start, End int
	IsSpace    bool
	// Syllables is the hyphenation oracle's ordered breakdown of the
	// token; concatenation of Syllables equals the token's text. Empty
	// for space tokens.
	Syllables []string
}

// Hyphenator is the hyphenation dictionary collaborator (§6):
// "hyphenateWord(token) -> [syllables...] with concatenation invariant."
type Hyphenator interface {
	HyphenateWord(word string) []string
}

// NoHyphenation is the default Hyphenator: it declines to suggest any
// hyphenation opportunity, returning the token unsplit. There is no
// hyphenation-dictionary library in the ecosystem this module draws from,
// so a caller that wants real hyphenation opportunities must supply one;
// this default never vanishes input (its output always satisfies the
// concatenation invariant trivially).
type NoHyphenation struct{}

// HyphenateWord implements Hyphenator.
func (NoHyphenation) HyphenateWord(word string) []string {
	if word == "" {
		return nil
	}
	return []string{word}
}

// Tokenize splits s into tokens, preserving space runs as their own
// tokens and hyphenating every non-space token via h (§4.4).
func Tokenize(s string, h Hyphenator) []Token {
	if s == "" {
		return nil
	}
	if h == nil {
		h = NoHyphenation{}
	}

	var tokens []Token
	gr := uniseg.NewGraphemes(s)
	pos := 0
	runStart := -1
	runIsSpace := false

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		tok := Token{Start: runStart, End: end, IsSpace: runIsSpace}
		if !runIsSpace {
			tok.Syllables = h.HyphenateWord(s[runStart:end])
		}
		tokens = append(tokens, tok)
		runStart = -1
	}

	for gr.Next() {
		cl := gr.Str()
		isSpace := clusterIsSpace(cl)
		if runStart >= 0 && isSpace != runIsSpace {
			flush(pos)
		}
		if runStart < 0 {
			runStart = pos
			runIsSpace = isSpace
		}
		pos += len(cl)
	}
	flush(pos)
	return tokens
}

func clusterIsSpace(cl string) bool {
	for _, r := range cl {
		return unicode.IsSpace(r)
	}
	return false
}

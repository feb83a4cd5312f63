package tokenize

import (
	"strings"
	"testing"
)

type splitHyphenator struct{}

func (splitHyphenator) HyphenateWord(word string) []string {
	if len(word) <= 2 {
		return []string{word}
	}
	mid := len(word) / 2
	return []string{word[:mid], word[mid:]}
}

func TestTokenizeSplitsOnSpaceRuns(t *testing.T) {
	toks := Tokenize("hello   world", NoHyphenation{})
	if len(toks) != 3 {
		t.Fatalf("len(toks) = %d, want 3: %+v", len(toks), toks)
	}
	if toks[0].IsSpace || toks[2].IsSpace {
		t.Error("word tokens misclassified as space")
	}
	if !toks[1].IsSpace {
		t.Error("space run misclassified as word")
	}
	if toks[1].End-toks[1].Start != 3 {
		t.Errorf("space run length = %d, want 3", toks[1].End-toks[1].Start)
	}
}

func TestTokenizeCoversFullStringAndPreservesSpaces(t *testing.T) {
	s := "  hi there  "
	toks := Tokenize(s, NoHyphenation{})
	var rebuilt strings.Builder
	for _, tok := range toks {
		rebuilt.WriteString(s[tok.Start:tok.End])
	}
	if rebuilt.String() != s {
		t.Errorf("rebuilt = %q, want %q", rebuilt.String(), s)
	}
}

func TestTokenizeSyllablesConcatenateToToken(t *testing.T) {
	toks := Tokenize("hello world", splitHyphenator{})
	for _, tok := range toks {
		if tok.IsSpace {
			continue
		}
		var joined strings.Builder
		for _, syl := range tok.Syllables {
			joined.WriteString(syl)
		}
		want := "hello world"[tok.Start:tok.End]
		if joined.String() != want {
			t.Errorf("syllables %v join to %q, want %q", tok.Syllables, joined.String(), want)
		}
	}
}

func TestTokenizeEmptyString(t *testing.T) {
	if toks := Tokenize("", NoHyphenation{}); toks != nil {
		t.Errorf("Tokenize(\"\") = %+v, want nil", toks)
	}
}

func TestNoHyphenationReturnsWholeWord(t *testing.T) {
	got := NoHyphenation{}.HyphenateWord("unsplittable")
	if len(got) != 1 || got[0] != "unsplittable" {
		t.Errorf("got %v, want [\"unsplittable\"]", got)
	}
}

package layout

import (
	"testing"

	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/decorate"
	"github.com/inkwell/richtext/font"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/glyph"
)

// fakeOracle shapes every rune to one glyph of fixed advance; mirrors the
// fakeOracle helpers in glyph/truncate/decorate's own test files.
type fakeOracle struct{ advance float64 }

func (f fakeOracle) Layout(str string, features []string, script string) (font.LayoutResult, error) {
	var out font.LayoutResult
	pos := 0
	for _, r := range str {
		out.Glyphs = append(out.Glyphs, font.Glyph{ID: uint16(r)})
		out.Positions = append(out.Positions, font.Position{XAdvance: f.advance})
		out.StringIndices = append(out.StringIndices, pos)
		pos += len(string(r))
	}
	return out, nil
}
func (f fakeOracle) GlyphForCodePoint(cp rune) font.Glyph { return font.Glyph{ID: uint16(cp)} }
func (f fakeOracle) UnitsPerEm() float64                  { return 1000 }
func (f fakeOracle) UnderlinePosition() float64           { return -100 }
func (f fakeOracle) UnderlineThickness() float64          { return 50 }
func (f fakeOracle) Ascent() float64                      { return 800 }
func (f fakeOracle) Descent() float64                     { return 200 }

func lineOf(t *testing.T, text string) glyph.GlyphString {
	t.Helper()
	ora := fakeOracle{advance: 10}
	runs := []attrstring.Run{{Start: 0, End: len(text), Attributes: attrstring.Attributes{FontSize: 10}}}
	gs, err := glyph.Generate(text, runs, func(attrstring.FontHandle) font.Oracle { return ora })
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return gs
}

func testEngines() Engines {
	return Engines{}.WithDefaults()
}

func TestFinalizeLineUsesAlignLastLineOnlyWhenLastAndNotTruncated(t *testing.T) {
	line := lineOf(t, "ab")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft, AlignLastLine: attrstring.AlignRight}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, true, false, testEngines(), "")
	// AlignRight on a 20-wide line in a 100-wide rect -> x offset of 80.
	if got := frag.Rect.X; got != 80 {
		t.Errorf("last-line rect.X = %v, want 80 (AlignLastLine applied)", got)
	}
}

func TestFinalizeLineUsesAlignWhenNotLastFragment(t *testing.T) {
	line := lineOf(t, "ab")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignRight, AlignLastLine: attrstring.AlignLeft}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, false, false, testEngines(), "")
	if got := frag.Rect.X; got != 80 {
		t.Errorf("non-last rect.X = %v, want 80 (Align applied, not AlignLastLine)", got)
	}
}

func TestFinalizeLineTruncatesWhenMaxLinesHit(t *testing.T) {
	line := lineOf(t, "abcdefgh")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft, TruncationMode: attrstring.TruncateTail}
	rect := geom.NewRect(0, 0, 50, 10)

	frag := FinalizeLine(line, style, rect, false, true, testEngines(), ".")
	if !frag.Truncated {
		t.Error("Truncated = false, want true when isTruncated and a TruncationMode is set")
	}
	if frag.AdvanceWidth() > rect.Width+0.001 {
		t.Errorf("AdvanceWidth() = %v, want <= rect width %v after truncation", frag.AdvanceWidth(), rect.Width)
	}
}

func TestFinalizeLineTrimsTrailingWhitespaceIntoOverflowRight(t *testing.T) {
	line := lineOf(t, "ab  ")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, true, false, testEngines(), "")
	if frag.OverflowRight != 20 {
		t.Errorf("OverflowRight = %v, want 20 (two trailing space glyphs at advance 10)", frag.OverflowRight)
	}
	if frag.String.Length() != 2 {
		t.Errorf("trimmed line length = %d, want 2", frag.String.Length())
	}
}

func TestFinalizeLineHangsStartPunctuationOnLeftAlign(t *testing.T) {
	line := lineOf(t, "(ab")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft, HangingPunctuation: true}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, true, false, testEngines(), "")
	if frag.OverflowLeft != 10 {
		t.Errorf("OverflowLeft = %v, want 10 (opening paren hung)", frag.OverflowLeft)
	}
	if frag.String.Length() != 2 {
		t.Errorf("line length = %d, want 2 (paren removed)", frag.String.Length())
	}
}

func TestFinalizeLineHangsEndPunctuationOnRightAlign(t *testing.T) {
	line := lineOf(t, "ab.")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignRight, HangingPunctuation: true}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, true, false, testEngines(), "")
	if frag.OverflowRight != 10 {
		t.Errorf("OverflowRight = %v, want 10 (trailing period hung)", frag.OverflowRight)
	}
}

func TestFinalizeLineDoesNotHangPunctuationWhenDisabled(t *testing.T) {
	line := lineOf(t, "(ab")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft, HangingPunctuation: false}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, true, false, testEngines(), "")
	if frag.OverflowLeft != 0 {
		t.Errorf("OverflowLeft = %v, want 0 when HangingPunctuation is false", frag.OverflowLeft)
	}
	if frag.String.Length() != 3 {
		t.Errorf("line length = %d, want 3 (nothing removed)", frag.String.Length())
	}
}

func TestFinalizeLineJustifiesOnAlignJustify(t *testing.T) {
	line := lineOf(t, "a b")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignJustify, JustificationFactor: 1}
	rect := geom.NewRect(0, 0, 100, 10)

	before := line.AdvanceWidth()
	frag := FinalizeLine(line, style, rect, false, false, testEngines(), "")
	if frag.AdvanceWidth() <= before {
		t.Errorf("AdvanceWidth() = %v, want > %v (justify should have grown the line)", frag.AdvanceWidth(), before)
	}
}

func TestFinalizeLineJustificationFactorDampensGap(t *testing.T) {
	// "a b" at advance 10/glyph is 30 wide; a 100-wide rect leaves a 70 gap.
	// At factor 1 the line should grow to fill the full rect; at factor 0.5
	// it should grow by only half that and land strictly in between.
	full := FinalizeLine(lineOf(t, "a b"), attrstring.ParagraphStyle{Align: attrstring.AlignJustify, JustificationFactor: 1}, geom.NewRect(0, 0, 100, 10), false, false, testEngines(), "")
	half := FinalizeLine(lineOf(t, "a b"), attrstring.ParagraphStyle{Align: attrstring.AlignJustify, JustificationFactor: 0.5}, geom.NewRect(0, 0, 100, 10), false, false, testEngines(), "")
	none := FinalizeLine(lineOf(t, "a b"), attrstring.ParagraphStyle{Align: attrstring.AlignJustify, JustificationFactor: 0}, geom.NewRect(0, 0, 100, 10), false, false, testEngines(), "")

	if none.AdvanceWidth() != 30 {
		t.Errorf("factor 0: AdvanceWidth() = %v, want 30 (unjustified, no grow)", none.AdvanceWidth())
	}
	if half.AdvanceWidth() <= none.AdvanceWidth() || half.AdvanceWidth() >= full.AdvanceWidth() {
		t.Errorf("factor 0.5: AdvanceWidth() = %v, want strictly between %v (factor 0) and %v (factor 1)", half.AdvanceWidth(), none.AdvanceWidth(), full.AdvanceWidth())
	}
}

func TestFinalizeLineJustifiesWhenOverflowingEvenIfNotAlignJustify(t *testing.T) {
	line := lineOf(t, "aaaaaaaaaa") // advance 100, wider than the 50-wide rect
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft, JustificationFactor: 1}
	rect := geom.NewRect(0, 0, 50, 10)

	frag := FinalizeLine(line, style, rect, false, false, testEngines(), "")
	if frag.AdvanceWidth() >= 100 {
		t.Errorf("AdvanceWidth() = %v, want shrunk below the unjustified 100 (overflow triggers justify)", frag.AdvanceWidth())
	}
}

func TestFinalizeLineExpandsRectByOverflow(t *testing.T) {
	line := lineOf(t, " ab ")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft}
	rect := geom.NewRect(10, 0, 100, 10)

	frag := FinalizeLine(line, style, rect, true, false, testEngines(), "")
	if frag.Rect.X != 0 {
		t.Errorf("finalRect.X = %v, want 0 (10 - overflowLeft 10)", frag.Rect.X)
	}
	if frag.Rect.Width != 120 {
		t.Errorf("finalRect.Width = %v, want 120 (100 + overflowLeft 10 + overflowRight 10)", frag.Rect.Width)
	}
}

func TestFinalizeLinePopulatesDecorationLines(t *testing.T) {
	ora := fakeOracle{advance: 10}
	runs := []attrstring.Run{{Start: 0, End: 2, Attributes: attrstring.Attributes{FontSize: 10, Underline: true}}}
	gs, err := glyph.Generate("ab", runs, func(attrstring.FontHandle) font.Oracle { return ora })
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft}
	rect := geom.NewRect(0, 0, 100, 10)

	frag := FinalizeLine(gs, style, rect, true, false, testEngines(), "")
	if len(frag.DecorationLines) != 1 {
		t.Fatalf("len(DecorationLines) = %d, want 1", len(frag.DecorationLines))
	}
	if frag.DecorationLines[0].Style != attrstring.DecorationSolid {
		t.Errorf("decoration Style = %v, want DecorationSolid (attribute default)", frag.DecorationLines[0].Style)
	}
}

func TestFinalizeLineEngineOverridesAreHonored(t *testing.T) {
	line := lineOf(t, "ab")
	style := attrstring.ParagraphStyle{Align: attrstring.AlignLeft}
	rect := geom.NewRect(0, 0, 100, 10)

	called := false
	engines := Engines{
		Decorate: func(gs glyph.GlyphString, rect geom.Rect, baselineY float64) []decorate.Line {
			called = true
			return nil
		},
	}.WithDefaults()

	FinalizeLine(line, style, rect, true, false, engines, "")
	if !called {
		t.Error("custom Decorate engine override was not invoked")
	}
}

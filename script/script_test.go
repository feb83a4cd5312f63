package script

import "testing"

func TestGetRunsSingleScript(t *testing.T) {
	runs := Default{}.GetRuns("hello")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1: %+v", len(runs), runs)
	}
	if runs[0].Attributes.Script != "Latn" {
		t.Errorf("Script = %q, want Latn", runs[0].Attributes.Script)
	}
	if runs[0].Start != 0 || runs[0].End != 5 {
		t.Errorf("run bounds = [%d,%d), want [0,5)", runs[0].Start, runs[0].End)
	}
}

func TestGetRunsEmptyString(t *testing.T) {
	if runs := (Default{}).GetRuns(""); runs != nil {
		t.Errorf("GetRuns(\"\") = %+v, want nil", runs)
	}
}

func TestGetRunsSplitsOnScriptChange(t *testing.T) {
	runs := Default{}.GetRuns("abcдва")
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2: %+v", len(runs), runs)
	}
	if runs[0].Attributes.Script != "Latn" {
		t.Errorf("first run script = %q, want Latn", runs[0].Attributes.Script)
	}
	if runs[1].Attributes.Script != "Cyrl" {
		t.Errorf("second run script = %q, want Cyrl", runs[1].Attributes.Script)
	}
}

func TestGetRunsCommonPunctuationJoinsNeighbor(t *testing.T) {
	// A comma between two Arabic letters should itemize as Arabic, not split
	// into its own Common run.
	runs := Default{}.GetRuns("ابجابج, ابجابج")
	for _, r := range runs {
		if r.Attributes.Script != "Arab" {
			t.Errorf("expected single Arab run covering punctuation, got %+v", runs)
			break
		}
	}
}

func TestGetRunsCoversFullRange(t *testing.T) {
	s := "hi дар ابج"
	runs := Default{}.GetRuns(s)
	if runs[0].Start != 0 {
		t.Errorf("first run does not start at 0: %+v", runs[0])
	}
	if runs[len(runs)-1].End != len(s) {
		t.Errorf("last run does not reach end of string: %+v", runs[len(runs)-1])
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].End != runs[i].Start {
			t.Errorf("runs not contiguous between %+v and %+v", runs[i-1], runs[i])
		}
	}
}

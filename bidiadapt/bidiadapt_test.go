package bidiadapt

import "testing"

func TestGetRunsEmptyString(t *testing.T) {
	runs, err := Default{}.GetRuns("", LeftToRight)
	if err != nil {
		t.Fatalf("GetRuns: %v", err)
	}
	if runs != nil {
		t.Errorf("GetRuns(\"\") = %+v, want nil", runs)
	}
}

func TestGetRunsPureLTRIsSingleLevelZero(t *testing.T) {
	runs, err := Default{}.GetRuns("hello world", LeftToRight)
	if err != nil {
		t.Fatalf("GetRuns: %v", err)
	}
	for _, r := range runs {
		if r.Attributes.BidiLevel != 0 {
			t.Errorf("run %+v has nonzero level in pure-LTR text", r)
		}
	}
}

func TestGetRunsCoversFullRange(t *testing.T) {
	s := "hello world"
	runs, err := Default{}.GetRuns(s, LeftToRight)
	if err != nil {
		t.Fatalf("GetRuns: %v", err)
	}
	if len(runs) == 0 {
		t.Fatal("expected at least one run")
	}
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

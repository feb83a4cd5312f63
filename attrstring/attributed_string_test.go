package attrstring

import "testing"

func TestNewRejectsGapInCoverage(t *testing.T) {
	_, err := New("hello", []Run{{Start: 0, End: 3, Attributes: Attributes{}}})
	if err == nil {
		t.Error("expected error for runs not covering the full string")
	}
}

func TestNewAcceptsFullCoverage(t *testing.T) {
	as, err := New("hello", []Run{
		{Start: 0, End: 2, Attributes: Attributes{Set: FieldColor, Color: "red"}},
		{Start: 2, End: 5, Attributes: Attributes{Set: FieldColor, Color: "blue"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if as.String != "hello" || len(as.Runs) != 2 {
		t.Errorf("got %+v", as)
	}
}

func TestConcat(t *testing.T) {
	as, err := Concat([]Fragment{
		{String: "foo", Attributes: Attributes{Set: FieldColor, Color: "red"}},
		{String: "bar", Attributes: Attributes{Set: FieldColor, Color: "blue"}},
	})
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}
	if as.String != "foobar" {
		t.Errorf("String = %q, want foobar", as.String)
	}
	if as.Runs[0].Start != 0 || as.Runs[0].End != 3 || as.Runs[1].Start != 3 || as.Runs[1].End != 6 {
		t.Errorf("runs = %+v", as.Runs)
	}
}

func TestSliceClipsToRequestedRange(t *testing.T) {
	as, _ := New("hello world", []Run{
		{Start: 0, End: 5, Attributes: Attributes{Set: FieldColor, Color: "red"}},
		{Start: 5, End: 11, Attributes: Attributes{Set: FieldColor, Color: "blue"}},
	})
	got := as.Slice(3, 8)
	if len(got) != 2 || got[0].Start != 3 || got[0].End != 5 || got[1].Start != 5 || got[1].End != 8 {
		t.Errorf("Slice(3,8) = %+v", got)
	}
}

func TestAttributesAtEmptyString(t *testing.T) {
	as, err := New("", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := as.AttributesAt(0); got.Set != 0 {
		t.Errorf("AttributesAt(0) on empty string = %+v, want zero value", got)
	}
}

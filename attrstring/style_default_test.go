package attrstring

import "testing"

func TestApplyDefaultsFillsEveryField(t *testing.T) {
	as, err := New("hi", []Run{{Start: 0, End: 2, Attributes: Attributes{
		Set: FieldColor, Color: "red",
	}}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := ApplyDefaults(as)
	r := out.Runs[0].Attributes
	if r.Set != fieldAll {
		t.Errorf("Set = %x, want fieldAll", r.Set)
	}
	if r.Color != "red" {
		t.Errorf("Color = %q, want red (caller-supplied value preserved)", r.Color)
	}
	if r.FontSize != 12 {
		t.Errorf("FontSize = %v, want default 12", r.FontSize)
	}
	if !r.Fill {
		t.Error("Fill = false, want default true")
	}
}

func TestApplyDefaultsUnderlineColorFallsBackToColor(t *testing.T) {
	as, _ := New("hi", []Run{{Start: 0, End: 2, Attributes: Attributes{
		Set: FieldColor, Color: "blue",
	}}})
	out := ApplyDefaults(as)
	r := out.Runs[0].Attributes
	if r.UnderlineColor != "blue" {
		t.Errorf("UnderlineColor = %q, want blue", r.UnderlineColor)
	}
	if r.StrikeColor != "blue" {
		t.Errorf("StrikeColor = %q, want blue", r.StrikeColor)
	}
}

func TestApplyDefaultsUnderlineColorFallsBackToBlack(t *testing.T) {
	as, _ := New("hi", []Run{{Start: 0, End: 2, Attributes: Attributes{}}})
	out := ApplyDefaults(as)
	r := out.Runs[0].Attributes
	if r.Color != "black" || r.UnderlineColor != "black" || r.StrikeColor != "black" {
		t.Errorf("got Color=%q UnderlineColor=%q StrikeColor=%q, want all black",
			r.Color, r.UnderlineColor, r.StrikeColor)
	}
}

func TestApplyDefaultsExplicitUnderlineColorWins(t *testing.T) {
	as, _ := New("hi", []Run{{Start: 0, End: 2, Attributes: Attributes{
		Set: FieldColor | FieldUnderlineColor, Color: "blue", UnderlineColor: "green",
	}}})
	out := ApplyDefaults(as)
	if got := out.Runs[0].Attributes.UnderlineColor; got != "green" {
		t.Errorf("UnderlineColor = %q, want green", got)
	}
}

func TestParagraphStyleOfProjectsParagraphFields(t *testing.T) {
	a := Attributes{MarginLeft: 10, MaxLines: 3, Align: AlignCenter, JustificationFactor: 0.5}
	p := ParagraphStyleOf(a)
	if p.MarginLeft != 10 || p.MaxLines != 3 || p.Align != AlignCenter || p.JustificationFactor != 0.5 {
		t.Errorf("ParagraphStyleOf(%+v) = %+v", a, p)
	}
}

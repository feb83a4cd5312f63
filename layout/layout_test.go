package layout

import (
	"testing"

	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/font"
	"github.com/inkwell/richtext/geom"
	"github.com/inkwell/richtext/rterr"
)

func wideContainer() *Container {
	return &Container{BBox: geom.NewRect(0, 0, 1000, 1000), Columns: 1}
}

func TestLayoutRejectsMissingFontResolver(t *testing.T) {
	as, err := attrstring.New("hi", []attrstring.Run{{Start: 0, End: 2}})
	if err != nil {
		t.Fatalf("attrstring.New: %v", err)
	}
	err = Layout(as, []*Container{wideContainer()}, Options{})
	rerr, ok := err.(*rterr.Error)
	if !ok || rerr.Kind != rterr.InvalidInput {
		t.Fatalf("err = %v, want an InvalidInput *rterr.Error", err)
	}
}

func TestLayoutPropagatesMissingFontFromGlyphGeneration(t *testing.T) {
	as, err := attrstring.New("hi", []attrstring.Run{{Start: 0, End: 2}})
	if err != nil {
		t.Fatalf("attrstring.New: %v", err)
	}
	opts := Options{Font: func(attrstring.FontHandle) font.Oracle { return nil }}
	err = Layout(as, []*Container{wideContainer()}, opts)
	rerr, ok := err.(*rterr.Error)
	if !ok || rerr.Kind != rterr.MissingFont {
		t.Fatalf("err = %v, want a MissingFont *rterr.Error", err)
	}
}

func TestLayoutPlacesASingleParagraphIntoOneBlock(t *testing.T) {
	as, err := attrstring.New("Hello world", []attrstring.Run{{Start: 0, End: 11, Attributes: attrstring.Attributes{Set: 0, FontSize: 10}}})
	if err != nil {
		t.Fatalf("attrstring.New: %v", err)
	}
	container := wideContainer()
	opts := Options{Font: func(attrstring.FontHandle) font.Oracle { return fakeOracle{advance: 6} }}

	if err := Layout(as, []*Container{container}, opts); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(container.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1 (single paragraph, no newline)", len(container.Blocks))
	}
	if len(container.Blocks[0].Fragments) == 0 {
		t.Fatal("block has no fragments")
	}
	if w := container.Blocks[0].Fragments[0].AdvanceWidth(); w <= 0 {
		t.Errorf("AdvanceWidth() = %v, want > 0", w)
	}
}

func TestLayoutSplitsOnNewlineIntoSeparateBlocks(t *testing.T) {
	text := "one\ntwo"
	as, err := attrstring.New(text, []attrstring.Run{{Start: 0, End: len(text), Attributes: attrstring.Attributes{FontSize: 10}}})
	if err != nil {
		t.Fatalf("attrstring.New: %v", err)
	}
	container := wideContainer()
	opts := Options{Font: func(attrstring.FontHandle) font.Oracle { return fakeOracle{advance: 6} }}

	if err := Layout(as, []*Container{container}, opts); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(container.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2 (one per paragraph)", len(container.Blocks))
	}
}

func TestLayoutStopsPlacingOnceContainersAreExhausted(t *testing.T) {
	text := "one\ntwo\nthree"
	as, err := attrstring.New(text, []attrstring.Run{{Start: 0, End: len(text), Attributes: attrstring.Attributes{FontSize: 10}}})
	if err != nil {
		t.Fatalf("attrstring.New: %v", err)
	}
	// FontSize is not in Set, so the default 12 applies: the first line
	// (12 tall) overflows this 10-tall container and nothing fits after it.
	container := &Container{BBox: geom.NewRect(0, 0, 1000, 10), Columns: 1}
	opts := Options{Font: func(attrstring.FontHandle) font.Oracle { return fakeOracle{advance: 6} }}

	if err := Layout(as, []*Container{container}, opts); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(container.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1 (only room for the first paragraph)", len(container.Blocks))
	}
}

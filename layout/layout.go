package layout

import (
	"github.com/inkwell/richtext/attrstring"
	"github.com/inkwell/richtext/bidiadapt"
	"github.com/inkwell/richtext/font"
	"github.com/inkwell/richtext/fontsub"
	"github.com/inkwell/richtext/glyph"
	"github.com/inkwell/richtext/rterr"
	"github.com/inkwell/richtext/script"
	"github.com/inkwell/richtext/tokenize"
)

// Options bundles the external collaborators (§6) and engine overrides
// Layout needs: everything the core pipeline consumes but does not itself
// implement (font resolution, script itemization, bidi, font substitution,
// hyphenation) plus the pluggable C7-C10 engines.
type Options struct {
	// Font resolves a run's requested FontHandle to the oracle that shapes
	// it (§6's Font oracle collaborator). Required; Layout returns a
	// MissingFont error through C6 if it returns nil for a handle in use.
	Font func(attrstring.FontHandle) font.Oracle

	// Hyphenator supplies syllable breakdowns for C5. Defaults to
	// tokenize.NoHyphenation (no hyphenation opportunities suggested).
	Hyphenator tokenize.Hyphenator

	// ScriptItemizer supplies per-character script runs for C4. Defaults to
	// script.Default.
	ScriptItemizer script.Itemizer

	// Bidi supplies bidi-level runs for C4. Nil disables bidi-run
	// generation entirely (every character stays at the paragraph's base
	// level implicitly, i.e. the flattener simply has no bidi source).
	Bidi          bidiadapt.Adapter
	BaseDirection bidiadapt.Direction

	// FontSub resolves per-character font substitution for C4. The zero
	// Resolver (nil Cascade, no Fonts) is a no-op: every character stays on
	// its run's requested font.
	FontSub fontsub.Resolver

	// Engines overrides C7-C10; missing entries fall back to the built-in
	// implementation (§6).
	Engines Engines

	// Ellipsis is the string C9 splices in at a truncation point. Defaults
	// to "…" (U+2026) when empty.
	Ellipsis string
}

func (o Options) withDefaults() Options {
	out := o
	if out.Hyphenator == nil {
		out.Hyphenator = tokenize.NoHyphenation{}
	}
	if out.ScriptItemizer == nil {
		out.ScriptItemizer = script.Default{}
	}
	out.Engines = out.Engines.WithDefaults()
	if out.Ellipsis == "" {
		out.Ellipsis = "…"
	}
	return out
}

// Layout implements the top-level pipeline entry point (§4, §6): apply
// style defaults, split into paragraphs, run the C4 adapters and flatten,
// shape, tokenize, build line-break candidates, and drain the result into
// containers in document order. Mutates each container's Blocks in place;
// returns a fatal error (InvalidInput/MissingFont/ShapingFailed, §7) from
// whichever stage first hits one. Overflow — more paragraphs than the
// containers have room for — is not an error: remaining paragraphs are
// silently dropped and the last placed line is marked truncated.
func Layout(as attrstring.AttributedString, containers []*Container, opts Options) error {
	if opts.Font == nil {
		return rterr.New(rterr.InvalidInput, "Options.Font must resolve at least one font oracle")
	}
	opts = opts.withDefaults()

	defaulted := attrstring.ApplyDefaults(as)
	paragraphs := attrstring.SplitParagraphs(defaulted.String)
	ts := newTypesetter(containers)

	for _, para := range paragraphs {
		if ts.done() {
			break
		}

		paraText := defaulted.String[para.Start:para.End]
		localRuns := offsetRuns(defaulted.Slice(para.Start, para.End), -para.Start)
		if len(localRuns) == 0 {
			continue
		}

		style := attrstring.ParagraphStyleOf(localRuns[0].Attributes)

		flatRuns, err := buildFlatRuns(paraText, localRuns, opts)
		if err != nil {
			return err
		}

		gs, err := glyph.Generate(paraText, flatRuns, opts.Font)
		if err != nil {
			return err
		}

		tokens := tokenize.Tokenize(paraText, opts.Hyphenator)
		candidates := candidatesFromTokens(tokens, flatRuns, gs)

		ts.layoutParagraph(gs, candidates, style, opts.Engines, opts.Ellipsis)
	}
	return nil
}

// buildFlatRuns implements C1 for one paragraph: overlay the paragraph's
// own style runs with script runs, bidi runs, and font-substitution runs
// (§4.1, §4.5). Font substitution is run per original style run (rather
// than once over the whole paragraph) since each style run may carry its
// own requested font.
func buildFlatRuns(paraText string, styleRuns []attrstring.Run, opts Options) ([]attrstring.Run, error) {
	n := len(paraText)
	sources := [][]attrstring.Run{styleRuns}

	if opts.ScriptItemizer != nil {
		sources = append(sources, opts.ScriptItemizer.GetRuns(paraText))
	}
	if opts.Bidi != nil {
		bidiRuns, err := opts.Bidi.GetRuns(paraText, opts.BaseDirection)
		if err != nil {
			return nil, rterr.New(rterr.InvalidInput, "bidi adapter: "+err.Error())
		}
		sources = append(sources, bidiRuns)
	}

	var fontRuns []attrstring.Run
	for _, r := range styleRuns {
		sub := paraText[r.Start:r.End]
		for _, sr := range opts.FontSub.GetRuns(sub, r.Attributes.Font) {
			fontRuns = append(fontRuns, attrstring.Run{
				Start:      sr.Start + r.Start,
				End:        sr.End + r.Start,
				Attributes: sr.Attributes,
			})
		}
	}
	if len(fontRuns) > 0 {
		sources = append(sources, fontRuns)
	}

	return attrstring.Flatten(n, sources...)
}

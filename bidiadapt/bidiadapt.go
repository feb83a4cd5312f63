// Package bidiadapt adapts golang.org/x/text/unicode/bidi into the run-set
// shape C1 expects (§6's "bidi algorithm proper" is an external collaborator;
// this package is the default wiring of that collaborator, not a
// reimplementation of the algorithm).
//
// Adapted from: skia/shaper/trivial_iterators.go TrivialBiDiRunIterator
// (the single-level degenerate case this package generalizes away from).
package bidiadapt

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/inkwell/richtext/attrstring"
)

// Direction is the paragraph's base writing direction.
type Direction int

const (
	// LeftToRight resolves the base direction automatically from the
	// paragraph's first strong character, defaulting to LTR.
	LeftToRight Direction = iota
	RightToLeft
	Auto
)

// Adapter produces bidi-level runs (§6: "bidiLevel (integer or null)").
type Adapter interface {
	GetRuns(s string, base Direction) ([]attrstring.Run, error)
}

// Default wraps golang.org/x/text/unicode/bidi.
type Default struct{}

// GetRuns implements Adapter. Runs are emitted over byte offsets into s,
// each carrying a single resolved embedding level in Attributes.BidiLevel.
func (Default) GetRuns(s string, base Direction) ([]attrstring.Run, error) {
	if len(s) == 0 {
		return nil, nil
	}

	var opts []bidi.Option
	switch base {
	case RightToLeft:
		opts = append(opts, bidi.DefaultDirection(bidi.RightToLeft))
	case LeftToRight:
		opts = append(opts, bidi.DefaultDirection(bidi.LeftToRight))
	case Auto:
		// bidi.Paragraph resolves the base direction automatically when no
		// DefaultDirection option is given.
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, opts...); err != nil {
		return runsAtSingleLevel(s, 0), nil
	}
	ordering, err := p.Order()
	if err != nil {
		return runsAtSingleLevel(s, 0), nil
	}

	// bidi.Ordering exposes runs as substrings in visual/logical order with
	// their own Direction, not byte offsets directly; reconstruct offsets by
	// walking the runs' String() lengths against the original string.
	var runs []attrstring.Run
	n := ordering.NumRuns()
	pos := 0
	for i := 0; i < n; i++ {
		run := ordering.Run(i)
		text := run.String()
		start, end := pos, pos+len(text)
		pos = end

		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		runs = append(runs, attrstring.Run{
			Start: start,
			End:   end,
			Attributes: attrstring.Attributes{
				Set:          attrstring.FieldBidiLevel,
				HasBidiLevel: true,
				BidiLevel:    level,
			},
		})
	}
	if len(runs) == 0 || pos != len(s) {
		return runsAtSingleLevel(s, 0), nil
	}
	return runs, nil
}

func runsAtSingleLevel(s string, level int) []attrstring.Run {
	return []attrstring.Run{{
		Start: 0,
		End:   len(s),
		Attributes: attrstring.Attributes{
			Set:          attrstring.FieldBidiLevel,
			HasBidiLevel: true,
			BidiLevel:    level,
		},
	}}
}

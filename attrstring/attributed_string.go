package attrstring

import "github.com/inkwell/richtext/rterr"

// AttributedString is a string plus a partition into style runs (spec §3).
// Immutable after construction.
type AttributedString struct {
	String string
	Runs   []Run
}

// New validates and wraps a string and its runs. Runs must be sorted,
// non-overlapping, contiguous, and cover [0, len(string)) exactly.
func New(s string, runs []Run) (AttributedString, error) {
	if !sortedContiguousCoverage(runs, len(s)) {
		return AttributedString{}, rterr.New(rterr.InvalidInput,
			"runs must be sorted, non-overlapping, and cover the full string")
	}
	out := make([]Run, len(runs))
	copy(out, runs)
	return AttributedString{String: s, Runs: out}, nil
}

// Fragment pairs a substring with the attributes that apply to it, used by
// Concat to build an AttributedString out of independently-styled pieces.
type Fragment struct {
	String     string
	Attributes Attributes
}

// Concat concatenates fragments into a single AttributedString, offsetting
// each fragment's run to its position in the combined string.
func Concat(fragments []Fragment) (AttributedString, error) {
	var sb []byte
	runs := make([]Run, 0, len(fragments))
	pos := 0
	for _, f := range fragments {
		sb = append(sb, f.String...)
		end := pos + len(f.String)
		runs = append(runs, Run{Start: pos, End: end, Attributes: f.Attributes})
		pos = end
	}
	return New(string(sb), runs)
}

// Slice returns the attribute runs intersecting [start, end), clipped to it.
func (a AttributedString) Slice(start, end int) []Run {
	var out []Run
	for _, r := range a.Runs {
		s, e := max(r.Start, start), min(r.End, end)
		if s < e {
			out = append(out, Run{Start: s, End: e, Attributes: r.Attributes})
		}
	}
	return out
}

// AttributesAt returns the attributes in effect at character offset i.
// Returns the zero Attributes if no run covers i (including every i of an
// empty string).
func (a AttributedString) AttributesAt(i int) Attributes {
	for _, r := range a.Runs {
		if r.Start <= i && i < r.End {
			return r.Attributes
		}
	}
	// A zero-length string has no runs; return the zero value.
	return Attributes{}
}

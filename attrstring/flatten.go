package attrstring

import (
	"sort"

	"github.com/inkwell/richtext/rterr"
)

// Flatten implements C1: it overlays N independent run sets (style runs,
// font-substitution runs, script runs, bidi runs, ...) over the same
// [0, n) coordinate space into a single sorted, non-overlapping, contiguous
// run set. Sources later in the argument list override earlier sources on
// attribute fields they both set (§4.1); adjacent runs with equal resulting
// attributes are merged.
//
// Adapted from: skia/paragraph/block.go (Block.Add merges adjacent ranges)
// and the StyleType-enumerated overlay semantics in skia/paragraph/text_style.go.
func Flatten(n int, sources ...[]Run) ([]Run, error) {
	if n == 0 {
		return nil, nil
	}

	boundarySet := map[int]struct{}{0: {}, n: {}}
	for _, src := range sources {
		for _, r := range src {
			if r.Start < 0 || r.End > n || r.Start > r.End {
				return nil, rterr.NewRange(rterr.InvalidInput, "run extends outside string", r.Start, r.End)
			}
			boundarySet[r.Start] = struct{}{}
			boundarySet[r.End] = struct{}{}
		}
	}
	bounds := make([]int, 0, len(boundarySet))
	for b := range boundarySet {
		bounds = append(bounds, b)
	}
	sort.Ints(bounds)

	// Per-source cursor: sources are expected sorted and non-overlapping
	// (callers own that invariant; attribute adapters in §4.5 produce runs
	// this way), so a single forward scan per source suffices.
	cursors := make([]int, len(sources))

	flat := make([]Run, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		var attrs Attributes
		for si, src := range sources {
			for cursors[si] < len(src) && src[cursors[si]].End <= start {
				cursors[si]++
			}
			if cursors[si] < len(src) {
				r := src[cursors[si]]
				if r.Start <= start && start < r.End {
					attrs = Overlay(attrs, r.Attributes)
				}
			}
		}
		flat = append(flat, Run{Start: start, End: end, Attributes: attrs})
	}
	return mergeAdjacent(flat), nil
}

func mergeAdjacent(runs []Run) []Run {
	if len(runs) == 0 {
		return runs
	}
	out := make([]Run, 0, len(runs))
	out = append(out, runs[0])
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if last.End == r.Start && last.Attributes.Equal(r.Attributes) {
			last.End = r.End
			continue
		}
		out = append(out, r)
	}
	return out
}

package prep

import (
	"slices"

	"github.com/rotblauer/gpxprep/types/track"
)

// NormalizeSegments drops empty and duplicate segments and orders the rest
// ascending by first-point timestamp.
//
// A segment whose first point has no timestamp is treated as empty: it can
// be neither deduped nor ordered, and robustness against malformed device
// logs beats failing the whole file.
//
// Dedupe is keyed on the exact first-point timestamp, first occurrence in
// source order wins. The input slice is never filtered in place; removing
// elements from a collection while walking it is how adjacent empties get
// skipped.
func (p *Prep) NormalizeSegments(segs []*track.Segment) []*track.Segment {
	keep := make([]*track.Segment, 0, len(segs))
	seen := make(map[string]bool, len(segs))

	for _, seg := range segs {
		if seg.IsEmpty() || !seg.HasKey() {
			p.report.Empty++
			continue
		}
		key := seg.KeyString()
		if seen[key] {
			p.report.Duplicates++
			continue
		}
		seen[key] = true
		keep = append(keep, seg)
	}

	// Stable: equal keys keep source order.
	slices.SortStableFunc(keep, track.SlicesSortFunc)
	return keep
}

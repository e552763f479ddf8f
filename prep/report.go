package prep

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Report tallies what the pipeline dropped or repaired in one file.
// It is a side channel only: nothing downstream reads it, and the CLI
// decides whether to show it.
type Report struct {
	// FoundSegments counts every segment extracted from the source,
	// before any filtering.
	FoundSegments int

	// Empty counts point-less segments, including segments whose first
	// point carried no timestamp.
	Empty int

	// Duplicates counts segments dropped because an earlier segment
	// already claimed their first-point timestamp.
	Duplicates int

	// DefaultedElevations counts points whose missing elevation was
	// substituted with 0.
	DefaultedElevations int

	// Skipped counts segments dropped by the minpoints threshold.
	Skipped int
}

// Summary renders the per-file report, one line per tally.
// Zero-count lines are omitted, except the threshold line, which the
// preprocessor has always printed.
func (r Report) Summary(minPoints int) []string {
	lines := []string{
		fmt.Sprintf("Found %s track segments", humanize.Comma(int64(r.FoundSegments))),
	}
	if r.Empty > 0 {
		lines = append(lines, fmt.Sprintf("Found %s empty tracks", humanize.Comma(int64(r.Empty))))
	}
	if r.Duplicates > 0 {
		lines = append(lines, fmt.Sprintf("Found %s duplicate tracks", humanize.Comma(int64(r.Duplicates))))
	}
	if r.DefaultedElevations > 0 {
		lines = append(lines, fmt.Sprintf("Defaulted %s missing elevations to 0", humanize.Comma(int64(r.DefaultedElevations))))
	}
	lines = append(lines, fmt.Sprintf("Skipped %s track segs with %d trackpoints or less",
		humanize.Comma(int64(r.Skipped)), minPoints))
	return lines
}

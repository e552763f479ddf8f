package prep

import (
	"github.com/rotblauer/gpxprep/types/track"
)

// FilterCrop applies the minpoints threshold and, when enabled, the edge
// crop. It returns the points to emit and whether the segment survives.
//
// The threshold always reads the pre-crop length: with cropping on, a
// segment must exceed MinPoints+2 so that strictly more than MinPoints
// points remain after the first and last are dropped. A 5-point segment at
// minpoints=3 is therefore dropped (5 is not greater than 5).
func (p *Prep) FilterCrop(seg *track.Segment) ([]track.Point, bool) {
	n := seg.Len()

	if !p.Config.Crop {
		if n <= p.Config.MinPoints {
			p.report.Skipped++
			return nil, false
		}
		return seg.Points, true
	}

	// Segments too short to lose both edges are simply dropped; never
	// crop the same point twice on a length-1 segment.
	if n < 2 || n <= p.Config.MinPoints+2 {
		p.report.Skipped++
		return nil, false
	}
	return seg.Points[1 : n-1], true
}

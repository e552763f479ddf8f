package prep

import (
	"github.com/rotblauer/gpxprep/types/track"
)

// NormalizePoints time-sorts a segment's points and defaults missing
// elevations to 0, counting each substitution. Points sharing a timestamp
// keep their source order.
func (p *Prep) NormalizePoints(seg *track.Segment) {
	seg.SortPoints()
	for i := range seg.Points {
		if seg.Points[i].Ele == nil {
			ele := 0.0
			seg.Points[i].Ele = &ele
			p.report.DefaultedElevations++
		}
	}
}

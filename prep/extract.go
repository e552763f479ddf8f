package prep

import (
	"github.com/rotblauer/gpxprep/types/track"
	"github.com/tkrajina/gpxgo/gpx"
)

// Extract walks the parsed document and flattens every segment under every
// track, in document order. Source track grouping is discarded here: each
// segment is a candidate to become its own top-level output track.
func (p *Prep) Extract(doc *gpx.GPX) []*track.Segment {
	var segs []*track.Segment
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			points := make([]track.Point, 0, len(seg.Points))
			for _, pt := range seg.Points {
				point := track.Point{
					Time: pt.Timestamp,
					Lat:  pt.Latitude,
					Lon:  pt.Longitude,
				}
				if pt.Elevation.NotNull() {
					ele := pt.Elevation.Value()
					point.Ele = &ele
				}
				points = append(points, point)
			}
			segs = append(segs, track.NewSegment(points))
		}
	}
	return segs
}

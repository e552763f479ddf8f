package prep

import (
	"time"

	"github.com/rotblauer/gpxprep/params"
	"github.com/rotblauer/gpxprep/types/track"
	"github.com/tkrajina/gpxgo/gpx"
)

// Build assembles the output document from the surviving segments, in the
// order they arrive. Pure assembly: every ordering and filtering decision
// has already been made upstream.
//
// Each segment becomes one track named by its first remaining point's
// timestamp; the root carries the producer metadata and a creation time
// from the injected clock.
func (p *Prep) Build(segments [][]track.Point) *gpx.GPX {
	created := p.Now().UTC().Truncate(time.Second)
	out := &gpx.GPX{
		Creator: params.GPXCreator,
		Version: params.GPXVersion,
		Time:    &created,
	}

	for _, points := range segments {
		if len(points) == 0 {
			continue
		}
		trk := gpx.GPXTrack{
			Name: points[0].Time.UTC().Format(params.GPXTimeFormat),
		}
		seg := gpx.GPXTrackSegment{
			Points: make([]gpx.GPXPoint, 0, len(points)),
		}
		for _, pt := range points {
			seg.Points = append(seg.Points, gpx.GPXPoint{
				Point: gpx.Point{
					Latitude:  pt.Lat,
					Longitude: pt.Lon,
					Elevation: *gpx.NewNullableFloat64(*pt.Ele),
				},
				Timestamp: pt.Time,
			})
		}
		trk.Segments = append(trk.Segments, seg)
		out.Tracks = append(out.Tracks, trk)
	}
	return out
}

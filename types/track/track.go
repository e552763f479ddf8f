package track

import (
	"slices"
	"time"

	"github.com/rotblauer/gpxprep/params"
)

// Point is one recorded trackpoint. Coordinates and elevation pass through
// the pipeline verbatim; no geospatial math is ever done on them.
// Ele is nil when the source point carried no elevation element.
type Point struct {
	Time time.Time
	Lat  float64
	Lon  float64
	Ele  *float64
}

// Segment is an ordered run of points as recorded by the device, plus an
// identity key fixed at extraction time.
// A segment is the atomic unit of the preprocessor: every surviving segment
// becomes its own top-level track in the output document.
type Segment struct {
	Points []Point

	// key is the timestamp of the segment's first point in source order.
	// It identifies the segment for dedupe and segment ordering, and is
	// deliberately immune to later point re-sorting and cropping.
	key time.Time
}

// NewSegment fixes the segment's key from the first point in source order.
func NewSegment(points []Point) *Segment {
	s := &Segment{Points: points}
	if len(points) > 0 {
		s.key = points[0].Time
	}
	return s
}

// IsEmpty is useful for dealing with zero-value and point-less segments.
func (s *Segment) IsEmpty() bool {
	return s == nil || len(s.Points) == 0
}

// HasKey reports whether the first source point carried a timestamp.
// A keyless segment cannot be deduped, ordered, or named.
func (s *Segment) HasKey() bool {
	return !s.key.IsZero()
}

func (s *Segment) Key() time.Time { return s.key }

// KeyString is the dedupe key: the first source point's timestamp in
// canonical form. Equal source timestamps always map to equal keys.
func (s *Segment) KeyString() string {
	return s.key.UTC().Format(params.GPXTimeFormat)
}

func (s *Segment) Len() int { return len(s.Points) }

// SortPoints orders the segment's points chronologically.
// The sort is stable: points sharing a timestamp keep their source order.
// That is a documented policy, not an accident of representation; a
// timestamp-keyed container would silently collapse such points.
func (s *Segment) SortPoints() {
	slices.SortStableFunc(s.Points, PointsSortFunc)
}

// PointsSortFunc implements the slices.SortFunc for Point slices.
func PointsSortFunc(a, b Point) int {
	return a.Time.Compare(b.Time)
}

// SlicesSortFunc implements the slices.SortFunc for Segment slices.
// Sorting is done by the extraction-time key, never by the current first
// point, so cropping and point re-sorts cannot reorder segments.
func SlicesSortFunc(a, b *Segment) int {
	return a.key.Compare(b.key)
}

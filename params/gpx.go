package params

// Producer metadata stamped on every output document.
const (
	GPXCreator = "gpxprep"
	GPXVersion = "1.0"
)

// GPXTimeFormat is the canonical timestamp layout for track names, dedupe
// keys, and the document creation time. GPX times are UTC at 1-second
// granularity.
const GPXTimeFormat = "2006-01-02T15:04:05Z"

// DefaultSuffix is appended to the input base name: track.gpx -> track_pp.gpx.
var DefaultSuffix = "_pp"

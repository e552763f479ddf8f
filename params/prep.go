package params

type PrepConfig struct {
	// MinPoints is the segment length threshold.
	// A segment survives only with strictly more than MinPoints points.
	// When cropping, the threshold is evaluated against the pre-crop length
	// as MinPoints+2, so the written track still exceeds MinPoints.
	MinPoints int

	// Crop drops the first and last point of every segment.
	// Devices tend to log spurious points while getting a fix at recording
	// start and while being pocketed at recording stop.
	Crop bool

	// Quiet silences the per-file report. Counts are still collected.
	Quiet bool
}

var DefaultPrepConfig = &PrepConfig{
	MinPoints: 3,
}

// Package prep implements the GPX normalization pipeline: flatten every
// track segment out of the source document, drop empty and duplicate
// segments, sort segments and points by time, default missing elevations,
// filter short segments (optionally cropping their edge points), and
// assemble a fresh canonical document.
//
// The source document is read-only to the pipeline; all mutation happens on
// newly built structures, so a run can be repeated any number of times.
package prep

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rotblauer/gpxprep/params"
	"github.com/rotblauer/gpxprep/types/track"
	"github.com/tkrajina/gpxgo/gpx"
)

// Prep runs the normalization pipeline with one configuration.
// It is not safe for concurrent use; the pipeline is strictly sequential.
type Prep struct {
	Config *params.PrepConfig

	// Now stamps the output document's creation time.
	// Injected so tests can fix the clock.
	Now func() time.Time

	Logger *slog.Logger

	report Report
}

func New(config *params.PrepConfig) *Prep {
	if config == nil {
		config = params.DefaultPrepConfig
	}
	return &Prep{
		Config: config,
		Now:    time.Now,
		Logger: slog.With("app", "prep"),
	}
}

// Process runs the whole pipeline over one parsed document and returns the
// freshly built output document along with the run's tallies.
func (p *Prep) Process(doc *gpx.GPX) (*gpx.GPX, Report) {
	p.report = Report{}

	segs := p.Extract(doc)
	p.report.FoundSegments = len(segs)

	candidates := p.NormalizeSegments(segs)

	emit := make([][]track.Point, 0, len(candidates))
	for _, seg := range candidates {
		p.NormalizePoints(seg)
		points, ok := p.FilterCrop(seg)
		if !ok {
			continue
		}
		emit = append(emit, points)
	}

	out := p.Build(emit)
	p.Logger.Debug("Processed document",
		"segments", p.report.FoundSegments,
		"tracks.out", len(out.Tracks),
		"empty", p.report.Empty,
		"duplicate", p.report.Duplicates,
		"skipped", p.report.Skipped,
		"elevation.defaulted", p.report.DefaultedElevations)
	return out, p.report
}

// File reads, processes, and writes one GPX file.
// It fails whole: unless the entire transform succeeds, nothing is written.
func (p *Prep) File(in, out string) (Report, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return Report{}, fmt.Errorf("read input: %w", err)
	}
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return Report{}, fmt.Errorf("parse gpx: %w", err)
	}

	res, report := p.Process(doc)

	serialized, err := res.ToXml(gpx.ToXmlParams{Version: params.GPXVersion, Indent: true})
	if err != nil {
		return report, fmt.Errorf("serialize gpx: %w", err)
	}
	if err := os.WriteFile(out, serialized, 0644); err != nil {
		return report, fmt.Errorf("write output: %w", err)
	}
	return report, nil
}

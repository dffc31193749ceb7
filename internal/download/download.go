package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"fx-data/internal/catalog"
	"fx-data/internal/model"
	"fx-data/internal/provider"
	"fx-data/internal/saver"
)

const dateLayout = "2006-01-02"

// Result is the derived summary of one completed request, held in memory for
// the final report only.
type Result struct {
	Instrument string  `json:"instrument"`
	Bars       int     `json:"bars"`
	File       string  `json:"file"`
	SizeMB     float64 `json:"size_mb"`
	FirstDate  string  `json:"first_date"`
	LastDate   string  `json:"last_date"`
}

// Runner processes catalog requests strictly in order: one fetch and one
// write at a time. The fetch is the sole blocking operation per request.
type Runner struct {
	provider provider.HistoryProvider
	saver    saver.Saver
	dataDir  string
	out      io.Writer
	progress bool
}

// NewRunner creates a Runner that writes output files under dataDir and the
// summary to stdout.
func NewRunner(p provider.HistoryProvider, s saver.Saver, dataDir string) *Runner {
	return &Runner{
		provider: p,
		saver:    s,
		dataDir:  dataDir,
		out:      os.Stdout,
		progress: true,
	}
}

// Run processes every request in catalog order and returns the successful
// results. A failing or empty request is logged and skipped; it never aborts
// the remainder of the catalog. After the loop the aggregate summary is
// printed and persisted as a run report.
func (r *Runner) Run(ctx context.Context, requests []catalog.Request) []Result {
	start := time.Now()

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.New(len(requests))
	}

	var results []Result
	for _, req := range requests {
		res, err := r.runOne(ctx, req)
		switch {
		case err != nil:
			slog.Error("download failed, skipping", "instrument", req.Instrument, "timeframe", req.Timeframe, "error", err)
		case res == nil:
			slog.Warn("no data returned", "instrument", req.Instrument, "timeframe", req.Timeframe, "range", req.StartDate+".."+req.EndDate)
		default:
			results = append(results, *res)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	elapsed := time.Since(start)

	r.printSummary(results, elapsed)
	if err := writeRunReport(r.dataDir, results); err != nil {
		slog.Warn("could not write run report", "error", err)
	}
	return results
}

// runOne performs one fetch, one transform and one write.
// Returns (nil, nil) for the empty-result non-error outcome.
func (r *Runner) runOne(ctx context.Context, req catalog.Request) (*Result, error) {
	// Day count is for progress reporting only, never for correctness.
	days := int(req.End().Sub(req.Start()).Hours()/24) + 1
	slog.Info("downloading", "instrument", req.Instrument, "timeframe", req.Timeframe, "range", req.StartDate+".."+req.EndDate, "days", days)

	bars, err := r.provider.FetchHistory(ctx, req.Instrument, req.TF(), req.Start(), req.End(), model.SideBid)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, nil
	}

	path := r.outputPath(req)
	if err := r.saver.Save(bars, path); err != nil {
		return nil, fmt.Errorf("save %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	sizeMB := round2(float64(info.Size()) / (1 << 20))

	// Observed range comes straight from the first and last element; bars are
	// assumed, not verified, ascending by timestamp.
	first := time.UnixMilli(bars[0].Timestamp).UTC().Format(dateLayout)
	last := time.UnixMilli(bars[len(bars)-1].Timestamp).UTC().Format(dateLayout)

	slog.Info("saved", "instrument", req.Instrument, "bars", len(bars), "file", path, "size_mb", sizeMB, "observed", first+".."+last)

	return &Result{
		Instrument: req.Instrument,
		Bars:       len(bars),
		File:       path,
		SizeMB:     sizeMB,
		FirstDate:  first,
		LastDate:   last,
	}, nil
}

// outputPath joins dataDir and the configured output file, swapping the
// extension when the configured saver produces a different format.
func (r *Runner) outputPath(req catalog.Request) string {
	path := filepath.Join(r.dataDir, req.OutputFile)
	ext := "." + r.saver.Extension()
	if cur := filepath.Ext(path); cur != ext {
		path = strings.TrimSuffix(path, cur) + ext
	}
	return path
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

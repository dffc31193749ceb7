package download

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// printSummary writes the human-readable end-of-run report. Not a
// machine-parseable interface; format carries no compatibility guarantee.
func (r *Runner) printSummary(results []Result, elapsed time.Duration) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "================================================")
	if len(results) == 0 {
		fmt.Fprintln(r.out, "no downloads completed")
		return
	}

	var totalBars int
	var totalMB float64
	for _, res := range results {
		totalBars += res.Bars
		totalMB += res.SizeMB
		fmt.Fprintf(r.out, "%-10s %9d bars  %8.2f MB  %s..%s  %s\n",
			res.Instrument, res.Bars, res.SizeMB, res.FirstDate, res.LastDate, res.File)
	}
	fmt.Fprintf(r.out, "total: %d bars, %.2f MB across %d files in %s\n",
		totalBars, totalMB, len(results), elapsed.Round(time.Millisecond))
}

// writeRunReport persists the run's results next to the data files.
func writeRunReport(dataDir string, results []Result) error {
	if len(results) == 0 {
		return nil
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	p := filepath.Join(dataDir, ".lastrun.json")
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return err
	}
	slog.Info("run report saved", "path", p, "results", len(results))
	return nil
}

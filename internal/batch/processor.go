// Package batch renders a catalog of builds to files with a worker pool.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"camper-renderer/internal/catalog"
	"camper-renderer/internal/export"
	"camper-renderer/internal/preview"

	"github.com/schollz/progressbar/v3"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Export    export.Options
	Workers   int
	Quiet     bool // no progress bar
	Log       *slog.Logger
}

// Result holds the outcome of rendering one entry.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
}

// Run renders all entries using a worker pool. Results are in entry order.
func Run(cfg Config, entries []catalog.Entry) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	total := len(entries)
	results := make([]Result, total)

	var bar *progressbar.ProgressBar
	if cfg.Quiet {
		bar = progressbar.DefaultSilent(int64(total), "Rendering")
	} else {
		bar = progressbar.Default(int64(total), "Rendering")
	}

	start := time.Now()

	// Worker pool
	work := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = renderEntry(cfg, entries[idx])
				if !results[idx].Success {
					cfg.Log.Warn("render failed", "name", entries[idx].Name, "error", results[idx].Error)
				}
				bar.Add(1)
			}
		}()
	}

	for i := range entries {
		work <- i
	}
	close(work)

	wg.Wait()
	bar.Finish()

	cfg.Log.Info("batch complete", "entries", total, "workers", cfg.Workers, "elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

// OutputPath returns where an entry named name is written.
func OutputPath(dir, name string, f export.Format) string {
	return filepath.Join(dir, name+f.Extension())
}

func renderEntry(cfg Config, e catalog.Entry) Result {
	format, err := export.ParseFormat(string(cfg.Export.Format))
	if err != nil {
		return Result{Name: e.Name, Error: err.Error()}
	}
	outPath := OutputPath(cfg.OutputDir, e.Name, format)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: e.Name, Path: outPath, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Name: e.Name, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	opts := cfg.Export
	opts.Format = format
	if err := export.Encode(f, preview.Render(e.Build), opts); err != nil {
		return Result{Name: e.Name, Path: outPath, Error: fmt.Sprintf("encode: %v", err)}
	}

	return Result{Name: e.Name, Path: outPath, Success: true}
}

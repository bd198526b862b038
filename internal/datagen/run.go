// Package datagen wires the generators, the CSV emitter and the run catalog
// into a single synthesis run.
package datagen

import (
	"fmt"
	"path/filepath"
	"time"

	"pkg.jsn.cam/minridegen/internal/catalog"
	"pkg.jsn.cam/minridegen/internal/emit"
	"pkg.jsn.cam/minridegen/internal/gen"
	"pkg.jsn.cam/minridegen/pkg/minride"
)

// FileResult describes one emitted CSV file.
type FileResult struct {
	Path string
	Rows int
}

// Result summarizes a completed run.
type Result struct {
	RunID string // empty when no catalog was configured
	Seed  uint64
	Files []FileResult
}

// Run generates the dataset described by cfg: drivers, then customers, then
// rides. Files are staged and only moved into place once all three are fully
// written, so a failed run leaves the output directory without a partial
// dataset.
func Run(cfg Config) (*Result, error) {
	if cfg.Drivers <= 0 || cfg.Customers <= 0 || cfg.Rides <= 0 {
		return nil, fmt.Errorf("%w: drivers=%d customers=%d rides=%d",
			minride.ErrInvalidCount, cfg.Drivers, cfg.Customers, cfg.Rides)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	progress := cfg.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	src := gen.NewSource(seed)
	counts := gen.Counts{
		Drivers:   cfg.Drivers,
		Customers: cfg.Customers,
		Rides:     cfg.Rides,
	}

	writer, err := emit.NewWriter(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	defer writer.Discard()

	startedAt := now()
	result := &Result{Seed: seed}

	for _, name := range gen.Order {
		g, err := gen.Get(name, counts)
		if err != nil {
			return nil, err
		}
		g.Init(src, now)

		rows := counts.Of(name)
		progress.FileStarted(g.FileName(), rows)
		if err := writer.WriteFile(g.FileName(), g.Header(), rows, g.Row, progress.RowWritten); err != nil {
			return nil, err
		}
		progress.FileDone(filepath.Join(cfg.OutputDir, g.FileName()))

		result.Files = append(result.Files, FileResult{
			Path: filepath.Join(cfg.OutputDir, g.FileName()),
			Rows: rows,
		})
	}

	if _, err := writer.Commit(); err != nil {
		return nil, err
	}

	if cfg.CatalogPath != "" {
		runID, err := recordRun(cfg, result, startedAt)
		if err != nil {
			return nil, err
		}
		result.RunID = runID
	}

	return result, nil
}

func recordRun(cfg Config, result *Result, startedAt time.Time) (string, error) {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return "", err
	}
	defer cat.Close()

	run := catalog.Run{
		Seed:      result.Seed,
		StartedAt: startedAt,
		Drivers:   cfg.Drivers,
		Customers: cfg.Customers,
		Rides:     cfg.Rides,
	}
	for _, f := range result.Files {
		run.Files = append(run.Files, catalog.File{Path: f.Path, Rows: f.Rows})
	}
	return cat.Record(run)
}

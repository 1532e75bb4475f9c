// Package runner drives the full export: every article directory under the
// data root becomes one parquet file plus a console summary.
package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"wikirev/internal/assembler"
	"wikirev/internal/config"
	"wikirev/internal/logger"
	"wikirev/internal/report"
	"wikirev/internal/store"
)

// Totals counts per-article outcomes of one run.
type Totals struct {
	Written int
	Skipped int
	Failed  int
}

// Runner processes article directories sequentially and independently: one
// article's failure is logged and counted but never stops the others.
type Runner struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRunner creates a new runner instance.
func NewRunner(cfg *config.Config, log *logger.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: log,
	}
}

// Run converts every article directory under the configured data root. It
// returns an error only for run-wide failures (unreadable data root,
// uncreatable output directory); per-article failures are reflected in Totals.
func (r *Runner) Run() (Totals, error) {
	var totals Totals

	if err := os.MkdirAll(r.cfg.Export.OutputDir, 0755); err != nil {
		return totals, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(r.cfg.Export.DataDir)
	if err != nil {
		return totals, fmt.Errorf("failed to read data directory: %w", err)
	}

	asm := assembler.NewAssembler(r.cfg, r.log)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		article := entry.Name()

		table, err := asm.Assemble(filepath.Join(r.cfg.Export.DataDir, article))
		if err != nil {
			r.log.Error("article failed", "article", article, "error", err)
			totals.Failed++

			continue
		}

		// No revision files, or every file failed extraction: no output
		// file, no summary.
		if table == nil {
			totals.Skipped++

			continue
		}

		outputPath := filepath.Join(r.cfg.Export.OutputDir, article+store.Extension)

		if err := store.WriteTable(outputPath, table, r.cfg.Export.IncludeText); err != nil {
			r.log.Error("article failed", "article", article, "error", err)
			totals.Failed++

			continue
		}

		report.PrintSummary(os.Stdout, article, table)
		totals.Written++
	}

	return totals, nil
}

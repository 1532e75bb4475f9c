// Package assembler turns an article's revision files into a single sorted table.
package assembler

import (
	"os"
	"path/filepath"

	"wikirev/internal/extractor"
	"wikirev/internal/logger"
	"wikirev/internal/models"
)

// Accumulator extracts records from one batch of revision files at a time.
type Accumulator struct {
	log         *logger.Logger
	includeText bool
}

// NewAccumulator creates a new accumulator instance.
func NewAccumulator(log *logger.Logger, includeText bool) *Accumulator {
	return &Accumulator{
		log:         log,
		includeText: includeText,
	}
}

// ProcessBatch reads and extracts every file in the batch, tagging each record
// with the year and month taken from its parent directories. A file that fails
// to read or parse is logged and skipped; it never aborts the batch. Files
// without a revision element are skipped silently. The returned table may be
// empty.
func (a *Accumulator) ProcessBatch(paths []string) models.RevisionTable {
	var records models.RevisionTable

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			a.log.Error("skipping unreadable revision file", "path", path, "error", err)

			continue
		}

		record, err := extractor.Extract(string(content), a.includeText)
		if err != nil {
			a.log.Error("skipping malformed revision file", "path", path, "error", err)

			continue
		}

		if record == nil {
			continue
		}

		monthDir := filepath.Dir(path)
		record.Month = filepath.Base(monthDir)
		record.Year = filepath.Base(filepath.Dir(monthDir))

		records = append(records, *record)
	}

	return records
}

// chunk splits paths into consecutive batches of at most size entries. The
// last batch may be shorter.
func chunk(paths []string, size int) [][]string {
	var batches [][]string

	for start := 0; start < len(paths); start += size {
		end := start + size
		if end > len(paths) {
			end = len(paths)
		}

		batches = append(batches, paths[start:end])
	}

	return batches
}

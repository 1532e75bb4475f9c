package assembler

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"wikirev/internal/config"
	"wikirev/internal/logger"
	"wikirev/internal/models"
)

// Assembler builds one article's revision table from its year/month directory
// tree.
type Assembler struct {
	log         *logger.Logger
	accumulator *Accumulator
	batchSize   int
	filePattern string
	progress    bool
}

// NewAssembler creates a new assembler instance.
func NewAssembler(cfg *config.Config, log *logger.Logger) *Assembler {
	return &Assembler{
		log:         log,
		accumulator: NewAccumulator(log, cfg.Export.IncludeText),
		batchSize:   cfg.Export.BatchSize,
		filePattern: cfg.Export.FilePattern,
		progress:    cfg.Logging.ShowProgress,
	}
}

// Assemble processes every revision file under articleDir and returns the
// table sorted newest-first. It returns (nil, nil) when the article has no
// revision files, or when every file failed extraction. A timestamp that fails
// to parse aborts this article with an error; sibling articles are unaffected.
func (s *Assembler) Assemble(articleDir string) (models.RevisionTable, error) {
	files, err := s.discoverFiles(articleDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, nil
	}

	batches := chunk(files, s.batchSize)
	tracker := newBatchTracker(filepath.Base(articleDir), len(batches), s.progress)

	var table models.RevisionTable

	for _, batch := range batches {
		table = append(table, s.accumulator.ProcessBatch(batch)...)
		tracker.Advance()
	}

	tracker.Done()

	if len(table) == 0 {
		return nil, nil
	}

	for i := range table {
		if err := table[i].ParseTimestamp(); err != nil {
			return nil, fmt.Errorf("article %s: %w", filepath.Base(articleDir), err)
		}
	}

	table.SortByTimestampDesc()

	return table, nil
}

// discoverFiles walks the two-level year/month layout under articleDir and
// collects every matching revision file. Non-directory entries at the year and
// month levels are ignored.
func (s *Assembler) discoverFiles(articleDir string) ([]string, error) {
	years, err := os.ReadDir(articleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read article directory: %w", err)
	}

	var files []string

	for _, year := range years {
		if !year.IsDir() {
			continue
		}

		yearDir := filepath.Join(articleDir, year.Name())

		months, err := os.ReadDir(yearDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read year directory: %w", err)
		}

		for _, month := range months {
			if !month.IsDir() {
				continue
			}

			monthDir := filepath.Join(yearDir, month.Name())

			entries, err := os.ReadDir(monthDir)
			if err != nil {
				return nil, fmt.Errorf("failed to read month directory: %w", err)
			}

			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}

				if ok, _ := path.Match(s.filePattern, entry.Name()); ok {
					files = append(files, filepath.Join(monthDir, entry.Name()))
				}
			}
		}
	}

	return files, nil
}

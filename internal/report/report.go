// Package report renders per-article summary statistics for the console.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"wikirev/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

// Stats holds the summary statistics derived from one article's table.
type Stats struct {
	Revisions     int
	Oldest        time.Time
	Newest        time.Time
	Contributors  int
	MeanTextLen   float64
	TextBytes     int
	TextsRetained bool
}

// ComputeStats derives summary statistics from an assembled table. Records
// without a username are not counted as contributors.
func ComputeStats(table models.RevisionTable) Stats {
	stats := Stats{Revisions: len(table)}
	stats.Oldest, stats.Newest = table.TimeRange()

	seen := make(map[string]bool)
	totalLen := 0

	for _, record := range table {
		if record.Username != nil {
			seen[*record.Username] = true
		}

		totalLen += record.TextLength

		if record.Text != nil {
			stats.TextsRetained = true
			stats.TextBytes += len(*record.Text)
		}
	}

	stats.Contributors = len(seen)

	if len(table) > 0 {
		stats.MeanTextLen = float64(totalLen) / float64(len(table))
	}

	return stats
}

// PrintSummary writes the summary block for one article.
func PrintSummary(w io.Writer, article string, table models.RevisionTable) {
	stats := ComputeStats(table)

	rows := [][2]string{
		{"Total revisions", fmt.Sprintf("%d", stats.Revisions)},
		{"Date range", formatRange(stats.Oldest, stats.Newest)},
		{"Unique contributors", fmt.Sprintf("%d", stats.Contributors)},
		{"Average text length", fmt.Sprintf("%.1f characters", stats.MeanTextLen)},
	}

	if stats.TextsRetained {
		memoryMb := float64(stats.TextBytes) / (1024 * 1024)
		rows = append(rows, [2]string{"Text content memory usage", fmt.Sprintf("%.1f MB", memoryMb)})
	}

	fmt.Fprintf(w, "\nSummary for %s:\n", article)

	// Align the value column on label display width.
	labelWidth := 0
	for _, row := range rows {
		if width := runewidth.StringWidth(row[0]); width > labelWidth {
			labelWidth = width
		}
	}

	for _, row := range rows {
		padding := strings.Repeat(" ", labelWidth-runewidth.StringWidth(row[0]))
		fmt.Fprintf(w, "  %s:%s  %s\n", row[0], padding, row[1])
	}
}

func formatRange(oldest, newest time.Time) string {
	if oldest.IsZero() && newest.IsZero() {
		return "-"
	}

	return fmt.Sprintf("%s to %s", oldest.Format(timeFormat), newest.Format(timeFormat))
}

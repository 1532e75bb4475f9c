package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wikirev/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestComputeStats(t *testing.T) {
	table := models.RevisionTable{
		{
			Username:   strPtr("Alice"),
			TextLength: 10,
			ParsedTime: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			Username:   strPtr("Alice"),
			TextLength: 20,
			ParsedTime: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// Anonymous revision with no resolvable contributor.
			TextLength: 30,
			ParsedTime: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	stats := ComputeStats(table)

	assert.Equal(t, 3, stats.Revisions)
	assert.Equal(t, 1, stats.Contributors)
	assert.InDelta(t, 20.0, stats.MeanTextLen, 0.001)
	assert.Equal(t, time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), stats.Oldest)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), stats.Newest)
	assert.False(t, stats.TextsRetained)
}

func TestComputeStatsRetainedText(t *testing.T) {
	table := models.RevisionTable{
		{Text: strPtr("abcd"), TextLength: 4},
		{Text: strPtr("ef"), TextLength: 2},
	}

	stats := ComputeStats(table)

	assert.True(t, stats.TextsRetained)
	assert.Equal(t, 6, stats.TextBytes)
}

func TestPrintSummary(t *testing.T) {
	table := models.RevisionTable{
		{
			Username:   strPtr("Alice"),
			TextLength: 12,
			ParsedTime: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf strings.Builder

	PrintSummary(&buf, "ArticleA", table)
	out := buf.String()

	assert.Contains(t, out, "Summary for ArticleA:")
	assert.Contains(t, out, "Total revisions:")
	assert.Contains(t, out, "2020-01-02 00:00:00 to 2020-01-02 00:00:00")
	assert.Contains(t, out, "12.0 characters")
	assert.NotContains(t, out, "memory usage")
}

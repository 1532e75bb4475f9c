package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		raw     *string
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339 with zone",
			raw:  strPtr("2020-01-02T03:04:05Z"),
			want: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name: "without zone suffix",
			raw:  strPtr("2020-01-02T03:04:05"),
			want: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name: "absent timestamp keeps zero value",
			raw:  nil,
			want: time.Time{},
		},
		{
			name:    "garbage",
			raw:     strPtr("not-a-date"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := RevisionRecord{Timestamp: tt.raw}

			err := record.ParseTimestamp()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadTimestamp)

				return
			}

			require.NoError(t, err)
			assert.True(t, record.ParsedTime.Equal(tt.want))
		})
	}
}

func TestSortByTimestampDescIsStable(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2020, 1, day, 0, 0, 0, 0, time.UTC)
	}

	table := RevisionTable{
		{RevisionID: strPtr("a"), ParsedTime: at(1)},
		{RevisionID: strPtr("b"), ParsedTime: at(3)},
		{RevisionID: strPtr("c"), ParsedTime: at(2)},
		{RevisionID: strPtr("d"), ParsedTime: at(2)},
		{RevisionID: strPtr("e")}, // no timestamp, sorts last
	}

	table.SortByTimestampDesc()

	got := make([]string, len(table))
	for i, record := range table {
		got[i] = *record.RevisionID
	}

	assert.Equal(t, []string{"b", "c", "d", "a", "e"}, got)
}

func TestTimeRangeIgnoresMissingTimestamps(t *testing.T) {
	table := RevisionTable{
		{ParsedTime: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{},
		{ParsedTime: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	oldest, newest := table.TimeRange()
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), oldest)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), newest)
}

func strPtr(s string) *string {
	return &s
}

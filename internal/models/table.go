package models

import (
	"sort"
	"time"
)

// RevisionTable is one article's worth of revision records. After assembly it is
// sorted by parsed timestamp, newest first.
type RevisionTable []RevisionRecord

// SortByTimestampDesc orders the table newest-first. Records with equal
// timestamps keep their pre-sort relative order.
func (t RevisionTable) SortByTimestampDesc() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].ParsedTime.After(t[j].ParsedTime)
	})
}

// TimeRange returns the oldest and newest parsed timestamps in the table,
// ignoring records that carried no timestamp at all.
func (t RevisionTable) TimeRange() (oldest, newest time.Time) {
	for _, rec := range t {
		if rec.ParsedTime.IsZero() {
			continue
		}

		if oldest.IsZero() || rec.ParsedTime.Before(oldest) {
			oldest = rec.ParsedTime
		}

		if rec.ParsedTime.After(newest) {
			newest = rec.ParsedTime
		}
	}

	return oldest, newest
}

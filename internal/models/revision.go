// Package models defines data structures shared by the extractor, assembler, and store.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadTimestamp indicates a revision timestamp that could not be parsed.
var ErrBadTimestamp = errors.New("unparseable revision timestamp")

// timestampLayouts are accepted on revision timestamps. MediaWiki emits RFC 3339
// with a trailing Z; older dumps omit the zone suffix.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// RevisionRecord is one revision's worth of extracted fields. Pointer fields are
// nil when the source XML omits the corresponding element.
type RevisionRecord struct {
	RevisionID *string
	Timestamp  *string
	Username   *string
	UserID     *string
	Comment    *string
	Text       *string
	TextLength int
	Year       string
	Month      string

	// ParsedTime is filled in during assembly from Timestamp. Records without
	// a timestamp keep the zero value and sort last in descending order.
	ParsedTime time.Time
}

// ParseTimestamp resolves the record's raw timestamp into ParsedTime.
func (r *RevisionRecord) ParseTimestamp() error {
	if r.Timestamp == nil {
		r.ParsedTime = time.Time{}

		return nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, *r.Timestamp)
		if err == nil {
			r.ParsedTime = t

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrBadTimestamp, *r.Timestamp)
}

// Package store persists revision tables as parquet files.
package store

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"wikirev/internal/models"
)

// Extension is the suffix of every output file.
const Extension = ".parquet"

// Row is the parquet schema of one revision. Optional columns are null when
// the source XML omitted the element.
type Row struct {
	RevisionID *string   `parquet:"revision_id,optional"`
	Timestamp  time.Time `parquet:"timestamp"`
	Username   *string   `parquet:"username,optional"`
	UserID     *string   `parquet:"userid,optional"`
	Comment    *string   `parquet:"comment,optional"`
	TextLength int64     `parquet:"text_length"`
	Year       string    `parquet:"year"`
	Month      string    `parquet:"month"`
}

// TextRow is the schema used when full revision text is retained. The text
// column exists only in files written with include_text enabled.
type TextRow struct {
	RevisionID *string   `parquet:"revision_id,optional"`
	Timestamp  time.Time `parquet:"timestamp"`
	Username   *string   `parquet:"username,optional"`
	UserID     *string   `parquet:"userid,optional"`
	Comment    *string   `parquet:"comment,optional"`
	TextLength int64     `parquet:"text_length"`
	Year       string    `parquet:"year"`
	Month      string    `parquet:"month"`
	Text       *string   `parquet:"text,optional"`
}

// WriteTable writes the table to path, preserving row order.
func WriteTable(path string, table models.RevisionTable, includeText bool) error {
	var err error

	if includeText {
		rows := make([]TextRow, len(table))
		for i, record := range table {
			rows[i] = toTextRow(record)
		}

		err = parquet.WriteFile(path, rows)
	} else {
		rows := make([]Row, len(table))
		for i, record := range table {
			rows[i] = toRow(record)
		}

		err = parquet.WriteFile(path, rows)
	}

	if err != nil {
		return fmt.Errorf("failed to write parquet file: %w", err)
	}

	return nil
}

// ReadRows reads back a file written without text retention.
func ReadRows(path string) ([]Row, error) {
	rows, err := parquet.ReadFile[Row](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}

	return rows, nil
}

// ReadTextRows reads back a file written with text retention.
func ReadTextRows(path string) ([]TextRow, error) {
	rows, err := parquet.ReadFile[TextRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}

	return rows, nil
}

func toTextRow(record models.RevisionRecord) TextRow {
	return TextRow{
		RevisionID: record.RevisionID,
		Timestamp:  record.ParsedTime,
		Username:   record.Username,
		UserID:     record.UserID,
		Comment:    record.Comment,
		TextLength: int64(record.TextLength),
		Year:       record.Year,
		Month:      record.Month,
		Text:       record.Text,
	}
}

func toRow(record models.RevisionRecord) Row {
	return Row{
		RevisionID: record.RevisionID,
		Timestamp:  record.ParsedTime,
		Username:   record.Username,
		UserID:     record.UserID,
		Comment:    record.Comment,
		TextLength: int64(record.TextLength),
		Year:       record.Year,
		Month:      record.Month,
	}
}

// Package excelcli extracts row and column slices from batches of
// spreadsheets into a single CSV file.
package excelcli

import (
	"fmt"
	"io"
)

// DefaultSheet is the sheet read when none is named.
const DefaultSheet = "Sheet1"

// SourceFileHeader names the column prepended when file names are included.
const SourceFileHeader = "source_file"

// Options holds the settings shared by both extraction directions.
type Options struct {
	// Pattern is the glob selecting input files.
	Pattern string
	// Sheet is the sheet read from every file.
	Sheet string
	// Headers is the CSV header, one field per extracted value.
	Headers []string
	// Output is the destination CSV path.
	Output string
	// WithFilename prefixes every record with the source file's base name.
	WithFilename bool
	// Password decrypts protected xlsx workbooks.
	Password string
	// Jobs is the number of files opened concurrently. Values below 2 read
	// files one at a time.
	Jobs int
	// Progress receives human-readable progress lines. Nil discards them.
	Progress io.Writer
}

// RowRequest extracts a contiguous row range at selected columns.
type RowRequest struct {
	Options
	// RowStart and RowEnd bound the 1-based inclusive row range.
	RowStart int
	RowEnd   int
	// Columns lists the A1 column labels to extract, in output order.
	Columns []string
	// FilterColumn, when set, drops rows whose cell in this column is empty.
	FilterColumn string
}

// ColumnRequest extracts a contiguous column range at selected rows.
type ColumnRequest struct {
	Options
	// ColStart and ColEnd bound the inclusive A1 column range.
	ColStart string
	ColEnd   string
	// Rows lists the 1-based row numbers to extract, in output order.
	Rows []int
	// FilterRow, when positive, keeps only that row and only if it holds a
	// non-empty value.
	FilterRow int
}

func (o Options) validate(fields int) error {
	if o.Pattern == "" {
		return fmt.Errorf("%w: file pattern is required", ErrInvalidArgument)
	}
	if o.Sheet == "" {
		return fmt.Errorf("%w: sheet name is required", ErrInvalidArgument)
	}
	if o.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidArgument)
	}
	if o.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", ErrInvalidArgument)
	}
	if len(o.Headers) != fields {
		return fmt.Errorf("%w: %d headers for %d extracted fields", ErrHeaderMismatch, len(o.Headers), fields)
	}
	return nil
}

// headerRecord returns the first CSV record.
func (o Options) headerRecord() []string {
	if !o.WithFilename {
		return o.Headers
	}
	return append([]string{SourceFileHeader}, o.Headers...)
}

func (o Options) progress() io.Writer {
	if o.Progress == nil {
		return io.Discard
	}
	return o.Progress
}

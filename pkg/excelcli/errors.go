package excelcli

import (
	"errors"
	"fmt"

	"github.com/zentall/excelcli/pkg/excelcli/parser"
)

// ErrPattern indicates a malformed glob pattern.
var ErrPattern = errors.New("invalid file pattern")

// ErrUnreadableFile indicates a spreadsheet container could not be opened.
var ErrUnreadableFile = errors.New("unreadable file")

// ErrSheetNotFound indicates the requested sheet is absent from a workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidColumnLabel indicates a malformed A1 column label.
var ErrInvalidColumnLabel = errors.New("invalid column label")

// ErrInvalidRange indicates a malformed or inverted start:end range.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidArgument indicates a malformed command argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrHeaderMismatch indicates the header count does not match the number of
// extracted fields.
var ErrHeaderMismatch = fmt.Errorf("%w: header count mismatch", ErrInvalidArgument)

// ErrOutputWrite indicates the destination CSV could not be written.
var ErrOutputWrite = errors.New("output write failed")

// FileError represents a failure tied to one input or output file.
type FileError struct {
	Path string
	Op   string // "open", "read sheet", "write"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func unreadable(path string, err error) *FileError {
	if errors.Is(err, parser.ErrSheetNotFound) {
		return &FileError{Path: path, Op: "read sheet", Err: err}
	}
	return &FileError{Path: path, Op: "open", Err: fmt.Errorf("%w: %w", ErrUnreadableFile, err)}
}

func outputError(path string, err error) *FileError {
	return &FileError{Path: path, Op: "write", Err: fmt.Errorf("%w: %w", ErrOutputWrite, err)}
}

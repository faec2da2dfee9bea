// Package parser provides spreadsheet readers that materialize sheets as
// typed cell grids.
package parser

import (
	"errors"
	"fmt"

	"github.com/zentall/excelcli/pkg/excelcli/models"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFormat indicates the container format cannot be read.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Workbook is an opened spreadsheet container.
type Workbook interface {
	// SheetNames lists sheets in workbook order.
	SheetNames() []string
	// Sheet materializes the named sheet.
	Sheet(name string) (*models.Grid, error)
	// Close releases the underlying file.
	Close() error
}

// Options configures how workbooks are opened.
type Options struct {
	// Password decrypts protected xlsx workbooks.
	Password string
}

// Open detects the format of path and opens it with the matching reader.
func Open(path string, opts Options) (Workbook, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var wb Workbook
	switch format {
	case FormatXLSX:
		x, err := openXLSX(path, opts)
		if err != nil {
			return nil, err
		}
		wb = x
	case FormatXLS:
		x, err := openXLS(path)
		if err != nil {
			return nil, err
		}
		wb = x
	case FormatCSV:
		c, err := openCSV(path)
		if err != nil {
			return nil, err
		}
		wb = c
	case FormatUnknown:
		return nil, ErrUnsupportedFormat
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return wb, nil
}

// ReadSheet opens path and returns the named sheet.
func ReadSheet(path, sheetName string, opts Options) (*models.Grid, error) {
	wb, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.Sheet(sheetName)
}

func sheetNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func hasSheet(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

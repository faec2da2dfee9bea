package excelcli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/zentall/excelcli/pkg/excelcli/models"
	"github.com/zentall/excelcli/pkg/excelcli/output"
)

// Summary reports the outcome of one extraction.
type Summary struct {
	// Files is the number of matched input files.
	Files int
	// Records is the number of data records written, header excluded.
	Records int
	// Skipped is the number of records dropped by the filter.
	Skipped int
	// Output is the CSV path written.
	Output string
}

// emitFunc writes one record of extracted values.
type emitFunc func(values []string) error

// sliceFunc produces the records of one sheet and returns how many were
// filtered out.
type sliceFunc func(grid *models.Grid, emit emitFunc) (skipped int, err error)

// ExtractRows writes, for every matched file, one record per row of
// [RowStart, RowEnd] holding the requested columns.
func ExtractRows(ctx context.Context, req RowRequest) (*Summary, error) {
	if err := checkRowRange(req.RowStart, req.RowEnd); err != nil {
		return nil, err
	}
	if len(req.Columns) == 0 {
		return nil, fmt.Errorf("%w: at least one column is required", ErrInvalidArgument)
	}
	cols, err := columnIndexes(req.Columns)
	if err != nil {
		return nil, err
	}
	filterCol := -1
	if req.FilterColumn != "" {
		if filterCol, err = ColumnIndex(req.FilterColumn); err != nil {
			return nil, err
		}
	}
	if err := req.validate(len(cols)); err != nil {
		return nil, err
	}

	slice := func(grid *models.Grid, emit emitFunc) (int, error) {
		skipped := 0
		for row := req.RowStart; row <= req.RowEnd; row++ {
			if filterCol >= 0 && grid.At(row-1, filterCol).IsEmpty() {
				skipped++
				continue
			}
			values := make([]string, len(cols))
			for i, col := range cols {
				values[i] = grid.At(row-1, col).String()
			}
			if err := emit(values); err != nil {
				return skipped, err
			}
		}
		return skipped, nil
	}
	return run(ctx, req.Options, "row", slice)
}

// ExtractColumns writes, for every matched file, one record per requested
// row holding the cells of [ColStart, ColEnd].
func ExtractColumns(ctx context.Context, req ColumnRequest) (*Summary, error) {
	start, end, err := columnBounds(req.ColStart, req.ColEnd)
	if err != nil {
		return nil, err
	}
	if len(req.Rows) == 0 {
		return nil, fmt.Errorf("%w: at least one row is required", ErrInvalidArgument)
	}
	for _, row := range req.Rows {
		if row < 1 {
			return nil, fmt.Errorf("%w: row number %d is below 1", ErrInvalidArgument, row)
		}
	}
	if req.FilterRow < 0 {
		return nil, fmt.Errorf("%w: filter row %d is below 1", ErrInvalidArgument, req.FilterRow)
	}
	if err := req.validate(end - start + 1); err != nil {
		return nil, err
	}

	slice := func(grid *models.Grid, emit emitFunc) (int, error) {
		skipped := 0
		for _, row := range req.Rows {
			values := make([]string, 0, end-start+1)
			for col := start; col <= end; col++ {
				values = append(values, grid.At(row-1, col).String())
			}
			if req.FilterRow > 0 && (row != req.FilterRow || !anyNonEmpty(values)) {
				skipped++
				continue
			}
			if err := emit(values); err != nil {
				return skipped, err
			}
		}
		return skipped, nil
	}
	return run(ctx, req.Options, "column", slice)
}

// run resolves the input files, writes the header and the records produced
// by slice for every file, and moves the CSV into place once everything
// succeeded.
func run(ctx context.Context, opts Options, kind string, slice sliceFunc) (*Summary, error) {
	files, err := ResolveFiles(opts.Pattern, opts.Output)
	if err != nil {
		return nil, err
	}
	progress := opts.progress()
	fmt.Fprintf(progress, "matched %d file(s)\n", len(files))

	w, err := output.Create(opts.Output)
	if err != nil {
		return nil, outputError(opts.Output, err)
	}
	defer w.Abort()

	if err := w.Write(opts.headerRecord()); err != nil {
		return nil, outputError(opts.Output, err)
	}

	sum := &Summary{Files: len(files), Output: opts.Output}
	err = forEachSheet(ctx, files, opts, func(path string, grid *models.Grid) error {
		source := filepath.Base(path)
		skipped, err := slice(grid, func(values []string) error {
			record := values
			if opts.WithFilename {
				record = append([]string{source}, values...)
			}
			if err := w.Write(record); err != nil {
				return outputError(opts.Output, err)
			}
			sum.Records++
			return nil
		})
		sum.Skipped += skipped
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := w.Commit(); err != nil {
		return nil, outputError(opts.Output, err)
	}
	fmt.Fprintf(progress, "wrote %s extraction to %s (%d records)\n", kind, opts.Output, sum.Records)
	return sum, nil
}

func anyNonEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

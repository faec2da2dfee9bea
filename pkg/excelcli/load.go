package excelcli

import (
	"context"
	"errors"

	"github.com/zentall/excelcli/pkg/excelcli/models"
	"github.com/zentall/excelcli/pkg/excelcli/parser"
	"golang.org/x/sync/errgroup"
)

// sheetFunc consumes the sheet read from one file.
type sheetFunc func(path string, grid *models.Grid) error

type loaded struct {
	grid *models.Grid
	err  error
}

// readSheet opens path and materializes the requested sheet.
func readSheet(path string, opts Options) (*models.Grid, error) {
	grid, err := parser.ReadSheet(path, opts.Sheet, parser.Options{Password: opts.Password})
	if err != nil {
		return nil, unreadable(path, err)
	}
	return grid, nil
}

// forEachSheet calls fn with the sheet of every file, strictly in file
// order. With more than one job, up to opts.Jobs sheets are read ahead
// concurrently while fn still runs on a single goroutine.
func forEachSheet(ctx context.Context, files []string, opts Options, fn sheetFunc) error {
	if opts.Jobs < 2 || len(files) < 2 {
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			grid, err := readSheet(path, opts)
			if err != nil {
				return err
			}
			if err := fn(path, grid); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]chan loaded, len(files))
	for i := range results {
		results[i] = make(chan loaded, 1)
	}
	// Slots are released by the consumer, which bounds the number of grids
	// held in memory to opts.Jobs.
	slots := make(chan struct{}, opts.Jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i, path := range files {
			i, path := i, path // pin per-iteration copies (pre-Go 1.22 loop semantics)
			select {
			case slots <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			g.Go(func() error {
				grid, err := readSheet(path, opts)
				results[i] <- loaded{grid: grid, err: err}
				return nil
			})
		}
		return nil
	})

	err := func() error {
		for i, path := range files {
			var r loaded
			select {
			case r = <-results[i]:
			case <-gctx.Done():
				return gctx.Err()
			}
			<-slots
			if r.err != nil {
				return r.err
			}
			if err := fn(path, r.grid); err != nil {
				return err
			}
		}
		return nil
	}()

	cancel()
	if werr := g.Wait(); err == nil && werr != nil && !errors.Is(werr, context.Canceled) {
		err = werr
	}
	return err
}

package excelcli

import (
	"context"

	"github.com/zentall/excelcli/pkg/excelcli/models"
	"github.com/zentall/excelcli/pkg/excelcli/parser"
)

// ListSheets describes every sheet of every file matched by pattern.
func ListSheets(ctx context.Context, pattern, password string) ([]models.SheetInfo, error) {
	files, err := ResolveFiles(pattern)
	if err != nil {
		return nil, err
	}

	var infos []models.SheetInfo
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheets, err := describeWorkbook(path, password)
		if err != nil {
			return nil, err
		}
		infos = append(infos, sheets...)
	}
	return infos, nil
}

func describeWorkbook(path, password string) ([]models.SheetInfo, error) {
	wb, err := parser.Open(path, parser.Options{Password: password})
	if err != nil {
		return nil, unreadable(path, err)
	}
	defer wb.Close()

	var infos []models.SheetInfo
	for _, name := range wb.SheetNames() {
		grid, err := wb.Sheet(name)
		if err != nil {
			return nil, unreadable(path, err)
		}
		infos = append(infos, models.SheetInfo{
			File:      path,
			Name:      name,
			UsedRange: parser.UsedRange(grid),
			Rows:      grid.NumRows(),
		})
	}
	return infos, nil
}

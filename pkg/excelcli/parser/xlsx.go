package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/zentall/excelcli/pkg/excelcli/models"
)

type xlsxWorkbook struct {
	f      *excelize.File
	styles map[int]bool
}

func openXLSX(path string, opts Options) (*xlsxWorkbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f, styles: make(map[int]bool)}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Sheet reads every populated cell of the named sheet with its declared type.
func (w *xlsxWorkbook) Sheet(name string) (*models.Grid, error) {
	if !hasSheet(w.f.GetSheetList(), name) {
		return nil, sheetNotFound(name)
	}

	rows, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading rows of %q: %w", name, err)
	}

	grid := models.NewGrid(name)
	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			typ, err := w.f.GetCellType(name, cellName)
			if err != nil {
				typ = excelize.CellTypeUnset
			}
			grid.Set(rowIdx, colIdx, cellFromRaw(typ, raw, w.isDateStyled(name, cellName, typ)))
		}
	}
	return grid, nil
}

// isDateStyled reports whether a numeric cell carries a date or time number
// format. Results are cached per style index.
func (w *xlsxWorkbook) isDateStyled(sheet, cell string, typ excelize.CellType) bool {
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return false
	}
	idx, err := w.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	if isDate, ok := w.styles[idx]; ok {
		return isDate
	}
	isDate := false
	if style, err := w.f.GetStyle(idx); err == nil && style != nil {
		custom := ""
		if style.CustomNumFmt != nil {
			custom = *style.CustomNumFmt
		}
		isDate = isDateNumFmt(style.NumFmt, custom)
	}
	w.styles[idx] = isDate
	return isDate
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

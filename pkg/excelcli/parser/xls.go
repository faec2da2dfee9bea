package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
	"github.com/zentall/excelcli/pkg/excelcli/models"
)

// xlsWorkbook reads legacy BIFF workbooks. The library formats every cell
// itself, so values arrive as text.
type xlsWorkbook struct {
	file  *os.File
	book  *xls.WorkBook
	names []string
}

func openXLS(path string) (wb *xlsWorkbook, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading xls: %v", r)
		}
		if err != nil {
			f.Close()
		}
	}()

	book, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, err
	}

	x := &xlsWorkbook{file: f, book: book}
	for i := 0; i < book.NumSheets(); i++ {
		if s := book.GetSheet(i); s != nil {
			x.names = append(x.names, s.Name)
		}
	}
	return x, nil
}

func (x *xlsWorkbook) SheetNames() []string {
	return x.names
}

func (x *xlsWorkbook) Sheet(name string) (grid *models.Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("reading xls sheet %q: %v", name, r)
		}
	}()

	for i := 0; i < x.book.NumSheets(); i++ {
		s := x.book.GetSheet(i)
		if s == nil || s.Name != name {
			continue
		}
		grid = models.NewGrid(name)
		for r := 0; r <= int(s.MaxRow); r++ {
			row := s.Row(r)
			if row == nil {
				continue
			}
			for c := 0; c <= row.LastCol(); c++ {
				if v := row.Col(c); v != "" {
					grid.Set(r, c, models.TextCell(v))
				}
			}
		}
		return grid, nil
	}
	return nil, sheetNotFound(name)
}

func (x *xlsWorkbook) Close() error {
	return x.file.Close()
}

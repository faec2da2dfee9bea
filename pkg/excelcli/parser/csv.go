package parser

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/zentall/excelcli/pkg/excelcli/models"
)

const utf8BOM = "\ufeff"

// csvWorkbook is a delimited text file exposed as a single sheet. Having no
// sheet names of its own, it answers to any requested name.
type csvWorkbook struct {
	name string
	rows [][]string
}

func openCSV(path string) (*csvWorkbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	return &csvWorkbook{
		name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		rows: rows,
	}, nil
}

func (c *csvWorkbook) SheetNames() []string {
	return []string{c.name}
}

func (c *csvWorkbook) Sheet(name string) (*models.Grid, error) {
	grid := models.NewGrid(name)
	grid.Rows = make([][]models.Cell, len(c.rows))
	for r, row := range c.rows {
		cells := make([]models.Cell, len(row))
		for col, v := range row {
			if v != "" {
				cells[col] = models.TextCell(v)
			}
		}
		grid.Rows[r] = cells
	}
	return grid, nil
}

func (c *csvWorkbook) Close() error {
	return nil
}

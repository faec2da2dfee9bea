package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/zentall/excelcli/pkg/excelcli/models"
)

// UsedRange returns the A1 range covering every non-empty cell of the grid
// (e.g., "A1:D10"), or "" when the grid holds no data.
func UsedRange(g *models.Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the zero-based bounding box of non-empty cells.
func findDataBounds(g *models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1
	if g == nil {
		return
	}

	for rowIdx, row := range g.Rows {
		for colIdx, cell := range row {
			if cell.Kind == models.KindEmpty {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/zentall/excelcli/pkg/excelcli/models"
)

// cellFromRaw converts a raw xlsx cell value to a typed cell using the
// type declared in the worksheet.
func cellFromRaw(typ excelize.CellType, raw string, dateStyled bool) models.Cell {
	if raw == "" {
		return models.Empty
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.TextCell(raw)
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return models.ErrorCell(raw)
	case excelize.CellTypeDate:
		return models.Cell{Kind: models.KindDateTime, Text: raw}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.TextCell(raw)
	}
	if dateStyled {
		return models.DateTimeCell(f)
	}
	return models.NumberCell(f)
}

package parser

import (
	"testing"

	"github.com/zentall/excelcli/pkg/excelcli/models"
)

func TestUsedRange(t *testing.T) {
	g := models.NewGrid("Sheet1")
	if got := UsedRange(g); got != "" {
		t.Errorf("UsedRange(empty) = %q, expected empty", got)
	}

	g.Set(1, 1, models.TextCell("x"))
	g.Set(3, 2, models.NumberCell(1))
	g.Set(5, 0, models.Empty)
	if got := UsedRange(g); got != "B2:C4" {
		t.Errorf("UsedRange = %q, expected %q", got, "B2:C4")
	}
}

package excelcli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/zentall/excelcli/pkg/excelcli/models"
)

func TestListSheets(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, dir, "a.xlsx", "Sheet1", sampleRows)

	f := excelize.NewFile()
	_, err := f.NewSheet("Summary")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Summary", "B2", "total"))
	require.NoError(t, f.SetCellValue("Summary", "D5", 42))
	b := filepath.Join(dir, "b.xlsx")
	require.NoError(t, f.SaveAs(b))
	require.NoError(t, f.Close())

	infos, err := ListSheets(context.Background(), filepath.Join(dir, "*.xlsx"), "")
	require.NoError(t, err)
	assert.Equal(t, []models.SheetInfo{
		{File: filepath.Join(dir, "a.xlsx"), Name: "Sheet1", UsedRange: "A1:C3", Rows: 3},
		{File: b, Name: "Sheet1", UsedRange: "", Rows: 0},
		{File: b, Name: "Summary", UsedRange: "B2:D5", Rows: 5},
	}, infos)
}

func TestListSheetsBadPattern(t *testing.T) {
	_, err := ListSheets(context.Background(), "[", "")
	assert.ErrorIs(t, err, ErrPattern)
}

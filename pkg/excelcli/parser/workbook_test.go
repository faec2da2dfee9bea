package parser

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeZip(t *testing.T, name string, members ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	out, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	for _, m := range members {
		w, err := zw.Create(m)
		require.NoError(t, err)
		_, err = w.Write([]byte("<x/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())
	return path
}

func TestDetectFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	dir := t.TempDir()
	require.NoError(t, f.SaveAs(filepath.Join(dir, "book.xlsx")))
	xlsxPath := filepath.Join(dir, "book.bin")
	require.NoError(t, os.Rename(filepath.Join(dir, "book.xlsx"), xlsxPath))

	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"xlsx by content", xlsxPath, FormatXLSX},
		{"xls signature", writeFile(t, "legacy.dat", append(append([]byte{}, oleSignature...), 0, 0, 0, 0)), FormatXLS},
		{"xlsb", writeZip(t, "book.xlsb", "xl/workbook.bin"), FormatXLSB},
		{"ods", writeZip(t, "book.ods", "mimetype", "content.xml"), FormatODS},
		{"plain zip", writeZip(t, "archive.xlsx", "readme.txt"), FormatUnknown},
		{"csv by extension", writeFile(t, "data.csv", []byte("a,b\n")), FormatCSV},
		{"tsv by extension", writeFile(t, "data.TSV", []byte("a\tb\n")), FormatCSV},
		{"short file", writeFile(t, "tiny.xlsx", []byte("PK")), FormatUnknown},
		{"unknown", writeFile(t, "notes.md", []byte("# not a spreadsheet")), FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(writeZip(t, "book.xlsb", "xl/workbook.bin"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(writeZip(t, "book.ods", "mimetype", "content.xml"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(writeFile(t, "notes.md", []byte("hello")), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCSVWorkbook(t *testing.T) {
	path := writeFile(t, "report.csv", []byte("\ufeffname,qty\n\"Smith, J\",3\nx\n"))

	wb, err := Open(path, Options{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"report"}, wb.SheetNames())

	grid, err := wb.Sheet("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "name", grid.At(0, 0).String())
	assert.Equal(t, "Smith, J", grid.At(1, 0).String())
	assert.Equal(t, "3", grid.At(1, 1).String())
	assert.Equal(t, "x", grid.At(2, 0).String())
	assert.Equal(t, "", grid.At(2, 1).String())
}

func TestTSVWorkbook(t *testing.T) {
	grid, err := ReadSheet(writeFile(t, "data.tsv", []byte("a\tb\n1\t2\n")), "any", Options{})
	require.NoError(t, err)
	assert.Equal(t, "b", grid.At(0, 1).String())
	assert.Equal(t, "2", grid.At(1, 1).String())
}

func TestXLSXSheetNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path, Options{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Sheet1", "Data"}, wb.SheetNames())
	_, err = wb.Sheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

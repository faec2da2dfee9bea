package parser

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is a spreadsheet container format.
type Format string

const (
	FormatUnknown Format = ""
	FormatXLSX    Format = "xlsx"
	FormatXLSB    Format = "xlsb"
	FormatXLS     Format = "xls"
	FormatODS     Format = "ods"
	FormatCSV     Format = "csv"
)

// oleSignature opens every OLE2 compound document, including BIFF .xls files.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

var zipSignature = []byte("PK\x03\x04")

// DetectFormat sniffs the container format from file content, falling back
// to the extension for delimited text files.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	peek := make([]byte, len(oleSignature))
	n, err := io.ReadFull(f, peek)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatUnknown, err
	}
	peek = peek[:n]

	switch {
	case bytes.HasPrefix(peek, oleSignature):
		return FormatXLS, nil
	case bytes.HasPrefix(peek, zipSignature):
		return detectZipFormat(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	}
	return FormatUnknown, nil
}

// detectZipFormat looks at the archive members to tell OOXML, XLSB and ODS
// apart.
func detectZipFormat(path string) (Format, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer r.Close()

	names := make(map[string]bool, len(r.File))
	for _, f := range r.File {
		names[f.Name] = true
	}
	switch {
	case names["xl/workbook.xml"]:
		return FormatXLSX, nil
	case names["xl/workbook.bin"]:
		return FormatXLSB, nil
	case names["content.xml"]:
		return FormatODS, nil
	}
	return FormatUnknown, nil
}

package excelcli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRowRange parses an inclusive 1-based "start:end" row range.
func ParseRowRange(s string) (start, end int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q: expected start:end", ErrInvalidRange, s)
	}
	if start, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: bad start row", ErrInvalidRange, s)
	}
	if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: bad end row", ErrInvalidRange, s)
	}
	if err := checkRowRange(start, end); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func checkRowRange(start, end int) error {
	if start < 1 || end < 1 {
		return fmt.Errorf("%w: rows are numbered from 1, got %d:%d", ErrInvalidRange, start, end)
	}
	if start > end {
		return fmt.Errorf("%w: start row %d is after end row %d", ErrInvalidRange, start, end)
	}
	return nil
}

// ParseColumnRange parses an inclusive "start:end" range of A1 column
// labels such as "B:E".
func ParseColumnRange(s string) (start, end string, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("%w: %q: expected start:end", ErrInvalidRange, s)
	}
	start, end = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if _, _, err := columnBounds(start, end); err != nil {
		return "", "", err
	}
	return start, end, nil
}

func columnBounds(start, end string) (int, int, error) {
	lo, err := ColumnIndex(start)
	if err != nil {
		return 0, 0, err
	}
	hi, err := ColumnIndex(end)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: column %s is after column %s", ErrInvalidRange, start, end)
	}
	return lo, hi, nil
}

// ParseColumns parses a comma-separated list of A1 column labels.
func ParseColumns(s string) ([]string, error) {
	var cols []string
	for _, part := range strings.Split(s, ",") {
		label := strings.TrimSpace(part)
		if _, err := ColumnIndex(label); err != nil {
			return nil, err
		}
		cols = append(cols, strings.ToUpper(label))
	}
	return cols, nil
}

// ParseRows parses a comma-separated list of 1-based row numbers.
func ParseRows(s string) ([]int, error) {
	var rows []int
	for _, part := range strings.Split(s, ",") {
		n, err := parseRowNumber(part)
		if err != nil {
			return nil, err
		}
		rows = append(rows, n)
	}
	return rows, nil
}

// ParseFilterRow parses an optional row number; "" means no filter and
// yields 0.
func ParseFilterRow(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return parseRowNumber(s)
}

func parseRowNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: row number %q is not an integer", ErrInvalidArgument, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: row number %d is below 1", ErrInvalidArgument, n)
	}
	return n, nil
}

// ParseHeaders splits a comma-separated header list. Fields are kept
// verbatim.
func ParseHeaders(s string) []string {
	return strings.Split(s, ",")
}

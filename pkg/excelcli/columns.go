package excelcli

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnIndex converts an A1 column label to a zero-based column index:
// "A" is 0, "Z" is 25, "AA" is 26. Labels are case-insensitive.
func ColumnIndex(label string) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrInvalidColumnLabel)
	}
	for _, r := range label {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnLabel, label)
		}
	}
	n, err := excelize.ColumnNameToNumber(label)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColumnLabel, label, err)
	}
	return n - 1, nil
}

// columnIndexes decodes a list of labels in order.
func columnIndexes(labels []string) ([]int, error) {
	idx := make([]int, len(labels))
	for i, label := range labels {
		n, err := ColumnIndex(label)
		if err != nil {
			return nil, err
		}
		idx[i] = n
	}
	return idx, nil
}

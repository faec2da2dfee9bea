package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellString(t *testing.T) {
	// Variables keep the sum from being folded to an exact constant.
	tenth, fifth := 0.1, 0.2

	tests := []struct {
		name     string
		cell     Cell
		expected string
	}{
		{"text", TextCell("hello, world"), "hello, world"},
		{"integral float", NumberCell(1), "1"},
		{"fraction", NumberCell(2.5), "2.5"},
		{"negative", NumberCell(-0.125), "-0.125"},
		{"shortest round trip", NumberCell(tenth + fifth), "0.30000000000000004"},
		{"no exponent for large", NumberCell(1e21), "1000000000000000000000"},
		{"no exponent for small", NumberCell(1e-7), "0.0000001"},
		{"nan", NumberCell(math.NaN()), "NaN"},
		{"integer", IntegerCell(-42), "-42"},
		{"true", BoolCell(true), "true"},
		{"false", BoolCell(false), "false"},
		{"date", DateTimeCell(45352), ""},
		{"error", ErrorCell("#N/A"), ""},
		{"empty", Empty, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cell.String())
			assert.Equal(t, tt.expected == "", tt.cell.IsEmpty())
		})
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid("Sheet1")
	g.Set(0, 0, NumberCell(1))
	g.Set(2, 3, TextCell("x"))
	g.Set(-1, 0, TextCell("ignored"))

	assert.Equal(t, 3, g.NumRows())
	assert.Equal(t, NumberCell(1), g.At(0, 0))
	assert.Equal(t, TextCell("x"), g.At(2, 3))
	assert.Equal(t, Empty, g.At(1, 0), "unset row")
	assert.Equal(t, Empty, g.At(2, 1), "gap before a set cell")
	assert.Equal(t, Empty, g.At(2, 10), "past the row end")
	assert.Equal(t, Empty, g.At(100, 0), "past the last row")
	assert.Equal(t, Empty, g.At(-1, -1))

	var nilGrid *Grid
	assert.Equal(t, Empty, nilGrid.At(0, 0))
	assert.Equal(t, 0, nilGrid.NumRows())
}

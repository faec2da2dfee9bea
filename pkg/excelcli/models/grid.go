package models

// Grid is the materialized cell data of one sheet.
// Rows may have different lengths; missing positions are empty.
type Grid struct {
	// Name is the sheet name the grid was read from.
	Name string
	// Rows holds cells addressed by zero-based row then column.
	Rows [][]Cell
}

// NewGrid returns an empty grid for the named sheet.
func NewGrid(name string) *Grid {
	return &Grid{Name: name}
}

// At returns the cell at the zero-based position, or Empty when the
// position lies outside the populated extent.
func (g *Grid) At(row, col int) Cell {
	if g == nil || row < 0 || col < 0 || row >= len(g.Rows) {
		return Empty
	}
	r := g.Rows[row]
	if col >= len(r) {
		return Empty
	}
	return r[col]
}

// Set stores a cell, growing the grid as needed.
func (g *Grid) Set(row, col int, c Cell) {
	if row < 0 || col < 0 {
		return
	}
	for len(g.Rows) <= row {
		g.Rows = append(g.Rows, nil)
	}
	r := g.Rows[row]
	for len(r) <= col {
		r = append(r, Empty)
	}
	r[col] = c
	g.Rows[row] = r
}

// NumRows returns the number of materialized rows.
func (g *Grid) NumRows() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

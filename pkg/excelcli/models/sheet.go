package models

// SheetInfo describes one sheet of a matched workbook.
type SheetInfo struct {
	// File is the workbook path.
	File string `json:"file"`
	// Name is the sheet name.
	Name string `json:"name"`
	// UsedRange is the bounding box of non-empty cells (e.g., "A1:D10"),
	// empty when the sheet holds no data.
	UsedRange string `json:"used_range,omitempty"`
	// Rows is the number of materialized rows.
	Rows int `json:"rows"`
}

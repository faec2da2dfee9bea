// Package models defines data structures for spreadsheet extraction.
package models

import "strconv"

// Kind identifies which payload of a Cell is meaningful.
type Kind int

const (
	// KindEmpty is a blank or missing cell.
	KindEmpty Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a floating point cell.
	KindNumber
	// KindInteger is an integer cell.
	KindInteger
	// KindBoolean is a TRUE/FALSE cell.
	KindBoolean
	// KindDateTime is a numeric cell carrying a date or time number format.
	KindDateTime
	// KindError is a cell holding a formula error such as #DIV/0!.
	KindError
)

// Cell is a single typed cell value.
type Cell struct {
	// Kind selects the payload.
	Kind Kind
	// Text holds the value of KindText and the error code of KindError.
	Text string
	// Number holds the value of KindNumber and the serial of KindDateTime.
	Number float64
	// Integer holds the value of KindInteger.
	Integer int64
	// Bool holds the value of KindBoolean.
	Bool bool
}

// Empty is the zero cell.
var Empty = Cell{}

// TextCell returns a KindText cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell returns a KindNumber cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// IntegerCell returns a KindInteger cell.
func IntegerCell(i int64) Cell { return Cell{Kind: KindInteger, Integer: i} }

// BoolCell returns a KindBoolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBoolean, Bool: b} }

// DateTimeCell returns a KindDateTime cell holding the spreadsheet serial.
func DateTimeCell(serial float64) Cell { return Cell{Kind: KindDateTime, Number: serial} }

// ErrorCell returns a KindError cell.
func ErrorCell(code string) Cell { return Cell{Kind: KindError, Text: code} }

// String renders the cell as a CSV field.
// Numbers use the shortest decimal form that round-trips, never exponent
// notation. Dates, errors and empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindInteger:
		return strconv.FormatInt(c.Integer, 10)
	case KindBoolean:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell renders as an empty field.
func (c Cell) IsEmpty() bool {
	return c.String() == ""
}

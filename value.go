package tableview

import (
	"math"
	"strconv"
)

// Kind of a cell Value.
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "Missing"
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the content of a single table cell.
// It is either a number, a text, or missing.
//
// The zero Value is missing, so a sparse [][]Value
// reads absent cells as missing without extra work.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number returns a numeric Value.
// NaN is not a number a table can display,
// so Number(math.NaN()) returns a missing Value.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Text returns a text Value.
// An empty string is a valid text and not missing.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Missing returns the missing Value.
func Missing() Value {
	return Value{}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == KindMissing }
func (v Value) IsNumber() bool  { return v.kind == KindNumber }
func (v Value) IsText() bool    { return v.kind == KindText }

// Float returns the number of a numeric Value
// and false for texts and missing values.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String returns the unformatted text form of the value.
// Numbers use the shortest representation that round-trips,
// infinities are "inf" and "-inf",
// missing values return an empty string.
//
// Display formatting with a fixed number of decimal places
// is done by Adapter.CellText.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		if s, ok := formatInf(v.num); ok {
			return s
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	}
	return ""
}

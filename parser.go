package tableview

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValueParser turns the string fields of text based sources
// into typed cell values.
//
// Typing happens once at ingestion time so that
// consumers of a Table never have to guess
// if a cell holds a number or a text.
type ValueParser struct {
	// MissingStrings lists the field values that are read as missing.
	// Fields are compared after trimming surrounding whitespace.
	MissingStrings []string `json:"missingStrings"`

	// Decimal is the decimal separator of numbers, "." or ",".
	// An empty string is treated as ".".
	Decimal string `json:"decimal"`
}

// NewValueParser returns a ValueParser with "." as decimal separator
// and the usual not-available spellings as MissingStrings.
func NewValueParser() *ValueParser {
	return &ValueParser{
		MissingStrings: []string{
			"",
			"#N/A",
			"#N/A N/A",
			"#NA",
			"-NaN",
			"-nan",
			"<NA>",
			"N/A",
			"NA",
			"NULL",
			"NaN",
			"None",
			"n/a",
			"nan",
			"null",
		},
		Decimal: ".",
	}
}

// WithDecimal returns a copy of the parser using decimal as separator.
func (p *ValueParser) WithDecimal(decimal string) *ValueParser {
	c := *p
	c.MissingStrings = slices.Clone(p.MissingStrings)
	c.Decimal = decimal
	return &c
}

// IsMissing returns if str is one of the MissingStrings.
func (p *ValueParser) IsMissing(str string) bool {
	return slices.Contains(p.MissingStrings, strings.TrimSpace(str))
}

// ParseFloat parses str as number using the configured decimal separator.
//
// With "," as separator a string containing a "." is not a number,
// so "1.5" stays text in a file that writes one and a half as "1,5".
// Hexadecimal and underscore notations of Go literals are rejected.
func (p *ValueParser) ParseFloat(str string) (float64, error) {
	s := strings.TrimSpace(str)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("cannot parse %q as number", str)
	}
	if p.Decimal == "," {
		if strings.Contains(s, ".") {
			return 0, fmt.Errorf("cannot parse %q as number with decimal comma", str)
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as number", str)
	}
	return f, nil
}

// ParseValue types a single field without looking at its column.
func (p *ValueParser) ParseValue(str string) Value {
	if p.IsMissing(str) {
		return Missing()
	}
	if f, err := p.ParseFloat(str); err == nil {
		return Number(f)
	}
	return Text(str)
}

// ParseColumns types records column-wise.
//
// A column is numeric if all of its non-missing fields parse as numbers,
// else all of its non-missing fields become texts, so a column
// never mixes numbers and texts.
//
// Records with fewer than numCols fields are padded with missing values.
// A record with more fields returns a *ParseError.
func (p *ValueParser) ParseColumns(numCols int, records [][]string) ([][]Value, error) {
	numeric := make([]bool, numCols)
	for col := range numeric {
		numeric[col] = true
	}
	for i, record := range records {
		if len(record) > numCols {
			return nil, &ParseError{Record: i + 1, Fields: len(record), Cols: numCols}
		}
		for col, field := range record {
			if !numeric[col] || p.IsMissing(field) {
				continue
			}
			if _, err := p.ParseFloat(field); err != nil {
				numeric[col] = false
			}
		}
	}

	rows := make([][]Value, len(records))
	for i, record := range records {
		row := make([]Value, numCols) // zero Value is missing
		for col, field := range record {
			switch {
			case p.IsMissing(field):
				// keep missing
			case numeric[col]:
				f, _ := p.ParseFloat(field)
				row[col] = Number(f)
			default:
				row[col] = Text(field)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

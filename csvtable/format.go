// Package csvtable reads delimited text files as tableview.Table snapshots.
//
// The format of a file is passed explicitly as Format,
// no guessing of separators or encodings takes place.
// The package handles:
//   - Character encodings supported by github.com/domonda/go-types/charset
//   - Comma, semicolon, and tab separated fields
//   - Dot or comma as decimal separator of numbers
//   - Quoted fields with embedded newlines, separators, and quotes
//   - An Excel "sep=X" first line declaring the separator
package csvtable

import (
	"errors"
	"fmt"
)

// Format describes how a delimited text file has to be read.
//
// Example:
//
//	format := &Format{
//	    Encoding:  "UTF-8",
//	    Separator: ";",
//	    Decimal:   ",",
//	}
type Format struct {
	// Encoding of the file.
	// Common values: "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252"
	Encoding string `json:"encoding"`

	// Separator is the field delimiter character.
	// Common values: "," (comma), ";" (semicolon), "\t" (tab)
	Separator string `json:"separator"`

	// Decimal is the decimal separator of numbers: "." or ","
	Decimal string `json:"decimal"`
}

// NewFormat returns a UTF-8 Format with the passed separator
// and "." as decimal separator.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Decimal:   ".",
	}
}

// Validate checks if the Format is usable for reading.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Separator == `"` || f.Separator == "\r" || f.Separator == "\n":
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Decimal != "." && f.Decimal != ",":
		return fmt.Errorf("invalid csvtable.Format.Decimal: %q", f.Decimal)
	case f.Decimal == f.Separator:
		return fmt.Errorf("csvtable.Format.Decimal %q is the same as Separator", f.Decimal)
	}
	return nil
}

var (
	separatorNames = map[string]string{
		"comma":     ",",
		"semicolon": ";",
		"tab":       "\t",
	}
	decimalNames = map[string]string{
		"dot":   ".",
		"comma": ",",
	}
)

// ParseSeparatorName returns the separator character
// for one of the names "comma", "semicolon", or "tab".
func ParseSeparatorName(name string) (string, error) {
	sep, ok := separatorNames[name]
	if !ok {
		return "", fmt.Errorf("invalid separator name %q, expected comma, semicolon or tab", name)
	}
	return sep, nil
}

// ParseDecimalName returns the decimal separator
// for one of the names "dot" or "comma".
func ParseDecimalName(name string) (string, error) {
	dec, ok := decimalNames[name]
	if !ok {
		return "", fmt.Errorf("invalid decimal name %q, expected dot or comma", name)
	}
	return dec, nil
}

package tableview

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPolicy configures how an Adapter displays cell values.
type FormatPolicy struct {
	// DecimalPlaces is the number of fractional digits
	// every numeric cell is displayed with.
	DecimalPlaces int `json:"decimalPlaces"`

	// MissingMarker is displayed for missing cells.
	MissingMarker string `json:"missingMarker"`
}

// DefaultFormatPolicy displays numbers with 2 decimal places
// and missing values as empty strings.
func DefaultFormatPolicy() FormatPolicy {
	return FormatPolicy{DecimalPlaces: 2}
}

// Validate returns an error wrapping ErrInvalidFormatPolicy
// if DecimalPlaces is negative.
func (p FormatPolicy) Validate() error {
	if p.DecimalPlaces < 0 {
		return fmt.Errorf("%w: negative DecimalPlaces %d", ErrInvalidFormatPolicy, p.DecimalPlaces)
	}
	return nil
}

// FormatNumber formats f in fixed-point notation
// with exactly decimalPlaces fractional digits.
// Rounding is to the nearest representable result.
// Infinities are formatted as "inf" and "-inf".
func FormatNumber(f float64, decimalPlaces int) string {
	if s, ok := formatInf(f); ok {
		return s
	}
	return strconv.FormatFloat(f, 'f', decimalPlaces, 64)
}

func formatInf(f float64) (string, bool) {
	switch {
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}
	return "", false
}

package tableview

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable("", []string{"a", "b"}, nil, [][]Value{
		{Number(1.5), Text("x")},
		{Number(math.NaN()), Text("y")},
	})
	require.NoError(t, err)
	return table
}

func TestAdapter(t *testing.T) {
	a, err := NewAdapter(exampleTable(t), FormatPolicy{DecimalPlaces: 1, MissingMarker: "NaN"})
	require.NoError(t, err)

	assert.Equal(t, 2, a.RowCount())
	assert.Equal(t, 2, a.ColumnCount())
	assert.Equal(t, "1.5", a.CellText(0, 0))
	assert.Equal(t, "NaN", a.CellText(1, 0))
	assert.True(t, a.CellIsMissing(1, 0))
	assert.False(t, a.CellIsMissing(0, 0))
	assert.Equal(t, "x", a.CellText(0, 1))
	assert.Equal(t, "y", a.CellText(1, 1))
	assert.Equal(t, "a", a.ColumnLabel(0))
	assert.Equal(t, "b", a.ColumnLabel(1))
	assert.Equal(t, "1", a.RowLabel(0))
	assert.Equal(t, "2", a.RowLabel(1))
}

func TestAdapter_CellText(t *testing.T) {
	tests := []struct {
		name          string
		value         Value
		decimalPlaces int
		marker        string
		want          string
	}{
		{name: "pi 2 places", value: Number(3.14159), decimalPlaces: 2, want: "3.14"},
		{name: "round up", value: Number(3.146), decimalPlaces: 2, want: "3.15"},
		{name: "zero places", value: Number(3.0), decimalPlaces: 0, want: "3"},
		{name: "zero places rounding", value: Number(2.7), decimalPlaces: 0, want: "3"},
		{name: "pad fraction", value: Number(1), decimalPlaces: 3, want: "1.000"},
		{name: "negative", value: Number(-12.345), decimalPlaces: 1, want: "-12.3"},
		{name: "large", value: Number(1234567.891), decimalPlaces: 2, want: "1234567.89"},
		{name: "infinity", value: Number(math.Inf(1)), decimalPlaces: 2, want: "inf"},
		{name: "negative infinity", value: Number(math.Inf(-1)), decimalPlaces: 0, want: "-inf"},
		{name: "parsed infinity", value: NewValueParser().ParseValue("Infinity"), decimalPlaces: 2, want: "inf"},
		{name: "half to even binary", value: Number(2.675), decimalPlaces: 2, want: "2.67"},
		{name: "negative zero", value: Number(-0.001), decimalPlaces: 2, want: "-0.00"},
		{name: "text unchanged", value: Text(" 3.14159 "), decimalPlaces: 2, want: " 3.14159 "},
		{name: "empty text", value: Text(""), decimalPlaces: 2, marker: "-", want: ""},
		{name: "missing default marker", value: Missing(), decimalPlaces: 2, want: ""},
		{name: "missing marker", value: Missing(), decimalPlaces: 2, marker: "n/a", want: "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := MustNewTable("", []string{"c"}, nil, [][]Value{{tt.value}})
			a := MustNewAdapter(table, FormatPolicy{DecimalPlaces: tt.decimalPlaces, MissingMarker: tt.marker})
			got := a.CellText(0, 0)
			if got != tt.want {
				t.Errorf("Adapter.CellText() = %q, want %q", got, tt.want)
			}
			if again := a.CellText(0, 0); again != got {
				t.Errorf("Adapter.CellText() not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestAdapter_CellAlignment(t *testing.T) {
	a := MustNewAdapter(exampleTable(t), DefaultFormatPolicy())
	for row := 0; row < a.RowCount(); row++ {
		for col := 0; col < a.ColumnCount(); col++ {
			assert.Equal(t, AlignTrailing, a.CellAlignment(row, col), "cell %d,%d", row, col)
		}
	}
}

func TestAdapter_RowLabel(t *testing.T) {
	table := MustNewTable("", []string{"v"}, []string{"first", "2020"}, [][]Value{{Number(1)}, {Number(2)}})
	a := MustNewAdapter(table, DefaultFormatPolicy())
	assert.Equal(t, "first", a.RowLabel(0))
	assert.Equal(t, "2020", a.RowLabel(1))
}

func TestAdapter_OutOfRange(t *testing.T) {
	a := MustNewAdapter(exampleTable(t), DefaultFormatPolicy())
	calls := map[string]func(){
		"CellText row -1":      func() { a.CellText(-1, 0) },
		"CellText row 2":       func() { a.CellText(2, 0) },
		"CellText col 2":       func() { a.CellText(0, 2) },
		"CellAlignment col -1": func() { a.CellAlignment(0, -1) },
		"CellIsMissing row 5":  func() { a.CellIsMissing(5, 0) },
		"RowLabel 2":           func() { a.RowLabel(2) },
		"ColumnLabel 2":        func() { a.ColumnLabel(2) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value %v is not an error", r)
				assert.True(t, errors.Is(err, ErrIndexOutOfRange), "got %s", err)
			}()
			call()
		})
	}
}

func TestNewAdapter_Errors(t *testing.T) {
	_, err := NewAdapter(nil, DefaultFormatPolicy())
	assert.ErrorIs(t, err, ErrNilTable)

	_, err = NewAdapter(exampleTable(t), FormatPolicy{DecimalPlaces: -1})
	assert.ErrorIs(t, err, ErrInvalidFormatPolicy)
}

func ExampleAdapter() {
	table := MustNewTable("", []string{"a", "b"}, nil, [][]Value{
		{Number(1.5), Text("x")},
		{Missing(), Text("y")},
	})
	a := MustNewAdapter(table, FormatPolicy{DecimalPlaces: 1, MissingMarker: "?"})
	for row := 0; row < a.RowCount(); row++ {
		fmt.Print(a.RowLabel(row))
		for col := 0; col < a.ColumnCount(); col++ {
			fmt.Printf(" %s=%s", a.ColumnLabel(col), a.CellText(row, col))
		}
		fmt.Println()
	}

	// Output:
	// 1 a=1.5 b=x
	// 2 a=? b=y
}

package summary

import (
	"math"

	"github.com/domonda/go-tableview"
)

// Type of a column derived from its values.
type Type string

const (
	TypeInt64   Type = "int64"
	TypeFloat64 Type = "float64"
	TypeObject  Type = "object"
)

func (t Type) IsNumeric() bool {
	return t == TypeInt64 || t == TypeFloat64
}

// ColumnType returns TypeObject for columns with texts or without rows,
// TypeInt64 for columns of whole numbers without missing values,
// and TypeFloat64 for all other columns.
func ColumnType(table *tableview.Table, col int) Type {
	if table.NumRows() == 0 {
		return TypeObject
	}
	whole := true
	for row := range table.NumRows() {
		v := table.Value(row, col)
		switch {
		case v.IsText():
			return TypeObject
		case v.IsMissing():
			whole = false
		default:
			f, _ := v.Float()
			if f != math.Trunc(f) || math.IsInf(f, 0) {
				whole = false
			}
		}
	}
	if whole {
		return TypeInt64
	}
	return TypeFloat64
}

// NonMissingCount returns the number of values in col that are not missing.
func NonMissingCount(table *tableview.Table, col int) int {
	n := 0
	for row := range table.NumRows() {
		if !table.Value(row, col).IsMissing() {
			n++
		}
	}
	return n
}

// InfoColumns are the column labels of Info results.
var InfoColumns = []string{"Column name", "Column type", "Non-null count"}

// Info returns a table with one row per column of table
// holding the column label, its Type, and its NonMissingCount.
func Info(table *tableview.Table) *tableview.Table {
	rows := make([][]tableview.Value, table.NumCols())
	for col := range rows {
		rows[col] = []tableview.Value{
			tableview.Text(table.ColumnLabel(col)),
			tableview.Text(string(ColumnType(table, col))),
			tableview.Number(float64(NonMissingCount(table, col))),
		}
	}
	return tableview.MustNewTable(table.Title(), InfoColumns, nil, rows)
}

// InfoPolicy returns the format policy Info results
// are displayed with, showing counts without decimal places.
func InfoPolicy() tableview.FormatPolicy {
	return tableview.FormatPolicy{DecimalPlaces: 0}
}

// Package summary computes descriptive statistics
// and column information of tableview.Table snapshots.
//
// Results are tables themselves, so they are displayed
// with the same tableview.Adapter as the data they describe.
package summary

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/domonda/go-tableview"
)

// ErrNoColumns is returned when describing a table without columns.
var ErrNoColumns = errors.New("cannot describe a table without columns")

// Row labels of Describe results.
var (
	NumericStats = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	TextStats    = []string{"count", "unique", "top", "freq"}
)

// DescribePolicy returns the format policy
// statistics are displayed with.
func DescribePolicy() tableview.FormatPolicy {
	return tableview.FormatPolicy{DecimalPlaces: 3}
}

// Describe returns a table with one column per numeric column
// of table and the NumericStats as rows.
//
// Missing values are not counted and do not take part in any statistic.
// std is the sample standard deviation, the quartiles interpolate
// linearly between the two closest values.
// Statistics that are undefined for the number of values are missing.
//
// If table has no numeric column then the text columns
// are described with the TextStats instead.
func Describe(table *tableview.Table) (*tableview.Table, error) {
	if table == nil {
		return nil, tableview.ErrNilTable
	}
	if table.NumCols() == 0 {
		return nil, ErrNoColumns
	}
	var numericCols []int
	for col := range table.NumCols() {
		if ColumnType(table, col).IsNumeric() {
			numericCols = append(numericCols, col)
		}
	}
	if len(numericCols) > 0 {
		return describeColumns(table, numericCols, NumericStats, describeNumbers)
	}
	allCols := make([]int, table.NumCols())
	for col := range allCols {
		allCols[col] = col
	}
	return describeColumns(table, allCols, TextStats, describeTexts)
}

func describeColumns(table *tableview.Table, cols []int, stats []string, describe func([]tableview.Value) []tableview.Value) (*tableview.Table, error) {
	labels := make([]string, len(cols))
	rows := make([][]tableview.Value, len(stats))
	for i := range rows {
		rows[i] = make([]tableview.Value, len(cols))
	}
	for i, col := range cols {
		labels[i] = table.ColumnLabel(col)
		for s, v := range describe(columnValues(table, col)) {
			rows[s][i] = v
		}
	}
	return tableview.NewTable(table.Title(), labels, stats, rows)
}

func columnValues(table *tableview.Table, col int) []tableview.Value {
	values := make([]tableview.Value, table.NumRows())
	for row := range values {
		values[row] = table.Value(row, col)
	}
	return values
}

func describeNumbers(values []tableview.Value) []tableview.Value {
	x := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.Float(); ok {
			x = append(x, f)
		}
	}
	result := make([]tableview.Value, len(NumericStats)) // all missing
	result[0] = tableview.Number(float64(len(x)))
	if len(x) == 0 {
		return result
	}
	slices.Sort(x)
	result[1] = tableview.Number(stat.Mean(x, nil))
	if len(x) > 1 {
		result[2] = tableview.Number(stat.StdDev(x, nil))
	}
	result[3] = tableview.Number(floats.Min(x))
	result[4] = tableview.Number(Quantile(x, 0.25))
	result[5] = tableview.Number(Quantile(x, 0.5))
	result[6] = tableview.Number(Quantile(x, 0.75))
	result[7] = tableview.Number(floats.Max(x))
	return result
}

func describeTexts(values []tableview.Value) []tableview.Value {
	var (
		count  int
		counts = make(map[string]int)
		order  []string
	)
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		count++
		s := v.String()
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	result := make([]tableview.Value, len(TextStats))
	result[0] = tableview.Number(float64(count))
	result[1] = tableview.Number(float64(len(order)))
	if count == 0 {
		return result
	}
	top := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[top] {
			top = s
		}
	}
	result[2] = tableview.Text(top)
	result[3] = tableview.Number(float64(counts[top]))
	return result
}

// Quantile returns the q-quantile of the ascending sorted values x
// interpolating linearly between the two closest ranks.
// It returns NaN for empty x.
func Quantile(x []float64, q float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	pos := q * float64(len(x)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return x[lo]
	}
	return x[lo] + (x[hi]-x[lo])*(pos-float64(lo))
}

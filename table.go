package tableview

import (
	"fmt"
	"slices"
	"strconv"
)

var _ View = new(Table)

// Table is an immutable snapshot of a rectangular grid of cell values
// with column labels and optional row labels.
//
// A Table never changes after NewTable returned it,
// so it can be read concurrently by any number of goroutines.
// Operations like DropMissingRows return a new Table.
type Table struct {
	title     string
	columns   []string
	rowLabels []string // nil means synthetic 1-based ordinals
	rows      [][]Value
}

// NewTable returns a Table holding copies of the passed slices.
//
// Every row must have exactly len(columns) cells,
// else an error wrapping ErrRaggedRows is returned.
// Column labels don't have to be unique.
//
// If rowLabels is nil then rows are labeled with their
// 1-based position, else rowLabels must have one label per row.
func NewTable(title string, columns, rowLabels []string, rows [][]Value) (*Table, error) {
	if rowLabels != nil && len(rowLabels) != len(rows) {
		return nil, fmt.Errorf("%d row labels for %d rows", len(rowLabels), len(rows))
	}
	t := &Table{
		title:     title,
		columns:   slices.Clone(columns),
		rowLabels: slices.Clone(rowLabels),
		rows:      make([][]Value, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedRows, i, len(row), len(columns))
		}
		t.rows[i] = slices.Clone(row)
	}
	return t, nil
}

// MustNewTable calls NewTable and panics on an error.
func MustNewTable(title string, columns, rowLabels []string, rows [][]Value) *Table {
	t, err := NewTable(title, columns, rowLabels, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTableFromView reads all cells of view as strings
// and types them column-wise with parser.
// A nil parser uses NewValueParser().
//
// Cells that are nil are read as empty strings,
// Value cells are kept as they are unless their column
// also holds texts, then numbers become texts like in ParseColumns.
func NewTableFromView(view View, parser *ValueParser) (*Table, error) {
	if parser == nil {
		parser = NewValueParser()
	}
	numCols := len(view.Columns())
	records := make([][]string, view.NumRows())
	typed := make(map[[2]int]Value)
	for row := range records {
		records[row] = make([]string, numCols)
		for col := range records[row] {
			switch v := view.Cell(row, col).(type) {
			case nil:
			case string:
				records[row][col] = v
			case Value:
				typed[[2]int{row, col}] = v
				records[row][col] = v.String()
			default:
				records[row][col] = fmt.Sprint(v)
			}
		}
	}
	rows, err := parser.ParseColumns(numCols, records)
	if err != nil {
		return nil, err
	}
	for pos, v := range typed {
		rows[pos[0]][pos[1]] = v
	}
	// Value cells could have put numbers into a text column
	for col := range numCols {
		if !slices.ContainsFunc(rows, func(row []Value) bool { return row[col].IsText() }) {
			continue
		}
		for row := range rows {
			if rows[row][col].IsNumber() {
				rows[row][col] = Text(records[row][col])
			}
		}
	}
	return &Table{
		title:   view.Title(),
		columns: slices.Clone(view.Columns()),
		rows:    rows,
	}, nil
}

func (t *Table) Title() string { return t.title }

// Columns returns a copy of the column labels.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

func (t *Table) NumRows() int { return len(t.rows) }
func (t *Table) NumCols() int { return len(t.columns) }

// Cell implements View by returning the Value at row and col
// or nil for invalid indices.
func (t *Table) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(t.rows) || col >= len(t.columns) {
		return nil
	}
	return t.rows[row][col]
}

// Value returns the cell value at row and col.
// It panics with an error wrapping ErrIndexOutOfRange
// for invalid indices.
func (t *Table) Value(row, col int) Value {
	t.checkRow(row)
	t.checkCol(col)
	return t.rows[row][col]
}

// ColumnLabel returns the label of column col.
// It panics with an error wrapping ErrIndexOutOfRange
// for an invalid index.
func (t *Table) ColumnLabel(col int) string {
	t.checkCol(col)
	return t.columns[col]
}

// RowLabel returns the label of row.
// Tables without row labels return the 1-based position of the row.
// It panics with an error wrapping ErrIndexOutOfRange
// for an invalid index.
func (t *Table) RowLabel(row int) string {
	t.checkRow(row)
	if t.rowLabels == nil {
		return strconv.Itoa(row + 1)
	}
	return t.rowLabels[row]
}

// HasRowLabels returns if the rows have supplied labels
// instead of synthetic ordinals.
func (t *Table) HasRowLabels() bool {
	return t.rowLabels != nil
}

// RowHasMissing returns if any cell of row is missing.
func (t *Table) RowHasMissing(row int) bool {
	t.checkRow(row)
	return slices.ContainsFunc(t.rows[row], Value.IsMissing)
}

// WithTitle returns a Table with the same content and a different title.
func (t *Table) WithTitle(title string) *Table {
	c := *t
	c.title = title
	return &c
}

// DropMissingRows returns a Table without the rows
// that have at least one missing value.
//
// Kept rows keep their labels, so a row that was shown as "3"
// is still shown as "3" after rows before it have been dropped.
// If no row has a missing value, t itself is returned.
func (t *Table) DropMissingRows() *Table {
	keep := make([]int, 0, len(t.rows))
	for row := range t.rows {
		if !t.RowHasMissing(row) {
			keep = append(keep, row)
		}
	}
	if len(keep) == len(t.rows) {
		return t
	}
	c := &Table{
		title:     t.title,
		columns:   t.columns,
		rowLabels: make([]string, len(keep)),
		rows:      make([][]Value, len(keep)),
	}
	for i, row := range keep {
		c.rowLabels[i] = t.RowLabel(row)
		c.rows[i] = t.rows[row]
	}
	return c
}

func (t *Table) checkRow(row int) {
	if row < 0 || row >= len(t.rows) {
		panicOutOfRange("row", row, len(t.rows))
	}
}

func (t *Table) checkCol(col int) {
	if col < 0 || col >= len(t.columns) {
		panicOutOfRange("column", col, len(t.columns))
	}
}

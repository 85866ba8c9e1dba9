package tableview

// Adapter answers the queries of a grid renderer
// about a Table snapshot displayed with a FormatPolicy.
//
// Methods only look up the requested cell, they never
// scan or copy the table, so a renderer can query just
// the cells it is about to paint.
//
// An Adapter is immutable. To display a different table
// or with a different policy create a new Adapter.
// Indices outside of RowCount and ColumnCount are
// programming errors and cause a panic with an error
// wrapping ErrIndexOutOfRange.
type Adapter struct {
	table  *Table
	policy FormatPolicy
}

// NewAdapter returns an Adapter for table displayed with policy.
func NewAdapter(table *Table, policy FormatPolicy) (*Adapter, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{table: table, policy: policy}, nil
}

// MustNewAdapter calls NewAdapter and panics on an error.
func MustNewAdapter(table *Table, policy FormatPolicy) *Adapter {
	a, err := NewAdapter(table, policy)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Adapter) Table() *Table        { return a.table }
func (a *Adapter) Policy() FormatPolicy { return a.policy }
func (a *Adapter) RowCount() int        { return a.table.NumRows() }
func (a *Adapter) ColumnCount() int     { return a.table.NumCols() }

// CellText returns the display text of a cell.
// Numbers are formatted with the policy's DecimalPlaces,
// missing cells return the policy's MissingMarker,
// texts are returned unchanged.
func (a *Adapter) CellText(row, col int) string {
	v := a.table.Value(row, col)
	switch v.Kind() {
	case KindNumber:
		return FormatNumber(v.num, a.policy.DecimalPlaces)
	case KindText:
		return v.text
	}
	return a.policy.MissingMarker
}

// CellAlignment returns AlignTrailing for every cell,
// texts included.
func (a *Adapter) CellAlignment(row, col int) Alignment {
	a.table.Value(row, col) // bounds check
	return AlignTrailing
}

// CellIsMissing returns if the cell holds a missing value
// so the renderer can highlight it.
func (a *Adapter) CellIsMissing(row, col int) bool {
	return a.table.Value(row, col).IsMissing()
}

// RowLabel returns the label shown in the header of row.
// Rows without supplied labels are numbered starting at 1.
func (a *Adapter) RowLabel(row int) string {
	return a.table.RowLabel(row)
}

// ColumnLabel returns the label shown in the header of col.
func (a *Adapter) ColumnLabel(col int) string {
	return a.table.ColumnLabel(col)
}

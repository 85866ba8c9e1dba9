package tableview

var _ View = new(StringsView)

// StringsView is a View of string cells.
// Rows may have fewer cells than Cols,
// missing cells are returned as empty strings.
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

// NewStringsView returns a StringsView using the first row
// as column titles if no cols are passed.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

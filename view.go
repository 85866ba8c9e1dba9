package tableview

// View is the read-only interface of a titled table
// with named columns and cells of any type.
//
// Cell returns nil for invalid row or column indices.
// Implementations that hold typed cells return Value,
// other implementations can return strings or any other type
// that NewTableFromView can format with fmt.Sprint.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	Cell(row, col int) any
}

package tableview

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedRows is returned when a table is constructed
	// from rows that do not all have the same number of cells
	// as there are columns.
	ErrRaggedRows = errors.New("ragged table rows")

	// ErrIndexOutOfRange wraps the panic value of Adapter
	// and Table methods called with an invalid row or column.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidFormatPolicy is returned by FormatPolicy.Validate.
	ErrInvalidFormatPolicy = errors.New("invalid format policy")

	// ErrNilTable is returned when a nil *Table is passed
	// where a table snapshot is required.
	ErrNilTable = errors.New("<nil> Table")

	// ErrNoTable is returned by Session methods
	// that need a loaded table.
	ErrNoTable = errors.New("no table loaded")
)

// ParseError describes a record of a text source
// that could not be turned into a table row.
type ParseError struct {
	Record int // 1-based index of the record
	Fields int // Number of fields found
	Cols   int // Number of columns expected
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d has %d fields, expected at most %d", e.Record, e.Fields, e.Cols)
}

func (e *ParseError) Unwrap() error { return ErrRaggedRows }

func panicOutOfRange(what string, index, length int) {
	panic(fmt.Errorf("%w: %s index %d out of bounds [0..%d)", ErrIndexOutOfRange, what, index, length))
}

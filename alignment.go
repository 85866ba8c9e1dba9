package tableview

import "strconv"

// Alignment of a cell's text within its column.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignLeading:
		return "Leading"
	case AlignTrailing:
		return "Trailing"
	}
	return "Alignment(" + strconv.Itoa(int(a)) + ")"
}

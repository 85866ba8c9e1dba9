package csvtable

import (
	"context"
	"fmt"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-tableview"
)

// LoadFile reads file with format as Table titled with the file name.
//
// A failed read never returns a partial table,
// so callers can keep displaying their previous table.
func LoadFile(ctx context.Context, file fs.FileReader, format *Format) (*tableview.Table, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	table, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("can't load %s: %w", file.Name(), err)
	}
	return table.WithTitle(file.Name()), nil
}

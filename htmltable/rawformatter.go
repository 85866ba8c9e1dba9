package htmltable

import (
	"context"
	"html/template"

	"github.com/domonda/go-tableview"
)

var (
	_ RawFormatter = RawFormatterFunc(nil)
	_ RawFormatter = Raw("")
)

// RawFormatter returns the HTML of a cell that is written without escaping.
type RawFormatter interface {
	RawHTML(ctx context.Context, a *tableview.Adapter, row, col int) (template.HTML, error)
}

type RawFormatterFunc func(ctx context.Context, a *tableview.Adapter, row, col int) (template.HTML, error)

func (f RawFormatterFunc) RawHTML(ctx context.Context, a *tableview.Adapter, row, col int) (template.HTML, error) {
	return f(ctx, a, row, col)
}

// Raw returns itself as HTML for every cell.
type Raw string

func (r Raw) RawHTML(ctx context.Context, a *tableview.Adapter, row, col int) (template.HTML, error) {
	return template.HTML(r), nil
}

// PreFormatter writes the escaped cell text in a <pre> element.
var PreFormatter RawFormatterFunc = func(ctx context.Context, a *tableview.Adapter, row, col int) (template.HTML, error) {
	return template.HTML("<pre>" + template.HTMLEscapeString(a.CellText(row, col)) + "</pre>"), nil
}

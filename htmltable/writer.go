// Package htmltable writes the content of a tableview.Adapter as HTML table.
//
// Cell texts are formatted by the adapter and HTML-escaped,
// trailing aligned cells get a right text alignment style
// and missing cells can be marked with a CSS class.
//
// Example usage:
//
//	err := htmltable.NewWriter().
//	    WithTableClass("data").
//	    WithMissingClass("missing").
//	    Write(ctx, file, adapter, "Climate data")
package htmltable

import (
	"context"
	"html/template"
	"io"
	"maps"
	"strings"

	"github.com/domonda/go-tableview"
)

// Writer writes adapters as HTML table elements.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass       string
	missingClass     string
	headerRow        bool
	columnFormatters map[int]RawFormatter
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter returns a Writer with a header row of column labels,
// no CSS classes and the default templates.
func NewWriter() *Writer {
	return &Writer{
		tableClass:       "",
		missingClass:     "",
		headerRow:        true,
		columnFormatters: make(map[int]RawFormatter),
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// Write writes the rows of a as HTML table to dest.
// The caption strings are joined with spaces.
//
// The context is checked for cancellation before every row.
func (w *Writer) Write(ctx context.Context, dest io.Writer, a *tableview.Adapter, caption ...string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	templateContext := TemplateContext{
		TableClass: w.tableClass,
		Caption:    strings.Join(caption, " "),
	}
	err := w.headerTemplate.Execute(dest, templateContext)
	if err != nil {
		return err
	}

	numCols := a.ColumnCount()
	rowContext := RowTemplateContext{
		TemplateContext: templateContext,
		Cells:           make([]CellTemplateContext, numCols),
	}

	if w.headerRow {
		rowContext.IsHeaderRow = true
		rowContext.RowIndex = -1
		for col := range numCols {
			rowContext.Cells[col] = CellTemplateContext{
				HTML: template.HTML(template.HTMLEscapeString(a.ColumnLabel(col))),
			}
		}
		err = w.rowTemplate.Execute(dest, &rowContext)
		if err != nil {
			return err
		}
	}

	rowContext.IsHeaderRow = false
	for row := range a.RowCount() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rowContext.RowIndex = row
		rowContext.RowLabel = a.RowLabel(row)
		for col := range numCols {
			cell, err := w.cellContext(ctx, a, row, col)
			if err != nil {
				return err
			}
			rowContext.Cells[col] = cell
		}
		err = w.rowTemplate.Execute(dest, &rowContext)
		if err != nil {
			return err
		}
	}

	return w.footerTemplate.Execute(dest, templateContext)
}

func (w *Writer) cellContext(ctx context.Context, a *tableview.Adapter, row, col int) (cell CellTemplateContext, err error) {
	if formatter, ok := w.columnFormatters[col]; ok {
		cell.HTML, err = formatter.RawHTML(ctx, a, row, col)
		if err != nil {
			return cell, err
		}
	} else {
		cell.HTML = template.HTML(template.HTMLEscapeString(a.CellText(row, col)))
	}
	if a.CellIsMissing(row, col) {
		cell.Class = w.missingClass
	}
	cell.AlignRight = a.CellAlignment(row, col) == tableview.AlignTrailing
	return cell, nil
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	c.columnFormatters = maps.Clone(w.columnFormatters)
	return c
}

// WithHeaderRow returns a new writer that writes
// the column labels as first row if headerRow is true.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithMissingClass returns a new writer that sets the passed
// CSS class on the <td> elements of missing cells.
func (w *Writer) WithMissingClass(missingClass string) *Writer {
	mod := w.clone()
	mod.missingClass = missingClass
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the specified column.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter RawFormatter) *Writer {
	mod := w.clone()
	if formatter == nil {
		delete(mod.columnFormatters, columnIndex)
	} else {
		mod.columnFormatters[columnIndex] = formatter
	}
	return mod
}

// WithTemplates returns a new writer using the passed templates.
// Nil templates keep the current ones.
func (w *Writer) WithTemplates(header, row, footer *template.Template) *Writer {
	mod := w.clone()
	if header != nil {
		mod.headerTemplate = header
	}
	if row != nil {
		mod.rowTemplate = row
	}
	if footer != nil {
		mod.footerTemplate = footer
	}
	return mod
}

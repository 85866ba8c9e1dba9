// Package textgrid renders a tableview.Adapter as a padded text grid
// for terminals, highlighting missing cells in red.
package textgrid

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/domonda/go-tableview"
)

// ColorMode determines when missing cells are colored.
type ColorMode int

const (
	// ColorAuto colors if the destination is a terminal supporting colors.
	ColorAuto ColorMode = iota
	// ColorAlways colors regardless of the destination.
	ColorAlways
	// ColorNever disables coloring.
	ColorNever
)

// Writer writes the header, row labels, and cell texts of an adapter
// as lines of space padded columns.
//
// Writer is immutable, all With* methods return a modified copy.
type Writer struct {
	rowLimit     int
	columnGap    string
	color        ColorMode
	missingColor termenv.Color
}

// NewWriter returns a Writer without row limit
// that colors missing cells red if the destination supports it.
func NewWriter() *Writer {
	return &Writer{
		rowLimit:     0,
		columnGap:    "  ",
		color:        ColorAuto,
		missingColor: termenv.ANSIRed,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithRowLimit returns a Writer that writes at most limit rows.
// A limit <= 0 writes all rows.
func (w *Writer) WithRowLimit(limit int) *Writer {
	mod := w.clone()
	mod.rowLimit = limit
	return mod
}

// WithColumnGap returns a Writer separating columns with gap.
func (w *Writer) WithColumnGap(gap string) *Writer {
	mod := w.clone()
	mod.columnGap = gap
	return mod
}

// WithColor returns a Writer using the passed ColorMode.
func (w *Writer) WithColor(mode ColorMode) *Writer {
	mod := w.clone()
	mod.color = mode
	return mod
}

// WithMissingColor returns a Writer coloring missing cells with color.
func (w *Writer) WithMissingColor(color termenv.Color) *Writer {
	mod := w.clone()
	mod.missingColor = color
	return mod
}

// Write writes the grid of a to dest.
//
// Only the rows up to the row limit are queried from the adapter.
// If rows were left out a final line tells how many.
func (w *Writer) Write(ctx context.Context, dest io.Writer, a *tableview.Adapter) error {
	var opts []termenv.OutputOption
	switch w.color {
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	}
	out := termenv.NewOutput(dest, opts...)

	numRows := a.RowCount()
	if w.rowLimit > 0 && numRows > w.rowLimit {
		numRows = w.rowLimit
	}
	numCols := a.ColumnCount()

	// Column 0 of the grid holds the row labels
	grid := make([][]string, 0, numRows+1)
	header := make([]string, numCols+1)
	for col := range numCols {
		header[col+1] = a.ColumnLabel(col)
	}
	grid = append(grid, header)
	for row := range numRows {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := make([]string, numCols+1)
		line[0] = a.RowLabel(row)
		for col := range numCols {
			line[col+1] = a.CellText(row, col)
		}
		grid = append(grid, line)
	}
	widths := ColumnWidths(grid, numCols+1)

	lineBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for i, line := range grid {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := i - 1 // -1 is the header
		for col, text := range line {
			if col > 0 {
				lineBuf.WriteString(w.columnGap)
			}
			var (
				align   = tableview.AlignTrailing
				missing = false
			)
			switch {
			case col == 0:
				align = tableview.AlignLeading
			case row >= 0:
				align = a.CellAlignment(row, col-1)
				missing = a.CellIsMissing(row, col-1)
			}
			pad := strings.Repeat(" ", widths[col]-utf8.RuneCountInString(text))
			if missing && text != "" {
				text = out.String(text).Foreground(w.missingColor).String()
			}
			if align == tableview.AlignTrailing {
				lineBuf.WriteString(pad)
				lineBuf.WriteString(text)
			} else {
				lineBuf.WriteString(text)
				// Don't pad the last column with trailing spaces
				if col < len(line)-1 {
					lineBuf.WriteString(pad)
				}
			}
		}
		lineBuf.WriteByte('\n')
		if _, err := out.Write(lineBuf.Bytes()); err != nil {
			return err
		}
		lineBuf.Reset()
	}

	if more := a.RowCount() - numRows; more > 0 {
		_, err := fmt.Fprintf(out, "... %d more rows\n", more)
		return err
	}
	return nil
}

// ColumnWidths returns the column widths of rows as count of UTF-8 runes.
func ColumnWidths(rows [][]string, numCols int) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for col := 0; col < numCols && col < len(row); col++ {
			widths[col] = max(widths[col], utf8.RuneCountInString(row[col]))
		}
	}
	return widths
}

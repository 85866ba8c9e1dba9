// Package exceltable reads sheets of Excel files (.xlsx, .xlsm, .xltm, .xltx)
// as tableview.Table snapshots using github.com/xuri/excelize/v2.
//
// The first row of a sheet holds the column labels,
// empty rows and columns at the edges of the sheet are ignored,
// and the sheet name becomes the table title.
// Cells are read as their raw strings and typed column-wise
// with a tableview.ValueParser like text files.
//
// Example:
//
//	file, _ := os.Open("data.xlsx")
//	defer file.Close()
//	table, err := exceltable.ReadFirstSheet(file, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Sheet: %s, Rows: %d\n", table.Title(), table.NumRows())
package exceltable

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-tableview"
)

// ReadFirstSheet reads the first sheet of the Excel data from reader.
// A nil parser uses tableview.NewValueParser().
func ReadFirstSheet(reader io.Reader, parser *tableview.ValueParser) (table *tableview.Table, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, parser)
}

// ReadSheet reads the sheet with the passed name of the Excel data from reader.
// A nil parser uses tableview.NewValueParser().
func ReadSheet(reader io.Reader, sheet string, parser *tableview.ValueParser) (table *tableview.Table, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if idx, e := f.GetSheetIndex(sheet); e != nil || idx < 0 {
		return nil, ErrSheetNotExist{SheetName: sheet}
	}
	return readSheet(f, sheet, parser)
}

// LoadFile reads the first sheet of file.
func LoadFile(ctx context.Context, file fs.FileReader, parser *tableview.ValueParser) (*tableview.Table, error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	return ReadFirstSheet(bytes.NewReader(data), parser)
}

func readSheet(f *excelize.File, sheet string, parser *tableview.ValueParser) (*tableview.Table, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	rows = trimEmptyRows(rows)
	rows = trimEmptyColumns(rows)
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	columns := make([]string, numCols)
	copy(columns, rows[0])
	return tableview.NewTableFromView(tableview.NewStringsView(sheet, rows[1:], columns...), parser)
}

func isEmptyRow(row []string) bool {
	for _, s := range row {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// trimEmptyRows removes empty rows at the top and bottom.
func trimEmptyRows(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyRow(rows[0]) {
		rows = rows[1:]
	}
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// trimEmptyColumns removes empty columns at the left and right.
func trimEmptyColumns(rows [][]string) [][]string {
	left, right := -1, 0
	for _, row := range rows {
		for col, s := range row {
			if strings.TrimSpace(s) == "" {
				continue
			}
			if left < 0 || col < left {
				left = col
			}
			right = max(right, col+1)
		}
	}
	if left < 0 {
		return nil
	}
	trimmed := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > right {
			row = row[:right]
		}
		if len(row) > left {
			trimmed[i] = row[left:]
		}
	}
	return trimmed
}

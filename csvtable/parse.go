package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-tableview"
)

// ErrNoHeader is returned for data without a header line.
var ErrNoHeader = errors.New("no header line with column names")

// Parse reads delimited text data as Table.
//
// The first non-empty line holds the column labels,
// every following non-empty line is a row.
// Rows are labeled with their 1-based position.
//
// Fields are typed column-wise: a column where every
// non-empty field is a number in format.Decimal notation
// becomes a numeric column, all other columns hold texts.
// Empty fields and usual not-available spellings like "NA"
// become missing values.
//
// Lines with fewer fields than columns are padded with missing values,
// lines with more fields return an error wrapping tableview.ErrRaggedRows.
func Parse(data []byte, format *Format) (*tableview.Table, error) {
	err := format.Validate()
	if err != nil {
		return nil, err
	}

	records, err := readRecords(data, format)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	parser := tableview.NewValueParser().WithDecimal(format.Decimal)
	rows, err := parser.ParseColumns(len(records[0]), records[1:])
	if err != nil {
		return nil, err
	}
	return tableview.NewTable("", records[0], nil, rows)
}

func readRecords(data []byte, format *Format) ([][]string, error) {
	if format.Encoding == "UTF-8" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}

	data = sanitizeUTF8(data)

	firstLine, rest, _ := bytes.Cut(data, []byte{'\n'})
	if headerSep := parseSepHeaderLine(bytes.TrimSuffix(firstLine, []byte{'\r'})); headerSep != "" {
		if headerSep != format.Separator {
			return nil, fmt.Errorf("separator '%s' in header line is different from format.Separator '%s'", headerSep, format.Separator)
		}
		data = rest
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = rune(format.Separator[0])
	r.FieldsPerRecord = -1 // checked when typing columns
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("can't read CSV: %w", err)
	}
	return records, nil
}

// parseSepHeaderLine returns the separator declared
// by an Excel style "sep=X" or "SEP=X" first line,
// optionally enclosed in double quotes.
// An empty string is returned for any other line.
func parseSepHeaderLine(line []byte) (sep string) {
	if len(line) < 5 {
		return ""
	}
	if line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}

func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			// \u00a0 is No-Break Space (NBSP)
			case '\uFFFD', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		str,
	)
}

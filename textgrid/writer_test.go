package textgrid

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-tableview"
)

func exampleAdapter(t *testing.T, policy tableview.FormatPolicy) *tableview.Adapter {
	t.Helper()
	table, err := tableview.NewTable("", []string{"a", "b"}, nil, [][]tableview.Value{
		{tableview.Number(1.5), tableview.Text("x")},
		{tableview.Missing(), tableview.Text("y")},
		{tableview.Number(-20), tableview.Text("zz")},
	})
	require.NoError(t, err)
	a, err := tableview.NewAdapter(table, policy)
	require.NoError(t, err)
	return a
}

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		writer *Writer
		policy tableview.FormatPolicy
		want   string
	}{
		{
			name:   "all rows",
			writer: NewWriter().WithColor(ColorNever),
			policy: tableview.FormatPolicy{DecimalPlaces: 1, MissingMarker: "NaN"},
			want: "" +
				"       a   b\n" +
				"1    1.5   x\n" +
				"2    NaN   y\n" +
				"3  -20.0  zz\n",
		},
		{
			name:   "row limit",
			writer: NewWriter().WithColor(ColorNever).WithRowLimit(1).WithColumnGap(" | "),
			policy: tableview.FormatPolicy{DecimalPlaces: 0},
			want: "" +
				"  | a | b\n" +
				"1 | 2 | x\n" +
				"... 2 more rows\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.writer.Write(ctx, &buf, exampleAdapter(t, tt.policy))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_Write_MissingColor(t *testing.T) {
	var buf bytes.Buffer
	policy := tableview.FormatPolicy{DecimalPlaces: 1, MissingMarker: "NaN"}
	err := NewWriter().WithColor(ColorAlways).Write(context.Background(), &buf, exampleAdapter(t, policy))
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "\x1b[", "missing cell is colored")
	assert.Contains(t, lines[2], "NaN")
	assert.NotContains(t, lines[1], "\x1b[")
}

func TestWriter_Write_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter().Write(ctx, &buf, exampleAdapter(t, tableview.DefaultFormatPolicy()))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestColumnWidths(t *testing.T) {
	widths := ColumnWidths([][]string{{"ä", "abc"}, {"xyz"}}, 2)
	assert.Equal(t, []int{3, 3}, widths)
}

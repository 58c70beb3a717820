package rowview

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/datamatrix"
	"github.com/olekukonko/tablewriter"
)

var renderHeader = []string{"Name", "Value"}

// formatValue renders a field value with the ColumnType of its column
func formatValue(col datamatrix.Column, v interface{}) string {
	if colType := col.Type(); colType != nil {
		return colType.ToString(v)
	}
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

// Render writes this RowView to w as a two-column Name/Value table, one
// line per column in the Table's declared order. Nothing is written if
// reading a field fails.
func (r *RowView) Render(w io.Writer) error {
	cols := r.table.Columns()
	data := make([][]string, 0, len(cols))
	for _, c := range cols {
		v, err := r.Get(c.Name)
		if err != nil {
			return err
		}
		data = append(data, []string{c.Name, formatValue(c.Column, v)})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(renderHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
	return nil
}

// String renders this RowView as a Name/Value table. If a field cannot be
// read, a one-line description of the failure is returned instead.
func (r *RowView) String() string {
	var res strings.Builder
	if err := r.Render(&res); err != nil {
		return fmt.Sprintf("<row %d: %s>", r.position, err)
	}
	return res.String()
}

var _ datamatrix.Row = (*RowView)(nil)

package dsv

import (
	"github.com/go-sif/datamatrix/matrix"
)

// scanRow appends a record to m, according to its schema. Values are
// coerced by the ColumnType of their column.
func scanRow(conf *ParserConf, names []string, rowStrings []string, m *matrix.Matrix) error {
	values := make(map[string]interface{}, len(names))
	for i := 0; i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			values[names[i]] = nil
			continue
		}
		values[names[i]] = colVal
	}
	return m.AppendRow(values)
}

package rowview

import (
	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
)

// FieldIterator walks the fields of a RowView. The Table's column order is
// captured when the iterator is created, so columns added to or removed from
// the Table afterwards do not affect an iteration already in progress. Each
// FieldIterator keeps its own cursor; any number of them may be active over
// the same RowView.
type FieldIterator struct {
	row     *RowView
	columns []datamatrix.NamedColumn
	next    int
}

func newFieldIterator(row *RowView) *FieldIterator {
	return &FieldIterator{row: row, columns: row.table.Columns()}
}

// HasNextField returns true iff this FieldIterator can produce another field
func (it *FieldIterator) HasNextField() bool {
	return it.next < len(it.columns)
}

// NextField returns the next (name, value) pair, reading the value through
// RowView.Get. Once every field has been produced it returns a NoMoreFieldsError.
// A failed read still advances the cursor.
func (it *FieldIterator) NextField() (string, interface{}, error) {
	if !it.HasNextField() {
		return "", nil, errors.NoMoreFieldsError{}
	}
	name := it.columns[it.next].Name
	it.next++
	value, err := it.row.Get(name)
	if err != nil {
		return name, nil, err
	}
	return name, value, nil
}

// Remaining returns the number of fields this FieldIterator has yet to produce
func (it *FieldIterator) Remaining() int {
	return len(it.columns) - it.next
}

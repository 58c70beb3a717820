package matrix

import (
	"reflect"

	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/rowview"
	"github.com/hashicorp/go-multierror"
)

// MapRows runs a MapOperation on each row of this Matrix, in position order,
// manipulating it in-place through a RowView. Errors do not stop the
// traversal; every row error is returned together.
func (m *Matrix) MapRows(fn datamatrix.MapOperation) error {
	var multierr *multierror.Error
	for i := 0; i < m.length; i++ {
		if err := fn(rowview.New(m, i)); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}

// AppendRow grows this Matrix by one row and writes values into it through a
// RowView. Fields absent from values are left nil. If any value cannot be
// written, the Matrix is shrunk back and the error is returned.
func (m *Matrix) AppendRow(values map[string]interface{}) error {
	for name := range values {
		if _, err := m.Column(name); err != nil {
			return err
		}
	}
	position := m.length
	m.resize(position + 1)
	row := rowview.New(m, position)
	for name, v := range values {
		if err := row.Set(name, v); err != nil {
			m.resize(position)
			return err
		}
	}
	return nil
}

// Duplicates returns groups of positions whose rows hold equal values in
// every column. Groups are ordered by their first position, and only groups
// with more than one member are returned.
func (m *Matrix) Duplicates() ([][]int, error) {
	type group struct {
		fields    map[string]interface{}
		positions []int
	}
	buckets := make(map[uint64][]*group)
	var groups []*group
	for _, row := range m.Rows() {
		h, err := row.Hash()
		if err != nil {
			return nil, err
		}
		fields, err := row.ToMap()
		if err != nil {
			return nil, err
		}
		var found *group
		for _, g := range buckets[h] {
			if reflect.DeepEqual(g.fields, fields) {
				found = g
				break
			}
		}
		if found == nil {
			found = &group{fields: fields}
			buckets[h] = append(buckets[h], found)
			groups = append(groups, found)
		}
		found.positions = append(found.positions, row.Position())
	}
	res := [][]int{}
	for _, g := range groups {
		if len(g.positions) > 1 {
			res = append(res, g.positions)
		}
	}
	return res, nil
}

// AppendMatrix appends every row of other to this Matrix, reading and writing
// through row views. Columns of other that this Matrix lacks fail with a
// MissingFieldError, leaving this Matrix as it was before the failing row.
func (m *Matrix) AppendMatrix(other *Matrix) error {
	for _, row := range other.Rows() {
		values, err := row.ToMap()
		if err != nil {
			return err
		}
		if err = m.AppendRow(values); err != nil {
			return err
		}
	}
	m.logger.Debug().Str("from", other.ID()).Int("rows", other.NumRows()).Msg("matrix appended")
	return nil
}

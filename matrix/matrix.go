// Package matrix provides Matrix, an in-memory column-oriented table. Each
// named column is an independent sequence of values of the Matrix's length;
// records are accessed through live row views.
package matrix

import (
	"fmt"

	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
	"github.com/go-sif/datamatrix/rowview"
	"github.com/go-sif/datamatrix/schema"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Conf configures a Matrix
type Conf struct {
	Logger *zerolog.Logger // Logger receives debug events about column lifecycle. Defaults to the global zerolog logger.
}

// Matrix is an in-memory column-oriented table. It is not safe for
// concurrent mutation; callers must serialize writes.
type Matrix struct {
	id      string
	columns []*column
	index   map[string]int
	length  int
	logger  zerolog.Logger
}

func createEmptyMatrix(length int, conf *Conf) (*Matrix, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	logger := log.Logger
	if conf != nil && conf.Logger != nil {
		logger = *conf.Logger
	}
	m := &Matrix{
		id:      id.String(),
		columns: []*column{},
		index:   make(map[string]int),
		length:  length,
	}
	m.logger = logger.With().Str("matrix", m.id).Logger()
	return m, nil
}

// CreateMatrix builds a Matrix of the given length with one column per Schema
// column, in Schema order. Every value starts out nil.
func CreateMatrix(s *schema.Schema, length int, conf *Conf) (*Matrix, error) {
	if length < 0 {
		return nil, fmt.Errorf("Matrix length must not be negative. Was: %d", length)
	}
	m, err := createEmptyMatrix(length, conf)
	if err != nil {
		return nil, err
	}
	err = s.ForEachColumn(func(name string, colType datamatrix.ColumnType) error {
		return m.AddColumn(name, colType)
	})
	if err != nil {
		return nil, err
	}
	m.logger.Debug().Int("rows", length).Int("columns", len(m.columns)).Msg("matrix created")
	return m, nil
}

// FromValues builds a Matrix of AnyColumnType columns from literal data.
// values[i] holds the values of the column named names[i]. Every problem
// with the input is reported at once.
func FromValues(names []string, values [][]interface{}, conf *Conf) (*Matrix, error) {
	var multierr *multierror.Error
	if len(names) != len(values) {
		multierr = multierror.Append(multierr, errors.ColumnLengthError{Name: "<names>", Length: len(names), Expected: len(values)})
	}
	length := 0
	if len(values) > 0 {
		length = len(values[0])
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if seen[name] {
			multierr = multierror.Append(multierr, errors.DuplicateColumnError{Name: name})
		}
		seen[name] = true
		if i < len(values) && len(values[i]) != length {
			multierr = multierror.Append(multierr, errors.ColumnLengthError{Name: name, Length: len(values[i]), Expected: length})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	m, err := createEmptyMatrix(length, conf)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := m.AddColumn(name, &datamatrix.AnyColumnType{}); err != nil {
			return nil, err
		}
		copy(m.columns[i].values, values[i])
	}
	return m, nil
}

// ID returns the unique identifier assigned to this Matrix at creation
func (m *Matrix) ID() string {
	return m.id
}

// NumRows returns the length shared by every column of this Matrix
func (m *Matrix) NumRows() int {
	return m.length
}

// NumColumns returns the number of columns in this Matrix
func (m *Matrix) NumColumns() int {
	return len(m.columns)
}

// Columns returns the columns of this Matrix, in declared order. The returned slice is a fresh copy.
func (m *Matrix) Columns() []datamatrix.NamedColumn {
	res := make([]datamatrix.NamedColumn, len(m.columns))
	for i, c := range m.columns {
		res[i] = datamatrix.NamedColumn{Name: c.name, Column: c}
	}
	return res
}

// ColumnNames returns the names of the columns of this Matrix, in declared order
func (m *Matrix) ColumnNames() []string {
	res := make([]string, len(m.columns))
	for i, c := range m.columns {
		res[i] = c.name
	}
	return res
}

// Column returns the named column, or a MissingFieldError
func (m *Matrix) Column(name string) (datamatrix.Column, error) {
	idx, ok := m.index[name]
	if !ok {
		return nil, errors.MissingFieldError{Name: name}
	}
	return m.columns[idx], nil
}

// Schema returns a Schema describing the current columns of this Matrix
func (m *Matrix) Schema() *schema.Schema {
	s := schema.CreateSchema()
	for _, c := range m.columns {
		_, _ = s.CreateColumn(c.name, c.colType)
	}
	return s
}

// AddColumn appends a new column of nil values to this Matrix
func (m *Matrix) AddColumn(name string, colType datamatrix.ColumnType) error {
	if _, exists := m.index[name]; exists {
		return errors.DuplicateColumnError{Name: name}
	}
	m.index[name] = len(m.columns)
	m.columns = append(m.columns, createColumn(name, colType, m.length))
	m.logger.Debug().Str("column", name).Msg("column added")
	return nil
}

// RemoveColumn removes the named column from this Matrix, returning false if it did not exist.
// RowViews bound to this Matrix stop producing the column immediately.
func (m *Matrix) RemoveColumn(name string) bool {
	idx, ok := m.index[name]
	if !ok {
		return false
	}
	m.columns = append(m.columns[:idx], m.columns[idx+1:]...)
	delete(m.index, name)
	for i := idx; i < len(m.columns); i++ {
		m.index[m.columns[i].name] = i
	}
	m.logger.Debug().Str("column", name).Msg("column removed")
	return true
}

// Resize changes the length of every column, truncating or padding with nil values.
// RowViews bound to positions beyond the new length fail with an IndexOutOfRangeError.
func (m *Matrix) Resize(length int) {
	if length < 0 {
		length = 0
	}
	m.logger.Debug().Int("from", m.length).Int("to", length).Msg("matrix resized")
	m.resize(length)
}

func (m *Matrix) resize(length int) {
	for _, c := range m.columns {
		c.resize(length)
	}
	m.length = length
}

// Row returns a live RowView over the given position. The position is not validated.
func (m *Matrix) Row(position int) *rowview.RowView {
	return rowview.New(m, position)
}

// Rows returns one RowView per position of this Matrix
func (m *Matrix) Rows() []*rowview.RowView {
	res := make([]*rowview.RowView, m.length)
	for i := range res {
		res[i] = rowview.New(m, i)
	}
	return res
}

// Package rowview provides RowView, a live accessor which exposes a single
// position of a column-oriented Table as if it were its own record. A RowView
// copies nothing: reads fetch from the Table and writes go straight to it.
package rowview

import (
	"time"

	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
	"github.com/spf13/cast"
)

// RowView is a projection of one position across every column of a Table.
// Two RowViews over the same Table and position are interchangeable.
// The position is never validated by RowView; an invalid position surfaces
// as the Table's IndexOutOfRangeError when a field is accessed.
type RowView struct {
	table    datamatrix.Table
	position int
}

// New binds a RowView to position within table
func New(table datamatrix.Table, position int) *RowView {
	return &RowView{table: table, position: position}
}

// Position returns the slot within every column that this RowView addresses
func (r *RowView) Position() int {
	return r.position
}

// Table returns the Table this RowView reads from and writes to
func (r *RowView) Table() datamatrix.Table {
	return r.table
}

// Get returns the value of the named field at this RowView's position.
// Errors from the Table are returned unchanged.
func (r *RowView) Get(name string) (interface{}, error) {
	col, err := r.table.Column(name)
	if err != nil {
		return nil, err
	}
	return col.Get(r.position)
}

// Set overwrites the value of the named field at this RowView's position.
// Set never creates columns: an unknown name fails with the Table's
// MissingFieldError and leaves the Table untouched.
func (r *RowView) Set(name string, value interface{}) error {
	col, err := r.table.Column(name)
	if err != nil {
		return err
	}
	return col.Set(r.position, value)
}

// Field returns an attribute-style accessor for the named field
func (r *RowView) Field(name string) Field {
	return Field{row: r, name: name}
}

// Fields returns a fresh, independent iterator over this RowView's fields
func (r *RowView) Fields() datamatrix.FieldIterator {
	return newFieldIterator(r)
}

// ForEachField calls fn with each (name, value) pair in column order,
// stopping at the first error returned by a read or by fn
func (r *RowView) ForEachField(fn func(name string, value interface{}) error) error {
	iter := newFieldIterator(r)
	for iter.HasNextField() {
		name, value, err := iter.NextField()
		if err != nil {
			return err
		}
		if err = fn(name, value); err != nil {
			return err
		}
	}
	return nil
}

// ToMap reads every field of this RowView into a map keyed by column name
func (r *RowView) ToMap() (map[string]interface{}, error) {
	res := make(map[string]interface{}, r.table.NumColumns())
	err := r.ForEachField(func(name string, value interface{}) error {
		res[name] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// IsNil returns true iff the named field holds nil. If an error occurs, this function will return false.
func (r *RowView) IsNil(name string) bool {
	v, err := r.Get(name)
	return err == nil && v == nil
}

// SetNil sets the named field to nil
func (r *RowView) SetNil(name string) error {
	return r.Set(name, nil)
}

func (r *RowView) convert(name string, typeName string, conv func(v interface{}) (interface{}, error)) (interface{}, error) {
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	res, err := conv(v)
	if err != nil {
		return nil, errors.IncompatibleValueError{Type: typeName, Value: v, Err: err}
	}
	return res, nil
}

// GetString retrieves the named field as a string
func (r *RowView) GetString(name string) (string, error) {
	v, err := r.convert(name, "string", func(v interface{}) (interface{}, error) { return cast.ToStringE(v) })
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// GetInt64 retrieves the named field as an int64
func (r *RowView) GetInt64(name string) (int64, error) {
	v, err := r.convert(name, "int64", func(v interface{}) (interface{}, error) { return datamatrix.ToInt64(v) })
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// GetFloat64 retrieves the named field as a float64
func (r *RowView) GetFloat64(name string) (float64, error) {
	v, err := r.convert(name, "float64", func(v interface{}) (interface{}, error) { return cast.ToFloat64E(v) })
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// GetBool retrieves the named field as a bool
func (r *RowView) GetBool(name string) (bool, error) {
	v, err := r.convert(name, "bool", func(v interface{}) (interface{}, error) { return cast.ToBoolE(v) })
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetTime retrieves the named field as a time.Time
func (r *RowView) GetTime(name string) (time.Time, error) {
	v, err := r.convert(name, "time", func(v interface{}) (interface{}, error) { return cast.ToTimeE(v) })
	if err != nil {
		return time.Time{}, err
	}
	return v.(time.Time), nil
}

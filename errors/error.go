package errors

import (
	"errors"
	"fmt"
)

// MissingFieldError occurs when a Table has no column with the requested name
type MissingFieldError struct{ Name string }

// Error returns a textual representation of this MissingFieldError
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("Table does not contain column with name %s", e.Name)
}

// IndexOutOfRangeError occurs when a position is outside the bounds of a Column
type IndexOutOfRangeError struct {
	Name   string
	Index  int
	Length int
}

// Error returns a textual representation of this IndexOutOfRangeError
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Index %d is out of range for column %s of length %d", e.Index, e.Name, e.Length)
}

// NoMoreFieldsError signals that a FieldIterator has produced every field. It is not a failure.
type NoMoreFieldsError struct{}

// Error returns a textual representation of this NoMoreFieldsError
func (e NoMoreFieldsError) Error() string {
	return "No more fields"
}

// DuplicateColumnError occurs when a column name is registered twice
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s already exists", e.Name)
}

// ColumnLengthError occurs when a column's length differs from the length of its Table
type ColumnLengthError struct {
	Name     string
	Length   int
	Expected int
}

// Error returns a textual representation of this ColumnLengthError
func (e ColumnLengthError) Error() string {
	return fmt.Sprintf("Column %s has length %d; expected %d", e.Name, e.Length, e.Expected)
}

// IncompatibleValueError occurs when a value cannot be converted to a ColumnType
type IncompatibleValueError struct {
	Type  string
	Value interface{}
	Err   error
}

// Error returns a textual representation of this IncompatibleValueError
func (e IncompatibleValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Value %#v is not compatible with column type %s: %s", e.Value, e.Type, e.Err)
	}
	return fmt.Sprintf("Value %#v is not compatible with column type %s", e.Value, e.Type)
}

// Unwrap returns the conversion error underlying this IncompatibleValueError, if any
func (e IncompatibleValueError) Unwrap() error {
	return e.Err
}

// IsMissingField returns true iff err is, or wraps, a MissingFieldError
func IsMissingField(err error) bool {
	var target MissingFieldError
	return errors.As(err, &target)
}

// IsIndexOutOfRange returns true iff err is, or wraps, an IndexOutOfRangeError
func IsIndexOutOfRange(err error) bool {
	var target IndexOutOfRangeError
	return errors.As(err, &target)
}

// IsNoMoreFields returns true iff err is, or wraps, a NoMoreFieldsError
func IsNoMoreFields(err error) bool {
	var target NoMoreFieldsError
	return errors.As(err, &target)
}

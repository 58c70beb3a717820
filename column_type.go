package datamatrix

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-sif/datamatrix/errors"
	"github.com/spf13/cast"
)

// ColumnType is an interface which is implemented to define the values a Column accepts.
// datamatrix provides a variety of built-in types in this package.
type ColumnType interface {
	Name() string                              // Name returns a short, human-readable name for this type
	Coerce(v interface{}) (interface{}, error) // Coerce converts v into this type's canonical Go representation
	ToString(v interface{}) string             // ToString produces a string representation of a value of this type
}

const nilString = "nil"

func incompatible(colType ColumnType, v interface{}, err error) error {
	return errors.IncompatibleValueError{Type: colType.Name(), Value: v, Err: err}
}

// AnyColumnType is a column type which stores values of any Go type, unchanged
type AnyColumnType struct{}

// Name returns the name of this type
func (b *AnyColumnType) Name() string {
	return "any"
}

// Coerce returns v unchanged
func (b *AnyColumnType) Coerce(v interface{}) (interface{}, error) {
	return v, nil
}

// ToString produces a string representation of an AnyColumnType value
func (b *AnyColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%v", v)
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns the name of this type
func (b *BoolColumnType) Name() string {
	return "bool"
}

// Coerce converts v to a bool
func (b *BoolColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	bval, err := cast.ToBoolE(v)
	if err != nil {
		return nil, incompatible(b, v, err)
	}
	return bval, nil
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%t", v)
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name returns the name of this type
func (b *Int64ColumnType) Name() string {
	return "int64"
}

// Coerce converts v to an int64
func (b *Int64ColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	ival, err := ToInt64(v)
	if err != nil {
		return nil, incompatible(b, v, err)
	}
	return ival, nil
}

// ToInt64 converts v to an int64. Strings are always read as base-10 integers,
// so "010" is 10 and "0x1F" is rejected.
func ToInt64(v interface{}) (int64, error) {
	if s, ok := v.(string); ok {
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	}
	return cast.ToInt64E(v)
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%d", v)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name returns the name of this type
func (b *Float64ColumnType) Name() string {
	return "float64"
}

// Coerce converts v to a float64
func (b *Float64ColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	fval, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, incompatible(b, v, err)
	}
	return fval, nil
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%g", v)
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// Name returns the name of this type
func (b *StringColumnType) Name() string {
	return "string"
}

// Coerce converts v to a string
func (b *StringColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	sval, err := cast.ToStringE(v)
	if err != nil {
		return nil, incompatible(b, v, err)
	}
	return sval, nil
}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%s", v)
}

// TimeColumnType is a column type which stores a time.Time value. Strings are parsed
// with Format when it is set, and with any layout spf13/cast recognizes otherwise.
type TimeColumnType struct {
	Format string
}

// Name returns the name of this type
func (b *TimeColumnType) Name() string {
	return "time"
}

// Coerce converts v to a time.Time
func (b *TimeColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && b.Format != "" {
		tval, err := time.Parse(b.Format, s)
		if err != nil {
			return nil, incompatible(b, v, err)
		}
		return tval, nil
	}
	tval, err := cast.ToTimeE(v)
	if err != nil {
		return nil, incompatible(b, v, err)
	}
	return tval, nil
}

// ToString produces a string representation of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	tval, ok := v.(time.Time)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	format := b.Format
	if format == "" {
		format = time.RFC3339
	}
	return tval.Format(format)
}

// ColumnTypeByName returns the built-in ColumnType with the given name, as reported by Name()
func ColumnTypeByName(name string) (ColumnType, error) {
	switch name {
	case "any", "":
		return &AnyColumnType{}, nil
	case "bool":
		return &BoolColumnType{}, nil
	case "int64", "int":
		return &Int64ColumnType{}, nil
	case "float64", "float":
		return &Float64ColumnType{}, nil
	case "string":
		return &StringColumnType{}, nil
	case "time":
		return &TimeColumnType{}, nil
	default:
		return nil, fmt.Errorf("unknown column type %s", name)
	}
}

package matrix

import (
	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
)

// column stores the values of one named column. Values are kept in the
// canonical representation of colType.
type column struct {
	name    string
	colType datamatrix.ColumnType
	values  []interface{}
}

func createColumn(name string, colType datamatrix.ColumnType, length int) *column {
	if colType == nil {
		colType = &datamatrix.AnyColumnType{}
	}
	return &column{name: name, colType: colType, values: make([]interface{}, length)}
}

// Type returns the ColumnType of this column
func (c *column) Type() datamatrix.ColumnType {
	return c.colType
}

// Len returns the number of values stored in this column
func (c *column) Len() int {
	return len(c.values)
}

func (c *column) checkBounds(position int) error {
	if position < 0 || position >= len(c.values) {
		return errors.IndexOutOfRangeError{Name: c.name, Index: position, Length: len(c.values)}
	}
	return nil
}

// Get returns the value stored at position
func (c *column) Get(position int) (interface{}, error) {
	if err := c.checkBounds(position); err != nil {
		return nil, err
	}
	return c.values[position], nil
}

// Set coerces value to this column's type and stores it at position. The
// stored value is left unchanged if coercion fails.
func (c *column) Set(position int, value interface{}) error {
	if err := c.checkBounds(position); err != nil {
		return err
	}
	v, err := c.colType.Coerce(value)
	if err != nil {
		return err
	}
	c.values[position] = v
	return nil
}

func (c *column) resize(length int) {
	if length <= len(c.values) {
		for i := length; i < len(c.values); i++ {
			c.values[i] = nil
		}
		c.values = c.values[:length]
		return
	}
	c.values = append(c.values, make([]interface{}, length-len(c.values))...)
}

package datamatrix

// Column is one named, ordered sequence of values within a Table.
// Implementations report positions outside [0, Len()) with an
// errors.IndexOutOfRangeError.
type Column interface {
	Type() ColumnType                          // Type returns the ColumnType of this Column
	Len() int                                  // Len returns the number of values stored in this Column
	Get(position int) (interface{}, error)     // Get returns the value stored at position
	Set(position int, value interface{}) error // Set overwrites the value stored at position, in place
}

// NamedColumn pairs a Column with the name it is registered under in a Table
type NamedColumn struct {
	Name   string
	Column Column
}

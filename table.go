package datamatrix

// Table is a column-oriented store which owns named, equal-length columns.
// Columns() must report columns in their declared order, and must return a
// fresh slice on every call so that callers may hold it as a snapshot of the
// column order. Column() fails with an errors.MissingFieldError when no
// column with the given name exists.
type Table interface {
	Columns() []NamedColumn
	Column(name string) (Column, error)
	NumRows() int
	NumColumns() int
}

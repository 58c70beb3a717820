package rowview

// Field is an attribute-style accessor for one named field of a RowView.
// It holds no value: Value and Set forward to RowView.Get and RowView.Set.
type Field struct {
	row  *RowView
	name string
}

// Name returns the column name this Field addresses
func (f Field) Name() string {
	return f.name
}

// Value returns the current value of this Field
func (f Field) Value() (interface{}, error) {
	return f.row.Get(f.name)
}

// Set overwrites the value of this Field in the underlying Table
func (f Field) Set(value interface{}) error {
	return f.row.Set(f.name, value)
}

package datamatrix

// Row is a live, position-bound view over all columns of a Table. It holds
// no data of its own: every read fetches from the Table and every write
// immediately mutates the Table's column at Position().
type Row interface {
	Position() int                                                    // Position returns the slot within every column that this Row addresses
	Get(name string) (interface{}, error)                             // Get returns the value of the named field at this Row's position
	Set(name string, value interface{}) error                         // Set overwrites the value of the named field at this Row's position
	Fields() FieldIterator                                            // Fields returns a fresh iterator over (name, value) pairs, in column order
	ForEachField(fn func(name string, value interface{}) error) error // ForEachField calls fn for each field, in column order
	String() string                                                   // String renders this Row as a Name/Value table
}

// FieldIterator produces the (name, value) pairs of a Row. The column order
// is captured when the iterator is created.
type FieldIterator interface {
	HasNextField() bool
	// NextField returns an errors.NoMoreFieldsError once all fields have been produced
	NextField() (name string, value interface{}, err error)
}

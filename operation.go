package datamatrix

// MapOperation - A generic function for manipulating Rows in-place
type MapOperation func(row Row) error

// Package datamatrix contains the core contracts of datamatrix, a column-oriented table library
// whose records are read and written through live row views. This root package defines the types
// shared by the storage engine (package matrix), the row view (package rowview) and the parsers,
// and is a good overview of the library's key concepts.
package datamatrix

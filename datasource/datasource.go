// Package datasource loads data into matrices. Parsers for specific formats live in
// datasource/parser; the file and memory packages feed them from disk or from byte slices.
package datasource

import (
	"io"

	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/schema"
)

// Parser reads one stream of data into a new Matrix whose columns follow a Schema
type Parser interface {
	Parse(r io.Reader, s *schema.Schema) (*matrix.Matrix, error)
}

// LoadAll parses each reader in turn and appends its rows, in order, to a single Matrix
func LoadAll(parser Parser, s *schema.Schema, readers ...io.Reader) (*matrix.Matrix, error) {
	var res *matrix.Matrix
	for _, r := range readers {
		m, err := parser.Parse(r, s)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = m
			continue
		}
		if err = res.AppendMatrix(m); err != nil {
			return nil, err
		}
	}
	if res == nil {
		return matrix.CreateMatrix(s, 0, nil)
	}
	return res, nil
}

// Package memory loads a Matrix from in-memory chunks of encoded data
package memory

import (
	"bytes"
	"io"

	"github.com/go-sif/datamatrix/datasource"
	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/schema"
)

// Load parses each chunk of data into a single Matrix, in order
func Load(data [][]byte, parser datasource.Parser, s *schema.Schema) (*matrix.Matrix, error) {
	readers := make([]io.Reader, len(data))
	for i, chunk := range data {
		readers[i] = bytes.NewReader(chunk)
	}
	return datasource.LoadAll(parser, s, readers...)
}

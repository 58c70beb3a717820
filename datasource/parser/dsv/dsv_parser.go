package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/schema"
	"github.com/pkg/errors"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int          // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Delimiter   rune         // The delimiter separating columns in the file. Defaults to ,
	Comment     rune         // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string       // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	Matrix      *matrix.Conf // Configuration for the Matrix produced by Parse. Optional.
}

// Parser produces matrices from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse reads DSV data into a new Matrix with one column per Schema column.
// Every record must have exactly one field per column.
func (p *Parser) Parse(r io.Reader, s *schema.Schema) (*matrix.Matrix, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = s.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "unable to skip header line")
		}
	}

	m, err := matrix.CreateMatrix(s, 0, p.conf.Matrix)
	if err != nil {
		return nil, err
	}
	names := s.ColumnNames()
	for {
		rowStrings, err := reader.Read()
		if err == io.EOF {
			return m, nil
		} else if err != nil {
			return nil, errors.Wrap(err, "unable to read record")
		}
		if err = scanRow(p.conf, names, rowStrings, m); err != nil {
			line, _ := reader.FieldPos(0)
			return nil, errors.Wrapf(err, "unable to parse line %d", line)
		}
	}
}

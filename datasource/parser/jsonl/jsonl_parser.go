package jsonl

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/schema"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int          // The number of lines to ignore from the beginning of the data. Defaults to 0.
	MaxBufferSize int          // Maximum size in bytes of the buffer used to read lines
	Matrix        *matrix.Conf // Configuration for the Matrix produced by Parse. Optional.
}

// Parser produces matrices from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse reads JSONL data into a new Matrix with one column per Schema column. Blank lines are skipped.
func (p *Parser) Parse(r io.Reader, s *schema.Schema) (*matrix.Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	line := 0
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		line++
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "unable to skip header line")
		}
	}

	m, err := matrix.CreateMatrix(s, 0, p.conf.Matrix)
	if err != nil {
		return nil, err
	}
	names := s.ColumnNames()
	for scanner.Scan() {
		line++
		rowString := scanner.Text()
		if strings.TrimSpace(rowString) == "" {
			continue
		}
		if !gjson.Valid(rowString) {
			return nil, errors.Errorf("line %d is not valid JSON", line)
		}
		if err := m.AppendRow(ParseJSONRow(names, gjson.Parse(rowString))); err != nil {
			return nil, errors.Wrapf(err, "unable to parse line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read JSONL data")
	}
	return m, nil
}

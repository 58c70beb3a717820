package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sif/datamatrix/datasource"
	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/schema"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Load parses every file matching glob into a single Matrix, in sorted path order.
// Each file is closed as soon as it has been parsed.
func Load(glob string, parser datasource.Parser, s *schema.Schema) (*matrix.Matrix, error) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	var res *matrix.Matrix
	for _, path := range matches {
		m, err := loadFile(path, parser, s)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse %s", path)
		}
		if res == nil {
			res = m
			continue
		}
		if err = res.AppendMatrix(m); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func loadFile(path string, parser datasource.Parser, s *schema.Schema) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	log.Debug().Str("file", path).Msg("loading file")
	return parser.Parse(f, s)
}

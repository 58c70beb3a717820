package cmd

import (
	"github.com/go-sif/datamatrix/datasource"
	"github.com/go-sif/datamatrix/datasource/file"
	"github.com/go-sif/datamatrix/datasource/parser/dsv"
	"github.com/go-sif/datamatrix/datasource/parser/jsonl"
	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/schema"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	formatCSV   = "csv"
	formatJSONL = "jsonl"
)

func addSourceFlags(c *cobra.Command) {
	c.PersistentFlags().String("file", "", "path or glob of the data files to load")
	c.PersistentFlags().String("format", formatCSV, "data format [csv|jsonl]")
	c.PersistentFlags().String("schema", "", "comma-separated column list, e.g. name:string,age:int64")
	c.PersistentFlags().Int("header-lines", 0, "number of leading lines to skip")
	c.PersistentFlags().String("delimiter", ",", "csv field delimiter")
	c.PersistentFlags().String("nil-value", "", "csv token representing nil")
	for _, name := range []string{"file", "format", "schema", "header-lines", "delimiter", "nil-value"} {
		if err := viper.BindPFlag("source."+name, c.PersistentFlags().Lookup(name)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}

// loadMatrix reads the configured data files into a Matrix
func loadMatrix() (*matrix.Matrix, error) {
	path := viper.GetString("source.file")
	if path == "" {
		return nil, errors.New("--file is required")
	}
	s, err := schema.Parse(viper.GetString("source.schema"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid schema")
	}
	if s.NumColumns() == 0 {
		return nil, errors.New("--schema must name at least one column")
	}
	var parser datasource.Parser
	switch format := viper.GetString("source.format"); format {
	case formatCSV:
		conf := &dsv.ParserConf{
			HeaderLines: viper.GetInt("source.header-lines"),
			NilValue:    viper.GetString("source.nil-value"),
		}
		if d := []rune(viper.GetString("source.delimiter")); len(d) > 0 {
			conf.Delimiter = d[0]
		}
		parser = dsv.CreateParser(conf)
	case formatJSONL:
		parser = jsonl.CreateParser(&jsonl.ParserConf{
			HeaderLines: viper.GetInt("source.header-lines"),
		})
	default:
		return nil, errors.Errorf("unknown format %s", format)
	}
	m, err := file.Load(path, parser, s)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	log.Debug().Str("file", path).Int("rows", m.NumRows()).Int("columns", m.NumColumns()).Msg("data loaded")
	return m, nil
}

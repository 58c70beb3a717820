// Package logging configures the zerolog logger shared by datamatrix and its command-line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// LogFormatJSONValue selects newline-delimited JSON log output
	LogFormatJSONValue = "json"
	// LogFormatTextValue selects human-readable console log output
	LogFormatTextValue = "text"
)

// ParseLevel translates a level name into a zerolog.Level
func ParseLevel(levelStr string) (zerolog.Level, error) {
	switch levelStr {
	case zerolog.LevelTraceValue:
		return zerolog.TraceLevel, nil
	case zerolog.LevelDebugValue:
		return zerolog.DebugLevel, nil
	case zerolog.LevelInfoValue:
		return zerolog.InfoLevel, nil
	case zerolog.LevelWarnValue:
		return zerolog.WarnLevel, nil
	case zerolog.LevelErrorValue:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %s", levelStr)
	}
}

// NewLogger builds a logger writing to out at the given level and format
func NewLogger(out io.Writer, levelStr string, format string) (zerolog.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), err
	}
	var formatWriter io.Writer
	switch format {
	case LogFormatJSONValue:
		formatWriter = out
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %s", format)
	}
	ctx := zerolog.New(formatWriter).Level(level).With().Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), nil
}

// SetLogLevel replaces the global zerolog logger with one writing to stderr
func SetLogLevel(levelStr string, format string) error {
	logger, err := NewLogger(os.Stderr, levelStr, format)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}

package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level.
//
// The level parameter can be one of: debug, info, warn, error. When jsonOutput
// is false the logger writes human readable console lines.
func New(level string, jsonOutput bool) (zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, level, jsonOutput)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, jsonOutput bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

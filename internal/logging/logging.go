// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger for the given level.
//
// When file is set, JSON lines are written to it and the returned closer closes it.
// Otherwise a human-readable console writer on w is used.
func New(level string, file string, w io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, err
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create logs dir: %w", err)
		}

		f, err := os.Create(file)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

// Component derives a logger tagged with a component name.
// Uses the "cmp" key.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("cmp", name).Logger()
}

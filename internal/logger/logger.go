// Package logger configures the application log. The terminal belongs
// to the TUI, so log output goes to a file, or nowhere at all.
package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Open returns a logger appending JSON lines to path, plus a close
// function for the underlying file. An empty path disables logging
// entirely.
func Open(path string, debug bool) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}

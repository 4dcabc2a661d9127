// Package logging sets up the optional debug logger. The TUI owns the
// terminal, so log output always goes to a file, never to stdout/stderr.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger writing to the debug log file when debug is set,
// otherwise a disabled logger. The log file lives under the user cache dir.
func New(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}

	path, err := defaultLogPath()
	if err != nil {
		return zerolog.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop()
	}

	return zerolog.New(f).With().Timestamp().Logger()
}

func defaultLogPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "rewind", "debug.log"), nil
}

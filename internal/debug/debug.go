// Package debug provides debug logging utilities.
//
// The terminal belongs to the TUI while it runs, so debug output goes to a
// log file instead of stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var (
	enabled = os.Getenv("TODOLIST_DEBUG") == "1"
	logger  *log.Logger
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open starts writing debug output to the file at path if TODOLIST_DEBUG=1.
// The returned closer must be closed when the program exits.
func Open(path string) (io.Closer, error) {
	if !enabled {
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create debug log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from dirs
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	SetOutput(f)
	return f, nil
}

// SetOutput directs debug output to w. A nil writer turns logging off.
func SetOutput(w io.Writer) {
	if w == nil {
		logger = nil
		return
	}
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "todolist",
	})
}

// Logf writes a debug message if an output is configured.
func Logf(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

// Enabled returns true if debug logging was requested with TODOLIST_DEBUG=1.
func Enabled() bool {
	return enabled
}

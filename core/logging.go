package core

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// MaxLogSize rotates the log file aside once it grows past this many bytes
const MaxLogSize = 10 << 20

// SetupLogging opens path for appending and returns a logger writing to it
// An empty path discards everything; the standard library logger follows the same sink
// so nothing reaches the terminal the game draws on
func SetupLogging(path string, debug bool) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		stdlog.SetOutput(io.Discard)
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	if err := rotate(path, time.Now()); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: "15:04:05.000"}).
		Level(level).
		With().Timestamp().Logger()

	stdlog.SetFlags(0)
	stdlog.SetOutput(logger)
	return logger, f, nil
}

// rotate moves an oversized log to a timestamped sibling
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}

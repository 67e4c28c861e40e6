// Package logging builds the slog.Logger used by the johnson command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/johnson/config"
)

// New returns a logger configured by c and writing to stderr, or to a
// rotating file when c.File is set. The returned closer releases the file
// and is never nil.
func New(c config.Log) (*slog.Logger, io.Closer, error) {
	return newLogger(c, os.Stderr)
}

func newLogger(c config.Log, stderr *os.File) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = stderr
		closer io.Closer = nopCloser{}
		tty              = stderr != nil && isatty.IsTerminal(stderr.Fd())
	)
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename: c.File,
			MaxSize:  c.MaxSizeMB,  // megabytes
			MaxAge:   c.MaxAgeDays, // days
		}
		out, closer, tty = lj, lj, false
	}

	return slog.New(handler(out, c.Format, level, tty)), closer, nil
}

// handler picks text or JSON; "auto" means text on a terminal, JSON otherwise.
func handler(w io.Writer, format string, level slog.Level, tty bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "json":
		return slog.NewJSONHandler(w, opts)
	case "text":
		return slog.NewTextHandler(w, opts)
	default:
		if tty {
			return slog.NewTextHandler(w, opts)
		}

		return slog.NewJSONHandler(w, opts)
	}
}

// ParseLevel maps debug|info|warn|error (any case) to a slog.Level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

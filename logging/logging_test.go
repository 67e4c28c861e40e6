package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/config"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "johnson.log")
	log, closer, err := New(config.Log{Level: "debug", Format: "json", File: path, MaxSizeMB: 1, MaxAgeDays: 1})
	require.NoError(t, err)

	log.Debug("hello", slog.String("run_id", "abc"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"run_id":"abc"`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "johnson.log")
	log, closer, err := New(config.Log{Level: "warn", Format: "text", File: path})
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("loud")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "msg=loud")
}

func TestNew_AutoFormatOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	log, closer, err := newLogger(config.Log{Level: "info", Format: "auto"}, w)
	require.NoError(t, err)
	log.Info("piped")
	require.NoError(t, closer.Close())
	require.NoError(t, w.Close())

	buf := make([]byte, 512)
	n, _ := r.Read(buf)
	assert.Contains(t, string(buf[:n]), `"msg":"piped"`, "a pipe is not a terminal, so auto selects JSON")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.Log{Level: "loud"})
	require.Error(t, err)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Pipeline)
	assert.Equal(t, 1e-9, cfg.Tolerance)
	assert.Equal(t, "auto", cfg.Log.Format)
}

func TestParseYAML(t *testing.T) {
	cfg, err := config.Parse([]byte(`
pipeline: true
workers: 4
detect_every: 10
random:
  vertices: 20
  edges: 80
  seed: 7
  min_weight: -1
  max_weight: 2
log:
  level: debug
  format: json
`), ".yml")
	require.NoError(t, err)
	assert.True(t, cfg.Pipeline)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10, cfg.DetectEvery)
	assert.Equal(t, config.Random{Vertices: 20, Edges: 80, Seed: 7, MinWeight: -1, MaxWeight: 2}, cfg.Random)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1e-9, cfg.Tolerance)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
}

func TestParseTOML(t *testing.T) {
	cfg, err := config.Parse([]byte(`
workers = 2
tolerance = 1e-6

[random]
vertices = 5
edges = 9

[log]
file = "/tmp/johnson.log"
max_size_mb = 10
`), ".toml")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 5, cfg.Random.Vertices)
	assert.Equal(t, 9, cfg.Random.Edges)
	assert.Equal(t, "/tmp/johnson.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestParseEmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := config.Parse([]byte("workers: 1"), ".json")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Parse([]byte("workers: -1"), ".yaml")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Workers")

	_, err = config.Parse([]byte("log:\n  level: loud\n"), ".yaml")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("random:\n  min_weight: 3\n  max_weight: 1\n"), ".yaml")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("unknown: 1\n"), ".yaml")
	require.Error(t, err)

	_, err = config.Parse([]byte("nope = 1\n"), ".toml")
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "johnson.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

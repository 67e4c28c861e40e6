// Package config loads the settings of the johnson command from YAML or TOML
// files and validates them.
//
// Precedence is Default(), then the file, then command-line flags; the last
// step belongs to the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported file extension")

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full command configuration.
type Config struct {
	// Pipeline selects stdin input (and exchange output between stages)
	// instead of a generated random graph.
	Pipeline bool `yaml:"pipeline" toml:"pipeline"`

	// Workers bounds concurrent Dijkstra runs in all-pairs mode; 0 = sequential.
	Workers int `yaml:"workers" toml:"workers" validate:"gte=0,lte=1024"`

	// DetectEvery is the number of relaxations between negative-cycle
	// rescans; 0 means once per full pass (every V relaxations).
	DetectEvery int `yaml:"detect_every" toml:"detect_every" validate:"gte=0"`

	// Tolerance is the clamp epsilon for slightly negative reweighted edges.
	Tolerance float64 `yaml:"tolerance" toml:"tolerance" validate:"gte=0,lt=1"`

	Random Random `yaml:"random" toml:"random"`
	Log    Log    `yaml:"log" toml:"log"`
}

// Random parameterizes the generated graph used outside pipeline mode.
type Random struct {
	Vertices  int     `yaml:"vertices" toml:"vertices" validate:"gte=1"`
	Edges     int     `yaml:"edges" toml:"edges" validate:"gte=0"`
	Seed      int64   `yaml:"seed" toml:"seed"`
	MinWeight float64 `yaml:"min_weight" toml:"min_weight"`
	MaxWeight float64 `yaml:"max_weight" toml:"max_weight" validate:"gtefield=MinWeight"`
}

// Log configures the process logger.
type Log struct {
	Level      string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" toml:"format" validate:"oneof=text json auto"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Pipeline:    false,
		Workers:     0,
		DetectEvery: 0,
		Tolerance:   1e-9,
		Random: Random{
			Vertices:  6,
			Edges:     12,
			Seed:      0,
			MinWeight: 0,
			MaxWeight: 1,
		},
		Log: Log{
			Level:      "info",
			Format:     "auto",
			MaxSizeMB:  100,
			MaxAgeDays: 28,
		},
	}
}

var validate = validator.New()

// Validate checks struct tags and returns an error wrapping ErrInvalid that
// lists every failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Load reads path over Default() and validates the result. The format is
// chosen by extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or ".toml")
// over Default() and validates the result.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return Config{}, fmt.Errorf("config: unknown toml keys %v", undec)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

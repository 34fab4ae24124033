// Package config loads pargraph CLI configuration.
//
// Precedence, lowest first: DefaultConfig, a YAML file, PARGRAPH_*
// environment variables, command-line flags (applied by the caller).
// The merged result is checked with validator struct tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level CLI configuration.
type Config struct {
	// Workers is the team size; 0 means one worker per GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Output selects the result format written to stdout.
	Output string `yaml:"output" validate:"oneof=text yaml"`

	// Metrics dumps Prometheus text exposition to stderr after a run.
	Metrics bool `yaml:"metrics"`

	Log      LogConfig      `yaml:"log"`
	BFS      BFSConfig      `yaml:"bfs"`
	Coloring ColoringConfig `yaml:"coloring"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// BFSConfig contains settings of the bfs command.
type BFSConfig struct {
	Root        int32 `yaml:"root" validate:"gte=1"`
	Hybrid      bool  `yaml:"hybrid"`
	Rounds      int   `yaml:"rounds" validate:"gte=1"`
	AtomicClaim bool  `yaml:"atomic_claim"`
	Verify      bool  `yaml:"verify"`
}

// ColoringConfig contains settings of the color command.
type ColoringConfig struct {
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Workers: 0,
		Output:  "text",
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		BFS: BFSConfig{
			Root:   1,
			Rounds: 2,
		},
	}
}

var validate = validator.New()

// Validate checks struct-tag constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
		}
	}
	if err := loadFromEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("PARGRAPH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PARGRAPH_WORKERS=%q: %w", ErrInvalidConfig, v, err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("PARGRAPH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PARGRAPH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return nil
}

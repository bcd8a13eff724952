// Package config loads engine configuration from environment variables
// (CAPACIDAD_ prefix) with an optional YAML file overlay.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete engine configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine" envconfig:"ENGINE"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// EngineConfig tunes the parse and derivation behavior.
type EngineConfig struct {
	// ToleranceMW is the absolute tolerance of derivation comparisons.
	ToleranceMW int64 `yaml:"tolerance_mw" envconfig:"TOLERANCE_MW" default:"1" validate:"min=0"`
	// Workers is the row-assembly parallelism; 1 means sequential.
	Workers int `yaml:"workers" envconfig:"WORKERS" default:"1" validate:"min=1"`
	// ExpectedRows is the publication's data-row count, checked as a
	// dataset warning; 0 disables the check.
	ExpectedRows int `yaml:"expected_rows" envconfig:"EXPECTED_ROWS" default:"937" validate:"min=0"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Default returns the configuration with all defaults applied and no
// environment or file input.
func Default() *Config {
	return &Config{
		Engine:  EngineConfig{ToleranceMW: 1, Workers: 1, ExpectedRows: 937},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CAPACIDAD_CONFIG_FILE, and CAPACIDAD_* environment variables, in that
// precedence order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CAPACIDAD_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// envconfig fills defaults for unset variables, so overlay into a
	// scratch struct and copy only what the environment actually set.
	var env Config
	if err := envconfig.Process("CAPACIDAD", &env); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	overlayEnv(cfg, &env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overlayEnv(dst, env *Config) {
	if _, ok := os.LookupEnv("CAPACIDAD_ENGINE_TOLERANCE_MW"); ok {
		dst.Engine.ToleranceMW = env.Engine.ToleranceMW
	}
	if _, ok := os.LookupEnv("CAPACIDAD_ENGINE_WORKERS"); ok {
		dst.Engine.Workers = env.Engine.Workers
	}
	if _, ok := os.LookupEnv("CAPACIDAD_ENGINE_EXPECTED_ROWS"); ok {
		dst.Engine.ExpectedRows = env.Engine.ExpectedRows
	}
	if _, ok := os.LookupEnv("CAPACIDAD_LOGGING_LEVEL"); ok {
		dst.Logging.Level = env.Logging.Level
	}
	if _, ok := os.LookupEnv("CAPACIDAD_LOGGING_FORMAT"); ok {
		dst.Logging.Format = env.Logging.Format
	}
}

// Validate checks the configuration ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NewLogger builds a slog logger per the logging configuration.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(l.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

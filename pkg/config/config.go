// Package config loads the application configuration from the environment.
//
// Variables use the NORTHWIND_ prefix and underscores map to nesting, so
// NORTHWIND_LOG_LEVEL becomes log.level. A .env file in the working
// directory is loaded first when present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads .env into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every configuration variable.
const EnvPrefix = "NORTHWIND_"

// Config is the root configuration object.
type Config struct {
	Log     LogConfig     `koanf:"log" validate:"required"`
	Output  OutputConfig  `koanf:"output" validate:"required"`
	Dataset DatasetConfig `koanf:"dataset"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=console json"`
}

// OutputConfig controls how sample results are rendered.
type OutputConfig struct {
	Format string `koanf:"format" validate:"required,oneof=text json"`
	Color  bool   `koanf:"color"`
}

// DatasetConfig selects the data behind the provider. An empty path means
// the embedded snapshot.
type DatasetConfig struct {
	Path string `koanf:"path"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn", Format: "console"},
		Output: OutputConfig{Format: "text", Color: true},
	}
}

// Load reads the NORTHWIND_ variables over the defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

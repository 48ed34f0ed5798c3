// Package config loads brandgen settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "BRANDGEN_"

// Config holds the settings command-line flags may override.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	BrandImport string `env:"BRAND_IMPORT" envDefault:"github.com/authcorp/libs/go/brand"`
}

// Load reads BRANDGEN_* variables from the process environment.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads BRANDGEN_* variables from environ. A nil map means the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid %sLOG_FORMAT %q: want json or text", EnvPrefix, c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid %sLOG_LEVEL %q", EnvPrefix, c.LogLevel)
	}
	if c.BrandImport == "" {
		return fmt.Errorf("%sBRAND_IMPORT must not be empty", EnvPrefix)
	}
	return nil
}

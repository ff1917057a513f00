// Package config loads the settings shared by the utilkit CLI and MCP server.
//
// Values are resolved in order: built-in defaults, an optional TOML file, then
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/utilkit/internal/logging"
	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/aretw0/utilkit/pkg/hashing"
	"github.com/aretw0/utilkit/pkg/text"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by Load.
const (
	EnvConfigFile     = "UTILKIT_CONFIG"
	EnvLogLevel       = "UTILKIT_LOG_LEVEL"
	EnvPasswordLength = "UTILKIT_PASSWORD_LENGTH"
	EnvHashAlgorithm  = "UTILKIT_HASH_ALGORITHM"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel       string `toml:"log_level"`
	PasswordLength int    `toml:"password_length"`
	HashAlgorithm  string `toml:"hash_algorithm"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:       "info",
		PasswordLength: text.DefaultPasswordLength,
		HashAlgorithm:  string(hashing.Default),
	}
}

// Load resolves the configuration. path names a TOML file; when empty,
// $UTILKIT_CONFIG is used if set. A missing file named explicitly is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: config file %s", domain.ErrNotFound, path)
		}
		return fmt.Errorf("%w: read config %s: %w", domain.ErrIOFailure, path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse config %s: %w", domain.ErrMalformedData, path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvHashAlgorithm); v != "" {
		c.HashAlgorithm = v
	}
	if v := os.Getenv(EnvPasswordLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", domain.ErrInvalidArgument, EnvPasswordLength, v)
		}
		c.PasswordLength = n
	}
	return nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.PasswordLength <= 0 {
		return fmt.Errorf("%w: password_length must be positive, got %d", domain.ErrInvalidArgument, c.PasswordLength)
	}
	if _, err := hashing.ParseAlgorithm(c.HashAlgorithm); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Algorithm returns the parsed default hash algorithm. Call after Validate.
func (c Config) Algorithm() hashing.Algorithm {
	alg, err := hashing.ParseAlgorithm(c.HashAlgorithm)
	if err != nil {
		return hashing.Default
	}
	return alg
}

// Package config provides configuration loading and validation for the
// screening service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Default limits.
const (
	DefaultPort = 8000
	// DefaultMaxRequestBytes bounds request bodies (5MB, matching the upload
	// limit enforced ahead of the engine).
	DefaultMaxRequestBytes = 5 << 20
)

// Config holds the service configuration. All fields are optional; missing
// values use defaults. File values are overridden by environment variables.
type Config struct {
	Port            int    `json:"port,omitempty"`
	MaxRequestBytes int64  `json:"max_request_bytes,omitempty"`
	LexiconPath     string `json:"lexicon_path,omitempty"` // optional lexicon override file
	LogJSON         bool   `json:"log_json,omitempty"`
	Debug           bool   `json:"debug,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		MaxRequestBytes: DefaultMaxRequestBytes,
	}
}

// Load builds the effective configuration: defaults, then the optional JSON
// file, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		if cfg.Port == 0 {
			cfg.Port = DefaultPort
		}
		if cfg.MaxRequestBytes == 0 {
			cfg.MaxRequestBytes = DefaultMaxRequestBytes
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 1-65535, got %d", c.Port)
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("config error: 'max_request_bytes' must be positive")
	}
	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon override not found: %s", c.LexiconPath)
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SCREENER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("SCREENER_MAX_REQUEST_BYTES"); v != "" {
		if limit, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxRequestBytes = limit
		}
	}
	if v := os.Getenv("SCREENER_LEXICON_PATH"); v != "" {
		c.LexiconPath = v
	}
	if v := os.Getenv("SCREENER_LOG_JSON"); v != "" {
		c.LogJSON = v == "1" || v == "true"
	}
	if v := os.Getenv("SCREENER_DEBUG"); v != "" {
		c.Debug = v == "1" || v == "true"
	}
}

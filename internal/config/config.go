/*
Package config handles loading and saving game-hub configuration.

Configuration lives in ~/.game-hub.json. A .env file (or process
environment) can override individual fields via GAMEHUB_* variables,
which is how deployments tune the server without editing the file.
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	// Addr is the HTTP listen address for the API server.
	Addr string `json:"addr"`

	// DataDir holds the preference store and cache databases.
	DataDir string `json:"dataDir"`

	// Upstream is the origin the offline cache controller fronts.
	Upstream string `json:"upstream"`

	// CatalogPath optionally replaces the built-in catalog with a YAML file.
	CatalogPath string `json:"catalogPath,omitempty"`

	// TokenSecret signs mock session tokens.
	TokenSecret string `json:"tokenSecret,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Addr:        ":3001",
		DataDir:     filepath.Join(home, ".game-hub"),
		Upstream:    "http://localhost:3000",
		TokenSecret: "change-me-in-production",
		LogLevel:    "info",
	}
}

// DefaultConfigPath returns the path to ~/.game-hub.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".game-hub.json"), nil
}

// LoadOrCreate reads the config from the default path, creating it with
// defaults if missing, then applies environment overrides.
func LoadOrCreate() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if os.IsNotExist(err) {
		cfg = Default()
		if saveErr := Save(cfg, path); saveErr != nil {
			return nil, saveErr
		}
	} else if err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadFrom reads the configuration from a specific path. Missing fields
// fall back to defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnv overlays GAMEHUB_* variables, loading a .env file first if
// one is present in the working directory.
func applyEnv(cfg *Config) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("GAMEHUB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("GAMEHUB_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GAMEHUB_UPSTREAM"); v != "" {
		cfg.Upstream = v
	}
	if v := os.Getenv("GAMEHUB_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("GAMEHUB_TOKEN_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv("GAMEHUB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// StorePath is the preference store database location.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "hub.db")
}

// CachePath is the offline cache database location.
func (c *Config) CachePath() string {
	return filepath.Join(c.DataDir, "cache.db")
}

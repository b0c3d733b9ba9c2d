/*
Package config handles loading and saving tool-advisor configuration.

Configuration is stored in ~/.tool-advisor.json. Environment variables
override file values after loading (see the env struct tags), so scripted
runs can redirect the catalog or database without editing the file.

Schema:

	{
	  "catalogPath": "/path/to/catalog.json",
	  "databasePath": "/path/to/advisor.db",
	  "userId": "9a0f..."
	}
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

// Config represents the root configuration structure.
type Config struct {
	// CatalogPath points to a user-supplied catalog JSON file. When empty,
	// the embedded default catalog is used.
	CatalogPath string `json:"catalogPath,omitempty" env:"TOOL_ADVISOR_CATALOG"`

	// DatabasePath points to the SQLite key-value store. When empty, the
	// default ~/.tool-advisor/advisor.db is used.
	DatabasePath string `json:"databasePath,omitempty" env:"TOOL_ADVISOR_DB"`

	// UserID identifies the local user for rating purposes. Generated on
	// first run. Users sharing a database keep separate current-rating
	// maps while contributing to the same aggregates.
	UserID string `json:"userId,omitempty" env:"TOOL_ADVISOR_USER"`
}

// GetDefaultConfigPath returns the path to ~/.tool-advisor.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tool-advisor.json"), nil
}

// Load reads the configuration from the default path and applies
// environment overrides. A missing file yields defaults, not an error.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from a specific path and applies
// environment overrides.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults plus env.
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, &InvalidConfigError{
				Path:    path,
				Message: err.Error(),
				Hint:    "Fix or delete the file to start from defaults",
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// EnsureUserID generates and assigns a user ID if the config has none.
// Returns true when the config changed and should be saved.
func (c *Config) EnsureUserID() bool {
	if c.UserID != "" {
		return false
	}
	c.UserID = uuid.NewString()
	return true
}

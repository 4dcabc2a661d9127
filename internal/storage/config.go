// Package storage handles the on-disk configuration file.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration. It configures where bookmarks are
// read from and the view defaults; live view state is never persisted.
type Config struct {
	// SourcePaths lists explicit bookmark files to read. Empty means
	// auto-detect installed browser profiles.
	SourcePaths []string `json:"sourcePaths"`

	// DefaultDayRange is the day window applied at startup (1-12).
	DefaultDayRange int `json:"defaultDayRange"`

	// DefaultEntriesPerYear caps collapsed year groups at startup (1-10).
	DefaultEntriesPerYear int `json:"defaultEntriesPerYear"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SourcePaths:           []string{},
		DefaultDayRange:       3,
		DefaultEntriesPerYear: 5,
	}
}

// LoadConfig reads config from the JSON file.
// Returns defaults if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.SourcePaths == nil {
		config.SourcePaths = defaults.SourcePaths
	}
	if config.DefaultDayRange == 0 {
		config.DefaultDayRange = defaults.DefaultDayRange
	}
	if config.DefaultEntriesPerYear == 0 {
		config.DefaultEntriesPerYear = defaults.DefaultEntriesPerYear
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/rewind/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "rewind", "config.json"), nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	// Inclusive bounds for the people field of the project form
	PeopleMin float64 `json:"people_min"`
	PeopleMax float64 `json:"people_max"`

	// Minimum length of the description field
	DescriptionMinLength int `json:"description_min_length"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level,omitempty"`

	// Log file path. Empty disables logging, stdout belongs to the UI.
	LogFile string `json:"log_file,omitempty"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		PeopleMin:            0,
		PeopleMax:            5,
		DescriptionMinLength: 0,
		LogLevel:             "info",
	}
}

// Load loads the configuration from the given file path
func Load(path string) (*Config, error) {
	// If config file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the configured bounds make sense
func (c *Config) Validate() error {
	if c.PeopleMin > c.PeopleMax {
		return fmt.Errorf("people_min (%v) is greater than people_max (%v)", c.PeopleMin, c.PeopleMax)
	}

	if c.DescriptionMinLength < 0 {
		return fmt.Errorf("description_min_length cannot be negative: %d", c.DescriptionMinLength)
	}

	return nil
}

// GetConfigDir returns the directory holding the configuration file
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".prjdeck"), nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

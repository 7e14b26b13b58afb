// Package config provides configuration management for the galois CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Field          string `json:"field"`          // Default: binary
	Characteristic uint16 `json:"characteristic"` // Default: 23 (for prime fields)
	JSON           bool   `json:"json"`           // Default: false
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool `json:"use_color"` // Enable colored output
}

// Manager manages configuration loading and saving
type Manager struct {
	config     *Config
	configPath string
}

// NewManager creates a new configuration manager. A missing config file is
// replaced by defaults without touching the disk; Save persists them.
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{configPath: configPath}
	if err := m.Load(); err != nil {
		m.config = Default()
	}

	return m, nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Field:          "binary",
			Characteristic: 23,
			JSON:           false,
		},
		UI: UIConfig{
			UseColor: true,
		},
	}
}

// Load reads the configuration from disk
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	m.config = config
	return nil
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set replaces the current configuration
func (m *Manager) Set(config *Config) {
	m.config = config
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("GALOIS_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "galois", "config.json"), nil
	}

	// Default to ~/.config/galois/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "galois", "config.json"), nil
}

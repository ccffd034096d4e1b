// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format        string `yaml:"format"`
		PreviewLength int    `yaml:"preview_length"`
		SampleLimit   int    `yaml:"sample_limit"`
		Verbose       bool   `yaml:"verbose"`
		NoColor       bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Web server settings
	Web struct {
		Port          string `yaml:"port"`
		MaxUploadSize int64  `yaml:"max_upload_size"`
	} `yaml:"web"`

	// Profiles for different scanning scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings
type Profile struct {
	Format        string `yaml:"format"`
	PreviewLength int    `yaml:"preview_length"`
	SampleLimit   int    `yaml:"sample_limit"`
	Verbose       bool   `yaml:"verbose"`
	NoColor       bool   `yaml:"no_color"`
	Description   string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.PreviewLength = 2000
	config.Defaults.SampleLimit = 5
	config.Web.Port = "8080"
	config.Web.MaxUploadSize = 20 << 20

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	for _, name := range []string{
		"config.yaml",
		"citation-scout.yaml",
		"citation-scout.yml",
		".citation-scout.yaml",
		".citation-scout.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "citation-scout", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration. Shared by the CLI and the web server.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Missing or unreadable config falls back to built-in defaults.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ValidateConfig checks value ranges the rest of the system relies on.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if config.Defaults.PreviewLength < 0 {
		return fmt.Errorf("preview_length cannot be negative")
	}
	if config.Defaults.SampleLimit < 0 {
		return fmt.Errorf("sample_limit cannot be negative")
	}
	if config.Web.MaxUploadSize < 0 {
		return fmt.Errorf("max_upload_size cannot be negative")
	}
	return nil
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

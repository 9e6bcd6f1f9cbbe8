// Copyright Casefile Contributors. All Rights Reserved.
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
		Format              string   `yaml:"format"`
		RiskBands           string   `yaml:"risk_bands"`
		Verbose             bool     `yaml:"verbose"`
		Debug               bool     `yaml:"debug"`
		NoColor             bool     `yaml:"no_color"`
		Recursive           bool     `yaml:"recursive"`
		EnablePreprocessors bool     `yaml:"enable_preprocessors"`
		ExcludePatterns     []string `yaml:"exclude_patterns"`
	} `yaml:"defaults"`

	// Engine tunables
	Engine struct {
		BatchSize        int `yaml:"batch_size"`
		CacheTTLSeconds  int `yaml:"cache_ttl_seconds"`
		CacheMaxEntries  int `yaml:"cache_max_entries"`
		ContextWindow    int `yaml:"context_window"`
		MinPassageLength int `yaml:"min_passage_length"`
	} `yaml:"engine"`

	// Profiles for different ingestion scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named run configuration
type Profile struct {
	Format      string   `yaml:"format"`
	RiskBands   string   `yaml:"risk_bands"`
	Verbose     bool     `yaml:"verbose"`
	NoColor     bool     `yaml:"no_color"`
	Recursive   bool     `yaml:"recursive"`
	Description string   `yaml:"description"`
	Exclude     []string `yaml:"exclude_patterns"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.RiskBands = "all"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Defaults.Recursive = true
	config.Defaults.EnablePreprocessors = true

	config.Engine.BatchSize = 100
	config.Engine.CacheTTLSeconds = 300
	config.Engine.CacheMaxEntries = 100
	config.Engine.ContextWindow = 100
	config.Engine.MinPassageLength = 20

	// A triage profile for scanning a fresh release drop quickly.
	config.Profiles["triage"] = Profile{
		Format:      "text",
		RiskBands:   "4,5",
		Verbose:     false,
		NoColor:     true,
		Recursive:   true,
		Description: "High-band documents only, plain output for piping",
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Remember defaults that YAML zero values would silently disable.
	defaultEnablePreprocessors := config.Defaults.EnablePreprocessors
	defaultRecursive := config.Defaults.Recursive

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if !containsField(data, "defaults", "enable_preprocessors") {
		config.Defaults.EnablePreprocessors = defaultEnablePreprocessors
	}
	if !containsField(data, "defaults", "recursive") {
		config.Defaults.Recursive = defaultRecursive
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// LoadConfigOrDefault loads the config file, falling back to defaults on any
// error. Intended for CLI startup where a bad config should not be fatal.
func LoadConfigOrDefault(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		config, _ = LoadConfig("")
	}
	return config
}

// ValidateConfig rejects impossible engine tunables.
func ValidateConfig(config *Config) error {
	if config.Engine.BatchSize < 0 {
		return fmt.Errorf("engine.batch_size must not be negative")
	}
	if config.Engine.CacheTTLSeconds < 0 {
		return fmt.Errorf("engine.cache_ttl_seconds must not be negative")
	}
	if config.Engine.CacheMaxEntries < 0 {
		return fmt.Errorf("engine.cache_max_entries must not be negative")
	}
	if config.Engine.ContextWindow < 0 {
		return fmt.Errorf("engine.context_window must not be negative")
	}
	for name, profile := range config.Profiles {
		if profile.Format != "" && !knownFormat(profile.Format) {
			return fmt.Errorf("profile %q: unknown format %q", name, profile.Format)
		}
	}
	return nil
}

func knownFormat(format string) bool {
	switch format {
	case "text", "json", "csv", "yaml":
		return true
	}
	return false
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	for _, candidate := range []string{
		"config.yaml",
		"casefile.yaml",
		"casefile.yml",
		".casefile.yaml",
		".casefile.yml",
	} {
		if fileExists(candidate) {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".casefile", "config.yaml")
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// containsField walks raw YAML to check whether a nested key was explicitly
// present, so absent booleans keep their defaults instead of becoming false.
func containsField(data []byte, path ...string) bool {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return false
	}
	var node interface{} = tree
	for _, key := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return false
		}
		node, ok = m[key]
		if !ok {
			return false
		}
	}
	return true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

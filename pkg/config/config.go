package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for script assembly.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// MaxWords is the word ceiling used when the caller does not pass one.
	MaxWords int
	// TimeoutSeconds bounds each generation request, enforced by the client.
	TimeoutSeconds int
	Verbose        bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		MaxWords:       1200,
		TimeoutSeconds: 30,
		Verbose:        false,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.MaxWords <= 0 {
		cfg.MaxWords = DefaultConfig().MaxWords
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultConfig().TimeoutSeconds
	}
	return cfg
}

// FileValues mirrors the optional YAML configuration file.
type FileValues struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	MaxWords       int    `yaml:"max_words"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (FileValues, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileValues{}, fmt.Errorf("read config file: %w", err)
	}
	var fv FileValues
	if err := yaml.Unmarshal(content, &fv); err != nil {
		return FileValues{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fv, nil
}

// Merge fills fields the environment left empty with file values.
// Environment values always win over file values.
func Merge(cfg Config, fv FileValues) Config {
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(fv.APIKey)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = strings.TrimSpace(fv.BaseURL)
	}
	if cfg.Model == "" {
		cfg.Model = strings.TrimSpace(fv.Model)
	}
	if cfg.MaxWords <= 0 && fv.MaxWords > 0 {
		cfg.MaxWords = fv.MaxWords
	}
	if cfg.TimeoutSeconds <= 0 && fv.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = fv.TimeoutSeconds
	}
	return cfg
}

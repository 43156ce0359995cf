package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the workspace root.
const FileName = "gototest.yaml"

// DirName is the per-workspace state directory.
const DirName = ".gototest"

// Config holds all configuration for gototest.
type Config struct {
	Patterns  PatternsConfig  `yaml:"patterns"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Open      OpenConfig      `yaml:"open"`
	Prompt    PromptConfig    `yaml:"prompt"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PatternsConfig holds the spec filename templates.
type PatternsConfig struct {
	// SpecFilePatterns use {f} for the stem and {e} for the extension.
	// Order is lookup priority.
	SpecFilePatterns []string `yaml:"spec_file_patterns"`
}

// WorkspaceConfig holds workspace-level filtering.
type WorkspaceConfig struct {
	Excludes []string `yaml:"excludes"` // doublestar globs relative to the root
}

// OpenConfig holds how resolved files are opened.
type OpenConfig struct {
	Command string `yaml:"command"` // e.g. "code -g"; empty prints the path
}

// PromptConfig holds how near ties are settled.
type PromptConfig struct {
	Mode string `yaml:"mode"` // "auto", "select", "line", "first"
}

// HistoryConfig holds jump history settings.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

var (
	promptModes = []string{"auto", "select", "line", "first"}
	logLevels   = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Patterns: PatternsConfig{
			SpecFilePatterns: []string{"{f}.test{e}", "{f}.spec{e}"},
		},
		Workspace: WorkspaceConfig{
			Excludes: []string{},
		},
		Open: OpenConfig{
			Command: "",
		},
		Prompt: PromptConfig{
			Mode: "auto",
		},
		History: HistoryConfig{
			Enabled: false,
			Limit:   20,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for gototest.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, DirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate checks the configuration for values gototest cannot use.
func (c *Config) Validate() error {
	if len(c.Patterns.SpecFilePatterns) == 0 {
		return fmt.Errorf("patterns.spec_file_patterns must not be empty")
	}
	for i, p := range c.Patterns.SpecFilePatterns {
		if p == "" {
			return fmt.Errorf("patterns.spec_file_patterns[%d] is empty", i)
		}
	}
	if !slices.Contains(promptModes, c.Prompt.Mode) {
		return fmt.Errorf("prompt.mode %q is not one of %v", c.Prompt.Mode, promptModes)
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of %v", c.Logging.Level, logLevels)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// HistoryDBPath returns the path to the jump history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, DirName, "history.db")
}

// EnsureStateDir ensures the .gototest directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, DirName), 0755)
}

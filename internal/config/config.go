package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/lookback/config.yaml"

// Config holds all lookback configuration.
type Config struct {
	History    HistoryConfig    `yaml:"history"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// HistoryConfig controls where and how far back visits are read.
type HistoryConfig struct {
	// Path overrides platform resolution of the Chrome History file.
	Path          string `yaml:"path"`
	LookbackHours int    `yaml:"lookback_hours"`
}

// ClassifierConfig defines how to contact the remote classification API.
type ClassifierConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BatchSize int    `yaml:"batch_size"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file at path, merges it with defaults, and
// applies environment overrides. Returns an error if the file cannot be
// read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		cfg.applyEnvOverrides()
		return cfg, nil
	}

	return Load(path)
}

// Environment variable names recognized as overrides.
const (
	historyPathEnv         = "LOOKBACK_HISTORY_PATH"
	classifierEnabledEnv   = "LOOKBACK_CLASSIFIER_ENABLED"
	classifierEndpointEnv  = "LOOKBACK_CLASSIFIER_ENDPOINT"
	classifierModelEnv     = "LOOKBACK_CLASSIFIER_MODEL"
	classifierAPIKeyEnv    = "LOOKBACK_CLASSIFIER_API_KEY"
	classifierTimeoutEnv   = "LOOKBACK_CLASSIFIER_TIMEOUT_MS"
	logLevelEnv            = "LOOKBACK_LOG_LEVEL"
)

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(historyPathEnv); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv(classifierEnabledEnv); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Classifier.Enabled = b
		}
	}
	if v := os.Getenv(classifierEndpointEnv); v != "" {
		c.Classifier.Endpoint = v
	}
	if v := os.Getenv(classifierModelEnv); v != "" {
		c.Classifier.Model = v
	}
	if v := os.Getenv(classifierAPIKeyEnv); v != "" {
		c.Classifier.APIKey = v
	}
	if v := os.Getenv(classifierTimeoutEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Classifier.TimeoutMs = n
		}
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

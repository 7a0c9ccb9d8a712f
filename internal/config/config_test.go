package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.History.Path)
	assert.Equal(t, 24, cfg.History.LookbackHours)
	assert.True(t, cfg.Classifier.Enabled)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.Classifier.Endpoint)
	assert.Equal(t, "gpt-4o-mini", cfg.Classifier.Model)
	assert.Equal(t, 20, cfg.Classifier.BatchSize)
	assert.Equal(t, 20000, cfg.Classifier.TimeoutMs)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
history:
  path: /tmp/History
  lookback_hours: 48
classifier:
  api_key: sk-test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/History", cfg.History.Path)
	assert.Equal(t, 48, cfg.History.LookbackHours)
	assert.Equal(t, "sk-test", cfg.Classifier.APIKey)
	// Unset keys keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.Classifier.Model)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadOrCreateAt_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	cfg, err := LoadOrCreateAt(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.History.LookbackHours)
	assert.FileExists(t, path)

	// The written file loads back to the same config.
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadOrCreateAt_LoadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  lookback_hours: 12\n"), 0644))

	cfg, err := LoadOrCreateAt(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.History.LookbackHours)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classifier:\n  enabled: true\n"), 0644))

	t.Setenv("LOOKBACK_HISTORY_PATH", "/env/History")
	t.Setenv("LOOKBACK_CLASSIFIER_ENABLED", "false")
	t.Setenv("LOOKBACK_CLASSIFIER_ENDPOINT", "http://localhost:9999/v1")
	t.Setenv("LOOKBACK_CLASSIFIER_MODEL", "env-model")
	t.Setenv("LOOKBACK_CLASSIFIER_API_KEY", "sk-env")
	t.Setenv("LOOKBACK_CLASSIFIER_TIMEOUT_MS", "5000")
	t.Setenv("LOOKBACK_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/History", cfg.History.Path)
	assert.False(t, cfg.Classifier.Enabled)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Classifier.Endpoint)
	assert.Equal(t, "env-model", cfg.Classifier.Model)
	assert.Equal(t, "sk-env", cfg.Classifier.APIKey)
	assert.Equal(t, 5000, cfg.Classifier.TimeoutMs)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverrides_IgnoresInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	t.Setenv("LOOKBACK_CLASSIFIER_ENABLED", "not-a-bool")
	t.Setenv("LOOKBACK_CLASSIFIER_TIMEOUT_MS", "-100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Classifier.Enabled, "invalid bool override keeps the default")
	assert.Equal(t, 20000, cfg.Classifier.TimeoutMs, "non-positive timeout keeps the default")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/.config/lookback/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "lookback", "config.yaml"), got)

	got, err = expandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)
}

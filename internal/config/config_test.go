package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, filepath.Join(home, ".cache", "satori"), cfg.CacheDir)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)

	assert.Equal(t, filepath.Join(home, ".config", "satori", "satori.json"), cfg.SessionPath())
	assert.Equal(t, filepath.Join(cfg.CacheDir, "contest.json"), cfg.CachePath("contest.json"))
	assert.Equal(t, filepath.Join(cfg.CacheDir, "results.log"), cfg.ResultsLogPath())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SATORI_BASE_URL", "http://localhost:8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestConfigFileOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".config", "satori")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"),
		[]byte(`{"base_url": "https://satori.example.org", "poll_interval": "2s"}`), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://satori.example.org", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestClearSessionIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.ClearSession(), "clearing a session that was never saved is fine")
	require.NoError(t, cfg.ClearCaches())
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the production satori endpoint.
const DefaultBaseURL = "https://satori.tcs.uj.edu.pl"

// Config carries the settings every command shares. An optional
// ~/.config/satori/config.json overrides the defaults; so do SATORI_*
// environment variables (SATORI_BASE_URL, SATORI_CACHE_DIR, ...).
type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	CacheDir     string        `mapstructure:"cache_dir"`
	PollInterval time.Duration `mapstructure:"poll_interval"`

	configDir string
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "satori")

	v := viper.New()
	v.AddConfigPath(configDir)
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.SetEnvPrefix("satori")
	v.AutomaticEnv()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("cache_dir", filepath.Join(home, ".cache", "satori"))
	v.SetDefault("poll_interval", 5*time.Second)

	if err := v.ReadInConfig(); err != nil {
		// no config file is fine, defaults and env apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configDir = configDir
	return &cfg, nil
}

// SessionPath is where the credential/token record lives.
func (c *Config) SessionPath() string {
	return filepath.Join(c.configDir, "satori.json")
}

// CachePath returns the backing file for one cache namespace.
func (c *Config) CachePath(name string) string {
	return filepath.Join(c.CacheDir, name)
}

// ResultsLogPath is the append-only log the detached watcher writes to.
func (c *Config) ResultsLogPath() string {
	return filepath.Join(c.CacheDir, "results.log")
}

// ClearSession removes the stored credentials and token.
func (c *Config) ClearSession() error {
	if err := os.Remove(c.SessionPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearCaches removes the whole cache directory: resolutions, downloaded
// PDFs and the results log.
// per docs: if the path does not exist, RemoveAll returns nil (no error)
func (c *Config) ClearCaches() error {
	return os.RemoveAll(c.CacheDir)
}

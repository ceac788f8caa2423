package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig       `toml:"database"`
	Store    StoreConfig    `toml:"store"`
	Insights InsightsConfig `toml:"insights"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type StoreConfig struct {
	PollIntervalSeconds int `toml:"poll_interval_seconds"` // Remote change pickup; negative disables polling.
}

type InsightsConfig struct {
	Endpoint string `toml:"endpoint"`
	APIKey   string `toml:"api_key"`
}

// PollInterval returns the remote-change poll interval, defaulting to 5s.
// A negative setting disables polling.
func (c *Config) PollInterval() time.Duration {
	if c.Store.PollIntervalSeconds < 0 {
		return 0
	}
	if c.Store.PollIntervalSeconds == 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Store.PollIntervalSeconds) * time.Second
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "playbook")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file.
func LoadConfig() (*Config, error) {
	// A .env file may carry overrides; its absence is fine.
	_ = godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if url := os.Getenv("PLAYBOOK_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return &cfg, nil
}

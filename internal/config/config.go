// Package config holds the persistent client configuration.
//
// Config lives at ~/.murrasil/config.json. Environment variables (optionally
// loaded from a .env file) override whatever is on disk, which keeps the
// console usable without any config file at all.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the persistent application configuration
type Config struct {
	// BaseURL of the Murrasil backend API
	BaseURL string `json:"base_url"`

	// PageLimit is the queue page size
	PageLimit int `json:"page_limit"`

	// UI preferences
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme       string `json:"theme"`
	CompactMode bool   `json:"compact_mode"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://127.0.0.1:8000",
		PageLimit: 20,
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".murrasil", "config.json")
}

// Load reads config from disk, or returns defaults. Environment variables
// override file values either way.
func Load() (*Config, error) {
	// Best effort; a missing .env is normal
	godotenv.Load()

	cfg := DefaultConfig()

	var readErr error
	data, err := os.ReadFile(ConfigPath())
	if err == nil {
		// An unparseable file falls back to defaults rather than failing
		var fileCfg Config
		if jerr := json.Unmarshal(data, &fileCfg); jerr == nil {
			cfg = &fileCfg
			if cfg.BaseURL == "" {
				cfg.BaseURL = DefaultConfig().BaseURL
			}
			if cfg.PageLimit <= 0 {
				cfg.PageLimit = DefaultConfig().PageLimit
			}
		}
	} else if !os.IsNotExist(err) {
		readErr = err
	}

	// Env overrides apply even when the file is unreadable
	cfg.applyEnv()
	return cfg, readErr
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MURRASIL_API_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("MURRASIL_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageLimit = n
		}
	}
}

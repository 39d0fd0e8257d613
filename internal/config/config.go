package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Browser Browser `toml:"browser"`
	Logging Logging `toml:"logging"`
}

type Browser struct {
	// Name selects the browser whose profile is read by default.
	Name string `toml:"name"`
	// Profile is the profile directory name inside the browser's data dir.
	Profile string `toml:"profile"`
	// StoreDir points directly at a local-storage leveldb directory and
	// bypasses browser/profile resolution when set.
	StoreDir string `toml:"store_dir"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Defaults returns a Config with sane defaults.
func Defaults() *Config {
	return &Config{
		Browser: Browser{
			Name:    "chrome",
			Profile: "Default",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML config file over the defaults. If path is empty the
// default location is tried and its absence is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = expandHome("~/.config/lsgrab/config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

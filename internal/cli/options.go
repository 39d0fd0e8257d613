package cli

import (
	"lsgrab/internal/config"
	"lsgrab/internal/profile"
)

// Options carries the persistent flag values shared by all subcommands.
// Flag values that were left empty fall back to the loaded config file.
type Options struct {
	ConfigPath string
	Browser    string
	Profile    string
	ProfileDir string
	StoreDir   string
	LogLevel   string
	LogFormat  string
}

// ResolveStore loads the config file and resolves the local-storage leveldb
// directory the subcommand should open.
func (o *Options) ResolveStore() (string, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return "", err
	}

	storeDir := o.StoreDir
	if storeDir == "" {
		storeDir = cfg.Browser.StoreDir
	}
	if storeDir != "" {
		return storeDir, nil
	}

	browser := o.Browser
	if browser == "" {
		browser = cfg.Browser.Name
	}
	prof := o.Profile
	if prof == "" {
		prof = cfg.Browser.Profile
	}
	return profile.StoreDir(browser, prof, o.ProfileDir)
}

// LoggingDefaults returns the effective log level and format, letting flags
// override the config file.
func (o *Options) LoggingDefaults() (level, format string) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		cfg = config.Defaults()
	}
	level, format = cfg.Logging.Level, cfg.Logging.Format
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	if o.LogFormat != "" {
		format = o.LogFormat
	}
	return level, format
}

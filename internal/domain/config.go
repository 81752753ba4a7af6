package domain

import "time"

// Default configuration values.
const (
	DefaultIssueFile    = "issues.json"
	DefaultDelaySeconds = 2
	DefaultLogLevel     = "info"

	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".ghseed.toml"

	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	Import ImportConfig `toml:"import"`
	Log    LogConfig    `toml:"log"`
}

// ImportConfig holds settings for the import run from [import] section.
type ImportConfig struct {
	File         string `toml:"file,omitempty"`          // Issue file path (default: issues.json)
	Repo         string `toml:"repo,omitempty"`          // Target repository as owner/name (empty = detect)
	DelaySeconds int    `toml:"delay_seconds,omitempty"` // Pause between issue creations
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Import: ImportConfig{
			File:         DefaultIssueFile,
			DelaySeconds: DefaultDelaySeconds,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Delay returns the configured pacing delay as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Import.DelaySeconds) * time.Second
}

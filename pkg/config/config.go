package config

import (
	"github.com/sdejongh/mergescout/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Git      GitConfig           `yaml:"git"`
	Checkers map[string][]string `yaml:"checkers"`
	Backup   BackupConfig        `yaml:"backup"`
	Output   OutputConfig        `yaml:"output"`
	Logging  LoggingConfig       `yaml:"logging"`
}

// GitConfig holds settings for invoking the git binary
type GitConfig struct {
	Binary  string `yaml:"binary"`  // git executable, default "git"
	WorkDir string `yaml:"workdir"` // repository directory, empty = cwd
}

// BackupConfig holds backup branch settings
type BackupConfig struct {
	Prefix string `yaml:"prefix"` // prefix for timestamped branch names
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format string `yaml:"format"` // "json" or "human" (scan only)
	Pretty bool   `yaml:"pretty"` // indent JSON documents
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // log file path (empty = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Binary:  "git",
			WorkDir: "",
		},
		Checkers: map[string][]string{
			"python":     {"python3", "-m", "py_compile"},
			"javascript": {"node", "--check"},
		},
		Backup: BackupConfig{
			Prefix: "backup-merge",
		},
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Git.Binary == "" {
		return &models.ValidationError{
			Field:   "git.binary",
			Message: "must not be empty",
		}
	}

	for language, argv := range c.Checkers {
		if len(argv) == 0 {
			return &models.ValidationError{
				Field:   "checkers." + language,
				Message: "command must not be empty",
			}
		}
	}

	if c.Backup.Prefix == "" {
		return &models.ValidationError{
			Field:   "backup.prefix",
			Message: "must not be empty",
		}
	}

	validFormats := map[string]bool{"json": true, "human": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'json' or 'human'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

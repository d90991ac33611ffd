package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/mergescout/pkg/analyze"
	"github.com/sdejongh/mergescout/pkg/config"
	"github.com/sdejongh/mergescout/pkg/gitx"
	"github.com/sdejongh/mergescout/pkg/logging"
	"github.com/sdejongh/mergescout/pkg/output"
	"github.com/sdejongh/mergescout/pkg/validate"
)

// commandContext returns the cobra command context, falling back to
// context.Background
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig loads configuration from --config or the default location
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newLogger builds the logger from configuration and the global flags.
// The returned close function must be called before the process exits.
func newLogger(cfg *config.Config) (logging.Logger, func()) {
	if globalFlags.Quiet || !cfg.Logging.Enabled {
		return logging.NewNullLogger(), func() {}
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	if cfg.Logging.File != "" {
		logger, err := logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       cfg.Logging.File,
			Format:     logging.Format(cfg.Logging.Format),
			Level:      level,
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
		})
		if err == nil {
			return logger, func() { logger.Close() }
		}
		// Fall back to stderr rather than failing the command.
	}

	logger := logging.NewWriterLogger(os.Stderr, logging.Format(cfg.Logging.Format), level)
	return logger, func() {}
}

// newAnalyzer wires the analyzer from configuration
func newAnalyzer() (*analyze.Analyzer, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLogger := newLogger(cfg)
	runner := gitx.NewExecRunner(cfg.Git.Binary, cfg.Git.WorkDir)
	analyzer := analyze.New(gitx.NewRepo(runner), cfg.Git.WorkDir, logger)

	return analyzer, cfg, closeLogger, nil
}

// newGate builds the validation gate: the built-in Go checker plus any
// configured external checkers, which may override it per language
func newGate(cfg *config.Config) *validate.Gate {
	checkers := []validate.Checker{validate.GoChecker{}}
	for language, argv := range cfg.Checkers {
		checkers = append(checkers, validate.NewCommandChecker(language, argv))
	}
	return validate.NewGate(cfg.Git.WorkDir, checkers...)
}

// printDoc writes the command's single JSON document to stdout
func printDoc(cfg *config.Config, doc any) error {
	return output.WriteDocument(os.Stdout, cfg.Output.Pretty, doc)
}

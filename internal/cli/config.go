package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sdejongh/mergescout/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify mergescout configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Git Binary: %s\n", cfg.Git.Binary)
			if cfg.Git.WorkDir != "" {
				fmt.Fprintf(w, "Work Dir: %s\n", cfg.Git.WorkDir)
			}
			fmt.Fprintf(w, "Backup Prefix: %s\n", cfg.Backup.Prefix)
			fmt.Fprintf(w, "Output Format: %s\n", cfg.Output.Format)
			fmt.Fprintf(w, "Logging Enabled: %t\n", cfg.Logging.Enabled)
			fmt.Fprintf(w, "Log Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(w, "Log Level: %s\n", cfg.Logging.Level)
			logFile := cfg.Logging.File
			if logFile == "" {
				logFile = "(stderr)"
			}
			fmt.Fprintf(w, "Log File: %s\n", logFile)

			languages := make([]string, 0, len(cfg.Checkers))
			for language := range cfg.Checkers {
				languages = append(languages, language)
			}
			sort.Strings(languages)
			for _, language := range languages {
				fmt.Fprintf(w, "Checker (%s): %v\n", language, cfg.Checkers[language])
			}

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}

			if err := config.SaveToFile(config.Default(), path); err != nil {
				return err
			}

			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/mergescout/internal/cli"
	"github.com/sdejongh/mergescout/pkg/output"
)

func main() {
	if err := run(); err != nil {
		output.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "mergescout",
		Short: "Structured merge conflict analysis for automated resolvers",
		Long: `mergescout inspects merge conflicts left in a git working tree and
prints structured, machine-readable facts about them: conflict locations,
the three historical versions involved, a heuristic classification of each
conflict's nature, and an estimate of how hard it would be to resolve.
It never resolves conflicts itself; resolution is left to the agent
consuming its output.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", cli.Version, cli.Commit, cli.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(cli.NewExtractCommand())
	rootCmd.AddCommand(cli.NewContextCommand())
	rootCmd.AddCommand(cli.NewCategorizeCommand())
	rootCmd.AddCommand(cli.NewValidateCommand())
	rootCmd.AddCommand(cli.NewBackupCommand())
	rootCmd.AddCommand(cli.NewScanCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}

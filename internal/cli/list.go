package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all files with merge conflicts",
		Long: `List every working-tree file with unresolved merge conflicts
(both-modified and both-added) as a JSON array of paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, cfg, closeLogger, err := newAnalyzer()
			if err != nil {
				return err
			}
			defer closeLogger()

			files, err := analyzer.ListConflicts(commandContext(cmd))
			if err != nil {
				return err
			}

			return printDoc(cfg, files)
		},
	}
}

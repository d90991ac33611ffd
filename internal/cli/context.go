package cli

import (
	"github.com/spf13/cobra"
)

// NewContextCommand creates the context command
func NewContextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "context <filepath>",
		Short: "Show commit history context for a conflicted file",
		Long: `Report the merge base, the one-line commit summaries unique to each
side of the merge for the given file, and a lightweight scan of the
file's imports and function definitions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, cfg, closeLogger, err := newAnalyzer()
			if err != nil {
				return err
			}
			defer closeLogger()

			report, err := analyzer.Context(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return printDoc(cfg, report)
		},
	}
}

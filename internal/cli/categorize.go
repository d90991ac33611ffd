package cli

import (
	"github.com/spf13/cobra"
)

// NewCategorizeCommand creates the categorize command
func NewCategorizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <filepath>",
		Short: "Classify the conflicts in a file",
		Long: `Classify each conflict block in the file and report the primary
conflict type, the estimated resolution difficulty and whether the file
is mechanically auto-resolvable. A file without parseable conflict
markers yields the UNKNOWN verdict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, cfg, closeLogger, err := newAnalyzer()
			if err != nil {
				return err
			}
			defer closeLogger()

			verdict := analyzer.Categorize(commandContext(cmd), args[0])
			return printDoc(cfg, verdict)
		},
	}
}

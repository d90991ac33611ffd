package cli

import (
	"github.com/spf13/cobra"
)

// NewExtractCommand creates the extract command
func NewExtractCommand() *cobra.Command {
	var withContext bool

	cmd := &cobra.Command{
		Use:   "extract <filepath>",
		Short: "Extract the three-way diff of a conflicted file",
		Long: `Extract the base, ours and theirs versions of a conflicted file from
the index stages, together with the conflict blocks parsed out of the
working tree. Stage versions that do not exist are reported as null.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, cfg, closeLogger, err := newAnalyzer()
			if err != nil {
				return err
			}
			defer closeLogger()

			report, err := analyzer.Extract(commandContext(cmd), args[0], withContext)
			if err != nil {
				return err
			}

			return printDoc(cfg, report)
		},
	}

	cmd.Flags().BoolVar(&withContext, "with-context", false,
		"include commit history context and the classifier verdict")

	return cmd
}

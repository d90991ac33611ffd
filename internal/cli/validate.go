package cli

import (
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "validate <filepath>",
		Short: "Validate a resolved file",
		Long: `Check a post-resolution file for syntactic validity and residual
conflict markers. The language is inferred from the file extension
unless --language is given; languages without a configured checker are
reported as trivially valid with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			gate := newGate(cfg)
			report := gate.Validate(commandContext(cmd), args[0], language)
			return printDoc(cfg, report)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "",
		"programming language (default: inferred from extension)")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdejongh/mergescout/pkg/models"
)

// NewBackupCommand creates the backup command
func NewBackupCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup branch before resolution",
		Long: `Create a branch snapshot of the current state so the resolving agent
can recover from a bad resolution. The name defaults to a timestamped
string; a name collision is an error and no alternate name is tried.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, cfg, closeLogger, err := newAnalyzer()
			if err != nil {
				return err
			}
			defer closeLogger()

			branch, err := analyzer.Backup(commandContext(cmd), name, cfg.Backup.Prefix)
			if err != nil {
				return err
			}

			return printDoc(cfg, models.BackupReport{BackupBranch: branch})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "custom branch name")

	return cmd
}

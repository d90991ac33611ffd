package cli

import (
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sdejongh/mergescout/pkg/output"
)

// ScanFlags holds scan command flags
type ScanFlags struct {
	Output string
}

var scanFlags ScanFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Categorize every conflicted file in the repository",
		Long: `Run the classifier over every file with unresolved conflicts and
report the verdicts together with summary counts. Progress is shown on
standard error while scanning unless --quiet is set.`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}

	cmd.Flags().StringVarP(&scanFlags.Output, "output", "o", "",
		"output format: json, human (default: from config)")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	analyzer, cfg, closeLogger, err := newAnalyzer()
	if err != nil {
		return err
	}
	defer closeLogger()

	format := cfg.Output.Format
	if scanFlags.Output != "" {
		format = scanFlags.Output
	}
	if format != "json" && format != "human" {
		return fmt.Errorf("invalid output format: %s (valid: json, human)", format)
	}

	var bar *pb.ProgressBar
	progress := func(done, total int) {
		if bar == nil && progressEnabled(globalFlags.Quiet, total, isatty.IsTerminal(os.Stderr.Fd())) {
			bar = pb.New(total)
			bar.SetWriter(os.Stderr)
			bar.Start()
		}
		if bar != nil {
			bar.SetCurrent(int64(done))
		}
	}

	report, err := analyzer.Scan(commandContext(cmd), progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if format == "human" {
		output.WriteScanSummary(os.Stdout, report)
		return nil
	}

	return printDoc(cfg, report)
}

// progressEnabled reports whether the scan should render a progress bar:
// never for a single file, under --quiet, or when stderr is not a terminal
func progressEnabled(quiet bool, total int, terminal bool) bool {
	return !quiet && total > 1 && terminal
}

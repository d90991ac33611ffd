package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sdejongh/mergescout/pkg/models"
)

var difficultyColors = map[models.Difficulty]*color.Color{
	models.DifficultyEasy:     color.New(color.FgGreen),
	models.DifficultyMedium:   color.New(color.FgYellow),
	models.DifficultyHard:     color.New(color.FgRed),
	models.DifficultyEscalate: color.New(color.FgRed, color.Bold),
}

// WriteScanSummary prints a per-file table and totals for a repository scan
func WriteScanSummary(w io.Writer, report *models.ScanReport) {
	if report.TotalFiles == 0 {
		fmt.Fprintln(w, "No conflicted files found.")
		return
	}

	for _, entry := range report.Files {
		difficulty := string(entry.Difficulty)
		if c, ok := difficultyColors[entry.Difficulty]; ok {
			difficulty = c.Sprint(difficulty)
		}

		marker := " "
		if entry.AutoResolvable {
			marker = "*"
		}

		fmt.Fprintf(w, "%s %-50s %-20s %-8s %d conflict(s)\n",
			marker, entry.Filepath, entry.Type, difficulty, entry.NumConflicts)
	}

	fmt.Fprintf(w, "\n%d conflicted file(s), %d auto-resolvable (*), %d escalated\n",
		report.TotalFiles, report.AutoResolvable, report.Escalations)
}

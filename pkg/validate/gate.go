// Package validate checks a post-resolution file for syntactic validity and
// for residual conflict markers. Language-specific syntax checking is
// delegated to injected Checker capabilities; the marker re-scan is
// unconditional and overrides whatever the checker concluded.
package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/mergescout/pkg/gitx"
	"github.com/sdejongh/mergescout/pkg/markers"
	"github.com/sdejongh/mergescout/pkg/models"
)

// LanguageUnknown is reported for extensions outside the closed mapping
const LanguageUnknown = "unknown"

var languageByExt = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".go":   "go",
	".rs":   "rust",
	".java": "java",
	".cpp":  "cpp",
	".c":    "c",
}

// DetectLanguage maps a file extension to a language name
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if language, ok := languageByExt[ext]; ok {
		return language
	}
	return LanguageUnknown
}

// Gate validates resolved files
type Gate struct {
	workDir  string
	checkers map[string]Checker
}

// NewGate creates a gate from the given checkers; relative paths are checked
// inside workDir so the gate reads the same files git reported. When two
// checkers claim the same language the later one wins, so configured checkers
// can override built-in ones.
func NewGate(workDir string, checkers ...Checker) *Gate {
	byLanguage := make(map[string]Checker, len(checkers))
	for _, checker := range checkers {
		byLanguage[checker.Language()] = checker
	}
	return &Gate{workDir: workDir, checkers: byLanguage}
}

// Validate checks path and reports syntax validity, semantic errors and
// warnings. When language is empty it is inferred from the file extension.
// Languages without a checker warn and report trivially valid syntax. The
// residual-marker scan always runs, even when the language check errored.
func (g *Gate) Validate(ctx context.Context, path, language string) models.ValidationReport {
	if language == "" {
		language = DetectLanguage(path)
	}

	report := models.ValidationReport{
		Filepath:       path,
		Language:       language,
		SemanticErrors: []string{},
		Warnings:       []string{},
	}

	target := gitx.WorktreePath(g.workDir, path)

	if checker, ok := g.checkers[language]; ok {
		failure, err := checker.Check(ctx, target)
		switch {
		case err != nil:
			report.Warnings = append(report.Warnings, fmt.Sprintf("validation error: %v", err))
		case failure != nil:
			report.SyntaxValid = boolPtr(false)
			report.SemanticErrors = append(report.SemanticErrors, formatFailure(failure))
		default:
			report.SyntaxValid = boolPtr(true)
		}
	} else {
		report.Warnings = append(report.Warnings, fmt.Sprintf("no syntax validator available for %s", language))
		report.SyntaxValid = boolPtr(true)
	}

	// Residual markers override the language checker's conclusion.
	content, err := os.ReadFile(target)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("could not check for markers: %v", err))
	} else if markers.Contains(string(content)) {
		report.SemanticErrors = append(report.SemanticErrors, "conflict markers still present")
		report.SyntaxValid = boolPtr(false)
	}

	return report
}

func formatFailure(failure *Failure) string {
	if failure.Line > 0 {
		return fmt.Sprintf("Line %d: %s", failure.Line, failure.Message)
	}
	return failure.Message
}

func boolPtr(v bool) *bool {
	return &v
}

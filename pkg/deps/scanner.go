// Package deps extracts import statements and function definitions from raw
// file text. The matching is deliberately approximate: line-anchored regexes
// covering common language families, not a parser. Results are advisory
// context for the external resolving agent and never gate classification.
package deps

import (
	"os"
	"regexp"

	"github.com/sdejongh/mergescout/pkg/models"
)

// maxEntries caps each result list to keep reports small
const maxEntries = 20

var importPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^[ \t]*import[ \t]+[\w., ]+`),
	regexp.MustCompile(`(?m)^[ \t]*from[ \t]+[\w.]+[ \t]+import[ \t]`),
	regexp.MustCompile(`(?m)^[ \t]*#include[ \t]*[<"][\w./]+[>"]`),
}

var funcPattern = regexp.MustCompile(`\b(?:def|function|func)\s+(\w+)\s*\(`)

// Scan extracts dependency signals from file content
func Scan(content string) models.Dependencies {
	imports := []string{}
	for _, pattern := range importPatterns {
		imports = append(imports, pattern.FindAllString(content, -1)...)
	}

	functions := []string{}
	for _, match := range funcPattern.FindAllStringSubmatch(content, -1) {
		functions = append(functions, match[1])
	}

	return models.Dependencies{
		Imports:   truncate(imports),
		Functions: truncate(functions),
		Variables: []string{},
	}
}

// ScanFile reads path and scans it. An unreadable file yields empty lists
// rather than an error; the signals are best-effort.
func ScanFile(path string) models.Dependencies {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.Dependencies{
			Imports:   []string{},
			Functions: []string{},
			Variables: []string{},
		}
	}
	return Scan(string(content))
}

func truncate(entries []string) []string {
	if len(entries) > maxEntries {
		return entries[:maxEntries]
	}
	return entries
}

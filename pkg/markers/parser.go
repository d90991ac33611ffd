// Package markers parses git conflict markers out of working-tree text.
package markers

import (
	"strings"

	"github.com/sdejongh/mergescout/pkg/models"
)

// Conflict marker tokens as git writes them. Matching is by line prefix, so
// the branch-name suffix on the opening and closing markers is ignored.
const (
	StartToken     = "<<<<<<<"
	SeparatorToken = "======="
	EndToken       = ">>>>>>>"
)

// Parse scans content for conflict marker triples and returns the parsed
// blocks in file order. A block is emitted only when the opening marker,
// separator and closing marker are all found in order; an unterminated
// sequence at end of input is discarded. Opening markers encountered while
// already inside a block are treated as ordinary content.
func Parse(content string) []models.ConflictBlock {
	lines := SplitLines(content)

	blocks := []models.ConflictBlock{}
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], StartToken) {
			continue
		}

		start := i
		sep, end := -1, -1
		var ours, theirs []string

		for i++; i < len(lines); i++ {
			if strings.HasPrefix(lines[i], SeparatorToken) {
				sep = i
				break
			}
			ours = append(ours, lines[i])
		}

		if sep >= 0 {
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(lines[i], EndToken) {
					end = i
					break
				}
				theirs = append(theirs, lines[i])
			}
		}

		if sep < 0 || end < 0 {
			// Ran off the end of the input with the block still open.
			break
		}

		blocks = append(blocks, models.ConflictBlock{
			StartLine:   start + 1,
			EndLine:     end + 1,
			Ours:        strings.Join(ours, ""),
			Theirs:      strings.Join(theirs, ""),
			OursLabel:   strings.TrimSpace(lines[start]),
			TheirsLabel: strings.TrimSpace(lines[end]),
		})
	}

	return blocks
}

// Contains reports whether any of the three marker tokens appears anywhere
// in content, including mid-line.
func Contains(content string) bool {
	return strings.Contains(content, StartToken) ||
		strings.Contains(content, SeparatorToken) ||
		strings.Contains(content, EndToken)
}

// SplitLines splits content into lines with terminators preserved, so that
// joining the result reproduces the input exactly.
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i+1])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

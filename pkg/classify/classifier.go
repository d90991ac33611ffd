// Package classify assigns conflict types and resolution difficulty to
// parsed conflict blocks using an ordered list of keyword and token-set
// heuristics.
package classify

import (
	"strings"

	"github.com/sdejongh/mergescout/pkg/models"
)

// escalationThreshold is the number of LOGIC-dominated blocks above which a
// file is escalated for human review
const escalationThreshold = 3

// severityOrder decides the file-level primary type: the highest-severity
// type present anywhere among the per-block types wins.
var severityOrder = []models.ConflictType{
	models.ConflictLogic,
	models.ConflictFunctionSignature,
	models.ConflictRefactor,
	models.ConflictRename,
	models.ConflictImport,
	models.ConflictWhitespace,
}

// Classify produces a per-file verdict from its parsed conflict blocks.
// A file with no blocks yields the UNKNOWN verdict.
func Classify(blocks []models.ConflictBlock) models.Verdict {
	if len(blocks) == 0 {
		return UnknownVerdict()
	}

	types := make([]models.ConflictType, 0, len(blocks))
	difficulty := models.DifficultyEasy

	for _, block := range blocks {
		ours := strings.TrimSpace(block.Ours)
		theirs := strings.TrimSpace(block.Theirs)

		matched := false
		for _, r := range rules {
			if r.match(ours, theirs) {
				types = append(types, r.ctype)
				difficulty = models.MaxDifficulty(difficulty, r.floor)
				matched = true
				break
			}
		}
		if !matched {
			types = append(types, models.ConflictLogic)
			difficulty = models.MaxDifficulty(difficulty, models.DifficultyHard)
		}
	}

	primary := types[0]
	for _, candidate := range severityOrder {
		if containsType(types, candidate) {
			primary = candidate
			break
		}
	}

	autoResolvable := true
	for _, t := range types {
		if !t.Mechanical() {
			autoResolvable = false
			break
		}
	}

	// Logic conflicts are inherently risky; volume compounds the risk.
	if primary == models.ConflictLogic {
		difficulty = models.DifficultyHard
		if len(blocks) > escalationThreshold {
			difficulty = models.DifficultyEscalate
		}
	}

	return models.Verdict{
		Type:           primary,
		Difficulty:     difficulty,
		AutoResolvable: autoResolvable,
		AllTypes:       types,
		NumConflicts:   len(blocks),
	}
}

// UnknownVerdict is reported when a file has no parseable conflict blocks,
// including when the file itself cannot be read.
func UnknownVerdict() models.Verdict {
	return models.Verdict{
		Type:           models.ConflictUnknown,
		Difficulty:     models.DifficultyMedium,
		AutoResolvable: false,
		Reason:         "no conflict markers found",
	}
}

func containsType(types []models.ConflictType, t models.ConflictType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

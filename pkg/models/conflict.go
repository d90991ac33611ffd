package models

// ConflictType classifies the nature of a conflict block
type ConflictType string

const (
	// ConflictImport indicates conflicting import/include/require statements
	ConflictImport ConflictType = "IMPORT"
	// ConflictWhitespace indicates sides that differ only in whitespace
	ConflictWhitespace ConflictType = "WHITESPACE"
	// ConflictRename indicates a small identifier-only difference
	ConflictRename ConflictType = "RENAME"
	// ConflictRefactor is reserved for structural rewrites; no heuristic
	// currently produces it but it participates in the severity order
	ConflictRefactor ConflictType = "REFACTOR"
	// ConflictLogic indicates a semantic change requiring human judgment
	ConflictLogic ConflictType = "LOGIC"
	// ConflictFunctionSignature indicates a changed function/method/class
	// definition
	ConflictFunctionSignature ConflictType = "FUNCTION_SIGNATURE"
	// ConflictUnknown is reported when no blocks could be parsed
	ConflictUnknown ConflictType = "UNKNOWN"
)

// Mechanical reports whether conflicts of this type can be resolved without
// semantic judgment
func (t ConflictType) Mechanical() bool {
	return t == ConflictImport || t == ConflictWhitespace
}

// Difficulty estimates how hard a conflict is to resolve
type Difficulty string

const (
	// DifficultyEasy means trivially resolvable
	DifficultyEasy Difficulty = "EASY"
	// DifficultyMedium means resolvable with local context
	DifficultyMedium Difficulty = "MEDIUM"
	// DifficultyHard means semantic understanding is required
	DifficultyHard Difficulty = "HARD"
	// DifficultyEscalate means a human should review the file
	DifficultyEscalate Difficulty = "ESCALATE"
)

// Rank returns the position of the difficulty in the total order
// EASY < MEDIUM < HARD < ESCALATE. Unknown values rank below EASY.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	case DifficultyEscalate:
		return 3
	default:
		return -1
	}
}

// MaxDifficulty returns the harder of the two difficulties
func MaxDifficulty(a, b Difficulty) Difficulty {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

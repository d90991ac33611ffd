package models

// Verdict is the per-file classification result
type Verdict struct {
	// Type is the primary conflict type for the file
	Type ConflictType `json:"type"`

	// Difficulty is the running maximum across all blocks
	Difficulty Difficulty `json:"difficulty"`

	// AutoResolvable is true only if every block is mechanical
	AutoResolvable bool `json:"auto_resolvable"`

	// AllTypes lists the per-block types in block order
	AllTypes []ConflictType `json:"all_types,omitempty"`

	// NumConflicts is the number of parsed blocks
	NumConflicts int `json:"num_conflicts,omitempty"`

	// Reason explains an UNKNOWN verdict; empty otherwise
	Reason string `json:"reason,omitempty"`
}

// ExtractReport holds the three historical versions of a conflicted file
// plus the parsed conflict blocks from the working tree
type ExtractReport struct {
	Filepath string `json:"filepath"`

	// Base, Ours and Theirs are the stage blobs; nil when the stage is
	// unavailable (e.g. the file was added on both sides)
	Base   *string `json:"base"`
	Ours   *string `json:"ours"`
	Theirs *string `json:"theirs"`

	Markers []ConflictBlock `json:"markers"`

	// Context and Category are included by extract --with-context
	Context  *ContextReport `json:"context,omitempty"`
	Category *Verdict       `json:"category,omitempty"`
}

// ContextReport summarizes the commit history around a conflicted file
type ContextReport struct {
	Filepath string `json:"filepath"`

	// MergeBase is the common ancestor revision; nil when not mid-merge
	MergeBase *string `json:"merge_base"`

	// OursCommits and TheirsCommits are one-line commit summaries unique
	// to each side since the merge base
	OursCommits   []string `json:"ours_commits"`
	TheirsCommits []string `json:"theirs_commits"`

	Dependencies Dependencies `json:"dependencies"`
}

// Dependencies is the advisory output of the lightweight dependency scanner
type Dependencies struct {
	Imports   []string `json:"imports"`
	Functions []string `json:"functions"`
	// Variables is reserved and always empty
	Variables []string `json:"variables"`
}

// ValidationReport is the result of checking a post-resolution file
type ValidationReport struct {
	Filepath string `json:"filepath"`
	Language string `json:"language"`

	// SyntaxValid is nil when validity could not be determined
	SyntaxValid *bool `json:"syntax_valid"`

	SemanticErrors []string `json:"semantic_errors"`
	Warnings       []string `json:"warnings"`
}

// BackupReport names the branch snapshot created before resolution
type BackupReport struct {
	BackupBranch string `json:"backup_branch"`
}

// ScanEntry is the verdict for one conflicted file in a repository scan
type ScanEntry struct {
	Filepath string `json:"filepath"`
	Verdict
}

// ScanReport aggregates verdicts for every conflicted file in the repository
type ScanReport struct {
	Files          []ScanEntry `json:"files"`
	TotalFiles     int         `json:"total_files"`
	AutoResolvable int         `json:"auto_resolvable"`
	Escalations    int         `json:"escalations"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

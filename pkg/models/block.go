package models

// ConflictBlock represents a single marker-delimited conflict region in a file
type ConflictBlock struct {
	// StartLine is the 1-based line number of the opening marker
	StartLine int `json:"start_line"`

	// EndLine is the 1-based line number of the closing marker
	EndLine int `json:"end_line"`

	// Ours is the raw text between the opening marker and the separator,
	// line terminators preserved
	Ours string `json:"ours"`

	// Theirs is the raw text between the separator and the closing marker,
	// line terminators preserved
	Theirs string `json:"theirs"`

	// OursLabel is the literal opening marker line, including any
	// branch-name suffix git appended
	OursLabel string `json:"ours_label"`

	// TheirsLabel is the literal closing marker line
	TheirsLabel string `json:"theirs_label"`
}

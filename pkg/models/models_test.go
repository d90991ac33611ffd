package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDifficultyRank(t *testing.T) {
	ordered := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEscalate}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("Rank(%s) = %d is not below Rank(%s) = %d",
				ordered[i-1], ordered[i-1].Rank(), ordered[i], ordered[i].Rank())
		}
	}

	if Difficulty("BOGUS").Rank() >= DifficultyEasy.Rank() {
		t.Error("unknown difficulty should rank below EASY")
	}
}

func TestMaxDifficulty(t *testing.T) {
	tests := []struct {
		a, b, want Difficulty
	}{
		{DifficultyEasy, DifficultyMedium, DifficultyMedium},
		{DifficultyHard, DifficultyMedium, DifficultyHard},
		{DifficultyEscalate, DifficultyEasy, DifficultyEscalate},
		{DifficultyMedium, DifficultyMedium, DifficultyMedium},
	}

	for _, tt := range tests {
		if got := MaxDifficulty(tt.a, tt.b); got != tt.want {
			t.Errorf("MaxDifficulty(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConflictTypeMechanical(t *testing.T) {
	mechanical := map[ConflictType]bool{
		ConflictImport:            true,
		ConflictWhitespace:        true,
		ConflictRename:            false,
		ConflictRefactor:          false,
		ConflictLogic:             false,
		ConflictFunctionSignature: false,
		ConflictUnknown:           false,
	}

	for ctype, want := range mechanical {
		if got := ctype.Mechanical(); got != want {
			t.Errorf("%s.Mechanical() = %v, want %v", ctype, got, want)
		}
	}
}

func TestVerdictJSON(t *testing.T) {
	t.Run("NormalShape", func(t *testing.T) {
		verdict := Verdict{
			Type:           ConflictImport,
			Difficulty:     DifficultyEasy,
			AutoResolvable: true,
			AllTypes:       []ConflictType{ConflictImport},
			NumConflicts:   1,
		}

		data, err := json.Marshal(verdict)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		doc := string(data)
		for _, key := range []string{`"type"`, `"difficulty"`, `"auto_resolvable"`, `"all_types"`, `"num_conflicts"`} {
			if !strings.Contains(doc, key) {
				t.Errorf("verdict JSON missing key %s: %s", key, doc)
			}
		}
		if strings.Contains(doc, `"reason"`) {
			t.Errorf("normal verdict should omit reason: %s", doc)
		}
	})

	t.Run("UnknownShape", func(t *testing.T) {
		verdict := Verdict{
			Type:       ConflictUnknown,
			Difficulty: DifficultyMedium,
			Reason:     "no conflict markers found",
		}

		data, err := json.Marshal(verdict)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		doc := string(data)
		if !strings.Contains(doc, `"reason"`) {
			t.Errorf("unknown verdict should include reason: %s", doc)
		}
		if strings.Contains(doc, `"all_types"`) || strings.Contains(doc, `"num_conflicts"`) {
			t.Errorf("unknown verdict should omit all_types and num_conflicts: %s", doc)
		}
	})
}

func TestExtractReportJSON(t *testing.T) {
	report := ExtractReport{
		Filepath: "a.py",
		Markers:  []ConflictBlock{},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	doc := string(data)
	for _, want := range []string{`"base":null`, `"ours":null`, `"theirs":null`, `"markers":[]`} {
		if !strings.Contains(doc, want) {
			t.Errorf("extract JSON missing %s: %s", want, doc)
		}
	}
	if strings.Contains(doc, `"context"`) || strings.Contains(doc, `"category"`) {
		t.Errorf("extract without context should omit context and category: %s", doc)
	}
}

func TestConflictBlockJSON(t *testing.T) {
	block := ConflictBlock{
		StartLine:   2,
		EndLine:     8,
		Ours:        "a\n",
		Theirs:      "b\n",
		OursLabel:   "<<<<<<< HEAD",
		TheirsLabel: ">>>>>>> feature",
	}

	data, err := json.Marshal(block)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	doc := string(data)
	for _, key := range []string{`"start_line":2`, `"end_line":8`, `"ours_label"`, `"theirs_label"`} {
		if !strings.Contains(doc, key) {
			t.Errorf("block JSON missing %s: %s", key, doc)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "output.format", Message: "must be 'json' or 'human'"}
	if err.Error() != "output.format: must be 'json' or 'human'" {
		t.Errorf("Error() = %q", err.Error())
	}
}

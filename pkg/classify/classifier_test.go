package classify

import (
	"reflect"
	"testing"

	"github.com/sdejongh/mergescout/pkg/models"
)

func block(ours, theirs string) models.ConflictBlock {
	return models.ConflictBlock{Ours: ours, Theirs: theirs}
}

func TestClassifyBlockTypes(t *testing.T) {
	tests := []struct {
		name   string
		ours   string
		theirs string
		want   models.ConflictType
	}{
		{"Import", "import foo\n", "import bar\n", models.ConflictImport},
		{"Include", "#include <stdio.h>\n", "#include <stdlib.h>\n", models.ConflictImport},
		{"Require", "const x = require('a')\n", "const x = require('b')\n", models.ConflictImport},
		{"Whitespace", "x = 1\n", "x=1\n", models.ConflictWhitespace},
		{"WhitespaceTabs", "\tvalue := 2\n", "    value := 2\n", models.ConflictWhitespace},
		{"FunctionSignature", "def handle(x):\n", "def handle(x, y):\n", models.ConflictFunctionSignature},
		{"GoFuncSignature", "func Handle(x int) {\n", "func Handle(x, y int) {\n", models.ConflictFunctionSignature},
		{"Rename", "total = old_name + 1\n", "total = new_name + 1\n", models.ConflictRename},
		{"NumericChangeIsNotRename", "retries = 2\n", "retries = 3\n", models.ConflictLogic},
		{"LargeDifferenceIsLogic", "a b c d e\n", "v w x y z\n", models.ConflictLogic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Classify([]models.ConflictBlock{block(tt.ours, tt.theirs)})
			if verdict.Type != tt.want {
				t.Errorf("Type = %s, want %s", verdict.Type, tt.want)
			}
			if len(verdict.AllTypes) != 1 || verdict.AllTypes[0] != tt.want {
				t.Errorf("AllTypes = %v, want [%s]", verdict.AllTypes, tt.want)
			}
		})
	}
}

func TestClassifyDifficulty(t *testing.T) {
	t.Run("WhitespaceIsEasy", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{block("x = 1\n", "x=1\n")})
		if verdict.Difficulty != models.DifficultyEasy {
			t.Errorf("Difficulty = %s, want EASY", verdict.Difficulty)
		}
		if !verdict.AutoResolvable {
			t.Error("AutoResolvable = false, want true")
		}
	})

	t.Run("SignatureIsAtLeastMedium", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{block("def handle(x):\n", "def handle(x, y):\n")})
		if verdict.Difficulty.Rank() < models.DifficultyMedium.Rank() {
			t.Errorf("Difficulty = %s, want at least MEDIUM", verdict.Difficulty)
		}
	})

	t.Run("RenameIsAtLeastMedium", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{block("total = old_name\n", "total = new_name\n")})
		if verdict.Difficulty.Rank() < models.DifficultyMedium.Rank() {
			t.Errorf("Difficulty = %s, want at least MEDIUM", verdict.Difficulty)
		}
	})

	t.Run("SingleLogicIsHard", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{block("retries = 2\n", "retries = 3\n")})
		if verdict.Difficulty != models.DifficultyHard {
			t.Errorf("Difficulty = %s, want HARD", verdict.Difficulty)
		}
	})

	t.Run("ManyLogicBlocksEscalate", func(t *testing.T) {
		logic := block("retries = 2\n", "retries = 3\n")
		verdict := Classify([]models.ConflictBlock{logic, logic, logic, logic})
		if verdict.Difficulty != models.DifficultyEscalate {
			t.Errorf("Difficulty = %s, want ESCALATE for %d blocks", verdict.Difficulty, 4)
		}
	})

	t.Run("ThreeLogicBlocksStayHard", func(t *testing.T) {
		logic := block("retries = 2\n", "retries = 3\n")
		verdict := Classify([]models.ConflictBlock{logic, logic, logic})
		if verdict.Difficulty != models.DifficultyHard {
			t.Errorf("Difficulty = %s, want HARD", verdict.Difficulty)
		}
	})
}

func TestClassifyAggregation(t *testing.T) {
	t.Run("LogicDominatesImport", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{
			block("import foo\n", "import bar\n"),
			block("retries = 2\n", "retries = 3\n"),
		})
		if verdict.Type != models.ConflictLogic {
			t.Errorf("Type = %s, want LOGIC", verdict.Type)
		}
		if verdict.AutoResolvable {
			t.Error("AutoResolvable = true, want false")
		}
		if verdict.NumConflicts != 2 {
			t.Errorf("NumConflicts = %d, want 2", verdict.NumConflicts)
		}
	})

	t.Run("ImportDominatesWhitespace", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{
			block("x = 1\n", "x=1\n"),
			block("import foo\n", "import bar\n"),
		})
		if verdict.Type != models.ConflictImport {
			t.Errorf("Type = %s, want IMPORT", verdict.Type)
		}
		if !verdict.AutoResolvable {
			t.Error("AutoResolvable = false, want true for mechanical-only blocks")
		}
	})

	t.Run("AllTypesInBlockOrder", func(t *testing.T) {
		verdict := Classify([]models.ConflictBlock{
			block("x = 1\n", "x=1\n"),
			block("import foo\n", "import bar\n"),
		})
		want := []models.ConflictType{models.ConflictWhitespace, models.ConflictImport}
		if !reflect.DeepEqual(verdict.AllTypes, want) {
			t.Errorf("AllTypes = %v, want %v", verdict.AllTypes, want)
		}
	})
}

func TestClassifyNoBlocks(t *testing.T) {
	verdict := Classify(nil)

	if verdict.Type != models.ConflictUnknown {
		t.Errorf("Type = %s, want UNKNOWN", verdict.Type)
	}
	if verdict.Difficulty != models.DifficultyMedium {
		t.Errorf("Difficulty = %s, want MEDIUM", verdict.Difficulty)
	}
	if verdict.AutoResolvable {
		t.Error("AutoResolvable = true, want false")
	}
	if verdict.Reason == "" {
		t.Error("Reason is empty, want an explanation")
	}
	if len(verdict.AllTypes) != 0 || verdict.NumConflicts != 0 {
		t.Errorf("AllTypes = %v, NumConflicts = %d, want empty", verdict.AllTypes, verdict.NumConflicts)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	blocks := []models.ConflictBlock{
		block("import foo\n", "import bar\n"),
		block("total = old_name + 1\n", "total = new_name + 1\n"),
	}

	first := Classify(blocks)
	second := Classify(blocks)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify() not idempotent: %+v vs %+v", first, second)
	}
}

func TestMatchRename(t *testing.T) {
	tests := []struct {
		name   string
		ours   string
		theirs string
		want   bool
	}{
		{"SimpleRename", "total = old_name", "total = new_name", true},
		{"NumericDifference", "retries = 2", "retries = 3", false},
		{"EmptyOurs", "", "something new", false},
		{"TooManyDifferences", "a b c", "x y z", false},
		{"IdenticalSides", "same = thing", "same = thing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchRename(tt.ours, tt.theirs); got != tt.want {
				t.Errorf("matchRename(%q, %q) = %v, want %v", tt.ours, tt.theirs, got, tt.want)
			}
		})
	}
}

package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	t.Run("PythonImports", func(t *testing.T) {
		content := "import os, sys\nfrom pathlib import Path\n\nx = 1\n"

		result := Scan(content)
		if len(result.Imports) != 2 {
			t.Fatalf("Imports = %v, want 2 entries", result.Imports)
		}
		if result.Imports[0] != "import os, sys" {
			t.Errorf("Imports[0] = %q, want %q", result.Imports[0], "import os, sys")
		}
	})

	t.Run("CInclude", func(t *testing.T) {
		content := "#include <stdio.h>\n#include \"local.h\"\nint main() {}\n"

		result := Scan(content)
		if len(result.Imports) != 2 {
			t.Errorf("Imports = %v, want 2 entries", result.Imports)
		}
	})

	t.Run("FunctionNames", func(t *testing.T) {
		content := "def handle(x):\n    pass\n\nfunc Parse(s string) {}\nfunction doThing() {}\n"

		result := Scan(content)
		want := []string{"handle", "Parse", "doThing"}
		if len(result.Functions) != len(want) {
			t.Fatalf("Functions = %v, want %v", result.Functions, want)
		}
		for i := range want {
			if result.Functions[i] != want[i] {
				t.Errorf("Functions[%d] = %q, want %q", i, result.Functions[i], want[i])
			}
		}
	})

	t.Run("TruncatesToTwenty", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 30; i++ {
			fmt.Fprintf(&b, "import module%d\n", i)
		}

		result := Scan(b.String())
		if len(result.Imports) != 20 {
			t.Errorf("Imports has %d entries, want 20", len(result.Imports))
		}
	})

	t.Run("VariablesAlwaysEmpty", func(t *testing.T) {
		result := Scan("x = 1\ny = 2\n")
		if result.Variables == nil || len(result.Variables) != 0 {
			t.Errorf("Variables = %v, want empty non-nil list", result.Variables)
		}
	})

	t.Run("IndentedImportMatches", func(t *testing.T) {
		result := Scan("    import contextual\n")
		if len(result.Imports) != 1 {
			t.Errorf("Imports = %v, want 1 entry", result.Imports)
		}
	})
}

func TestScanFile(t *testing.T) {
	t.Run("ReadsFile", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sample.py")
		if err := os.WriteFile(path, []byte("import os\ndef run():\n    pass\n"), 0644); err != nil {
			t.Fatalf("failed to write sample file: %v", err)
		}

		result := ScanFile(path)
		if len(result.Imports) != 1 || len(result.Functions) != 1 {
			t.Errorf("ScanFile() = %+v, want 1 import and 1 function", result)
		}
	})

	t.Run("UnreadableFileYieldsEmptyLists", func(t *testing.T) {
		result := ScanFile(filepath.Join(t.TempDir(), "missing.py"))
		if result.Imports == nil || result.Functions == nil || result.Variables == nil {
			t.Fatal("ScanFile() returned nil lists, want empty lists")
		}
		if len(result.Imports) != 0 || len(result.Functions) != 0 {
			t.Errorf("ScanFile() = %+v, want empty lists", result)
		}
	})
}

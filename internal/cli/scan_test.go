package cli

import "testing"

func TestProgressEnabled(t *testing.T) {
	tests := []struct {
		name     string
		quiet    bool
		total    int
		terminal bool
		want     bool
	}{
		{"InteractiveMultiFile", false, 3, true, true},
		{"Quiet", true, 3, true, false},
		{"NotATerminal", false, 3, false, false},
		{"SingleFile", false, 1, true, false},
		{"NoFiles", false, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progressEnabled(tt.quiet, tt.total, tt.terminal); got != tt.want {
				t.Errorf("progressEnabled(%t, %d, %t) = %t, want %t",
					tt.quiet, tt.total, tt.terminal, got, tt.want)
			}
		})
	}
}

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

// Bare `minehook log` aliases `log tail`, so both commands must accept the
// same count flag in both long and short form.
func TestLogCommandsAcceptCountFlag(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
	}{
		{"log", logCmd},
		{"log tail", logTailCmd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := tt.cmd.Flags().Lookup("count")
			if flag == nil {
				t.Fatalf("%s does not define --count", tt.name)
			}
			if flag.Shorthand != "n" {
				t.Errorf("--count shorthand = %q, want %q", flag.Shorthand, "n")
			}
			if flag.DefValue != "10" {
				t.Errorf("--count default = %q, want %q", flag.DefValue, "10")
			}
		})
	}
}

func TestLogTailFlagParses(t *testing.T) {
	if err := logCmd.Flags().Set("count", "5"); err != nil {
		t.Fatalf("setting count on log: %v", err)
	}
	if tailCount != 5 {
		t.Errorf("tailCount = %d after setting flag on log, want 5", tailCount)
	}

	if err := logTailCmd.Flags().Set("count", "7"); err != nil {
		t.Fatalf("setting count on log tail: %v", err)
	}
	if tailCount != 7 {
		t.Errorf("tailCount = %d after setting flag on log tail, want 7", tailCount)
	}
}

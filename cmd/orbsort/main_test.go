package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns its error.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	args = append(args, "--log-level", "error", "--db", filepath.Join(home, "scores.db"))
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCommandErrorsAreReturned(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown level", []string{"solve", "--level", "no_such_level"}, "level not found: no_such_level"},
		{"unknown variant", []string{"scores", "no_such_variant", "--level", ""}, `unknown variant "no_such_variant"`},
		{"unknown theme", []string{"list", "--theme", "neon"}, "unknown theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagTheme = "default"
			err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestSolveCommandSucceeds(t *testing.T) {
	flagTheme = "default"
	if err := execute(t, "solve", "--level", "01_first_steps", "--theme", "default"); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
}

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/orb-sort/internal/logging"
)

func TestLoadOrbSortEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrbSort("", nil)
	if err != nil {
		t.Fatalf("LoadOrbSort failed: %v", err)
	}

	if cfg != DefaultOrbSortConfig() {
		t.Errorf("embedded defaults diverge from DefaultOrbSortConfig:\n got %+v\nwant %+v", cfg, DefaultOrbSortConfig())
	}
}

func TestLoadOrbSortCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "rules:\n  batch_moves: false\n  require_full_tube: true\nscoring:\n  base: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrbSort(path, nil)
	if err != nil {
		t.Fatalf("LoadOrbSort failed: %v", err)
	}

	if cfg.Rules.BatchMoves || !cfg.Rules.RequireFullTube {
		t.Errorf("rules not applied: %+v", cfg.Rules)
	}
	if cfg.Scoring.Base != 500 {
		t.Errorf("expected base 500, got %d", cfg.Scoring.Base)
	}
	// Unset keys keep their defaults
	if cfg.Rules.Capacity != 4 || cfg.Scoring.MovePenalty != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadOrbSortUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".orbsort", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("board:\n  colors: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrbSort("", nil)
	if err != nil {
		t.Fatalf("LoadOrbSort failed: %v", err)
	}
	if cfg.Board.Colors != 6 {
		t.Errorf("expected user config colors 6, got %d", cfg.Board.Colors)
	}
}

func TestLoadOrbSortBadUserFileFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".orbsort", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("board:\n  colors: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrbSort("", logger)
	if err != nil {
		t.Fatalf("LoadOrbSort failed: %v", err)
	}
	if cfg.Board.Colors != 4 {
		t.Errorf("expected fallback to default colors, got %d", cfg.Board.Colors)
	}

	out := buf.String()
	if !strings.Contains(out, "ignoring config file") || !strings.Contains(out, "board.colors 99") {
		t.Errorf("expected a warning naming the bad value, got %q", out)
	}
}

func TestLoadOrbSortCustomPathErrors(t *testing.T) {
	if _, err := LoadOrbSort(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  capacity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadOrbSort(path, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestScoringScore(t *testing.T) {
	s := ScoringConfig{Base: 1000, MovePenalty: 10, MinScore: 100}

	tests := []struct {
		moves int
		want  int
	}{
		{0, 1000},
		{12, 880},
		{90, 100},
		{500, 100},
	}

	for _, tt := range tests {
		if got := s.Score(tt.moves); got != tt.want {
			t.Errorf("Score(%d) = %d, want %d", tt.moves, got, tt.want)
		}
	}
}

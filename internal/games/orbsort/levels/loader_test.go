package levels

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
	"github.com/vovakirdan/orb-sort/internal/logging"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(testdataPath())
	loader.Logger = logger
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and notes.txt are skipped
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "alpha" || lvls[1].ID != "beta" {
		t.Errorf("unexpected order: %v", IDs(lvls))
	}

	out := buf.String()
	if !strings.Contains(out, "skipping level file") || !strings.Contains(out, "broken.yaml") {
		t.Errorf("expected a warning for broken.yaml, got %q", out)
	}
	if strings.Contains(out, "notes.txt") {
		t.Errorf("non-level files should be ignored quietly, got %q", out)
	}
}

func TestLoaderFixedLevel(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadFile(filepath.Join(testdataPath(), "alpha.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if lvl.Name != "Alpha" {
		t.Errorf("expected name Alpha, got %q", lvl.Name)
	}
	if lvl.Capacity != 2 {
		t.Errorf("expected capacity 2, got %d", lvl.Capacity)
	}
	if lvl.Shuffled() {
		t.Error("alpha should be a fixed level")
	}
	if lvl.TubeCount() != 3 || lvl.ColorCount() != 2 {
		t.Errorf("expected 3 tubes / 2 colors, got %d / %d", lvl.TubeCount(), lvl.ColorCount())
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("expected metadata author=test, got %v", lvl.Metadata)
	}
	if lvl.FilePath == "" {
		t.Error("expected FilePath to be set")
	}

	layout, err := lvl.Layout(nil)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if layout[0][0] != engine.ColorRed || layout[0][1] != engine.ColorBlue {
		t.Errorf("unexpected first tube: %v", layout[0])
	}

	// Layout must hand out copies
	layout[0][0] = engine.ColorGreen
	if lvl.Tubes[0][0] != engine.ColorRed {
		t.Error("Layout returned shared storage")
	}
}

func TestLoaderShuffledLevel(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadFile(filepath.Join(testdataPath(), "beta.yml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if lvl.Capacity != engine.DefaultCapacity {
		t.Errorf("expected default capacity, got %d", lvl.Capacity)
	}
	if lvl.Name != "Beta" {
		t.Errorf("expected name Beta, got %q", lvl.Name)
	}

	l1, err := lvl.Layout(rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	l2, _ := lvl.Layout(rand.New(rand.NewSource(9)))
	if len(l1) != 4 {
		t.Fatalf("expected 4 tubes, got %d", len(l1))
	}
	for i := range l1 {
		if len(l1[i]) != len(l2[i]) {
			t.Fatalf("same seed dealt different boards")
		}
		for j := range l1[i] {
			if l1[i][j] != l2[i][j] {
				t.Fatalf("same seed dealt different boards")
			}
		}
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	lvls, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(lvls) != 0 {
		t.Errorf("expected no levels, got %d", len(lvls))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "name: x\ntubes: [[red]]\n"},
		{"no board", "id: x\n"},
		{"both boards", "id: x\ntubes: [[red, red, red, red]]\nshuffle: {colors: 2, empty_tubes: 1}\n"},
		{"unknown color", "id: x\ntubes: [[red, mauve]]\n"},
		{"unbalanced", "id: x\ntubes: [[red, red, red], [blue]]\n"},
		{"too many colors", "id: x\nshuffle: {colors: 99, empty_tubes: 1}\n"},
		{"bad yaml", "id: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Parse([]byte("id: x\n")); !errors.Is(err, ErrNoBoard) {
		t.Errorf("expected ErrNoBoard, got %v", err)
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if len(lvls) == 0 {
		t.Fatal("no builtin levels")
	}

	classic, err := Find(lvls, DefaultLevelID)
	if err != nil {
		t.Fatalf("classic level missing: %v", err)
	}
	if classic.Capacity != 4 || classic.TubeCount() != 6 || classic.ColorCount() != 4 {
		t.Errorf("classic should be 4 colors in 6 tubes of 4, got %d colors, %d tubes, capacity %d",
			classic.ColorCount(), classic.TubeCount(), classic.Capacity)
	}

	rng := rand.New(rand.NewSource(1))
	for _, lvl := range lvls {
		layout, err := lvl.Layout(rng)
		if err != nil {
			t.Errorf("%s: Layout failed: %v", lvl.ID, err)
			continue
		}
		if _, err := engine.NewWithLayout(engine.Options{Capacity: lvl.Capacity}, layout); err != nil {
			t.Errorf("%s: engine rejected layout: %v", lvl.ID, err)
		}
	}
}

func TestAllUserOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	data := "id: classic\nname: My Classic\ncapacity: 2\ntubes:\n  - [red, red]\n  - []\n"
	if err := os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	lvls, err := All(dir, nil)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	classic, err := Find(lvls, "classic")
	if err != nil {
		t.Fatal(err)
	}
	if classic.Name != "My Classic" {
		t.Errorf("expected user level to win, got %q", classic.Name)
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orb-sort/internal/logging"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultLevelID is the level played when none is requested.
const DefaultLevelID = "classic"

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // Receives a warning per skipped file
}

// NewLoader creates a new level loader that logs nowhere.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, Logger: logging.Discard()}
}

// DefaultDir returns the user level directory (~/.orbsort/levels).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbsort", "levels")
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning. Returns levels sorted by ID.
// A missing root directory yields no levels and no error.
func (l *Loader) LoadAll() ([]Level, error) {
	if l.Root == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	var levels []Level
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			l.logger().Warn("skipping level file", "path", path, "error", err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return logging.Discard()
	}
	return l.Logger
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// Builtin returns the embedded level set sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading embedded levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded level %s: %w", entry.Name(), err)
		}
		level, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("embedded level %s: %w", entry.Name(), err)
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// All returns the embedded levels merged with the levels found under
// userDir. A user level replaces an embedded level with the same ID.
// Broken user files are reported to logger, which may be nil.
func All(userDir string, logger *log.Logger) ([]Level, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	loader := NewLoader(userDir)
	if logger != nil {
		loader.Logger = logger
	}
	user, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Level, len(builtin)+len(user))
	for _, lvl := range builtin {
		byID[lvl.ID] = lvl
	}
	for _, lvl := range user {
		byID[lvl.ID] = lvl
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}
	sortByID(levels)
	return levels, nil
}

// Find returns the level with the given ID from a list.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// IDs returns the IDs of the given levels in order.
func IDs(levels []Level) []string {
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

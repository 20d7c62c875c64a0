package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.orbsort/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".orbsort", "scores.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game, level string
		score       int
	}{
		{"orbsort", "classic", 100},
		{"orbsort", "classic", 50},
		{"orbsort", "01_first_steps", 200},
		{"orbsort_classic", "classic", 500},
	} {
		if _, err := store.SaveScore(s.game, s.level, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	all, err := store.TopScores("orbsort", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(all))
	}
	if all[0].Score != 200 || all[1].Score != 100 || all[2].Score != 50 {
		t.Errorf("scores not sorted descending: %+v", all)
	}
	if all[0].LevelID != "01_first_steps" {
		t.Errorf("expected level 01_first_steps, got %q", all[0].LevelID)
	}

	classic, err := store.TopScores("orbsort", "classic", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 || classic[0].Score != 100 {
		t.Errorf("unexpected classic scores: %+v", classic)
	}

	high, err := store.HighScore("orbsort", "classic")
	if err != nil || high != 100 {
		t.Errorf("HighScore() = %d, %v; expected 100", high, err)
	}
	high, err = store.HighScore("orbsort", "")
	if err != nil || high != 200 {
		t.Errorf("HighScore() = %d, %v; expected 200", high, err)
	}
	high, err = store.HighScore("nobody", "")
	if err != nil || high != 0 {
		t.Errorf("HighScore() for empty game = %d, %v; expected 0", high, err)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "orbsort", LevelID: "classic", Seed: 7, Moves: 30, Duration: 90, Solved: true},
		{GameID: "orbsort", LevelID: "classic", Seed: 8, Moves: 12, Duration: 5, Solved: false},
		{GameID: "orbsort", LevelID: "classic", Seed: 9, Moves: 18, Duration: 60, Solved: true},
	}
	var ids []string
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("run ID %q is not a UUID: %v", id, err)
		}
		if parsed.Version() != 7 {
			t.Errorf("expected UUIDv7, got version %d", parsed.Version())
		}
		ids = append(ids, id)
	}

	recent, err := store.RecentRuns("orbsort", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(recent))
	}
	if recent[0].RunID != ids[2] || recent[2].RunID != ids[0] {
		t.Errorf("runs not newest first: %v", []string{recent[0].RunID, recent[1].RunID, recent[2].RunID})
	}
	if recent[1].Solved || recent[1].Seed != 8 {
		t.Errorf("unexpected run round trip: %+v", recent[1])
	}

	best, err := store.BestRun("orbsort", "classic")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Moves != 18 || best.RunID != ids[2] {
		t.Errorf("BestRun() = %+v, expected the 18-move solved run", best)
	}

	none, err := store.BestRun("orbsort", "unplayed")
	if err != nil || none != nil {
		t.Errorf("BestRun() for unplayed level = %+v, %v; expected nil, nil", none, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{RunID: "fixed-id", GameID: "orbsort", LevelID: "x", Moves: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("expected given run ID, got %q", id)
	}

	if _, err := store.SaveRun(Run{RunID: "fixed-id", GameID: "orbsort", LevelID: "x"}); err == nil {
		t.Error("expected duplicate run ID to fail")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("orbsort", "classic", 900)
	store.SaveScore("orbsort", "classic", 700)
	store.SaveRun(Run{GameID: "orbsort", LevelID: "classic", Moves: 10, Solved: true})
	store.SaveRun(Run{GameID: "orbsort", LevelID: "classic", Moves: 30, Solved: true})
	store.SaveRun(Run{GameID: "orbsort", LevelID: "classic", Moves: 4})
	store.SaveRun(Run{GameID: "orbsort_classic", LevelID: "classic", Moves: 4})

	stats, err := store.GetGameStats("orbsort")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 900 || stats.AvgScore != 800 || stats.TotalScore != 1600 {
		t.Errorf("unexpected score stats: %+v", stats)
	}
	if stats.RunsCount != 3 || stats.SolvedRuns != 2 || stats.BestMoves != 10 {
		t.Errorf("unexpected run stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected LastPlayed to be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["orbsort_classic"].SolvedRuns != 0 || all["orbsort_classic"].RunsCount != 1 {
		t.Errorf("unexpected classic stats: %+v", all["orbsort_classic"])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("orbsort", "classic", 100)
	store.SaveScore("orbsort_classic", "classic", 100)
	store.SaveRun(Run{GameID: "orbsort", LevelID: "classic", Moves: 3, Solved: true})

	if err := store.ClearScores("orbsort"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("orbsort", "", 10); len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("orbsort", 10); len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("orbsort_classic", "", 10); len(scores) != 1 {
		t.Error("other games must keep their scores")
	}
}

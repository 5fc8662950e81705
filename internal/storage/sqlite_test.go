package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		score int
		ticks int
	}{
		{"chameleon", 4, 900},
		{"chameleon", 6, 2400},
		{"chameleon", 6, 1800},
		{"chameleon", 2, 300},
		{"other", 10, 100},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.ticks); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("chameleon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	// Highest score first, faster run wins a tie
	want := []struct{ score, ticks int }{{6, 1800}, {6, 2400}, {4, 900}, {2, 300}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Ticks != w.ticks {
			t.Errorf("scores[%d] = %d/%d, expected %d/%d", i, scores[i].Score, scores[i].Ticks, w.score, w.ticks)
		}
		if scores[i].GameID != "chameleon" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreRejectsNegative(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("chameleon", -1, 10); err == nil {
		t.Error("negative score should be rejected")
	}
	if _, err := store.SaveScore("chameleon", 1, -10); err == nil {
		t.Error("negative ticks should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", i+1, 100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 5, 4, 3 (top 3)
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to ten
	all, _ := store.TopScores("test", 0)
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d, expected 5", len(all))
	}
}

func TestStoreHighScoreAndBestRun(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("chameleon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
	best, err := store.BestRun("chameleon")
	if err != nil || best != nil {
		t.Errorf("BestRun() = %v, %v; expected nil, nil", best, err)
	}

	store.SaveScore("chameleon", 3, 500)
	store.SaveScore("chameleon", 6, 1200)
	store.SaveScore("chameleon", 6, 1000)

	high, err = store.HighScore("chameleon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 6 {
		t.Errorf("Expected high score of 6, got %d", high)
	}

	best, err = store.BestRun("chameleon")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Score != 6 || best.Ticks != 1000 {
		t.Errorf("BestRun() = %+v, expected 6 flies in 1000 ticks", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chameleon", 1, 10)
	store.SaveScore("chameleon", 2, 20)
	store.SaveScore("other", 3, 30)

	// Clear only chameleon scores
	if err := store.ClearScores("chameleon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("chameleon", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game should not be affected by clearing chameleon")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("chameleon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestTicks != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("chameleon", 6, 1000)
	store.SaveScore("chameleon", 4, 2000)
	store.SaveScore("other", 1, 50)

	stats, err := store.GetGameStats("chameleon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.TotalScore != 10 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 5 || stats.AvgTicks != 1500 {
		t.Errorf("averages = %v/%v, expected 5/1500", stats.AvgScore, stats.AvgTicks)
	}
	if stats.BestTicks != 1000 {
		t.Errorf("BestTicks = %d, expected 1000", stats.BestTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() returned %d games, expected 2", len(all))
	}
	if all["chameleon"].BestTicks != 1000 || all["other"].HighScore != 1 {
		t.Errorf("all stats = %+v / %+v", all["chameleon"], all["other"])
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// A score table from before run lengths were stored
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('chameleon', 3);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() of old database failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("chameleon", 5, 700); err != nil {
		t.Fatalf("SaveScore() after migration failed: %v", err)
	}
	scores, err := store.TopScores("chameleon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[1].Ticks != 0 || scores[0].Ticks != 700 {
		t.Errorf("scores after migration = %+v", scores)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

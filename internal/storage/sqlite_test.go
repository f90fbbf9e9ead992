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

	for _, score := range []int{40, 12, 89} {
		if _, err := store.SaveScore("minesweeper", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("uno", 150); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("minesweeper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{89, 40, 12}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "minesweeper" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	unoScores, err := store.TopScores("uno", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(unoScores) != 1 || unoScores[0].Score != 150 {
		t.Errorf("uno scores = %+v, want one entry of 150", unoScores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("uno", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("uno", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("uno", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("minesweeper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("minesweeper", 30)
	store.SaveScore("minesweeper", 71)
	store.SaveScore("minesweeper", 5)

	high, err = store.HighScore("minesweeper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 71 {
		t.Errorf("Expected high score 71, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("uno", 100)
	store.SaveScore("minesweeper", 10)
	if _, err := store.SaveResult(GameResult{GameID: "uno", Outcome: OutcomeWin, Score: 100}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	if err := store.ClearScores("uno"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("uno", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no uno scores, got %d", len(scores))
	}
	results, _ := store.RecentResults("uno", 10)
	if len(results) != 0 {
		t.Errorf("Expected no uno results, got %d", len(results))
	}

	scores, _ = store.TopScores("minesweeper", 10)
	if len(scores) != 1 {
		t.Errorf("Expected minesweeper scores untouched, got %d", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("minesweeper", i)
	}

	scores, err := store.AllScores("minesweeper")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 15 {
		t.Errorf("Expected 15 scores, got %d", len(scores))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(GameResult{
		GameID:   "minesweeper",
		Outcome:  OutcomeWin,
		Score:    71,
		Duration: 42,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", id, err)
	}

	got, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ResultByID() returned nil for saved result")
	}
	if got.GameID != "minesweeper" || got.Outcome != OutcomeWin || got.Score != 71 || got.Duration != 42 {
		t.Errorf("ResultByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	missing, err := store.ResultByID(uuid.NewString())
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown ID, got %+v", missing)
	}
}

func TestStoreSaveResultExplicitID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	got, err := store.SaveResult(GameResult{ID: id, GameID: "uno", Outcome: OutcomeLoss})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveResult() = %q, want %q", got, id)
	}

	if _, err := store.SaveResult(GameResult{ID: id, GameID: "uno", Outcome: OutcomeLoss}); err == nil {
		t.Error("Expected duplicate ID to be rejected")
	}
}

func TestStoreSaveResultInvalidOutcome(t *testing.T) {
	store := openTestStore(t)

	for _, outcome := range []string{"", "draw", "WIN"} {
		if _, err := store.SaveResult(GameResult{GameID: "uno", Outcome: outcome}); err == nil {
			t.Errorf("SaveResult(outcome=%q) succeeded, want error", outcome)
		}
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		store.SaveResult(GameResult{GameID: "uno", Outcome: OutcomeWin, Score: i})
	}
	store.SaveResult(GameResult{GameID: "minesweeper", Outcome: OutcomeLoss})

	results, err := store.RecentResults("uno", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	// Newest first
	if results[0].Score != 3 {
		t.Errorf("Expected newest result first, got score %d", results[0].Score)
	}

	all, err := store.RecentResults("", 0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 results across games, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("minesweeper", 71)
	store.SaveScore("minesweeper", 29)
	store.SaveResult(GameResult{GameID: "minesweeper", Outcome: OutcomeWin, Score: 71, Duration: 90})
	store.SaveResult(GameResult{GameID: "minesweeper", Outcome: OutcomeWin, Score: 71, Duration: 45})
	store.SaveResult(GameResult{GameID: "minesweeper", Outcome: OutcomeLoss, Score: 29, Duration: 10})
	store.SaveResult(GameResult{GameID: "uno", Outcome: OutcomeLoss})

	stats, err := store.GetGameStats("minesweeper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 71 {
		t.Errorf("HighScore = %d, want 71", stats.HighScore)
	}
	if stats.AvgScore != 50 {
		t.Errorf("AvgScore = %v, want 50", stats.AvgScore)
	}
	if stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("Wins/Losses = %d/%d, want 2/1", stats.Wins, stats.Losses)
	}
	if stats.BestTime != 45 {
		t.Errorf("BestTime = %d, want 45", stats.BestTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
	if rate := stats.WinRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("WinRate() = %v, want 2/3", rate)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["uno"].Losses != 1 || all["uno"].GamesCount != 0 {
		t.Errorf("uno stats = %+v", all["uno"])
	}
}

func TestGameStatsWinRateEmpty(t *testing.T) {
	if rate := (GameStats{}).WinRate(); rate != 0 {
		t.Errorf("WinRate() = %v, want 0", rate)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed with nested path: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested path")
	}
}

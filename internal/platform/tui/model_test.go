package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/storage"
)

// stubGame ends after a fixed number of steps.
type stubGame struct {
	resets  int
	resizes int
	steps   int
	endAt   int
	won     bool
	paused  bool
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.steps = 0; g.paused = false }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) Resize(w, h int) { g.resizes++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && g.steps < g.endAt {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	over := g.steps >= g.endAt
	return core.GameState{Score: g.steps, GameOver: over, Won: over && g.won, Paused: g.paused}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelRecordsResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{endAt: 3, won: true}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 1, Seed: 1})
	m.Init()

	for range 10 {
		m = tick(t, m)
	}

	if m.ResultID() == "" {
		t.Fatal("expected a stored result after game over")
	}
	results, err := store.RecentResults("stub", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("stored %d results, want 1", len(results))
	}
	got := results[0]
	if got.Outcome != storage.OutcomeWin || got.Score != 3 {
		t.Errorf("result = %+v, want a win with score 3", got)
	}
	if got.Duration != 2 {
		t.Errorf("Duration = %d, want 2 (ticks before game over at 1 tick/s)", got.Duration)
	}

	high, _ := store.HighScore("stub")
	if high != 3 {
		t.Errorf("HighScore() = %d, want 3", high)
	}
}

func TestModelLossWithoutScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(&stubGame{endAt: 0}, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	tick(t, m)

	scores, _ := store.AllScores("stub")
	if len(scores) != 0 {
		t.Errorf("zero score saved to scores table: %+v", scores)
	}
	stats, err := store.GetGameStats("stub")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Losses != 1 {
		t.Errorf("Losses = %d, want 1", stats.Losses)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if game.resizes != 1 {
		t.Errorf("Resize called %d times, want 1", game.resizes)
	}
	if game.resets != 1 {
		t.Errorf("Reset called %d times, want 1 (only Init)", game.resets)
	}
	if game.steps != 1 {
		t.Errorf("game progress lost on resize: steps = %d", game.steps)
	}
}

func TestModelRestartAnyTime(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()
	m = tick(t, m)
	m = tick(t, m)

	m = press(t, m, runeKey('r'))
	m = tick(t, m)

	if game.resets != 2 {
		t.Errorf("Reset called %d times, want 2", game.resets)
	}
	if game.steps != 0 {
		t.Errorf("steps = %d after restart, want 0", game.steps)
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()
	m = tick(t, m)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Fatal("back to menu allowed mid-game")
	}
	m = tick(t, m)

	m = press(t, m, runeKey('p'))
	m = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("back to menu refused while paused")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{endAt: 100}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

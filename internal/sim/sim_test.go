package sim

import (
	"context"
	"testing"
)

func TestPlayDeterministic(t *testing.T) {
	opts := Options{Players: 3, HandSize: 7}

	a, err := Play(opts, 42)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	b, err := Play(opts, 42)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if a != b {
		t.Errorf("same seed gave different games:\n%+v\n%+v", a, b)
	}
}

func TestPlayFinishes(t *testing.T) {
	for _, players := range []int{2, 3, 4, 6} {
		for seed := int64(1); seed <= 10; seed++ {
			r, err := Play(Options{Players: players, HandSize: 7}, seed)
			if err != nil {
				t.Fatalf("players=%d seed=%d: %v", players, seed, err)
			}
			if r.Stalled {
				t.Errorf("players=%d seed=%d: game stalled after %d turns", players, seed, r.Turns)
			}
			if !r.Exhausted && (r.Winner < 0 || r.Winner >= players) {
				t.Errorf("players=%d seed=%d: winner = %d", players, seed, r.Winner)
			}
		}
	}
}

func TestPlayTurnBound(t *testing.T) {
	r, err := Play(Options{Players: 2, HandSize: 7, MaxTurns: 1}, 7)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if r.Turns > 1 {
		t.Errorf("Turns = %d, want at most 1", r.Turns)
	}
	if r.Winner < 0 && !r.Stalled {
		t.Error("unfinished game not marked as stalled")
	}
}

func TestPlayBadOptions(t *testing.T) {
	if _, err := Play(Options{Players: 1, HandSize: 7}, 1); err == nil {
		t.Error("expected error for a single player")
	}
	if _, err := Play(Options{Players: 2, HandSize: 60}, 1); err == nil {
		t.Error("expected error for hands larger than the deck")
	}
}

func TestRunSummary(t *testing.T) {
	opts := Options{Games: 20, Players: 3, HandSize: 7, Seed: 100, Workers: 4}

	s, err := Run(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if s.Games != 20 {
		t.Errorf("Games = %d, want 20", s.Games)
	}

	wins := 0
	for _, w := range s.Wins {
		wins += w
	}
	if wins+s.Exhausted+s.Stalled != s.Games {
		t.Errorf("wins %d + exhausted %d + stalled %d != games %d", wins, s.Exhausted, s.Stalled, s.Games)
	}
	if s.AvgTurns() <= 0 {
		t.Errorf("AvgTurns() = %v, want positive", s.AvgTurns())
	}

	// Worker count must not change the outcome
	serial, err := Run(context.Background(), Options{Games: 20, Players: 3, HandSize: 7, Seed: 100, Workers: 1}, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if serial.TotalTurns != s.TotalTurns {
		t.Errorf("TotalTurns differs between worker counts: %d vs %d", serial.TotalTurns, s.TotalTurns)
	}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no games", Options{Games: 0, Players: 2, HandSize: 7}},
		{"one player", Options{Games: 1, Players: 1, HandSize: 7}},
		{"bad hand size", Options{Games: 1, Players: 2, HandSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(context.Background(), tt.opts, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, Options{Games: 5, Players: 2, HandSize: 7}, nil); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestSummaryAvgTurnsEmpty(t *testing.T) {
	if got := (Summary{}).AvgTurns(); got != 0 {
		t.Errorf("AvgTurns() = %v, want 0", got)
	}
}

package uno

import (
	"math/rand"
	"slices"
	"testing"
)

func TestBotChooseColor(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		hand []Card
		want Color
	}{
		{"majority", []Card{c(Blue, One), c(Blue, Two), c(Red, Three)}, Blue},
		{"tie goes to earlier color", []Card{c(Green, One), c(Red, Two), c(Green, Three), c(Red, Four)}, Red},
		{"wilds ignored", []Card{c(Wild, WildCard), c(Wild, WildDrawFour), c(Yellow, Five)}, Yellow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bot.ChooseColor(tt.hand); got != tt.want {
				t.Errorf("ChooseColor() = %s, want %s", got, tt.want)
			}
		})
	}

	for range 20 {
		got := bot.ChooseColor([]Card{c(Wild, WildCard)})
		if !slices.Contains(Colors[:], got) {
			t.Fatalf("ChooseColor() on an all-wild hand = %s", got)
		}
	}
}

func TestBotCountersStackWithEveryCard(t *testing.T) {
	e := restore(t, Setup{
		Discard: []Card{c(Red, WildDrawFour)},
		Hands: [][]Card{
			{c(Red, One)},
			{c(Wild, WildDrawFour), c(Green, One), c(Wild, WildDrawFour), c(Green, Two)},
		},
		Current: 1,
		Stack:   StackState{Total: 4, Rank: WildDrawFour},
	})
	bot := NewBot(rand.New(rand.NewSource(1)))

	move, err := bot.TakeTurn(e, 1)
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if move.Kind != MovePlay || len(move.Play.Played) != 2 {
		t.Fatalf("move = %+v, want both Wild Draw Fours", move)
	}
	if e.Turn().Stack.Total != 12 {
		t.Errorf("stack = %d, want 12", e.Turn().Stack.Total)
	}
	if e.Top() != c(Green, WildDrawFour) {
		t.Errorf("top = %s, want Green Wild Draw Four", e.Top())
	}
	if e.Turn().Current != 0 {
		t.Errorf("turn = %d, want 0", e.Turn().Current)
	}
}

func TestBotDrawsStackWithoutCounter(t *testing.T) {
	e := restore(t, Setup{
		Deck:    []Card{c(Red, One), c(Red, Two), c(Red, Three)},
		Discard: []Card{c(Blue, DrawTwo)},
		Hands:   [][]Card{{c(Red, One)}, {c(Blue, One), c(Wild, WildDrawFour)}},
		Current: 1,
		Stack:   StackState{Total: 2, Rank: DrawTwo},
	})
	bot := NewBot(rand.New(rand.NewSource(1)))

	move, err := bot.TakeTurn(e, 1)
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if move.Kind != MoveDraw || len(move.Draw.Cards) != 2 || !move.Draw.Forced {
		t.Errorf("move = %+v, want a forced draw of 2", move)
	}
	if e.HandSize(1) != 4 || e.Turn().Current != 0 {
		t.Errorf("hand=%d turn=%d", e.HandSize(1), e.Turn().Current)
	}
}

func TestBotPlaysWildWithColor(t *testing.T) {
	e := restore(t, Setup{
		Discard: []Card{c(Red, Seven)},
		Hands:   [][]Card{{c(Red, One)}, {c(Blue, One), c(Wild, WildCard), c(Blue, Two)}},
		Current: 1,
	})
	bot := NewBot(rand.New(rand.NewSource(1)))

	move, err := bot.TakeTurn(e, 1)
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if move.Kind != MovePlay || e.Top() != c(Blue, WildCard) {
		t.Errorf("top = %s, want Blue Wild", e.Top())
	}
	if e.Phase() != AwaitingPlay {
		t.Errorf("phase = %v, want awaiting play", e.Phase())
	}
}

func TestBotDrawsWhenStuck(t *testing.T) {
	e := restore(t, Setup{
		Deck:    []Card{c(Yellow, Nine)},
		Discard: []Card{c(Red, Seven)},
		Hands:   [][]Card{{c(Red, One)}, {c(Blue, One)}},
		Current: 1,
	})
	bot := NewBot(rand.New(rand.NewSource(1)))

	move, err := bot.TakeTurn(e, 1)
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if move.Kind != MoveDraw || move.Draw.Forced || len(move.Draw.Cards) != 1 {
		t.Errorf("move = %+v, want a single draw", move)
	}
}

func TestBotPicksAmongPlayable(t *testing.T) {
	seen := make(map[Card]bool)
	for seed := int64(1); seed <= 40; seed++ {
		e := restore(t, Setup{
			Discard: []Card{c(Red, Seven)},
			Hands:   [][]Card{{c(Red, One)}, {c(Red, One), c(Green, Seven), c(Blue, Two), c(Red, Nine)}},
			Current: 1,
		})
		bot := NewBot(rand.New(rand.NewSource(seed)))
		move, err := bot.TakeTurn(e, 1)
		if err != nil {
			t.Fatalf("TakeTurn() failed: %v", err)
		}
		played := move.Play.Played[0]
		if played == c(Blue, Two) {
			t.Fatal("bot played an unplayable card")
		}
		seen[played] = true
	}
	if len(seen) != 3 {
		t.Errorf("bot chose among %d distinct cards, want all 3 playable ones", len(seen))
	}
}

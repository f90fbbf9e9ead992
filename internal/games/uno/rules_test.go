package uno

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

func c(color Color, rank Rank) Card { return Card{Color: color, Rank: rank} }

func TestNewDeckComposition(t *testing.T) {
	d := NewDeck()
	if d.Len() != DeckSize {
		t.Fatalf("deck has %d cards, want %d", d.Len(), DeckSize)
	}

	counts := make(map[Card]int)
	for _, card := range d.cards {
		counts[card]++
	}

	tests := []struct {
		card Card
		want int
	}{
		{c(Red, Zero), 1},
		{c(Blue, Seven), 2},
		{c(Green, Skip), 2},
		{c(Yellow, Reverse), 2},
		{c(Red, DrawTwo), 2},
		{c(Wild, WildCard), 4},
		{c(Wild, WildDrawFour), 4},
	}
	for _, tt := range tests {
		if counts[tt.card] != tt.want {
			t.Errorf("%s appears %d times, want %d", tt.card, counts[tt.card], tt.want)
		}
	}
}

func TestDeckDrawAndPutBottom(t *testing.T) {
	d := NewDeckOf(c(Red, One), c(Red, Two))

	d.PutBottom(c(Blue, Nine))
	want := []Card{c(Red, Two), c(Red, One), c(Blue, Nine)}
	for _, w := range want {
		got, ok := d.Draw()
		if !ok || got != w {
			t.Fatalf("Draw() = %v, %v; want %v", got, ok, w)
		}
	}
	if _, ok := d.Draw(); ok {
		t.Error("Draw() on an empty deck should report false")
	}
}

func TestIsPlayable(t *testing.T) {
	top := c(Red, Three)
	noStack := StackState{}

	tests := []struct {
		name  string
		card  Card
		hand  []Card
		stack StackState
		want  bool
	}{
		{"color match", c(Red, Nine), nil, noStack, true},
		{"rank match", c(Blue, Three), nil, noStack, true},
		{"no match", c(Blue, Four), nil, noStack, false},
		{"wild always", c(Wild, WildCard), []Card{c(Red, One)}, noStack, true},
		{"draw four without top color", c(Wild, WildDrawFour), []Card{c(Blue, One)}, noStack, true},
		{"draw four holding top color", c(Wild, WildDrawFour), []Card{c(Red, One)}, noStack, false},
		{"stack needs rank", c(Red, Nine), nil, StackState{Total: 2, Rank: DrawTwo}, false},
		{"stack answered", c(Blue, DrawTwo), nil, StackState{Total: 2, Rank: DrawTwo}, true},
		{"wild cannot answer +2", c(Wild, WildCard), nil, StackState{Total: 2, Rank: DrawTwo}, false},
		{"+2 cannot answer +4", c(Red, DrawTwo), nil, StackState{Total: 4, Rank: WildDrawFour}, false},
		{"+4 answers +4", c(Wild, WildDrawFour), []Card{c(Red, One)}, StackState{Total: 4, Rank: WildDrawFour}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlayable(tt.card, top, tt.hand, tt.stack); got != tt.want {
				t.Errorf("IsPlayable(%s on %s) = %v, want %v", tt.card, top, got, tt.want)
			}
		})
	}
}

func TestResolvedWildTop(t *testing.T) {
	top := c(Green, WildCard)
	if !IsPlayable(c(Green, Two), top, nil, StackState{}) {
		t.Error("a green card should play on a wild that chose green")
	}
	if IsPlayable(c(Red, Seven), top, nil, StackState{}) {
		t.Error("a red card should not play on a wild that chose green")
	}
}

func TestValidateRunScenario(t *testing.T) {
	top := c(Red, Two)
	hand := []Card{c(Red, Five), c(Red, Five), c(Blue, Skip)}

	if err := ValidateRun(hand[:2], top, hand, StackState{}); err != nil {
		t.Errorf("two Red 5s should form a run: %v", err)
	}

	err := ValidateRun(hand, top, hand, StackState{})
	if !errors.Is(err, core.ErrInvalidMove) {
		t.Errorf("appending a Blue Skip error = %v, want ErrInvalidMove", err)
	}
}

func TestValidateRun(t *testing.T) {
	top := c(Red, Two)
	tests := []struct {
		name    string
		run     []Card
		wantErr bool
	}{
		{"empty", nil, true},
		{"unplayable lead", []Card{c(Blue, Five)}, true},
		{"same rank other colors", []Card{c(Red, Five), c(Blue, Five), c(Green, Five)}, false},
		{"lead by rank", []Card{c(Blue, Two), c(Yellow, Two)}, false},
		{"mixed ranks", []Card{c(Red, Five), c(Red, Six)}, true},
		{"wild run", []Card{c(Wild, WildCard), c(Wild, WildCard)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRun(tt.run, top, tt.run, StackState{})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRun() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStackingLegalityEveryCard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, stack := range []StackState{{Total: 2, Rank: DrawTwo}, {Total: 8, Rank: WildDrawFour}} {
		d := NewDeck()
		d.Shuffle(rng)
		hands := make([][]Card, 4)
		for i, card := range d.cards {
			hands[i%4] = append(hands[i%4], card)
		}
		top := c(Blue, stack.Rank)
		for _, hand := range hands {
			for _, card := range hand {
				if got := IsPlayable(card, top, hand, stack); got != (card.Rank == stack.Rank) {
					t.Fatalf("IsPlayable(%s) under a %s stack = %v", card, stack.Rank, got)
				}
			}
		}
	}
}

package uno

import (
	"math/rand"
	"slices"
)

// MoveKind tells whether a bot played or drew.
type MoveKind uint8

const (
	MovePlay MoveKind = iota
	MoveDraw
)

// Move is one bot turn.
type Move struct {
	Kind MoveKind
	Play PlayResult
	Draw DrawResult
}

// Bot is the computer opponent. It plays a uniformly random playable card,
// answers a draw stack with every matching card it holds and names the color
// it holds most of.
type Bot struct {
	rng *rand.Rand
}

// NewBot creates a bot drawing its choices from rng.
func NewBot(rng *rand.Rand) *Bot {
	return &Bot{rng: rng}
}

// ChooseColor picks the color with the most cards in hand. Ties go to the
// earliest of Red, Green, Yellow, Blue; a hand with no colored card picks at
// random.
func (b *Bot) ChooseColor(hand []Card) Color {
	var counts [4]int
	for _, c := range hand {
		if c.Color < Wild {
			counts[c.Color]++
		}
	}
	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return Colors[b.rng.Intn(len(Colors))]
	}
	return Colors[best]
}

// TakeTurn makes one move for player, who must hold the turn.
func (b *Bot) TakeTurn(e *Engine, player int) (Move, error) {
	if err := e.checkTurn(player); err != nil {
		return Move{}, err
	}
	hand := e.hands[player]

	if e.phase == AwaitingColorChoice {
		res, err := e.ChooseColor(player, b.ChooseColor(without(hand, e.pending...)))
		return Move{Kind: MovePlay, Play: res}, err
	}

	if stack := e.turn.Stack; stack.Active() {
		var rest []Card
		for _, c := range hand {
			if c.Rank != stack.Rank {
				rest = append(rest, c)
			}
		}
		r, err := e.ResolveDrawStackOrPlay(player, b.ChooseColor(rest))
		if err != nil {
			return Move{}, err
		}
		if r.Played {
			return Move{Kind: MovePlay, Play: r.Play}, nil
		}
		return Move{Kind: MoveDraw, Draw: r.Draw}, nil
	}

	playable := e.Playable(player)
	if len(playable) == 0 {
		d, err := e.Draw(player)
		return Move{Kind: MoveDraw, Draw: d}, err
	}

	idx := playable[b.rng.Intn(len(playable))]
	res, err := e.Play(player, []int{idx})
	if err != nil || !res.NeedsColor {
		return Move{Kind: MovePlay, Play: res}, err
	}
	res, err = e.ChooseColor(player, b.ChooseColor(without(hand, idx)))
	return Move{Kind: MovePlay, Play: res}, err
}

// without returns hand minus the cards at the given indices.
func without(hand []Card, indices ...int) []Card {
	out := make([]Card, 0, len(hand))
	for i, c := range hand {
		if !slices.Contains(indices, i) {
			out = append(out, c)
		}
	}
	return out
}

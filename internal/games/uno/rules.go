package uno

import (
	"fmt"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// StackState is the pending draw stack. Total > 0 exactly when a stacking
// rank is set.
type StackState struct {
	Total int
	Rank  Rank // DrawTwo or WildDrawFour while active
}

// Active reports whether a draw stack is pending.
func (s StackState) Active() bool {
	return s.Total > 0
}

// IsPlayable reports whether card may start a run on top.
//
// While a draw stack is active only cards of the stacking rank qualify.
// Otherwise a card matches on color or rank, a Wild always plays, and a Wild
// Draw Four plays only when hand holds nothing of the top's color.
func IsPlayable(card, top Card, hand []Card, stack StackState) bool {
	if stack.Active() {
		return card.Rank == stack.Rank
	}
	if card.Color == top.Color || card.Rank == top.Rank {
		return true
	}
	switch card.Rank {
	case WildCard:
		return true
	case WildDrawFour:
		for _, c := range hand {
			if c.Color == top.Color {
				return false
			}
		}
		return true
	}
	return false
}

// ValidateRun checks a selection without mutating anything. The first card
// must be playable and every following card must share its rank.
func ValidateRun(selected []Card, top Card, hand []Card, stack StackState) error {
	if len(selected) == 0 {
		return fmt.Errorf("%w: no cards selected", core.ErrInvalidMove)
	}
	first := selected[0]
	if !IsPlayable(first, top, hand, stack) {
		if stack.Active() {
			return fmt.Errorf("%w: only %s can answer a +%d stack", core.ErrInvalidMove, stack.Rank, stack.Total)
		}
		return fmt.Errorf("%w: %s cannot be played on %s", core.ErrInvalidMove, first, top)
	}
	for _, c := range selected[1:] {
		if c.Rank != first.Rank {
			return fmt.Errorf("%w: all stacked cards must share the rank %s, got %s", core.ErrInvalidMove, first.Rank, c)
		}
	}
	return nil
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the tabletop platform.
package config

import (
	"errors"
	"fmt"
)

// MaxPlayers bounds the UNO table size.
const MaxPlayers = 10

// DeckSize is the number of cards in a standard UNO deck.
const DeckSize = 108

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Board   MinesweeperBoard            `yaml:"board"`
	Presets map[string]MinesweeperBoard `yaml:"presets"`
}

// MinesweeperBoard defines the board dimensions and mine density.
type MinesweeperBoard struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	MineFraction float64 `yaml:"mine_fraction"` // Chance of each cell being a mine
}

// UnoConfig contains all configuration for UNO.
type UnoConfig struct {
	Rules   UnoRules   `yaml:"rules"`
	Bot     UnoBot     `yaml:"bot"`
	Scoring UnoScoring `yaml:"scoring"`
}

// UnoRules defines table setup.
type UnoRules struct {
	Players  int `yaml:"players"`   // Seat 0 is the local player, the rest are bots
	HandSize int `yaml:"hand_size"` // Cards dealt to each player
}

// UnoBot defines presentation pacing for bot opponents.
type UnoBot struct {
	ThinkTicks int `yaml:"think_ticks"` // Ticks a bot waits before moving
	PeekTicks  int `yaml:"peek_ticks"`  // Ticks the opponent's hand stays visible after a peek
}

// UnoScoring defines how a won hand is scored.
type UnoScoring struct {
	PointsPerCard int `yaml:"points_per_card"` // Points per card left in opponents' hands
}

// Validate checks the board definition.
func (b MinesweeperBoard) Validate() error {
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", b.Rows, b.Cols)
	}
	if b.MineFraction < 0 || b.MineFraction > 1 {
		return fmt.Errorf("mine_fraction must be within [0, 1], got %g", b.MineFraction)
	}
	return nil
}

// Validate checks the Minesweeper configuration.
func (c MinesweeperConfig) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	for name, b := range c.Presets {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return nil
}

// Validate checks the UNO configuration.
func (c UnoConfig) Validate() error {
	var errs []error
	if c.Rules.Players < 2 || c.Rules.Players > MaxPlayers {
		errs = append(errs, fmt.Errorf("players must be within [2, %d], got %d", MaxPlayers, c.Rules.Players))
	}
	if c.Rules.HandSize <= 0 {
		errs = append(errs, fmt.Errorf("hand_size must be positive, got %d", c.Rules.HandSize))
	} else if c.Rules.Players*c.Rules.HandSize >= DeckSize {
		// At least one card must remain for the starting discard.
		errs = append(errs, fmt.Errorf("cannot deal %d cards to %d players from %d cards",
			c.Rules.HandSize, c.Rules.Players, DeckSize))
	}
	if c.Bot.ThinkTicks < 0 || c.Bot.PeekTicks < 0 {
		errs = append(errs, errors.New("bot ticks must not be negative"))
	}
	return errors.Join(errs...)
}

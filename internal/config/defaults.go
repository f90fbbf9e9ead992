package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

//go:embed defaults/uno.yaml
var defaultUnoYAML []byte

// classicMineFraction is the one-in-six mine chance of the classic board.
const classicMineFraction = 1.0 / 6.0

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board: MinesweeperBoard{Rows: 6, Cols: 15, MineFraction: classicMineFraction},
		Presets: map[string]MinesweeperBoard{
			string(DifficultyEasy):   {Rows: 6, Cols: 15, MineFraction: classicMineFraction},
			string(DifficultyMedium): {Rows: 10, Cols: 25, MineFraction: classicMineFraction},
			string(DifficultyHard):   {Rows: 14, Cols: 35, MineFraction: classicMineFraction},
		},
	}
}

// DefaultUnoConfig returns the default UNO configuration.
func DefaultUnoConfig() UnoConfig {
	return UnoConfig{
		Rules: UnoRules{
			Players:  2,
			HandSize: 7,
		},
		Bot: UnoBot{
			ThinkTicks: 60,
			PeekTicks:  300,
		},
		Scoring: UnoScoring{
			PointsPerCard: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minesweeper":
		return defaultMinesweeperYAML
	case "uno":
		return defaultUnoYAML
	default:
		return nil
	}
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// ConfigPath points at a custom game config YAML. Empty uses the search order.
	ConfigPath string
	// Difficulty is a preset name understood by the game (e.g. "easy", "hard").
	Difficulty string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win for the local player
	Paused   bool // Whether the game is paused
}

// Outcome returns "win", "loss" or "" while the game is still running.
func (s GameState) Outcome() string {
	switch {
	case !s.GameOver:
		return ""
	case s.Won:
		return "win"
	default:
		return "loss"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the built-in presets from smallest to largest board.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset converts a user-supplied name to a preset.
// An empty name yields an empty preset, meaning "use the configured board".
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	// "normal" is accepted as an alias for medium.
	if name == "normal" {
		return DifficultyMedium, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}

// Label returns a display name such as "Easy".
func (p DifficultyPreset) Label() string {
	if p == "" {
		return "Custom"
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ApplyMinesweeperPreset replaces the active board with the named preset.
// An empty preset leaves the config untouched.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	board, ok := cfg.Presets[string(preset)]
	if !ok {
		return fmt.Errorf("preset %q is not defined", preset)
	}
	cfg.Board = board
	return nil
}

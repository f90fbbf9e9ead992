package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadMinesweeper loads Minesweeper configuration.
// Search order: customPath -> ~/.tabletop/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	return load("minesweeper", customPath, defaultMinesweeperYAML, DefaultMinesweeperConfig)
}

// LoadUno loads UNO configuration.
// Search order: customPath -> ~/.tabletop/configs/uno.yaml -> ./configs/uno.yaml -> embedded default
func LoadUno(customPath string) (UnoConfig, error) {
	return load("uno", customPath, defaultUnoYAML, DefaultUnoConfig)
}

// load resolves a config file for gameID. Files are decoded on top of the
// hardcoded defaults, so a partial file only overrides the keys it sets.
func load[T validator](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return defaults(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(embedded, defaults)
	if err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode[T any](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tabletop", "configs", filename)
}

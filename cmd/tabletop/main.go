// tabletop is a terminal card and board game collection.
//
// Usage:
//
//	tabletop list              - List available games
//	tabletop play <game>       - Play a game
//	tabletop menu              - Start menu to pick games interactively
//	tabletop serve             - Start SSH server for remote play
//	tabletop scores <game>     - Show high scores and win/loss stats for a game
//	tabletop sim               - Run headless bot-vs-bot UNO games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tabletop/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Minesweeper board preset (easy, medium, hard)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tabletop/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-tabletop/internal/games/minesweeper"
	_ "github.com/vovakirdan/tui-tabletop/internal/games/uno"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabletop",
	Short: "Tabletop - Minesweeper and UNO in your terminal",
	Long: `Tabletop is a terminal game collection with Minesweeper and UNO
against computer opponents.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and win/loss stats
  sim      - Run headless bot-vs-bot UNO games

Examples:
  tabletop list
  tabletop play minesweeper --difficulty hard
  tabletop play uno
  tabletop menu
  tabletop serve --ssh :2222
  tabletop scores uno
  tabletop sim --games 500 --players 4`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tabletop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Minesweeper board preset: easy, medium, hard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// runtimeConfig builds the game config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

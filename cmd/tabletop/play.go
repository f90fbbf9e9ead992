package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tabletop/internal/config"
	"github.com/vovakirdan/tui-tabletop/internal/platform/tui"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
	"github.com/vovakirdan/tui-tabletop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Minesweeper controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Reveal cell
  F            - Flag or unflag cell

UNO controls:
  Left/Right   - Move through your hand
  Space        - Add or remove the card from your selection
  Enter        - Play the selection (or the card under the cursor)
  X            - Draw
  V            - Peek at the opponents' hands

Common:
  P            - Pause
  R            - Restart with a fresh board or deal
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  tabletop play minesweeper
  tabletop play minesweeper --difficulty hard
  tabletop play uno --config ./my-uno.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tabletop list' to see available games.")
		os.Exit(1)
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

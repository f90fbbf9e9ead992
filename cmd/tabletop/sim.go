package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tabletop/internal/config"
	"github.com/vovakirdan/tui-tabletop/internal/sim"
)

var (
	flagSimGames   int
	flagSimPlayers int
	flagSimWorkers int
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless bot-vs-bot UNO games",
	Long: `Play UNO games between bots without a terminal UI.

Every move is checked for card conservation. The run reports wins per seat,
the average game length and how many games ran out of cards.

Examples:
  tabletop sim
  tabletop sim --games 1000 --players 4 --seed 7
  tabletop sim --games 10 -v`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimPlayers, "players", 0, "Seats per game (0 = from config)")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Concurrent games (0 = one per CPU)")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every finished game")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tabletop-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	unoCfg, err := config.LoadUno(flagConfig)
	if err != nil {
		logger.Warn("could not load UNO config, using defaults", "error", err)
		unoCfg = config.DefaultUnoConfig()
	}
	players := unoCfg.Rules.Players
	if flagSimPlayers > 0 {
		players = flagSimPlayers
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sim.Options{
		Games:    flagSimGames,
		Players:  players,
		HandSize: unoCfg.Rules.HandSize,
		Seed:     seed,
		Workers:  flagSimWorkers,
	}
	logger.Info("starting simulation", "games", opts.Games, "players", opts.Players, "seed", seed)

	start := time.Now()
	summary, err := sim.Run(ctx, opts, logger)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"games", summary.Games,
		"avg_turns", fmt.Sprintf("%.1f", summary.AvgTurns()),
		"reshuffles", summary.Reshuffles,
		"exhausted", summary.Exhausted,
		"stalled", summary.Stalled,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	for seat, wins := range summary.Wins {
		logger.Info("wins", "seat", seat, "count", wins)
	}
}

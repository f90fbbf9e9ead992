// Package sim runs headless bot-vs-bot UNO games.
//
// Every game is played by bots only and checked after each move: the cards in
// the deck, the discard pile and all hands must always add up to a full deck.
// Games are independent, so they run concurrently, each with its own seeded RNG.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tabletop/internal/games/uno"
)

// ErrCardsLost is returned when a game ends up with more or fewer cards than a deck.
var ErrCardsLost = errors.New("sim: card count changed")

// DefaultMaxTurns bounds a single game. Bot games always end in practice,
// the bound only guards against a rules regression looping forever.
const DefaultMaxTurns = 10_000

// Options configures a simulation run.
type Options struct {
	Games    int   // Number of games to play
	Players  int   // Seats per game
	HandSize int   // Cards dealt to each seat
	Seed     int64 // Game i uses Seed+i
	MaxTurns int   // Per-game turn bound, 0 = DefaultMaxTurns
	Workers  int   // Concurrent games, 0 = GOMAXPROCS
}

// GameReport is the outcome of one simulated game.
type GameReport struct {
	Seed       int64
	Winner     int  // Seat index, -1 if nobody won
	Turns      int  // Bot moves made
	Draws      int  // Moves that drew instead of playing
	Reshuffles int  // Times the discard pile was turned into the deck
	Exhausted  bool // Game ended because the cards ran out
	Stalled    bool // Game hit MaxTurns
}

// Summary aggregates a simulation run.
type Summary struct {
	Games      int
	Wins       []int // Wins per seat
	Exhausted  int
	Stalled    int
	TotalTurns int
	Reshuffles int
}

// AvgTurns returns the mean number of moves per game.
func (s Summary) AvgTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

func (s *Summary) add(r GameReport) {
	s.Games++
	s.TotalTurns += r.Turns
	s.Reshuffles += r.Reshuffles
	switch {
	case r.Exhausted:
		s.Exhausted++
	case r.Stalled:
		s.Stalled++
	case r.Winner >= 0:
		s.Wins[r.Winner]++
	}
}

// Play runs a single bot-only game with the given seed.
func Play(opts Options, seed int64) (GameReport, error) {
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	rng := rand.New(rand.NewSource(seed))
	e, err := uno.NewEngine(uno.Options{Players: opts.Players, HandSize: opts.HandSize}, rng)
	if err != nil {
		return GameReport{}, fmt.Errorf("sim: %w", err)
	}
	bot := uno.NewBot(rng)

	report := GameReport{Seed: seed, Winner: -1}
	for report.Turns < maxTurns {
		player := e.Turn().Current
		move, err := bot.TakeTurn(e, player)
		if errors.Is(err, uno.ErrDeckExhausted) {
			report.Exhausted = true
			return report, nil
		}
		if err != nil {
			return report, fmt.Errorf("sim: seed %d turn %d: %w", seed, report.Turns, err)
		}
		report.Turns++
		if move.Kind == uno.MoveDraw {
			report.Draws++
			if move.Draw.Reshuffled {
				report.Reshuffles++
			}
		}

		if n := e.TotalCards(); n != uno.DeckSize {
			return report, fmt.Errorf("%w: seed %d turn %d: %d cards", ErrCardsLost, seed, report.Turns, n)
		}
		if w, ok := e.Winner(); ok {
			report.Winner = w
			return report, nil
		}
	}

	report.Stalled = true
	return report, nil
}

// Run plays opts.Games games concurrently and aggregates the results.
// The first failing game cancels the rest. A nil logger discards per-game lines.
func Run(ctx context.Context, opts Options, logger *log.Logger) (Summary, error) {
	if opts.Games <= 0 {
		return Summary{}, fmt.Errorf("sim: games must be positive, got %d", opts.Games)
	}
	if opts.Players < 2 {
		return Summary{}, fmt.Errorf("sim: need at least 2 players, got %d", opts.Players)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	summary := Summary{Wins: make([]int, opts.Players)}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Games {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			report, err := Play(opts, seed)
			if err != nil {
				return err
			}
			if logger != nil {
				logger.Debug("game finished",
					"seed", report.Seed,
					"winner", report.Winner,
					"turns", report.Turns,
					"reshuffles", report.Reshuffles,
					"exhausted", report.Exhausted,
				)
			}

			mu.Lock()
			summary.add(report)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}

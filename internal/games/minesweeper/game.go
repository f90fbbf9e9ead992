package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/tui-tabletop/internal/config"
	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
)

// Game adapts the reveal engine to the tabletop platform.
type Game struct {
	rng    *rand.Rand
	cfg    config.MinesweeperConfig
	preset config.DifficultyPreset
	engine *Engine
	cursor core.Point

	tick       uint64
	timerTicks uint64 // Ticks since the first reveal
	started    bool
	tickRate   int

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
	notice   string // Last rejected move or config problem
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset loads the config, generates a fresh board and hides every cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.timerTicks = 0
	g.started = false
	g.paused = false
	g.notice = ""
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	msCfg, err := config.LoadMinesweeper(cfg.ConfigPath)
	if err != nil {
		g.notice = "config: " + err.Error()
	}
	g.preset = ""
	if preset, err := config.ParsePreset(cfg.Difficulty); err != nil {
		g.notice = err.Error()
	} else if err := config.ApplyMinesweeperPreset(&msCfg, preset); err != nil {
		g.notice = err.Error()
	} else {
		g.preset = preset
	}
	g.cfg = msCfg

	board := msCfg.Board
	g.engine = NewEngine(Generate(board.Rows, board.Cols, board.MineFraction, g.rng))
	g.cursor = core.Pt(board.Cols/2, board.Rows/2)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// minSize returns the smallest screen that fits the board, HUD and footer.
func (g *Game) minSize() (int, int) {
	board := g.cfg.Board
	return board.Cols*cellWidth + 4, board.Rows + hudHeight + 4
}

// Engine exposes the underlying reveal engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.engine.Outcome() == Playing {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.engine.Outcome() != Playing {
		return core.StepResult{State: g.State()}
	}

	if g.started {
		g.timerTicks++
	}

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionSelect) || in.Has(core.ActionConfirm):
		g.reveal()
	case in.Has(core.ActionMark):
		g.toggleFlag()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	rows, cols := g.engine.Grid().Rows(), g.engine.Grid().Cols()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Wrap(g.cursor.Y-1, rows)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Wrap(g.cursor.Y+1, rows)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Wrap(g.cursor.X-1, cols)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Wrap(g.cursor.X+1, cols)
	}
}

func (g *Game) reveal() {
	// A flag protects its cell from a stray click.
	if g.engine.State(g.cursor) != Hidden {
		return
	}
	if _, err := g.engine.Reveal(g.cursor); err != nil {
		g.notice = err.Error()
		return
	}
	g.started = true
	g.notice = ""
}

func (g *Game) toggleFlag() {
	if _, err := g.engine.ToggleFlag(g.cursor); err != nil {
		g.notice = err.Error()
		return
	}
	g.notice = ""
}

// ElapsedSeconds returns whole seconds since the first reveal.
func (g *Game) ElapsedSeconds() int {
	return int(g.timerTicks / uint64(g.tickRate))
}

// score counts revealed safe cells.
func (g *Game) score() int {
	n := g.engine.RevealedCount()
	if g.engine.Outcome() == Lost {
		n-- // The exploded mine
	}
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	outcome := g.engine.Outcome()
	return core.GameState{
		Score:    g.score(),
		GameOver: outcome != Playing,
		Won:      outcome == Won,
		Paused:   g.paused || g.tooSmall,
	}
}

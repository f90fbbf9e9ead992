package minesweeper

import "github.com/vovakirdan/tui-tabletop/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Mines     []core.Point
	Cells     []CellState
	Cursor    core.Point
	Remaining int
	Elapsed   int
	Outcome   Outcome
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Rows:      g.engine.grid.Rows(),
		Cols:      g.engine.grid.Cols(),
		Mines:     g.engine.MineCells(),
		Cells:     append([]CellState(nil), g.engine.cells...),
		Cursor:    g.cursor,
		Remaining: g.engine.RemainingMines(),
		Elapsed:   g.ElapsedSeconds(),
		Outcome:   g.engine.Outcome(),
	}
}

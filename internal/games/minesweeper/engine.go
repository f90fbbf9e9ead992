package minesweeper

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// CellState is the mutable, player-visible state of a cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of a board.
type Outcome uint8

const (
	Playing Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// RevealResult describes the cells changed by one reveal.
type RevealResult struct {
	Cells   []int // Newly revealed cell indices (row*cols+col), ascending
	Mine    bool  // The target was a mine
	Outcome Outcome
}

// Engine owns the mutable state of one Minesweeper board.
type Engine struct {
	grid  Grid
	adj   AdjacencyCounts
	cells []CellState

	revealed int
	flagged  int
	outcome  Outcome
	exploded core.Point // Mine that ended the game, valid when outcome is Lost
}

// NewEngine starts a game on grid with every cell hidden.
func NewEngine(grid Grid) *Engine {
	return &Engine{
		grid:  grid,
		adj:   ComputeAdjacency(grid),
		cells: make([]CellState, grid.Size()),
	}
}

// Grid returns the underlying minefield.
func (e *Engine) Grid() Grid { return e.grid }

// State returns the state of cell p.
func (e *Engine) State(p core.Point) CellState {
	return e.cells[e.grid.index(p)]
}

// Count returns the adjacency count of cell p.
func (e *Engine) Count(p core.Point) int {
	return e.adj.At(p)
}

// Outcome returns the current outcome.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Exploded returns the mine that ended the game.
func (e *Engine) Exploded() (core.Point, bool) {
	return e.exploded, e.outcome == Lost
}

// RevealedCount returns the number of revealed cells.
func (e *Engine) RevealedCount() int { return e.revealed }

// FlaggedCount returns the number of flagged cells.
func (e *Engine) FlaggedCount() int { return e.flagged }

// RemainingMines returns mines minus flags. It goes negative when the player
// places more flags than there are mines.
func (e *Engine) RemainingMines() int {
	return e.grid.MineCount() - e.flagged
}

// Reveal uncovers cell p. A mine ends the game and only that cell is
// revealed. A zero cell flood-fills its connected zero region together with
// the numbered cells bordering it.
func (e *Engine) Reveal(p core.Point) (RevealResult, error) {
	i := e.grid.index(p)
	if e.outcome != Playing {
		return RevealResult{Outcome: e.outcome}, fmt.Errorf("%w: game is over", core.ErrInvalidMove)
	}
	switch e.cells[i] {
	case Revealed:
		return RevealResult{Outcome: e.outcome}, fmt.Errorf("%w: cell (%d,%d) is already revealed", core.ErrInvalidMove, p.Y, p.X)
	case Flagged:
		return RevealResult{Outcome: e.outcome}, fmt.Errorf("%w: cell (%d,%d) is flagged", core.ErrInvalidMove, p.Y, p.X)
	}

	if e.grid.mines[i] {
		e.cells[i] = Revealed
		e.revealed++
		e.outcome = Lost
		e.exploded = p
		return RevealResult{Cells: []int{i}, Mine: true, Outcome: Lost}, nil
	}

	cells := e.floodFill(i)
	if e.CheckWin() {
		e.outcome = Won
	}
	return RevealResult{Cells: cells, Outcome: e.outcome}, nil
}

// floodFill reveals start and, if it has no neighbouring mines, every cell
// reachable through zero cells. Flags in the way are cleared. Returns the
// revealed indices in ascending order.
func (e *Engine) floodFill(start int) []int {
	cols, rows := e.grid.cols, e.grid.rows
	visited := make([]bool, len(e.cells))
	visited[start] = true
	stack := []int{start}
	var changed []int
	var buf []core.Point

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.cells[i] == Flagged {
			e.flagged--
		}
		e.cells[i] = Revealed
		e.revealed++
		changed = append(changed, i)

		if e.adj.counts[i] != 0 {
			continue
		}
		buf = core.Neighbors8(buf[:0], core.PointAt(i, cols), cols, rows)
		for _, n := range buf {
			j := n.Index(cols)
			if visited[j] || e.cells[j] == Revealed {
				continue
			}
			visited[j] = true
			stack = append(stack, j)
		}
	}

	slices.Sort(changed)
	return changed
}

// ToggleFlag flips a hidden cell to flagged or back. Reports whether the cell
// is flagged afterwards.
func (e *Engine) ToggleFlag(p core.Point) (bool, error) {
	i := e.grid.index(p)
	if e.outcome != Playing {
		return false, fmt.Errorf("%w: game is over", core.ErrInvalidMove)
	}
	switch e.cells[i] {
	case Revealed:
		return false, fmt.Errorf("%w: cell (%d,%d) is already revealed", core.ErrInvalidMove, p.Y, p.X)
	case Flagged:
		e.cells[i] = Hidden
		e.flagged--
		return false, nil
	default:
		e.cells[i] = Flagged
		e.flagged++
		return true, nil
	}
}

// CheckWin reports whether every non-mine cell has been revealed.
func (e *Engine) CheckWin() bool {
	if e.outcome == Lost {
		return false
	}
	return e.grid.Size()-e.revealed == e.grid.MineCount()
}

// MineCells returns every mine position, for exposing the board after a loss.
func (e *Engine) MineCells() []core.Point {
	return e.grid.Mines()
}

// WrongFlags returns flagged cells that do not hold a mine.
func (e *Engine) WrongFlags() []core.Point {
	var out []core.Point
	for i, s := range e.cells {
		if s == Flagged && !e.grid.mines[i] {
			out = append(out, core.PointAt(i, e.grid.cols))
		}
	}
	return out
}

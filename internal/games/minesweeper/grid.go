// Package minesweeper implements the Minesweeper board reveal engine and its
// tabletop game adapter.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// Grid is an immutable rows×cols minefield stored in row-major order.
type Grid struct {
	rows  int
	cols  int
	mines []bool
	count int
}

// Generate builds a grid where every cell is independently a mine with
// probability fraction. The mine count is not fixed, so a board may have no
// mines at all or be entirely mined.
func Generate(rows, cols int, fraction float64, rng *rand.Rand) Grid {
	g := newGrid(rows, cols)
	for i := range g.mines {
		if rng.Float64() < fraction {
			g.mines[i] = true
			g.count++
		}
	}
	return g
}

// NewGrid builds a grid with mines at exactly the given cells.
// Used for fixed layouts in tests and replays.
func NewGrid(rows, cols int, mines ...core.Point) Grid {
	g := newGrid(rows, cols)
	for _, p := range mines {
		i := g.index(p)
		if !g.mines[i] {
			g.mines[i] = true
			g.count++
		}
	}
	return g
}

func newGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("minesweeper: invalid grid size %dx%d", rows, cols))
	}
	return Grid{rows: rows, cols: cols, mines: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g Grid) Size() int { return g.rows * g.cols }

// MineCount returns the number of mines on the grid.
func (g Grid) MineCount() int { return g.count }

// IsMine reports whether p holds a mine. Panics if p is off the grid.
func (g Grid) IsMine(p core.Point) bool {
	return g.mines[g.index(p)]
}

// Mines returns the positions of every mine in row-major order.
func (g Grid) Mines() []core.Point {
	out := make([]core.Point, 0, g.count)
	for i, m := range g.mines {
		if m {
			out = append(out, core.PointAt(i, g.cols))
		}
	}
	return out
}

// index converts p to a cell index, failing fast on out-of-range input.
func (g Grid) index(p core.Point) int {
	if !p.In(g.cols, g.rows) {
		panic(fmt.Sprintf("minesweeper: cell (%d,%d) outside %dx%d grid", p.Y, p.X, g.rows, g.cols))
	}
	return p.Index(g.cols)
}

// AdjacencyCounts holds the number of neighbouring mines for every cell.
// Mine cells always hold zero.
type AdjacencyCounts struct {
	rows   int
	cols   int
	counts []int
}

// ComputeAdjacency derives adjacency counts from a grid by incrementing the
// non-mine neighbours of every mine.
func ComputeAdjacency(g Grid) AdjacencyCounts {
	adj := AdjacencyCounts{rows: g.rows, cols: g.cols, counts: make([]int, g.Size())}
	var buf []core.Point
	for i, m := range g.mines {
		if !m {
			continue
		}
		buf = core.Neighbors8(buf[:0], core.PointAt(i, g.cols), g.cols, g.rows)
		for _, n := range buf {
			j := n.Index(g.cols)
			if !g.mines[j] {
				adj.counts[j]++
			}
		}
	}
	return adj
}

// At returns the count for p. Panics if p is off the grid.
func (a AdjacencyCounts) At(p core.Point) int {
	if !p.In(a.cols, a.rows) {
		panic(fmt.Sprintf("minesweeper: cell (%d,%d) outside %dx%d grid", p.Y, p.X, a.rows, a.cols))
	}
	return a.counts[p.Index(a.cols)]
}

package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

func TestGenerateExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	empty := Generate(5, 7, 0, rng)
	if empty.MineCount() != 0 {
		t.Errorf("fraction 0 produced %d mines", empty.MineCount())
	}

	full := Generate(5, 7, 1, rng)
	if full.MineCount() != 35 {
		t.Errorf("fraction 1 produced %d mines, want 35", full.MineCount())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(10, 25, 1.0/6.0, rand.New(rand.NewSource(42)))
	b := Generate(10, 25, 1.0/6.0, rand.New(rand.NewSource(42)))

	if a.MineCount() != b.MineCount() {
		t.Fatalf("mine count mismatch: %d vs %d", a.MineCount(), b.MineCount())
	}
	am, bm := a.Mines(), b.Mines()
	for i := range am {
		if am[i] != bm[i] {
			t.Fatalf("mine %d mismatch: %v vs %v", i, am[i], bm[i])
		}
	}
}

func TestGenerateDensity(t *testing.T) {
	// Independent draws: the count varies but stays near the expectation.
	g := Generate(100, 100, 1.0/6.0, rand.New(rand.NewSource(7)))
	n := g.MineCount()
	if n < 1400 || n > 1950 {
		t.Errorf("mine count %d far from expected ~1667", n)
	}
}

func TestGenerateInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a zero-row grid")
		}
	}()
	Generate(0, 5, 0.5, rand.New(rand.NewSource(1)))
}

func TestNewGridDuplicateMines(t *testing.T) {
	g := NewGrid(3, 3, core.Pt(1, 1), core.Pt(1, 1))
	if g.MineCount() != 1 {
		t.Errorf("MineCount() = %d, want 1", g.MineCount())
	}
}

func TestComputeAdjacencyScenario(t *testing.T) {
	// 3x3 board with a single mine in the top-left corner.
	g := NewGrid(3, 3, core.Pt(0, 0))
	adj := ComputeAdjacency(g)

	want := [3][3]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	for r := range 3 {
		for c := range 3 {
			if got := adj.At(core.Pt(c, r)); got != want[r][c] {
				t.Errorf("adjacency at (%d,%d) = %d, want %d", r, c, got, want[r][c])
			}
		}
	}
}

func TestComputeAdjacencyCounts(t *testing.T) {
	// . * .
	// * . *
	// . * .
	g := NewGrid(3, 3, core.Pt(1, 0), core.Pt(0, 1), core.Pt(2, 1), core.Pt(1, 2))
	adj := ComputeAdjacency(g)

	tests := []struct {
		p    core.Point
		want int
	}{
		{core.Pt(1, 1), 4},
		{core.Pt(0, 0), 2},
		{core.Pt(2, 2), 2},
		{core.Pt(1, 0), 0}, // mines carry no count
	}
	for _, tt := range tests {
		if got := adj.At(tt.p); got != tt.want {
			t.Errorf("adjacency at %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestAdjacencyMatchesNeighbourCount(t *testing.T) {
	g := Generate(12, 20, 0.3, rand.New(rand.NewSource(99)))
	adj := ComputeAdjacency(g)

	var buf []core.Point
	for r := range g.Rows() {
		for c := range g.Cols() {
			p := core.Pt(c, r)
			if g.IsMine(p) {
				continue
			}
			want := 0
			buf = core.Neighbors8(buf[:0], p, g.Cols(), g.Rows())
			for _, n := range buf {
				if g.IsMine(n) {
					want++
				}
			}
			if got := adj.At(p); got != want {
				t.Fatalf("adjacency at %v = %d, want %d", p, got, want)
			}
		}
	}
}

package minesweeper

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

const (
	cellWidth = 2 // Glyph plus spacer
	hudHeight = 3 // Title, counters, blank line
)

// Cell glyphs.
const (
	glyphHidden    = '■'
	glyphEmpty     = '·'
	glyphFlag      = 'F'
	glyphMine      = '*'
	glyphWrongFlag = 'X'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	rows, cols := g.engine.Grid().Rows(), g.engine.Grid().Cols()
	box := core.NewRect((g.screenW-cols*cellWidth-3)/2, hudHeight, cols*cellWidth+3, rows+2)

	g.renderHUD(dst, box)
	dst.DrawBoxColored(box, core.ColorGray)
	g.renderBoard(dst, box.X+2, box.Y+1)
	g.renderFooter(dst, box.Bottom())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the mine counter, difficulty and timer.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextCenteredColored(0, "MINESWEEPER", core.ColorBrightWhite)

	// Counter goes negative with too many flags.
	dst.DrawTextColored(box.X, 1, fmt.Sprintf("Mines: %03d", g.engine.RemainingMines()), core.ColorBrightRed)

	dst.DrawTextCentered(1, g.preset.Label())

	timer := fmt.Sprintf("Time: %03d", g.ElapsedSeconds())
	dst.DrawTextColored(box.Right()-utf8.RuneCountInString(timer), 1, timer, core.ColorBrightRed)
}

// renderBoard draws every cell, exposing mines once the game has ended.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	rows, cols := g.engine.Grid().Rows(), g.engine.Grid().Cols()
	for r := range rows {
		for c := range cols {
			p := core.Pt(c, r)
			ch, color := g.cellGlyph(p)
			if p == g.cursor && g.engine.Outcome() == Playing {
				color = core.ColorHighlight
			}
			dst.SetColored(x0+c*cellWidth, y0+r, ch, color)
		}
	}
}

// cellGlyph picks the rune and color for one cell.
func (g *Game) cellGlyph(p core.Point) (rune, core.Color) {
	e := g.engine
	outcome := e.Outcome()
	mine := e.Grid().IsMine(p)

	switch e.State(p) {
	case Revealed:
		if mine {
			return glyphMine, core.ColorBrightRed
		}
		n := e.Count(p)
		if n == 0 {
			return glyphEmpty, core.ColorGray
		}
		return rune('0' + n), core.AdjacencyColor(n)

	case Flagged:
		if outcome == Lost && !mine {
			return glyphWrongFlag, core.ColorRed
		}
		return glyphFlag, core.ColorOrange

	default:
		switch {
		case outcome == Lost && mine:
			return glyphMine, core.ColorRed
		case outcome == Won && mine:
			return glyphFlag, core.ColorOrange
		}
		return glyphHidden, core.ColorDefault
	}
}

// renderFooter draws the result banner or the control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch g.engine.Outcome() {
	case Won:
		dst.DrawTextCenteredColored(y, fmt.Sprintf("CLEARED in %ds!", g.ElapsedSeconds()), core.ColorBrightGreen)
		dst.DrawTextCentered(y+1, "R restart  Esc menu")
		return
	case Lost:
		dst.DrawTextCenteredColored(y, "BOOM! You hit a mine", core.ColorBrightRed)
		dst.DrawTextCentered(y+1, "R restart  Esc menu")
		return
	}

	if g.paused {
		dst.DrawTextCenteredColored(y, "PAUSED", core.ColorBrightYellow)
	} else if g.notice != "" {
		dst.DrawTextCenteredColored(y, g.notice, core.ColorYellow)
	}
	dst.DrawTextCenteredColored(y+1, "Arrows move  Space reveal  F flag  R restart  P pause", core.ColorGray)
}

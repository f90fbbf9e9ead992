package uno

import (
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

const (
	minWidth     = 60
	minHeight    = 20 // With two players; each extra bot needs a row
	handRows     = 3  // Card rows shown for the local hand
	handMarginX  = 2
	tokenSpacing = 1
)

// token returns the bracketed label drawn for a card.
func token(c Card) string {
	return "[" + c.Rank.Short() + "]"
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight+g.engine.Players()-2))
		return
	}

	dst.DrawTextCenteredColored(0, "U N O", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(1, g.botInfo, core.ColorGray)

	y := g.renderOpponents(dst, 3)
	y = g.renderPiles(dst, y+1)
	g.renderStatus(dst, y+1)
	g.renderHand(dst, g.screenH-2-handRows*2-1)
	g.renderFooter(dst, g.screenH-1)
}

// renderOpponents lists every bot seat, showing cards while peeking.
// Returns the next free row.
func (g *Game) renderOpponents(dst *core.Screen, y int) int {
	turn := g.engine.Turn()
	for p := 1; p < g.engine.Players(); p++ {
		marker := "  "
		if turn.Current == p && g.engine.Phase() != Terminal {
			marker = "▶ "
		}
		label := fmt.Sprintf("%sBot %d: %d cards", marker, p, g.engine.HandSize(p))
		dst.DrawText(handMarginX, y, label)

		if g.Peeking() || g.engine.Phase() == Terminal {
			x := handMarginX + utf8.RuneCountInString(label) + 2
			for _, c := range g.engine.hands[p] {
				t := token(c)
				if x+utf8.RuneCountInString(t) >= g.screenW {
					dst.DrawText(x, y, "…")
					break
				}
				dst.DrawTextColored(x, y, t, c.Color.ScreenColor())
				x += utf8.RuneCountInString(t) + tokenSpacing
			}
		}
		y++
	}
	return y
}

// renderPiles draws the deck size, the discard top and any pending stack.
func (g *Game) renderPiles(dst *core.Screen, y int) int {
	top := g.engine.Top()
	deck := fmt.Sprintf("Deck: %d", g.engine.DeckLen())
	topLabel := "Top: "
	cardLabel := top.String()

	width := utf8.RuneCountInString(deck) + 4 + utf8.RuneCountInString(topLabel) + utf8.RuneCountInString(cardLabel)
	x := (g.screenW - width) / 2
	dst.DrawText(x, y, deck)
	x += utf8.RuneCountInString(deck) + 4
	dst.DrawText(x, y, topLabel)
	x += utf8.RuneCountInString(topLabel)
	dst.DrawTextColored(x, y, cardLabel, top.Color.ScreenColor())

	turn := g.engine.Turn()
	if turn.Stack.Active() {
		y++
		dst.DrawTextCenteredColored(y, fmt.Sprintf("+%d pending (%s)", turn.Stack.Total, turn.Stack.Rank), core.ColorBrightRed)
	}
	if g.engine.Players() > 2 {
		y++
		dir := "Direction: clockwise"
		if turn.Direction < 0 {
			dir = "Direction: counter-clockwise"
		}
		dst.DrawTextCenteredColored(y, dir, core.ColorGray)
	}
	return y + 1
}

// renderStatus draws the message line and the color picker.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch {
	case g.engine.Phase() == Terminal:
		winner, ok := g.engine.Winner()
		msg, color := "The deck ran out. Nobody wins.", core.ColorYellow
		if ok && winner == human {
			msg, color = fmt.Sprintf("YOU WIN! +%d points", g.score()), core.ColorBrightGreen
		} else if ok {
			msg, color = fmt.Sprintf("Bot %d wins!", winner), core.ColorBrightRed
		}
		dst.DrawTextCenteredColored(y, msg, color)
		return
	case g.paused:
		dst.DrawTextCenteredColored(y, "PAUSED", core.ColorBrightYellow)
		return
	}

	dst.DrawTextCenteredColored(y, g.info, core.ColorYellow)

	if g.engine.Phase() == AwaitingColorChoice && g.engine.Turn().Current == human {
		labels := make([]string, len(Colors))
		width := 0
		for i, c := range Colors {
			labels[i] = " " + c.String() + " "
			width += len(labels[i]) + 1
		}
		x := (g.screenW - width) / 2
		for i, c := range Colors {
			color := c.ScreenColor()
			if i == g.colorCursor {
				color = core.ColorHighlight
			}
			dst.DrawTextColored(x, y+1, labels[i], color)
			x += len(labels[i]) + 1
		}
	}
}

// renderHand draws the local hand with the cursor and pick order.
func (g *Game) renderHand(dst *core.Screen, y int) {
	hand := g.engine.hands[human]
	dst.DrawText(handMarginX, y, fmt.Sprintf("Your hand (%d):", len(hand)))

	myTurn := g.engine.Turn().Current == human && g.engine.Phase() == AwaitingPlay
	x, row := handMarginX, 0
	for i, c := range hand {
		t := token(c)
		w := utf8.RuneCountInString(t)
		if x+w > g.screenW-handMarginX {
			row++
			x = handMarginX
		}
		if row >= handRows {
			dst.DrawText(g.screenW-handMarginX-1, y+handRows*2-1, "…")
			break
		}
		cy := y + 1 + row*2

		color := c.Color.ScreenColor()
		if myTurn && i == g.cursor {
			color = core.ColorHighlight
		}
		dst.DrawTextColored(x, cy, t, color)

		if order := slices.Index(g.selection, i); order >= 0 {
			dst.DrawTextColored(x+w/2, cy+1, strconv.Itoa(order+1), core.ColorBrightWhite)
		} else if myTurn && i == g.cursor {
			dst.Set(x+w/2, cy+1, '^')
		}
		x += w + tokenSpacing
	}
}

// renderFooter draws the control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	hint := "←→ move  Space pick  Enter play  X draw  V peek  R restart"
	if g.engine.Phase() == AwaitingColorChoice {
		hint = "←→ choose color  Enter confirm"
	}
	dst.DrawTextCenteredColored(y, hint, core.ColorGray)
}

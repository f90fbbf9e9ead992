// Package uno implements the UNO turn and stacking engine, a simple bot
// opponent and the tabletop game adapter.
package uno

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// Color is a card color. Wild cards carry Wild until a color is chosen.
type Color uint8

const (
	Red Color = iota
	Green
	Yellow
	Blue
	Wild
)

// Colors lists the four playable colors in tie-break order.
var Colors = [4]Color{Red, Green, Yellow, Blue}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Wild:
		return "Wild"
	default:
		return "Unknown"
	}
}

// ParseColor converts a color name to a playable Color.
func ParseColor(name string) (Color, error) {
	for _, c := range Colors {
		if c.String() == name {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("uno: unknown color %q", name)
}

// ScreenColor maps a card color to a terminal color.
func (c Color) ScreenColor() core.Color {
	switch c {
	case Red:
		return core.ColorBrightRed
	case Green:
		return core.ColorBrightGreen
	case Yellow:
		return core.ColorBrightYellow
	case Blue:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightMagenta
	}
}

// Rank is a card's number or power.
type Rank uint8

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	WildCard
	WildDrawFour
)

// String returns the rank name.
func (r Rank) String() string {
	switch {
	case r <= Nine:
		return strconv.Itoa(int(r))
	case r == Skip:
		return "Skip"
	case r == Reverse:
		return "Reverse"
	case r == DrawTwo:
		return "Draw Two"
	case r == WildCard:
		return "Wild"
	case r == WildDrawFour:
		return "Wild Draw Four"
	default:
		return "Unknown"
	}
}

// Short returns a compact label used on rendered cards.
func (r Rank) Short() string {
	switch {
	case r <= Nine:
		return strconv.Itoa(int(r))
	case r == Skip:
		return "Ø"
	case r == Reverse:
		return "⇄"
	case r == DrawTwo:
		return "+2"
	case r == WildCard:
		return "W"
	case r == WildDrawFour:
		return "+4"
	default:
		return "?"
	}
}

// IsDraw reports whether the rank feeds the draw stack.
func (r Rank) IsDraw() bool {
	return r == DrawTwo || r == WildDrawFour
}

// IsAction reports whether the rank has an effect beyond matching.
func (r Rank) IsAction() bool {
	return r >= Skip
}

// DrawValue returns how many cards the rank adds to the draw stack.
func (r Rank) DrawValue() int {
	switch r {
	case DrawTwo:
		return 2
	case WildDrawFour:
		return 4
	default:
		return 0
	}
}

// Card is a single UNO card.
type Card struct {
	Color Color
	Rank  Rank
}

// IsWild reports whether the card is a Wild or Wild Draw Four, whatever
// color it currently carries.
func (c Card) IsWild() bool {
	return c.Rank == WildCard || c.Rank == WildDrawFour
}

// String returns a readable card name such as "Red 5" or "Wild Draw Four".
func (c Card) String() string {
	if c.Color == Wild {
		return c.Rank.String()
	}
	return c.Color.String() + " " + c.Rank.String()
}

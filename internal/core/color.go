package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board and card elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorHighlight // Reverse video, used for cursors and selections

	colorCount // number of colors, keep last
)

// NumColors is the number of defined colors.
const NumColors = int(colorCount)

// adjacencyColors is the classic palette for mine counts 1..8.
var adjacencyColors = [...]Color{
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorMagenta,
	ColorYellow,
	ColorCyan,
	ColorBrightMagenta,
	ColorGray,
}

// AdjacencyColor returns the display color for a neighbouring-mine count.
// Zero and out-of-range counts use the default color.
func AdjacencyColor(n int) Color {
	if n < 1 || n > len(adjacencyColors) {
		return ColorDefault
	}
	return adjacencyColors[n-1]
}

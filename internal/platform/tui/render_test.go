package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.SetColored(0, 1, 'X', core.ColorHighlight)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q, want %q", lines[0], "abcd  ")
	}
	if lines[1] != "X     " {
		t.Errorf("line 1 = %q, want %q", lines[1], "X     ")
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	for c := range core.NumColors {
		_ = styleFor(core.Color(c))
	}
	if got := styleFor(core.Color(core.NumColors + 3)); got.GetReverse() {
		t.Error("unknown color should fall back to the default style")
	}
	if !styleFor(core.ColorHighlight).GetReverse() {
		t.Error("highlight should render in reverse video")
	}
}

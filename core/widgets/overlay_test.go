package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderSheetAnchorsToBottom(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderSheet(base, "Sheet\nline", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(ansi.Strip(lines[7]), "Sheet") {
		t.Fatalf("expected sheet title above the last row, got %q", ansi.Strip(lines[7]))
	}
	if !strings.Contains(ansi.Strip(lines[8]), "line") {
		t.Fatalf("expected sheet content on the last row, got %q", ansi.Strip(lines[8]))
	}
	if strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row covered by sheet, got %q", lines[8])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestRenderSheetTallerThanCanvasIsClipped(t *testing.T) {
	sheet := strings.Repeat("x\n", 20) + "x"
	out := RenderSheet("base", sheet, 10, 4)
	if got := len(strings.Split(out, "\n")); got != 4 {
		t.Fatalf("line count = %d, want 4", got)
	}
}

func TestOverlayAtKeepsSurroundingCells(t *testing.T) {
	out := OverlayAt("abcdef\nghijkl", "XY", 2, 1, 6, 2)
	lines := strings.Split(out, "\n")
	if lines[0] != "abcdef" || lines[1] != "ghXYkl" {
		t.Fatalf("unexpected overlay: %q", lines)
	}
}

package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Marker is a glyph pinned to a position given in percent of the field.
type Marker struct {
	Glyph   string
	TopPct  int
	LeftPct int
}

// MarkerField centers Center in its box and paints Markers over it.
type MarkerField struct {
	Center  string
	Markers []Marker
}

func (f MarkerField) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	base := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, f.Center)
	base = fitCanvas(base, width, height)
	for _, mk := range f.Markers {
		x, y := MarkerCell(mk, width, height)
		if ansi.StringWidth(mk.Glyph) == 0 {
			continue
		}
		base = OverlayAt(base, mk.Glyph, x, y, width, height)
	}
	return base
}

// MarkerCell maps a marker's percentages to a cell, clamped so the glyph
// stays inside the field.
func MarkerCell(mk Marker, width, height int) (int, int) {
	x := width * clampPct(mk.LeftPct) / 100
	y := height * clampPct(mk.TopPct) / 100
	glyphWidth := max(1, ansi.StringWidth(mk.Glyph))
	if x > width-glyphWidth {
		x = max(0, width-glyphWidth)
	}
	if y > height-1 {
		y = max(0, height-1)
	}
	return x, y
}

func clampPct(p int) int {
	return min(100, max(0, p))
}

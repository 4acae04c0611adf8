package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// VStack stacks widgets vertically. Heights pins each child to a fixed row
// count; otherwise rows are split by Ratios (or evenly).
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Heights []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(1, height-spacingTotal)
	heights := v.Heights
	if len(heights) != len(v.Widgets) {
		heights = splitWidths(usable, len(v.Widgets), v.Ratios)
	}
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if len(lines) >= height {
			break
		}
		h := min(max(1, heights[i]), height-len(lines))
		lines = append(lines, fitLines(w.Render(width, h), h)...)
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// Text is a block of pre-styled lines, aligned horizontally in its box.
type Text struct {
	Content string
	Align   lipgloss.Position
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := fitLines(t.Content, height)
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		gap := width - ansi.StringWidth(line)
		switch {
		case gap <= 0:
		case t.Align == lipgloss.Center:
			line = strings.Repeat(" ", gap/2) + line
		case t.Align == lipgloss.Right:
			line = strings.Repeat(" ", gap) + line
		}
		lines[i] = padRight(line, width)
	}
	return strings.Join(lines, "\n")
}

// Justify places left and right on one line of the given width.
func Justify(left, right string, width int) string {
	lw := ansi.StringWidth(left)
	rw := ansi.StringWidth(right)
	if lw+rw+1 > width {
		left = ansi.Truncate(left, max(0, width-rw-1), "…")
		lw = ansi.StringWidth(left)
	}
	gap := max(1, width-lw-rw)
	return left + strings.Repeat(" ", gap) + right
}

func fitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

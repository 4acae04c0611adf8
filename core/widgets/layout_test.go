package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || ansi.StringWidth(lines[0]) != 20 {
		t.Fatalf("expected a 20 column row, got %q", out)
	}
	if strings.Index(lines[0], "B") != 16 {
		t.Fatalf("expected B after the 75%% column, got %q", lines[0])
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
}

func TestVStackFixedHeights(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"a"}, fixedWidget{"b"}, fixedWidget{"c"}}, Heights: []int{2, 1, 5}}
	lines := strings.Split(v.Render(10, 5), "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if lines[0] != "a" || lines[1] != "" || lines[2] != "b" || lines[3] != "c" {
		t.Fatalf("unexpected layout: %q", lines)
	}
}

func TestTextAlignment(t *testing.T) {
	out := Text{Content: "ab", Align: lipgloss.Center}.Render(6, 1)
	if out != "  ab  " {
		t.Fatalf("centered text = %q", out)
	}
	out = Text{Content: "ab", Align: lipgloss.Right}.Render(6, 1)
	if out != "    ab" {
		t.Fatalf("right text = %q", out)
	}
}

func TestJustify(t *testing.T) {
	if got := Justify("left", "right", 12); got != "left   right" {
		t.Fatalf("justify = %q", got)
	}
	if got := Justify("a long left side", "10:30", 12); ansi.StringWidth(got) != 12 || !strings.HasSuffix(got, "10:30") {
		t.Fatalf("justify should truncate left side, got %q", got)
	}
}

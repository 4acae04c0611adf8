package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestFooterShowsActiveScopeBindings(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})
	out := ansi.Strip(RenderFooter(m))
	if !strings.Contains(out, "enter выбрать маршрут") {
		t.Fatalf("map footer missing open-sheet hint: %q", out)
	}
	if strings.Contains(out, "1-4") {
		t.Fatalf("sheet bindings should not show on the map: %q", out)
	}

	m.OpenOverlay()
	out = ansi.Strip(RenderFooter(m))
	if !strings.Contains(out, "1-4 выбор по номеру") || !strings.Contains(out, "esc закрыть") {
		t.Fatalf("sheet footer missing bindings: %q", out)
	}
	if strings.Contains(out, "выход") {
		t.Fatalf("panel bindings should not show in the sheet: %q", out)
	}
}

func TestFooterFitsWidth(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 30})
	if w := ansi.StringWidth(RenderFooter(m)); w != 30 {
		t.Fatalf("footer width = %d, want 30", w)
	}
}

func TestFooterWithoutBindings(t *testing.T) {
	m := NewModel(nil, NewKeyRegistry(nil), nil, Settings{})
	if out := ansi.Strip(RenderFooter(m)); !strings.Contains(out, "Нет сочетаний клавиш") {
		t.Fatalf("expected empty-bindings label, got %q", out)
	}
}

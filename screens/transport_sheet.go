package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/karta/core"
	"github.com/jask/karta/internal/catalog"
)

const sheetTitle = "Выберите тип транспорта"

// TransportSheet lists the transport modes. Picking one emits
// core.TransportChosenMsg; the shell owns the selection and the delayed close.
type TransportSheet struct {
	options []catalog.TransportOption
	keys    *core.KeyRegistry
	mark    func(id, s string) string
	cursor  int
	chosen  catalog.TransportID
}

func NewTransportSheet(cat *catalog.Catalog, keys *core.KeyRegistry, selected catalog.TransportID, mark func(id, s string) string) *TransportSheet {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if mark == nil {
		mark = func(_, s string) string { return s }
	}
	s := &TransportSheet{
		options: cat.Transports(),
		keys:    keys,
		mark:    mark,
		chosen:  selected,
	}
	for i, opt := range s.options {
		if opt.ID == selected {
			s.cursor = i
		}
	}
	return s
}

func (s *TransportSheet) Title() string { return sheetTitle }
func (s *TransportSheet) Scope() string { return core.SheetScope }

func (s *TransportSheet) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case core.TransportChosenMsg:
		for i, opt := range s.options {
			if opt.ID == msg.ID {
				s.cursor = i
				s.chosen = msg.ID
			}
		}
		return s, nil, false
	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil, false
}

func (s *TransportSheet) handleKey(key string) (core.Screen, tea.Cmd, bool) {
	scope := s.Scope()
	if s.keys.ActionKey(key, "sheet-close", scope) {
		return s, core.CloseOverlayCmd(), false
	}
	if len(s.options) == 0 {
		return s, nil, false
	}
	switch {
	case s.keys.ActionKey(key, "sheet-up", scope):
		s.cursor = (s.cursor - 1 + len(s.options)) % len(s.options)
		return s, s.describeCursor(), false
	case s.keys.ActionKey(key, "sheet-down", scope):
		s.cursor = (s.cursor + 1) % len(s.options)
		return s, s.describeCursor(), false
	case s.keys.ActionKey(key, "sheet-choose", scope):
		return s, core.ChooseTransportCmd(s.options[s.cursor].ID), false
	}
	idx := s.keys.KeyIndex(key, "sheet-pick", scope)
	switch {
	case idx < 0:
		return s, nil, false
	case idx >= len(s.options):
		return s, core.ErrorCmd(fmt.Errorf("no transport option %d", idx+1)), false
	}
	s.cursor = idx
	return s, core.ChooseTransportCmd(s.options[idx].ID), false
}

func (s *TransportSheet) describeCursor() tea.Cmd {
	opt := s.options[s.cursor]
	return core.StatusCmd(opt.Name + ": " + opt.Description)
}

func (s *TransportSheet) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(core.AccentColor())
	descStyle := lipgloss.NewStyle().Foreground(core.MutedColor())
	checkStyle := lipgloss.NewStyle().Foreground(core.SuccessColor()).Bold(true)

	lines := []string{titleStyle.Render(sheetTitle), ""}
	for i, opt := range s.options {
		prefix := "  "
		if i == s.cursor {
			prefix = "› "
		}
		glyph := lipgloss.NewStyle().Foreground(core.TransportColor(opt.Color)).Render(core.TransportGlyph(opt.Icon))
		row := prefix + glyph + " " + opt.Name
		if opt.ID == s.chosen {
			row += " " + checkStyle.Render("✓")
		}
		row = ansi.Truncate(row, max(1, width), "…")
		desc := ansi.Truncate("    "+descStyle.Render(opt.Description), max(1, width), "…")
		lines = append(lines, s.mark(core.SheetZoneID(opt.ID), row+"\n"+desc))
	}
	hint := s.keys.FirstKey("sheet-close", s.Scope())
	if hint != "" {
		lines = append(lines, "", descStyle.Render(hint+" закрыть"))
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(4, height))
}

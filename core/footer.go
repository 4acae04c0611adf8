package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// scopeKeyMap adapts the bindings of one scope to help.KeyMap.
type scopeKeyMap []key.Binding

func (k scopeKeyMap) ShortHelp() []key.Binding { return k }
func (k scopeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func newFooterHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Background(colorMantle)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	return h
}

func RenderFooter(m Model) string {
	bindings := m.keys.HelpBindings(m.ActiveScope())
	width := max(1, m.width)
	line := ""
	if len(bindings) > 0 {
		h := m.help
		h.Width = width
		line = h.View(scopeKeyMap(bindings))
	}
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle).Render("Нет сочетаний клавиш")
	}
	return renderBar(footerStyle, width, line, colorMantle)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Готово"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

// ClipHeight drops lines past height.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

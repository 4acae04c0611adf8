package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/karta/core/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "До встречи!\n"
	}
	header := renderHeader(m)
	nav := renderNav(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	chrome := lipgloss.Height(header) + lipgloss.Height(nav) + lipgloss.Height(status) + lipgloss.Height(footer)
	bodyHeight := max(0, m.height-chrome)
	width := max(1, m.width)

	var body string
	if bodyHeight > 0 {
		body = m.renderPanel(width, bodyHeight)
		if top := m.screens.Top(); top != nil {
			body = widgets.RenderSheet(body, top.View(max(10, width-6), bodyHeight), width, bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)

	parts := []string{header}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, nav, status, footer)
	view := fitHeight(strings.Join(parts, "\n"), max(1, m.height))
	view = appStyle.Width(width).MaxWidth(width).Render(view)
	if m.Zones != nil {
		view = m.Zones.Scan(view)
	}
	return view
}

func (m Model) renderPanel(width, height int) string {
	panel := m.panelFor(m.view)
	if panel == nil {
		return widgets.Pane{Title: "Нет панели", Height: height, Content: string(m.view)}.Render(width, height)
	}
	return panel.Build(m.renderContext()).Render(width, height)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("◉ " + m.settings.AppName)
	right := cityBadgeStyle.Render(m.settings.City)
	width := max(1, m.width)
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return renderBar(headerBarStyle, width, left+headerBarStyle.Render(strings.Repeat(" ", gap))+right, colorMantle)
}

// renderNav draws the persistent bottom navigation, one clickable item per panel.
func renderNav(m Model) string {
	items := make([]string, 0, len(m.panels))
	for _, p := range m.panels {
		label := p.Title()
		if k := m.keys.FirstKey(ViewAction(p.ID()), p.ID().Scope()); k != "" {
			label = k + " " + label
		}
		style := inactiveNavStyle
		if p.ID() == m.view {
			style = activeNavStyle
		}
		items = append(items, m.Mark(NavZoneID(p.ID()), style.Render(label)))
	}
	line := strings.Join(items, navSepStyle.Render(" │ "))
	width := max(1, m.width)
	if w := ansi.StringWidth(line); w < width {
		line = navBarStyle.Render(strings.Repeat(" ", (width-w)/2)) + line
	}
	return renderBar(navBarStyle, width, line, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

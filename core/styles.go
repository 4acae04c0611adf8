package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorMantle).
			Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	cityBadgeStyle = lipgloss.NewStyle().
			Background(colorText).
			Foreground(colorMantle).
			Padding(0, 1)

	navSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)
	activeNavStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveNavStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)
	navBarStyle = lipgloss.NewStyle().
			Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)

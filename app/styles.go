package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/karta/core"
	"github.com/jask/karta/core/widgets"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(core.AccentColor())
	mutedStyle   = lipgloss.NewStyle().Foreground(core.MutedColor())
	priceStyle   = lipgloss.NewStyle().Bold(true)
	ctaStyle     = lipgloss.NewStyle().Bold(true).Foreground(core.AccentColor())
	activeStyle  = lipgloss.NewStyle().Foreground(core.SuccessColor()).Bold(true)
	vipStyle     = lipgloss.NewStyle().Foreground(core.VIPColor()).Bold(true)
)

func transportDot(color string) string {
	return lipgloss.NewStyle().Foreground(core.TransportColor(color)).Render("●")
}

// headed stacks a one-line heading above a column of fixed-height cards.
func headed(title string, cards []widgets.Widget, cardHeight int) widgets.Widget {
	children := make([]widgets.Widget, 0, len(cards)+1)
	heights := make([]int, 0, len(cards)+1)
	children = append(children, widgets.Text{Content: headingStyle.Render(title)})
	heights = append(heights, 1)
	for _, c := range cards {
		children = append(children, c)
		heights = append(heights, cardHeight)
	}
	return widgets.VStack{Widgets: children, Heights: heights}
}

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/karta/core"
	"github.com/jask/karta/core/widgets"
)

type profilePanel struct{}

func NewProfilePanel() core.Panel { return profilePanel{} }

func (profilePanel) ID() core.View { return core.ViewProfile }
func (profilePanel) Title() string { return "Профиль" }

var avatarStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#1e1e2e")).
	Background(core.AccentColor()).
	Padding(0, 1)

func (profilePanel) Build(rc core.RenderContext) widgets.Widget {
	p := rc.Catalog.Profile()
	identity := widgets.Text{Content: avatarStyle.Render(p.Initials) + "  " + headingStyle.Render(p.Name) + "\n" +
		strings.Repeat(" ", lipgloss.Width(avatarStyle.Render(p.Initials))+2) + mutedStyle.Render(p.Phone)}

	sub := subscriptionCard{title: p.SubscriptionTitle, detail: p.SubscriptionDetail, status: p.SubscriptionStatus}

	menu := make([]string, 0, len(p.Menu))
	for _, item := range p.Menu {
		menu = append(menu, "› "+item)
	}
	rowHeight := max(3, len(menu)+2)
	row := widgets.HStack{
		Widgets: []widgets.Widget{
			sub,
			widgets.Pane{Title: "Меню", Height: rowHeight, Content: strings.Join(menu, "\n")},
		},
		Ratios: []float64{0.5, 0.5},
		Gap:    1,
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text{Content: headingStyle.Render("Профиль")},
			identity,
			row,
		},
		Heights: []int{1, 2, rowHeight},
		Spacing: 1,
	}
}

type subscriptionCard struct {
	title, detail, status string
}

func (c subscriptionCard) Render(width, height int) string {
	return widgets.Pane{
		Title:     c.title,
		Badge:     activeStyle.Render(c.status),
		Height:    height,
		Highlight: true,
		Content:   c.detail,
	}.Render(width, height)
}

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/karta/core"
	"github.com/jask/karta/core/widgets"
	"github.com/jask/karta/internal/catalog"
)

const tripCardHeight = 5

type tripsPanel struct{}

func NewTripsPanel() core.Panel { return tripsPanel{} }

func (tripsPanel) ID() core.View { return core.ViewTrips }
func (tripsPanel) Title() string { return "Поездки" }

func (tripsPanel) Build(rc core.RenderContext) widgets.Widget {
	trips := rc.Catalog.Trips()
	if len(trips) == 0 {
		return headed("Поездки", []widgets.Widget{widgets.Text{Content: mutedStyle.Render("Поездок пока нет")}}, 1)
	}
	cards := make([]widgets.Widget, 0, len(trips))
	for _, trip := range trips {
		cards = append(cards, tripCard{trip: trip, rc: rc})
	}
	return headed("Поездки", cards, tripCardHeight)
}

// tripCard puts the transport mode and fare in the border and the two stops,
// joined by a connector, in the body. The departure time sits beside the origin.
type tripCard struct {
	trip catalog.Trip
	rc   core.RenderContext
}

func (c tripCard) Render(width, height int) string {
	inner := widgets.ContentWidth(width)
	kind := string(c.trip.Kind)
	color := ""
	if opt, ok := c.rc.Catalog.LookupTransport(c.trip.Kind); ok {
		kind, color = opt.Name, opt.Color
	}
	stop := lipgloss.NewStyle().Foreground(core.TransportColor(color))
	content := strings.Join([]string{
		widgets.Justify(stop.Render("○")+" "+c.trip.From, mutedStyle.Render(c.trip.Time), inner),
		mutedStyle.Render("│"),
		stop.Render("●") + " " + c.trip.To,
	}, "\n")
	return widgets.Pane{
		Title:   transportDot(color) + " " + kind,
		Badge:   priceStyle.Render(c.rc.Price(c.trip.Price)),
		Height:  height,
		Content: content,
	}.Render(width, height)
}

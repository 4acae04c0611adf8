package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jask/karta/core"
	"github.com/jask/karta/core/widgets"
)

const (
	mapTitle       = "Карта Душанбе"
	mapPlaceholder = "Интеграция с Google Maps добавляется отдельно. Здесь будет отображаться реальная карта с маршрутами транспорта."
	mapWrapWidth   = 48
)

type mapPanel struct{}

func NewMapPanel() core.Panel { return mapPanel{} }

func (mapPanel) ID() core.View { return core.ViewMap }
func (mapPanel) Title() string { return "Карта" }

func (mapPanel) Build(rc core.RenderContext) widgets.Widget {
	opts := rc.Catalog.Transports()
	markers := make([]widgets.Marker, 0, len(opts))
	for i, opt := range opts {
		markers = append(markers, widgets.Marker{
			Glyph:   lipgloss.NewStyle().Foreground(core.TransportColor(opt.Color)).Render(core.TransportGlyph(opt.Icon)),
			TopPct:  20 + i*15,
			LeftPct: 30 + i*12,
		})
	}
	return mapWidget{rc: rc, markers: markers}
}

type mapWidget struct {
	rc      core.RenderContext
	markers []widgets.Marker
}

func (w mapWidget) Render(width, height int) string {
	footer := []string{w.selectionLine(), w.cta()}
	fieldHeight := max(1, height-len(footer)-1)

	wrap := min(mapWrapWidth, max(10, width-8))
	center := headingStyle.Render(mapTitle) + "\n\n" +
		mutedStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(wordwrap.String(mapPlaceholder, wrap)))
	field := widgets.Pane{
		Title:   "Карта",
		Height:  fieldHeight,
		Content: widgets.MarkerField{Center: center, Markers: w.markers}.Render(widgets.ContentWidth(width), max(1, fieldHeight-2)),
	}
	stack := widgets.VStack{
		Widgets: []widgets.Widget{
			field,
			widgets.Text{Content: strings.Join(footer, "\n"), Align: lipgloss.Center},
		},
		Heights: []int{fieldHeight, len(footer)},
		Spacing: 1,
	}
	return stack.Render(width, height)
}

func (w mapWidget) selectionLine() string {
	id, ok := w.rc.State.SelectedTransport()
	if !ok {
		return mutedStyle.Render("Транспорт не выбран")
	}
	opt, found := w.rc.Catalog.LookupTransport(id)
	if !found {
		return mutedStyle.Render("Транспорт не выбран")
	}
	return "Выбрано: " + transportDot(opt.Color) + " " + opt.Name
}

func (w mapWidget) cta() string {
	label := "Выбрать маршрут"
	if k := w.rc.KeyHint("open-sheet"); k != "" {
		label = "[" + k + "] " + label
	}
	return w.rc.Mark(core.ZoneMapAction, ctaStyle.Render(label))
}

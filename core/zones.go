package core

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/karta/internal/catalog"
)

// ZoneMapAction marks the map panel's call-to-action.
const ZoneMapAction = "map:choose-route"

func NavZoneID(v View) string {
	return "nav:" + string(v)
}

func SheetZoneID(id catalog.TransportID) string {
	return "sheet:" + string(id)
}

func markZone(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

// handleMouse maps left clicks onto the same operations the keys trigger.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.OverlayOpen() {
		for _, opt := range m.catalog.Transports() {
			if m.Zones.Get(SheetZoneID(opt.ID)).InBounds(msg) {
				return ChooseTransportCmd(opt.ID)
			}
		}
		return nil
	}
	for _, p := range m.panels {
		if m.Zones.Get(NavZoneID(p.ID())).InBounds(msg) {
			return SelectViewCmd(p.ID())
		}
	}
	if m.view == ViewMap && m.Zones.Get(ZoneMapAction).InBounds(msg) {
		return OpenOverlayCmd()
	}
	return nil
}

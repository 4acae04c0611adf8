package core

import "github.com/jask/karta/internal/catalog"

// View names one of the four panels.
type View string

const (
	ViewMap          View = "map"
	ViewTrips        View = "trips"
	ViewSubscription View = "subscription"
	ViewProfile      View = "profile"
)

// Views returns every view in navigation order.
func Views() []View {
	return []View{ViewMap, ViewTrips, ViewSubscription, ViewProfile}
}

func (v View) Valid() bool {
	for _, known := range Views() {
		if v == known {
			return true
		}
	}
	return false
}

func (v View) Scope() string {
	return "view:" + string(v)
}

// State is an immutable snapshot of the shell's UI state.
type State struct {
	View        View
	OverlayOpen bool
	Selected    catalog.TransportID
}

// SelectedTransport reports the tentatively selected transport, if any.
func (s State) SelectedTransport() (catalog.TransportID, bool) {
	return s.Selected, s.Selected != ""
}

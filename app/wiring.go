package app

import (
	"github.com/jask/karta/core"
	"github.com/jask/karta/screens"
)

// Panels returns the four views in navigation order.
func Panels() []core.Panel {
	return []core.Panel{
		NewMapPanel(),
		NewTripsPanel(),
		NewSubscriptionPanel(),
		NewProfilePanel(),
	}
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenSheet = func(model *core.Model) core.Screen {
		return screens.NewTransportSheet(model.Catalog(), model.Keys(), model.State().Selected, model.Mark)
	}
}

package core

// SheetScope is the key scope of the transport sheet.
const SheetScope = "screen:transport"

func viewScopes() []string {
	views := Views()
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Scope())
	}
	return out
}

// ViewAction is the key action that selects v.
func ViewAction(v View) string {
	return "view-" + string(v)
}

func DefaultKeyBindings() []KeyBinding {
	panels := viewScopes()
	return []KeyBinding{
		{Keys: []string{"1"}, Action: ViewAction(ViewMap), Description: "карта", Scopes: panels},
		{Keys: []string{"2"}, Action: ViewAction(ViewTrips), Description: "поездки", Scopes: panels},
		{Keys: []string{"3"}, Action: ViewAction(ViewSubscription), Description: "подписка", Scopes: panels},
		{Keys: []string{"4"}, Action: ViewAction(ViewProfile), Description: "профиль", Scopes: panels},
		{Keys: []string{"tab", "right", "l"}, Action: "view-next", Description: "далее", Scopes: panels},
		{Keys: []string{"shift+tab", "left", "h"}, Action: "view-prev", Description: "назад", Scopes: panels},
		{Keys: []string{"enter", "r"}, Action: "open-sheet", Description: "выбрать маршрут", Scopes: []string{ViewMap.Scope()}},
		{Keys: []string{"q"}, Action: "quit", Description: "выход", Scopes: panels},
		{Keys: []string{"up", "k"}, Action: "sheet-up", Description: "вверх", Scopes: []string{SheetScope}},
		{Keys: []string{"down", "j"}, Action: "sheet-down", Description: "вниз", Scopes: []string{SheetScope}},
		{Keys: []string{"enter"}, Action: "sheet-choose", Description: "выбрать", Scopes: []string{SheetScope}},
		{Keys: []string{"1", "2", "3", "4"}, Action: "sheet-pick", Description: "выбор по номеру", Scopes: []string{SheetScope}, Help: "1-4"},
		{Keys: []string{"esc"}, Action: "sheet-close", Description: "закрыть", Scopes: []string{SheetScope}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Bindings are copied.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
			Help:        b.Help,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
			next.Help = ""
		}
		out = append(out, next)
	}
	return out
}

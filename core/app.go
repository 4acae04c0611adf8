package core

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/karta/core/widgets"
	"github.com/jask/karta/internal/catalog"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Panel is one of the four full-screen views. Build must not mutate
// anything; it renders from the snapshot in rc.
type Panel interface {
	ID() View
	Title() string
	Build(rc RenderContext) widgets.Widget
}

// RenderContext is everything a panel may read while rendering.
type RenderContext struct {
	State    State
	Catalog  *catalog.Catalog
	Settings Settings
	keys     *KeyRegistry
	zones    *zone.Manager
}

// KeyHint returns the primary key for action in the active view's scope.
func (rc RenderContext) KeyHint(action string) string {
	if rc.keys == nil {
		return ""
	}
	return rc.keys.FirstKey(action, rc.State.View.Scope())
}

// Mark wraps s in a mouse zone when mouse support is on.
func (rc RenderContext) Mark(id, s string) string {
	return markZone(rc.zones, id, s)
}

// Price formats a catalog price with the configured currency.
func (rc RenderContext) Price(p float64) string {
	return catalog.FormatPrice(p, rc.Settings.Currency)
}

type Settings struct {
	AppName         string
	City            string
	Currency        string
	SheetCloseDelay time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		AppName:         "Karta-AD",
		City:            "Душанбе",
		Currency:        "сом.",
		SheetCloseDelay: 300 * time.Millisecond,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.AppName == "" {
		s.AppName = d.AppName
	}
	if s.City == "" {
		s.City = d.City
	}
	if s.Currency == "" {
		s.Currency = d.Currency
	}
	if s.SheetCloseDelay <= 0 {
		s.SheetCloseDelay = d.SheetCloseDelay
	}
	return s
}

// Model is the view shell. currentView, the overlay flag (an open screen) and
// the selected transport change only through SelectView, OpenOverlay,
// CloseOverlay and ChooseTransport.
type Model struct {
	width      int
	height     int
	panels     []Panel
	view       View
	screens    ScreenStack
	keys       *KeyRegistry
	catalog    *catalog.Catalog
	settings   Settings
	selected   catalog.TransportID
	sheetToken uint64
	status     string
	statusErr  bool
	quitting   bool
	help       help.Model

	// OpenSheet builds the transport sheet pushed by OpenOverlay.
	OpenSheet func(m *Model) Screen
	// Zones enables mouse hit-testing when set.
	Zones *zone.Manager
}

func NewModel(panels []Panel, keys *KeyRegistry, cat *catalog.Catalog, settings Settings) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return Model{
		panels:   panels,
		view:     ViewMap,
		keys:     keys,
		catalog:  cat,
		settings: settings.withDefaults(),
		status:   "Готово",
		help:     newFooterHelp(),
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns a snapshot of the UI state.
func (m Model) State() State {
	return State{View: m.view, OverlayOpen: m.OverlayOpen(), Selected: m.selected}
}

func (m Model) OverlayOpen() bool {
	return m.screens.Len() > 0
}

func (m Model) Catalog() *catalog.Catalog {
	return m.catalog
}

func (m Model) Keys() *KeyRegistry {
	return m.keys
}

func (m Model) Settings() Settings {
	return m.settings
}

// Mark wraps s in a mouse zone when mouse support is on.
func (m Model) Mark(id, s string) string {
	return markZone(m.Zones, id, s)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return m.view.Scope()
}

// SelectView shows panel v. It reports false, leaving state untouched, when
// v is not a known view or has no panel.
func (m *Model) SelectView(v View) bool {
	panel := m.panelFor(v)
	if !v.Valid() || panel == nil {
		log.Printf("select view %q: no such panel", v)
		return false
	}
	if m.view != v {
		log.Printf("view %s -> %s", m.view, v)
	}
	m.view = v
	m.SetStatus(panel.Title())
	return true
}

func (m *Model) cycleView(delta int) {
	if len(m.panels) == 0 {
		return
	}
	idx := 0
	for i, p := range m.panels {
		if p.ID() == m.view {
			idx = i
			break
		}
	}
	next := (idx + delta + len(m.panels)) % len(m.panels)
	m.SelectView(m.panels[next].ID())
}

// OpenOverlay pushes the transport sheet. A new sheet session invalidates any
// pending close from an earlier one.
func (m *Model) OpenOverlay() {
	if m.OverlayOpen() || m.OpenSheet == nil {
		return
	}
	m.screens.Push(m.OpenSheet(m))
	m.sheetToken++
	log.Printf("sheet opened (token %d)", m.sheetToken)
}

func (m *Model) CloseOverlay() {
	if !m.OverlayOpen() {
		return
	}
	for m.screens.Len() > 0 {
		m.screens.Pop()
	}
	m.sheetToken++
	log.Printf("sheet closed (token %d)", m.sheetToken)
}

// ChooseTransport records id as the selection and returns a one-shot command
// that closes the sheet after the configured delay. Choosing again before it
// fires restarts the delay.
func (m *Model) ChooseTransport(id catalog.TransportID) tea.Cmd {
	opt, ok := m.catalog.LookupTransport(id)
	if !ok {
		m.SetError(fmt.Errorf("unknown transport %q", id))
		return nil
	}
	m.selected = id
	m.sheetToken++
	token := m.sheetToken
	m.SetStatus("Выбрано: " + opt.Name)
	log.Printf("transport %s chosen, close due in %s (token %d)", id, m.settings.SheetCloseDelay, token)
	return tea.Tick(m.settings.SheetCloseDelay, func(time.Time) tea.Msg {
		return sheetCloseDueMsg{token: token}
	})
}

func (m *Model) closeSheetIfCurrent(msg sheetCloseDueMsg) {
	if msg.token != m.sheetToken {
		log.Printf("stale sheet close ignored (token %d, current %d)", msg.token, m.sheetToken)
		return
	}
	m.CloseOverlay()
}

func (m Model) panelFor(v View) Panel {
	for _, p := range m.panels {
		if p.ID() == v {
			return p
		}
	}
	return nil
}

func (m Model) renderContext() RenderContext {
	return RenderContext{
		State:    m.State(),
		Catalog:  m.catalog,
		Settings: m.settings,
		keys:     m.keys,
		zones:    m.Zones,
	}
}

package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/karta/core/widgets"
	"github.com/jask/karta/internal/catalog"
)

type stubPanel struct {
	id    View
	title string
}

func (p stubPanel) ID() View      { return p.id }
func (p stubPanel) Title() string { return p.title }
func (p stubPanel) Build(rc RenderContext) widgets.Widget {
	return widgets.Text{Content: "PANEL:" + string(p.id)}
}

type stubSheet struct {
	keys   []string
	chosen []catalog.TransportID
}

func (s *stubSheet) Title() string        { return "Sheet" }
func (s *stubSheet) Scope() string        { return SheetScope }
func (s *stubSheet) View(int, int) string { return "SHEET" }
func (s *stubSheet) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s.keys = append(s.keys, msg.String())
		if msg.String() == "esc" {
			return s, nil, true
		}
	case TransportChosenMsg:
		s.chosen = append(s.chosen, msg.ID)
	}
	return s, nil, false
}

func newTestModel(t *testing.T) (Model, *stubSheet) {
	t.Helper()
	panels := []Panel{
		stubPanel{id: ViewMap, title: "Карта"},
		stubPanel{id: ViewTrips, title: "Поездки"},
		stubPanel{id: ViewSubscription, title: "Подписка"},
		stubPanel{id: ViewProfile, title: "Профиль"},
	}
	m := NewModel(panels, nil, nil, Settings{SheetCloseDelay: time.Millisecond})
	sheet := &stubSheet{}
	m.OpenSheet = func(*Model) Screen { return sheet }
	return m, sheet
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialState(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.State(); got != (State{View: ViewMap}) {
		t.Fatalf("initial state = %+v", got)
	}
	if _, ok := m.State().SelectedTransport(); ok {
		t.Fatalf("expected no transport selected")
	}
}

func TestSelectViewRendersExactlyOnePanel(t *testing.T) {
	m, _ := newTestModel(t)
	sequence := []View{ViewTrips, ViewTrips, ViewProfile, ViewMap, ViewSubscription, ViewMap, ViewProfile}
	for _, v := range sequence {
		if !m.SelectView(v) {
			t.Fatalf("SelectView(%s) rejected", v)
		}
		out := m.View()
		for _, other := range Views() {
			has := strings.Contains(out, "PANEL:"+string(other))
			if other == v && !has {
				t.Fatalf("after selecting %s the panel is missing", v)
			}
			if other != v && has {
				t.Fatalf("after selecting %s panel %s is also rendered", v, other)
			}
		}
		if m.State().View != v {
			t.Fatalf("current view = %s, want %s", m.State().View, v)
		}
	}
}

func TestSelectViewRejectsUnknownView(t *testing.T) {
	m, _ := newTestModel(t)
	if m.SelectView(View("settings")) {
		t.Fatalf("unknown view accepted")
	}
	if m.State().View != ViewMap {
		t.Fatalf("state changed after rejected view")
	}

	m, _ = update(t, m, SelectViewMsg{View: View("settings")})
	if !m.statusErr || m.State().View != ViewMap {
		t.Fatalf("expected error status and unchanged view")
	}
}

func TestSelectViewWithoutPanelIsRejected(t *testing.T) {
	m := NewModel([]Panel{stubPanel{id: ViewMap, title: "Карта"}}, nil, nil, Settings{})
	if m.SelectView(ViewTrips) {
		t.Fatalf("view without a panel accepted")
	}
}

func TestOpenThenCloseOverlayKeepsView(t *testing.T) {
	m, _ := newTestModel(t)
	m.SelectView(ViewTrips)
	m.OpenOverlay()
	if !m.State().OverlayOpen {
		t.Fatalf("overlay should be open")
	}
	m.CloseOverlay()
	if got := m.State(); got.OverlayOpen || got.View != ViewTrips {
		t.Fatalf("state after open/close = %+v", got)
	}
}

func TestOpenOverlayIsIdempotent(t *testing.T) {
	m, _ := newTestModel(t)
	m.OpenOverlay()
	m.OpenOverlay()
	if m.screens.Len() != 1 {
		t.Fatalf("screen depth = %d, want 1", m.screens.Len())
	}
	m.CloseOverlay()
	m.CloseOverlay()
	if m.OverlayOpen() {
		t.Fatalf("overlay should be closed")
	}
}

func TestChooseTransportClosesAfterDelay(t *testing.T) {
	m, _ := newTestModel(t)
	m.OpenOverlay()
	cmd := m.ChooseTransport(catalog.Taxi)
	if cmd == nil {
		t.Fatalf("expected deferred close command")
	}
	if got, ok := m.State().SelectedTransport(); !ok || got != catalog.Taxi {
		t.Fatalf("selected = %q, want taxi", got)
	}
	if !m.State().OverlayOpen {
		t.Fatalf("overlay must stay open until the delay elapses")
	}

	m, _ = update(t, m, cmd())
	if m.State().OverlayOpen {
		t.Fatalf("overlay should close after the delay")
	}
	if m.State().Selected != catalog.Taxi {
		t.Fatalf("selection should survive the close")
	}
}

func TestStaleCloseDoesNotAffectLaterSession(t *testing.T) {
	m, _ := newTestModel(t)
	m.OpenOverlay()
	cmd := m.ChooseTransport(catalog.Bus)
	m.CloseOverlay()
	m.OpenOverlay()

	m, _ = update(t, m, cmd())
	if !m.State().OverlayOpen {
		t.Fatalf("timer from an earlier session closed the reopened sheet")
	}
}

func TestSecondChoiceRestartsDelay(t *testing.T) {
	m, _ := newTestModel(t)
	m.OpenOverlay()
	first := m.ChooseTransport(catalog.Taxi)
	second := m.ChooseTransport(catalog.Carpool)

	m, _ = update(t, m, first())
	if !m.State().OverlayOpen {
		t.Fatalf("superseded timer should not close the sheet")
	}
	m, _ = update(t, m, second())
	if m.State().OverlayOpen {
		t.Fatalf("latest timer should close the sheet")
	}
	if m.State().Selected != catalog.Carpool {
		t.Fatalf("selected = %q, want carpool", m.State().Selected)
	}
}

func TestChooseUnknownTransportLeavesStateUnchanged(t *testing.T) {
	m, _ := newTestModel(t)
	m.OpenOverlay()
	if cmd := m.ChooseTransport(catalog.TransportID("rocket")); cmd != nil {
		t.Fatalf("expected no command for unknown transport")
	}
	if got := m.State(); got.Selected != "" || !got.OverlayOpen {
		t.Fatalf("state changed: %+v", got)
	}
	if !m.statusErr {
		t.Fatalf("expected error status")
	}
}

func TestScenarioOpenChooseTaxiThenClose(t *testing.T) {
	m, sheet := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.State().OverlayOpen {
		t.Fatalf("enter on the map should open the sheet")
	}
	if len(m.Catalog().Transports()) != 4 {
		t.Fatalf("sheet should offer 4 transport options")
	}

	m, cmd := update(t, m, TransportChosenMsg{ID: catalog.Taxi})
	if cmd == nil {
		t.Fatalf("expected deferred close")
	}
	if m.State().Selected != catalog.Taxi {
		t.Fatalf("selected = %q, want taxi", m.State().Selected)
	}
	if len(sheet.chosen) != 1 || sheet.chosen[0] != catalog.Taxi {
		t.Fatalf("sheet should be told about the choice, got %v", sheet.chosen)
	}

	due := m.ChooseTransport(catalog.Taxi)
	m, _ = update(t, m, due())
	if m.State().OverlayOpen {
		t.Fatalf("sheet should be closed after the delay")
	}
}

func TestKeysReachOpenSheetFirst(t *testing.T) {
	m, sheet := newTestModel(t)
	m.OpenOverlay()
	m, _ = update(t, m, runes("2"))
	if m.State().View != ViewMap {
		t.Fatalf("view keys must not leak past the sheet")
	}
	if len(sheet.keys) != 1 || sheet.keys[0] != "2" {
		t.Fatalf("sheet keys = %v", sheet.keys)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().OverlayOpen {
		t.Fatalf("esc from the sheet should close it")
	}
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runes("3"))
	if m.State().View != ViewSubscription {
		t.Fatalf("view = %s, want subscription", m.State().View)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State().View != ViewProfile {
		t.Fatalf("tab should move to profile, got %s", m.State().View)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State().View != ViewMap {
		t.Fatalf("tab should wrap to map, got %s", m.State().View)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State().View != ViewProfile {
		t.Fatalf("shift+tab should wrap to profile, got %s", m.State().View)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().OverlayOpen {
		t.Fatalf("enter opens the sheet only on the map")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "До встречи") {
		t.Fatalf("expected goodbye view")
	}
}

func TestViewDrawsSheetOverPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m.OpenOverlay()
	out := m.View()
	if !strings.Contains(out, "SHEET") || !strings.Contains(out, "PANEL:map") {
		t.Fatalf("expected panel and sheet in view")
	}
	if got := len(strings.Split(out, "\n")); got != 20 {
		t.Fatalf("view height = %d, want 20", got)
	}
	if !strings.Contains(out, "Karta-AD") || !strings.Contains(out, "Душанбе") {
		t.Fatalf("expected header with app name and city")
	}
	for _, title := range []string{"Карта", "Поездки", "Подписка", "Профиль"} {
		if !strings.Contains(out, title) {
			t.Fatalf("bottom navigation missing %q", title)
		}
	}
}

func TestMouseWithoutZonesIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil || m.State() != (State{View: ViewMap}) {
		t.Fatalf("mouse input without zones should be a no-op")
	}
}

func TestStatusAndErrorCommands(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, ErrorCmd(errors.New("boom"))())
	if !m.statusErr || m.status != "boom" {
		t.Fatalf("expected error status, got %q", m.status)
	}
	m, _ = update(t, m, StatusCmd("ok")())
	if m.statusErr || m.status != "ok" {
		t.Fatalf("expected plain status, got %q", m.status)
	}
}

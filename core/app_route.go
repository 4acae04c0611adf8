package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case SelectViewMsg:
		if !m.SelectView(msg.View) {
			m.SetError(fmt.Errorf("unknown view %q", msg.View))
		}
		return m, nil
	case OpenOverlayMsg:
		m.OpenOverlay()
		return m, nil
	case CloseOverlayMsg:
		m.CloseOverlay()
		return m, nil
	case TransportChosenMsg:
		closeCmd := m.ChooseTransport(msg.ID)
		if closeCmd == nil {
			return m, nil
		}
		return m, tea.Batch(closeCmd, m.updateScreen(msg))
	case sheetCloseDueMsg:
		m.closeSheetIfCurrent(msg)
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.updateScreen(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.screens.Top() != nil {
		return m.updateScreen(msg)
	}

	scope := m.ActiveScope()
	if m.keys.IsAction(msg, "quit", scope) {
		m.quitting = true
		return tea.Quit
	}
	for _, v := range Views() {
		if m.keys.IsAction(msg, ViewAction(v), scope) {
			m.SelectView(v)
			return nil
		}
	}
	switch {
	case m.keys.IsAction(msg, "view-next", scope):
		m.cycleView(1)
	case m.keys.IsAction(msg, "view-prev", scope):
		m.cycleView(-1)
	case m.keys.IsAction(msg, "open-sheet", scope):
		m.OpenOverlay()
	}
	return nil
}

// updateScreen hands msg to the open screen, if any. A screen that asks to be
// popped closes the overlay through CloseOverlay.
func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	if top == nil {
		return nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		m.CloseOverlay()
		return cmd
	}
	m.screens.Replace(next)
	return cmd
}

package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/karta/internal/catalog"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// SelectViewMsg asks the shell to show another panel.
type SelectViewMsg struct {
	View View
}

type OpenOverlayMsg struct{}

type CloseOverlayMsg struct{}

// TransportChosenMsg is emitted by the sheet when an option is picked. The
// shell records the choice and forwards the message to the open screen so it
// can acknowledge it before closing.
type TransportChosenMsg struct {
	ID catalog.TransportID
}

// sheetCloseDueMsg fires after the close delay. token ties it to the sheet
// session that scheduled it.
type sheetCloseDueMsg struct {
	token uint64
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func SelectViewCmd(v View) tea.Cmd {
	return func() tea.Msg { return SelectViewMsg{View: v} }
}

func OpenOverlayCmd() tea.Cmd {
	return func() tea.Msg { return OpenOverlayMsg{} }
}

func CloseOverlayCmd() tea.Cmd {
	return func() tea.Msg { return CloseOverlayMsg{} }
}

func ChooseTransportCmd(id catalog.TransportID) tea.Cmd {
	return func() tea.Msg { return TransportChosenMsg{ID: id} }
}

// Package confirm provides a yes/no confirmation dialog component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgirard/etch/internal/ui"
	"github.com/mgirard/etch/internal/ui/popup"
)

// Model is a yes/no confirmation dialog. It stays inactive until Show is
// called; while active the host routes key messages to Update and overlays
// View on its own output.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates an inactive confirmation dialog.
func New() Model {
	return Model{}
}

// Show activates the dialog. context is handed back in the Result.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset deactivates and clears the dialog.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the dialog is currently shown.
func (m *Model) Active() bool {
	return m.active
}

// Update handles key input while the dialog is active. Both outcomes
// deactivate the dialog and emit a Result action.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "enter", "y", "Y":
		return m.resolve(true)
	case "esc", "n", "N":
		return m.resolve(false)
	}
	return nil
}

func (m *Model) resolve(confirmed bool) tea.Cmd {
	ctx := m.context
	m.Reset()
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View renders the dialog centered for overlay composition. Empty when
// inactive or unsized.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	d := popup.New()
	d.Title = m.title
	d.Content = m.message
	d.Footer = "[Y/Enter] Yes   [N/Esc] No"
	return d.Render(m.Width(), m.Height())
}

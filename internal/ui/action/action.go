// Package action defines the notification messages UI components emit to their host.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a typed notification from a UI component. ActionType returns
// a stable identifier used for routing and debugging.
type Action interface {
	ActionType() string
}

// Msg carries an action together with the name of the component that
// produced it, so the host model can route it.
type Msg struct {
	Source string // component name, e.g. "confirm"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

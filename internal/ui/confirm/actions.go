package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgirard/etch/internal/ui/action"
)

// Result reports the user's choice.
type Result struct {
	Confirmed bool
	Context   any // value passed to Show
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps an action with the confirm source identifier.
func ActionMsg(a action.Action) tea.Msg {
	return action.Msg{Source: "confirm", Action: a}
}

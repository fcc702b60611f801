package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // copper accent, banner gradient start
	Secondary lipgloss.Color // blue accent, banner gradient end

	FgBase   lipgloss.Color
	FgSubtle lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common text roles.
type Styles struct {
	Title  lipgloss.Style
	Subtle lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#e0af68"),
	Secondary: lipgloss.Color("#7aa2f7"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgSubtle: lipgloss.Color("#585858"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = &Styles{
			Title:  lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
			Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		}
	}
	return t.styles
}

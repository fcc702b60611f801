// Package popup renders centered dialog boxes for overlay composition.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgirard/etch/internal/ui/styles"
)

// Style configures the dialog appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default dialog style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("39"),
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a centered box with a title, body content, and a footer hint.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = fit the widest line
	Style   Style
}

// New creates a dialog with default style.
func New() *Dialog {
	return &Dialog{Style: DefaultStyle()}
}

// Render returns the dialog centered within the terminal dimensions,
// ready to be overlaid on a base view.
func (p *Dialog) Render(termWidth, termHeight int) string {
	innerWidth := p.Width
	if innerWidth == 0 {
		innerWidth = maxLineWidth(p.Content)
		if w := lipgloss.Width(p.Title); w > innerWidth {
			innerWidth = w
		}
		if w := lipgloss.Width(p.Footer); w > innerWidth {
			innerWidth = w
		}
		innerWidth += 2
	}
	if maxWidth := termWidth - 4; innerWidth > maxWidth {
		innerWidth = maxWidth
	}

	lines := make([]string, 0, strings.Count(p.Content, "\n")+5)

	if p.Title != "" {
		lines = append(lines, centerLine(p.Style.TitleStyle.Render(p.Title), innerWidth), "")
	}

	for line := range strings.SplitSeq(p.Content, "\n") {
		if lipgloss.Width(line) > innerWidth {
			line = line[:innerWidth-3] + "..."
		}
		lines = append(lines, padLine(line, innerWidth))
	}

	if p.Footer != "" {
		lines = append(lines, "", centerLine(p.Style.FooterStyle.Render(p.Footer), innerWidth))
	}

	box := lipgloss.NewStyle().
		Border(p.Style.Border).
		BorderForeground(p.Style.BorderColor).
		Padding(0, 1).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))

	return centerBox(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func centerBox(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

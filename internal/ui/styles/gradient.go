package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders text in bold with a horizontal color blend
// from one color to the other.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	// Grapheme clusters, not runes, so combining marks stay with their base
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	style := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}

	start := parseColor(from)
	if len(clusters) == 1 {
		return style(start.Hex()).Render(text)
	}
	end := parseColor(to)

	// Blend in HCL space for perceptually even steps
	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		hex := start.BlendHcl(end, t).Clamped().Hex()
		b.WriteString(style(hex).Render(cluster))
	}
	return b.String()
}

// parseColor converts a hex lipgloss color; ANSI palette values fall back
// to a neutral gray.
func parseColor(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}

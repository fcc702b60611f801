// Package overlay composes a dialog on top of a rendered base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose lays overlay on top of base. Lines of the overlay that are
// visually empty leave the base untouched; elsewhere the overlay's visible
// span replaces the base columns underneath it. Both inputs may carry ANSI
// styling.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, line := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := leadingSpaces(plain)
		endCol := startCol + ansi.StringWidth(strings.TrimRight(plain, " ")[startCol:])

		// Keep ANSI codes intact while cutting out the visible span
		content := ansi.Cut(line, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

func leadingSpaces(s string) int {
	for i, r := range s {
		if r != ' ' {
			return i
		}
	}
	return len(s)
}

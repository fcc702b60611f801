// Package render provides text shaping helpers for fixed-width layouts.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters and invalid UTF-8 so tag values
// cannot break the table layout. Tabs are kept, non-breaking spaces
// become regular spaces.
func Sanitize(s string) string {
	if plainASCII(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		switch {
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
			// drop
		default:
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x7f || (b < 0x20 && b != '\t') {
			return false
		}
	}
	return true
}

// Truncate sanitizes s and cuts it to maxWidth display cells, appending
// "..." when something was removed.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad right-pads s with spaces to the given display width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad fits s to exactly width display cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Separator returns a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

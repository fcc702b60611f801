// Package ui provides shared building blocks for terminal components.
package ui

// Base holds the size bookkeeping common to UI components. Embed it in
// component models to get the standard accessors.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

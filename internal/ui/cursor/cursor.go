// Package cursor tracks position and scroll offset for scrollable lists.
package cursor

// Cursor keeps a position and a scroll offset for a list rendered in a
// fixed-height viewport. List length and viewport height are passed to
// methods rather than stored since both change with terminal size.
type Cursor struct {
	pos    int // current position (0-indexed)
	offset int // first visible item index
	margin int // rows to keep visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the cursor by delta within a list of listLen items shown in
// a viewport of the given height, clamping to bounds and scrolling as
// needed. A zero-length list is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible adjusts the scroll offset so the cursor stays in view.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the visible index range [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves the cursor back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

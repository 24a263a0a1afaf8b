// Package viewport maps document coordinates onto the bounded terminal
// grid: it tracks the scroll offsets, follows the cursor, and clips
// each visible line to the window.
package viewport

import "github.com/furkanonder/pico/internal/engine/cursor"

// Viewport is the rectangle of the document currently on screen,
// defined by the first visible row and column. Offsets move only
// through Adjust; everything else is derived.
type Viewport struct {
	topRow  int
	leftCol int

	// Text area size in cells.
	rows int
	cols int

	// Columns reserved at the right edge before horizontal scrolling
	// kicks in.
	margin int
}

// New creates a viewport for a text area of rows by cols cells with the
// given horizontal scroll margin. Dimensions are clamped to a minimum
// of 1.
func New(rows, cols, margin int) *Viewport {
	v := &Viewport{margin: margin}
	v.Resize(rows, cols)
	return v
}

// Resize updates the text area size. Offsets are left alone; the next
// Adjust pulls the cursor back into view.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v.rows = rows
	v.cols = cols
}

// Rows returns the text area height.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the text area width.
func (v *Viewport) Cols() int { return v.cols }

// TopRow returns the first visible document row.
func (v *Viewport) TopRow() int { return v.topRow }

// LeftCol returns the first visible document column.
func (v *Viewport) LeftCol() int { return v.leftCol }

// usableCols is the horizontal span before the cursor forces a scroll:
// the window width minus the reserved margin, at least 1.
func (v *Viewport) usableCols() int {
	u := v.cols - v.margin
	if u < 1 {
		u = 1
	}
	return u
}

// Adjust scrolls the minimum amount needed to keep c visible. Vertical:
// the cursor row ends up inside [topRow, topRow+rows). Horizontal: the
// symmetric rule against the usable width, with the left edge floored
// at column 0.
func (v *Viewport) Adjust(c cursor.Cursor) {
	if c.Row < v.topRow {
		v.topRow = c.Row
	} else if c.Row >= v.topRow+v.rows {
		v.topRow = c.Row - v.rows + 1
	}

	if c.Col < v.leftCol {
		v.leftCol = c.Col
	} else if c.Col > v.leftCol+v.usableCols() {
		v.leftCol = c.Col - v.usableCols()
	}
	// With a zero margin the rule above tolerates a cursor exactly one
	// cell past the right edge; keep it on the grid.
	if c.Col >= v.leftCol+v.cols {
		v.leftCol = c.Col - v.cols + 1
	}
	if v.leftCol < 0 {
		v.leftCol = 0
	}
}

// VisibleSlice clips one document line to the window: the bytes in
// [leftCol, leftCol+cols), bounded by the line's actual length. Short
// lines yield short (possibly empty) slices; padding is the renderer's
// business.
func (v *Viewport) VisibleSlice(line []byte) []byte {
	start := v.leftCol
	if start > len(line) {
		start = len(line)
	}
	end := start + v.cols
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

// ScreenPosition converts the cursor to screen coordinates relative to
// the viewport origin.
func (v *Viewport) ScreenPosition(c cursor.Cursor) (row, col int) {
	return c.Row - v.topRow, c.Col - v.leftCol
}

// Contains reports whether c lies inside the visible window.
func (v *Viewport) Contains(c cursor.Cursor) bool {
	return c.Row >= v.topRow && c.Row < v.topRow+v.rows &&
		c.Col >= v.leftCol && c.Col < v.leftCol+v.cols
}

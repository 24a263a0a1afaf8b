// Package cursor provides the edit position in document coordinates and
// the movement rules that keep it valid.
package cursor

import "fmt"

// Document is the view of line storage the cursor needs for movement
// and clamping.
type Document interface {
	// Count returns the number of lines.
	Count() int
	// LineLen returns the byte length of the 0-based row.
	LineLen(row int) int
}

// Cursor is a position in document coordinates: Row is a 0-based line
// index, Col a 0-based byte offset into that line. Cursor is an
// immutable value type; movement returns a new cursor.
type Cursor struct {
	Row int
	Col int
}

// New returns a cursor at the given position.
func New(row, col int) Cursor {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return Cursor{Row: row, Col: col}
}

// Up moves one row up. At the first row it is a no-op. The column is
// left as is; Clamp pulls it in when the new line is shorter.
func (c Cursor) Up() Cursor {
	if c.Row > 0 {
		c.Row--
	}
	return c
}

// Down moves one row down, only when a next line exists.
func (c Cursor) Down(doc Document) Cursor {
	if c.Row < doc.Count()-1 {
		c.Row++
	}
	return c
}

// Left moves one column left. At column 0 it wraps to the end of the
// previous line; at (0, 0) it is a no-op.
func (c Cursor) Left(doc Document) Cursor {
	switch {
	case c.Col > 0:
		c.Col--
	case c.Row > 0:
		c.Row--
		c.Col = doc.LineLen(c.Row)
	}
	return c
}

// Right moves one column right. At the end of a line it wraps to the
// start of the next line; at the end of the last line it is a no-op.
func (c Cursor) Right(doc Document) Cursor {
	switch {
	case c.Col < doc.LineLen(c.Row):
		c.Col++
	case c.Row < doc.Count()-1:
		c.Row++
		c.Col = 0
	}
	return c
}

// Clamp pulls the cursor back inside the document: Row into
// [0, Count) and Col into [0, LineLen(Row)]. It guards against stale
// positions after a mutation shrank the document.
func (c Cursor) Clamp(doc Document) Cursor {
	if max := doc.Count() - 1; c.Row > max {
		c.Row = max
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if max := doc.LineLen(c.Row); c.Col > max {
		c.Col = max
	}
	if c.Col < 0 {
		c.Col = 0
	}
	return c
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d, %d)", c.Row, c.Col)
}

// Package statusline formats the single-row summary shown at the bottom
// of the screen.
package statusline

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StatusLine holds the values displayed in the status row. Positions
// are stored 0-based and rendered 1-based.
type StatusLine struct {
	row, col   int
	cols, rows int
	filename   string
}

// New creates an empty status line.
func New() *StatusLine {
	return &StatusLine{}
}

// SetPosition updates the cursor position (0-based document
// coordinates).
func (s *StatusLine) SetPosition(row, col int) {
	s.row = row
	s.col = col
}

// SetTerminalSize updates the displayed terminal dimensions.
func (s *StatusLine) SetTerminalSize(cols, rows int) {
	s.cols = cols
	s.rows = rows
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(name string) {
	s.filename = name
}

// Text renders the status row padded to exactly width display cells.
// Content wider than the row is truncated.
func (s *StatusLine) Text(width int) string {
	var b strings.Builder
	if s.filename != "" {
		fmt.Fprintf(&b, "%s | ", s.filename)
	}
	fmt.Fprintf(&b, "Line: %d Col: %d [%dx%d]", s.row+1, s.col+1, s.cols, s.rows)

	text := runewidth.Truncate(b.String(), width, "")
	return runewidth.FillRight(text, width)
}

// Package backend provides the terminal abstraction the renderer draws
// through: a tcell implementation for real terminals and an in-memory
// implementation for tests.
package backend

import "time"

// Style selects how a cell is drawn. The editor uses plain text plus
// reverse video for the status line.
type Style uint8

const (
	StyleDefault Style = iota
	StyleReverse
)

// EventType identifies the type of terminal event.
type EventType int

const (
	// EventNone is returned when polling times out with no input.
	EventNone EventType = iota
	// EventKey is a decoded key press.
	EventKey
	// EventResize reports new terminal dimensions.
	EventResize
)

// Key identifies a special key. Printable input arrives as KeyRune with
// the character in the Rune field.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlQ
	KeyCtrlS
)

// Event is a decoded terminal event.
type Event struct {
	Type EventType

	// Key event fields.
	Key  Key
	Rune rune

	// Resize event fields.
	Width, Height int
}

// Backend is the terminal surface the renderer draws to and the source
// of decoded input events.
type Backend interface {
	// Init prepares the terminal (raw mode, alternate screen).
	Init() error

	// Fini restores the terminal to its original state.
	Fini()

	// Size returns the terminal dimensions as (cols, rows).
	Size() (width, height int)

	// SetCell draws r at screen position (x, y).
	SetCell(x, y int, r rune, style Style)

	// Clear erases the pending frame.
	Clear()

	// Show makes the pending frame visible.
	Show()

	// ShowCursor places the terminal cursor at (x, y).
	ShowCursor(x, y int)

	// PollEvent returns the next event, or an EventNone event if none
	// arrives within timeout. The short timeout keeps the loop
	// responsive to resize notifications.
	PollEvent(timeout time.Duration) Event
}

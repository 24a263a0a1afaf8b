// Package key defines the editor's input vocabulary and the translation
// from raw terminal events into it. Only printable bytes and the two
// structural keys (Enter, Backspace) ever reach the buffer; everything
// the editor has no binding for translates to None.
package key

import "github.com/furkanonder/pico/internal/renderer/backend"

// Kind identifies a decoded editor event.
type Kind int

const (
	// None is an event the editor ignores.
	None Kind = iota
	// Printable carries one printable byte in Ch.
	Printable
	// Enter inserts a line break at the cursor.
	Enter
	// Backspace deletes backward from the cursor.
	Backspace
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	// Quit ends the session.
	Quit
	// Save writes the document out.
	Save
	// Resize carries new terminal dimensions in Cols and Rows.
	Resize
)

// Event is one decoded editor input event.
type Event struct {
	Kind Kind

	// Ch is the character for Printable events.
	Ch byte

	// Cols and Rows are the terminal dimensions for Resize events.
	Cols, Rows int
}

// Translate maps a backend event to an editor event.
func Translate(ev backend.Event) Event {
	switch ev.Type {
	case backend.EventResize:
		return Event{Kind: Resize, Cols: ev.Width, Rows: ev.Height}
	case backend.EventKey:
		return translateKey(ev)
	default:
		return Event{Kind: None}
	}
}

func translateKey(ev backend.Event) Event {
	switch ev.Key {
	case backend.KeyRune:
		if printable(ev.Rune) {
			return Event{Kind: Printable, Ch: byte(ev.Rune)}
		}
		return Event{Kind: None}
	case backend.KeyEnter:
		return Event{Kind: Enter}
	case backend.KeyBackspace:
		return Event{Kind: Backspace}
	case backend.KeyUp:
		return Event{Kind: MoveUp}
	case backend.KeyDown:
		return Event{Kind: MoveDown}
	case backend.KeyLeft:
		return Event{Kind: MoveLeft}
	case backend.KeyRight:
		return Event{Kind: MoveRight}
	case backend.KeyCtrlQ:
		return Event{Kind: Quit}
	case backend.KeyCtrlS:
		return Event{Kind: Save}
	default:
		return Event{Kind: None}
	}
}

// printable reports whether r is a single-byte printable character.
// The buffer addresses raw bytes, so anything outside the printable
// ASCII range is rejected.
func printable(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

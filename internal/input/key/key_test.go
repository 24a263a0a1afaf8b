package key

import (
	"testing"

	"github.com/furkanonder/pico/internal/renderer/backend"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		in   backend.Event
		want Kind
	}{
		{"enter", backend.Event{Type: backend.EventKey, Key: backend.KeyEnter}, Enter},
		{"backspace", backend.Event{Type: backend.EventKey, Key: backend.KeyBackspace}, Backspace},
		{"up", backend.Event{Type: backend.EventKey, Key: backend.KeyUp}, MoveUp},
		{"down", backend.Event{Type: backend.EventKey, Key: backend.KeyDown}, MoveDown},
		{"left", backend.Event{Type: backend.EventKey, Key: backend.KeyLeft}, MoveLeft},
		{"right", backend.Event{Type: backend.EventKey, Key: backend.KeyRight}, MoveRight},
		{"quit", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlQ}, Quit},
		{"save", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlS}, Save},
		{"unbound key", backend.Event{Type: backend.EventKey, Key: backend.KeyNone}, None},
		{"idle poll", backend.Event{Type: backend.EventNone}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.in); got.Kind != tt.want {
				t.Errorf("Translate(%+v).Kind = %v, want %v", tt.in, got.Kind, tt.want)
			}
		})
	}
}

func TestTranslatePrintable(t *testing.T) {
	ev := Translate(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'})
	if ev.Kind != Printable || ev.Ch != 'x' {
		t.Errorf("unexpected event %+v", ev)
	}

	// Space and tilde bound the printable range.
	for _, r := range []rune{' ', '~'} {
		ev := Translate(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r})
		if ev.Kind != Printable {
			t.Errorf("rune %q should be printable", r)
		}
	}
}

func TestTranslateRejectsNonPrintable(t *testing.T) {
	for _, r := range []rune{0x00, 0x1f, 0x7f, 'é', '界'} {
		ev := Translate(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r})
		if ev.Kind != None {
			t.Errorf("rune %#x should be rejected, got kind %v", r, ev.Kind)
		}
	}
}

func TestTranslateResize(t *testing.T) {
	ev := Translate(backend.Event{Type: backend.EventResize, Width: 132, Height: 50})
	if ev.Kind != Resize || ev.Cols != 132 || ev.Rows != 50 {
		t.Errorf("unexpected event %+v", ev)
	}
}

package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell for terminal output. tcell
// owns raw mode, escape sequence decoding, and SIGWINCH handling;
// resizes surface here as EventResize.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// NewTerminal creates a terminal backend for the attached terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.events = make(chan tcell.Event, 16)
	t.quit = make(chan struct{})
	go t.screen.ChannelEvents(t.events, t.quit)
	return nil
}

func (t *Terminal) Fini() {
	if t.quit != nil {
		close(t.quit)
		t.quit = nil
	}
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) PollEvent(timeout time.Duration) Event {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return Event{Type: EventNone}
		}
		return convertEvent(ev)
	case <-timer.C:
		return Event{Type: EventNone}
	}
}

// convertStyle converts a Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	if s == StyleReverse {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault
}

// convertEvent converts tcell events to backend events. Events the
// editor has no use for come back as EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key to a backend Key.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlQ:
		return KeyCtrlQ
	case tcell.KeyCtrlS:
		return KeyCtrlS
	default:
		return KeyNone
	}
}

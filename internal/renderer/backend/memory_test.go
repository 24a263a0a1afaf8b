package backend

import (
	"testing"
	"time"
)

func TestMemoryShowSnapshotsPendingFrame(t *testing.T) {
	m := NewMemory(10, 2)

	m.SetCell(0, 0, 'h', StyleDefault)
	m.SetCell(1, 0, 'i', StyleDefault)
	if got := m.Row(0); got != "" {
		t.Errorf("pending cells should not be visible before Show, got %q", got)
	}

	m.Show()
	if got := m.Row(0); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
}

func TestMemoryClearDropsPendingFrame(t *testing.T) {
	m := NewMemory(4, 1)
	m.SetCell(0, 0, 'x', StyleDefault)
	m.Clear()
	m.Show()

	if got := m.Row(0); got != "" {
		t.Errorf("expected cleared row, got %q", got)
	}
}

func TestMemorySetCellIgnoresOutOfBounds(t *testing.T) {
	m := NewMemory(2, 2)
	m.SetCell(-1, 0, 'x', StyleDefault)
	m.SetCell(0, 5, 'x', StyleDefault)
	m.SetCell(5, 0, 'x', StyleDefault)
	m.Show()

	for y := 0; y < 2; y++ {
		if got := m.Row(y); got != "" {
			t.Errorf("row %d should be blank, got %q", y, got)
		}
	}
}

func TestMemoryPollEvent(t *testing.T) {
	m := NewMemory(2, 2)

	if ev := m.PollEvent(time.Millisecond); ev.Type != EventNone {
		t.Errorf("empty queue should return EventNone, got %v", ev.Type)
	}

	m.Queue(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	ev := m.PollEvent(time.Millisecond)
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestMemoryPollEventWaitsOutTimeout(t *testing.T) {
	m := NewMemory(2, 2)

	start := time.Now()
	m.PollEvent(20 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("empty queue should block for the timeout, returned after %v", elapsed)
	}

	m.Queue(Event{Type: EventKey, Key: KeyEnter})
	start = time.Now()
	m.PollEvent(time.Second)
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("queued events should be delivered without waiting, took %v", elapsed)
	}
}

func TestMemoryResizeQueuesEvent(t *testing.T) {
	m := NewMemory(4, 2)
	m.Resize(8, 3)

	ev := m.PollEvent(time.Millisecond)
	if ev.Type != EventResize || ev.Width != 8 || ev.Height != 3 {
		t.Errorf("unexpected event %+v", ev)
	}
	if w, h := m.Size(); w != 8 || h != 3 {
		t.Errorf("expected size (8, 3), got (%d, %d)", w, h)
	}
}

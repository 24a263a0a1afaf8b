package backend

import (
	"strings"
	"time"
)

// cell is one screen position in the memory backend.
type cell struct {
	r     rune
	style Style
}

// Memory implements Backend against an in-memory cell grid. It exists
// for tests: queued events are returned from PollEvent in order, and
// the shown frame can be read back row by row.
type Memory struct {
	width, height    int
	pending, shown   [][]cell
	cursorX, cursorY int
	queue            []Event
	initialized      bool
	finished         bool
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{width: width, height: height}
	m.pending = newGrid(width, height)
	m.shown = newGrid(width, height)
	return m
}

func newGrid(width, height int) [][]cell {
	g := make([][]cell, height)
	for y := range g {
		g[y] = make([]cell, width)
		for x := range g[y] {
			g[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (m *Memory) Init() error {
	m.initialized = true
	return nil
}

func (m *Memory) Fini() {
	m.finished = true
}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) SetCell(x, y int, r rune, style Style) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pending[y][x] = cell{r: r, style: style}
}

func (m *Memory) Clear() {
	m.pending = newGrid(m.width, m.height)
}

func (m *Memory) Show() {
	for y := range m.pending {
		copy(m.shown[y], m.pending[y])
	}
}

func (m *Memory) ShowCursor(x, y int) {
	m.cursorX, m.cursorY = x, y
}

func (m *Memory) PollEvent(timeout time.Duration) Event {
	if len(m.queue) == 0 {
		// A real terminal blocks here; waiting out the timeout keeps a
		// caller polling a drained queue from spinning.
		time.Sleep(timeout)
		return Event{Type: EventNone}
	}
	ev := m.queue[0]
	m.queue = m.queue[1:]
	return ev
}

// Queue appends events for PollEvent to hand out.
func (m *Memory) Queue(events ...Event) {
	m.queue = append(m.queue, events...)
}

// Resize changes the grid dimensions and queues the resize event, the
// way a real terminal delivers one.
func (m *Memory) Resize(width, height int) {
	m.width, m.height = width, height
	m.pending = newGrid(width, height)
	m.shown = newGrid(width, height)
	m.Queue(Event{Type: EventResize, Width: width, Height: height})
}

// Row returns the shown frame's row y with trailing spaces trimmed.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		b.WriteRune(m.shown[y][x].r)
	}
	return strings.TrimRight(b.String(), " ")
}

// RowStyle returns the style of cell (x, y) in the shown frame.
func (m *Memory) RowStyle(x, y int) Style {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return StyleDefault
	}
	return m.shown[y][x].style
}

// Cursor returns the last cursor placement.
func (m *Memory) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// Initialized reports whether Init has been called.
func (m *Memory) Initialized() bool { return m.initialized }

// Finished reports whether Fini has been called.
func (m *Memory) Finished() bool { return m.finished }

package renderer

import (
	"strings"
	"testing"

	"github.com/furkanonder/pico/internal/engine/cursor"
	"github.com/furkanonder/pico/internal/engine/document"
	"github.com/furkanonder/pico/internal/renderer/backend"
	"github.com/furkanonder/pico/internal/renderer/statusline"
	"github.com/furkanonder/pico/internal/renderer/viewport"
)

func newFixture(content string, rows, cols int) (*Renderer, *backend.Memory, *document.Document, *viewport.Viewport, *statusline.StatusLine) {
	m := backend.NewMemory(cols, rows+1) // one extra row for the status line
	doc := document.FromString(content)
	vp := viewport.New(rows, cols, 10)
	status := statusline.New()
	status.SetTerminalSize(cols, rows)
	return New(m), m, doc, vp, status
}

func TestDrawVisibleLines(t *testing.T) {
	r, m, doc, vp, status := newFixture("abc\ndef", 4, 20)

	r.Draw(doc, cursor.New(0, 0), vp, status)

	if got := m.Row(0); got != "abc" {
		t.Errorf("row 0 = %q, want %q", got, "abc")
	}
	if got := m.Row(1); got != "def" {
		t.Errorf("row 1 = %q, want %q", got, "def")
	}
}

func TestDrawTildesPastDocumentEnd(t *testing.T) {
	r, m, doc, vp, status := newFixture("only", 4, 20)

	r.Draw(doc, cursor.New(0, 0), vp, status)

	for y := 1; y < 4; y++ {
		if got := m.Row(y); got != "~" {
			t.Errorf("row %d = %q, want %q", y, got, "~")
		}
	}
}

func TestDrawStatusRowReverse(t *testing.T) {
	r, m, doc, vp, status := newFixture("x", 4, 40)
	status.SetPosition(0, 0)

	r.Draw(doc, cursor.New(0, 0), vp, status)

	if got := m.Row(4); !strings.HasPrefix(got, "Line: 1 Col: 1 [40x4]") {
		t.Errorf("status row = %q", got)
	}
	if m.RowStyle(0, 4) != backend.StyleReverse {
		t.Error("status row should be drawn in reverse video")
	}
	if m.RowStyle(39, 4) != backend.StyleReverse {
		t.Error("status padding should be drawn in reverse video")
	}
}

func TestDrawCursorPlacement(t *testing.T) {
	r, m, doc, vp, status := newFixture("hello\nworld", 4, 20)
	c := cursor.New(1, 3)
	vp.Adjust(c)

	r.Draw(doc, c, vp, status)

	x, y := m.Cursor()
	if x != 3 || y != 1 {
		t.Errorf("cursor at (%d, %d), want (3, 1)", x, y)
	}
}

func TestDrawScrolledViewport(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = strings.Repeat("ab", i+1)
	}
	r, m, doc, vp, status := newFixture(strings.Join(lines, "\n"), 5, 20)

	c := cursor.New(12, 0)
	vp.Adjust(c)
	r.Draw(doc, c, vp, status)

	// Top row of the screen is document row 8 (12 - 5 + 1).
	if got := m.Row(0); got != lines[8] {
		t.Errorf("row 0 = %q, want %q", got, lines[8])
	}
	x, y := m.Cursor()
	if x != 0 || y != 4 {
		t.Errorf("cursor at (%d, %d), want (0, 4)", x, y)
	}
}

func TestDrawHorizontalClip(t *testing.T) {
	long := strings.Repeat("0123456789", 10)
	r, m, doc, vp, status := newFixture(long, 4, 20)

	c := cursor.New(0, 50)
	vp.Adjust(c)
	r.Draw(doc, c, vp, status)

	want := long[vp.LeftCol() : vp.LeftCol()+20]
	if got := m.Row(0); got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
}

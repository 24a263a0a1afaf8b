// Package renderer assembles frames: the visible document slice, tilde
// markers past the end of the document, the reverse-video status row,
// and the on-screen cursor. It holds no state of its own; every Draw
// builds a full frame from the pieces it is handed.
package renderer

import (
	"github.com/furkanonder/pico/internal/engine/cursor"
	"github.com/furkanonder/pico/internal/engine/document"
	"github.com/furkanonder/pico/internal/renderer/backend"
	"github.com/furkanonder/pico/internal/renderer/statusline"
	"github.com/furkanonder/pico/internal/renderer/viewport"
)

// Renderer draws editor state through a backend.
type Renderer struct {
	backend backend.Backend
}

// New creates a renderer drawing to b.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Draw renders one full frame: the document rows visible in vp, a '~'
// on each row past the last line, the status row beneath the text area,
// and the cursor at its screen position.
func (r *Renderer) Draw(doc *document.Document, c cursor.Cursor, vp *viewport.Viewport, status *statusline.StatusLine) {
	r.backend.Clear()

	h := doc.LineAt(vp.TopRow())
	for y := 0; y < vp.Rows(); y++ {
		if h == document.None {
			r.backend.SetCell(0, y, '~', backend.StyleDefault)
			continue
		}
		for x, b := range vp.VisibleSlice(doc.Text(h)) {
			r.backend.SetCell(x, y, rune(b), backend.StyleDefault)
		}
		h = doc.Next(h)
	}

	for x, ch := range status.Text(vp.Cols()) {
		r.backend.SetCell(x, vp.Rows(), ch, backend.StyleReverse)
	}

	row, col := vp.ScreenPosition(c)
	r.backend.ShowCursor(col, row)
	r.backend.Show()
}

package engine

import (
	"fmt"
	"io"

	"github.com/furkanonder/pico/internal/engine/cursor"
	"github.com/furkanonder/pico/internal/engine/document"
)

// Engine is the complete editor state: one document and one cursor.
// It is exclusively owned by the control loop; no method is safe for
// concurrent use. Each edit operation is atomic from the caller's
// perspective: it either fully completes or leaves the state untouched.
type Engine struct {
	doc *document.Document
	cur cursor.Cursor
}

// New returns an engine holding a single empty line.
func New() *Engine {
	return &Engine{doc: document.New()}
}

// NewFromReader returns an engine whose document is loaded from r.
func NewFromReader(r io.Reader) (*Engine, error) {
	doc, err := document.FromReader(r)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return &Engine{doc: doc}, nil
}

// NewFromString returns an engine whose document holds s.
func NewFromString(s string) *Engine {
	return &Engine{doc: document.FromString(s)}
}

// Document returns the engine's document.
func (e *Engine) Document() *document.Document {
	return e.doc
}

// Cursor returns the current cursor position.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cur
}

// SetCursor moves the cursor to c, clamped to the document shape.
func (e *Engine) SetCursor(c cursor.Cursor) {
	e.cur = c.Clamp(e.doc)
}

// currentLine resolves the cursor's line from its row. The cursor holds
// no line reference of its own; rows shift under structural edits.
func (e *Engine) currentLine() document.Handle {
	return e.doc.LineAt(e.cur.Row)
}

// Movement

// MoveUp moves the cursor one row up.
func (e *Engine) MoveUp() { e.cur = e.cur.Up().Clamp(e.doc) }

// MoveDown moves the cursor one row down.
func (e *Engine) MoveDown() { e.cur = e.cur.Down(e.doc).Clamp(e.doc) }

// MoveLeft moves the cursor one column left, wrapping at line starts.
func (e *Engine) MoveLeft() { e.cur = e.cur.Left(e.doc).Clamp(e.doc) }

// MoveRight moves the cursor one column right, wrapping at line ends.
func (e *Engine) MoveRight() { e.cur = e.cur.Right(e.doc).Clamp(e.doc) }

// Edit operations

// InsertChar writes c at the cursor, shifting the rest of the line one
// byte right, and advances the cursor column.
func (e *Engine) InsertChar(c byte) {
	e.doc.InsertByte(e.currentLine(), e.cur.Col, c)
	e.cur.Col++
}

// DeleteChar performs a backward delete. Mid-line it removes the byte
// before the cursor. At column 0 it merges the current line into its
// predecessor and places the cursor at the join point. At (0, 0) it is
// a no-op.
func (e *Engine) DeleteChar() {
	h := e.currentLine()
	switch {
	case e.cur.Col > 0:
		e.doc.DeleteByte(h, e.cur.Col-1)
		e.cur.Col--
	case e.cur.Row > 0:
		prev := e.doc.Prev(h)
		joinCol := e.doc.Len(prev)
		e.doc.Append(prev, e.doc.Text(h))
		e.doc.Remove(h)
		e.cur.Row--
		e.cur.Col = joinCol
	}
}

// InsertNewline splits the current line at the cursor. Bytes from the
// cursor onward move to a new line linked after the current one; at end
// of line the new line is empty. The cursor moves to the start of the
// new line.
func (e *Engine) InsertNewline() {
	h := e.currentLine()
	n := e.doc.Create()
	if e.cur.Col < e.doc.Len(h) {
		e.doc.Append(n, e.doc.Text(h)[e.cur.Col:])
		e.doc.Truncate(h, e.cur.Col)
	}
	e.doc.LinkAfter(h, n)
	e.cur.Row++
	e.cur.Col = 0
}

// WriteTo serializes the document to w.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	return e.doc.WriteTo(w)
}

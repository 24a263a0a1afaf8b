package document

// defaultCapacity is the starting allocation for a new line's content.
const defaultCapacity = 128

// Text returns line h's content. The slice is valid until the next
// mutation of the document and must not be modified by the caller.
func (d *Document) Text(h Handle) []byte {
	return d.slot(h).text
}

// Len returns the content length of line h in bytes.
func (d *Document) Len(h Handle) int {
	return len(d.slot(h).text)
}

// LineLen returns the content length of the 0-based row, or 0 if row is
// out of range.
func (d *Document) LineLen(row int) int {
	h := d.LineAt(row)
	if h == None {
		return 0
	}
	return len(d.slot(h).text)
}

// InsertByte writes c at byte offset col of line h, shifting the bytes
// at and after col one position right. col may equal the line length,
// in which case the byte is appended.
func (d *Document) InsertByte(h Handle, col int, c byte) {
	s := d.slot(h)
	if col < 0 || col > len(s.text) {
		panic("document: insert offset out of range")
	}
	d.grow(s, 1)
	s.text = s.text[:len(s.text)+1]
	copy(s.text[col+1:], s.text[col:])
	s.text[col] = c
}

// DeleteByte removes the byte at offset col of line h, shifting the
// bytes after it one position left.
func (d *Document) DeleteByte(h Handle, col int) {
	s := d.slot(h)
	if col < 0 || col >= len(s.text) {
		panic("document: delete offset out of range")
	}
	copy(s.text[col:], s.text[col+1:])
	s.text = s.text[:len(s.text)-1]
}

// Append copies b onto the end of line h, growing its capacity as
// needed.
func (d *Document) Append(h Handle, b []byte) {
	s := d.slot(h)
	d.grow(s, len(b))
	s.text = append(s.text, b...)
}

// Truncate shortens line h to n content bytes.
func (d *Document) Truncate(h Handle, n int) {
	s := d.slot(h)
	if n < 0 || n > len(s.text) {
		panic("document: truncate length out of range")
	}
	s.text = s.text[:n]
}

// grow guarantees room for needed more bytes in s. Capacity doubles
// past the required size so that repeated single-byte insertions stay
// O(1) amortized.
func (d *Document) grow(s *slot, needed int) {
	if len(s.text)+needed < cap(s.text) {
		return
	}
	t := make([]byte, len(s.text), (len(s.text)+needed)*2)
	copy(t, s.text)
	s.text = t
}

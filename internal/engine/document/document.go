package document

// Handle addresses a line slot in the document's arena. Handles are
// stable across edits to other lines; a handle is invalidated only when
// its line is removed.
type Handle int32

// None is the null handle. It marks the ends of the line sequence.
const None Handle = -1

// slot is one arena entry. Freed slots stay in the arena and are reused
// through the free list.
type slot struct {
	text []byte
	next Handle
	prev Handle
	used bool
}

// Document is an ordered sequence of lines backed by an arena of slots.
// The zero value is not usable; use New or FromString.
type Document struct {
	slots []slot
	free  []Handle
	head  Handle
}

// New returns a document containing a single empty line.
func New() *Document {
	d := &Document{head: None}
	d.head = d.Create()
	return d
}

// Head returns the handle of the first line.
func (d *Document) Head() Handle {
	return d.head
}

// Next returns the handle of the line after h, or None.
func (d *Document) Next(h Handle) Handle {
	return d.slot(h).next
}

// Prev returns the handle of the line before h, or None.
func (d *Document) Prev(h Handle) Handle {
	return d.slot(h).prev
}

// Create allocates a new empty line with the default starting capacity
// and returns its handle. The line is not linked into the sequence.
func (d *Document) Create() Handle {
	if n := len(d.free); n > 0 {
		h := d.free[n-1]
		d.free = d.free[:n-1]
		s := &d.slots[h]
		s.text = s.text[:0]
		s.next, s.prev = None, None
		s.used = true
		return h
	}
	d.slots = append(d.slots, slot{
		text: make([]byte, 0, defaultCapacity),
		next: None,
		prev: None,
		used: true,
	})
	return Handle(len(d.slots) - 1)
}

// LinkAfter splices line h immediately after anchor.
func (d *Document) LinkAfter(anchor, h Handle) {
	a := d.slot(anchor)
	s := d.slot(h)
	s.prev = anchor
	s.next = a.next
	if a.next != None {
		d.slot(a.next).prev = h
	}
	a.next = h
}

// Remove unlinks line h from the sequence and frees its slot, unless h
// is the sole remaining line, in which case the line is cleared in place
// and kept; a document never becomes empty. Remove returns the handle
// that should receive the cursor next: the predecessor if one exists,
// else the successor, else h itself. If h was the head, the head moves
// to the successor.
func (d *Document) Remove(h Handle) Handle {
	s := d.slot(h)

	var moveTo Handle
	switch {
	case s.prev != None:
		moveTo = s.prev
	case s.next != None:
		moveTo = s.next
	default:
		// Only line in the document: clear, keep.
		s.text = s.text[:0]
		return h
	}

	if s.prev != None {
		d.slot(s.prev).next = s.next
	}
	if s.next != None {
		d.slot(s.next).prev = s.prev
	}
	if d.head == h {
		d.head = s.next
	}

	s.used = false
	s.next, s.prev = None, None
	d.free = append(d.free, h)
	return moveTo
}

// Count returns the number of lines by walking the sequence.
func (d *Document) Count() int {
	n := 0
	for h := d.head; h != None; h = d.slot(h).next {
		n++
	}
	return n
}

// LineAt returns the handle of the 0-based row, or None if row is out of
// range.
func (d *Document) LineAt(row int) Handle {
	if row < 0 {
		return None
	}
	h := d.head
	for i := 0; i < row && h != None; i++ {
		h = d.slot(h).next
	}
	return h
}

// RowOf returns the 0-based row of line h.
func (d *Document) RowOf(h Handle) int {
	row := 0
	for cur := d.head; cur != None; cur = d.slot(cur).next {
		if cur == h {
			return row
		}
		row++
	}
	panic("document: handle not in sequence")
}

func (d *Document) slot(h Handle) *slot {
	if h < 0 || int(h) >= len(d.slots) || !d.slots[h].used {
		panic("document: invalid line handle")
	}
	return &d.slots[h]
}

package document

import (
	"bytes"
	"io"
	"strings"
)

// FromReader builds a document from r. Content is split on '\n'; a
// trailing '\n' yields a trailing empty line, so WriteTo reproduces the
// input byte for byte. Empty input yields a single empty line.
func FromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return fromBytes(data), nil
}

// FromString builds a document from s, with FromReader's splitting
// rules.
func FromString(s string) *Document {
	return fromBytes([]byte(s))
}

func fromBytes(data []byte) *Document {
	d := New()
	cur := d.head
	first := true
	for _, seg := range bytes.Split(data, []byte{'\n'}) {
		if first {
			first = false
		} else {
			next := d.Create()
			d.LinkAfter(cur, next)
			cur = next
		}
		d.Append(cur, seg)
	}
	return d
}

// WriteTo writes the document to w: each line's bytes followed by a
// '\n', except after the final line. A document of n lines produces
// exactly n-1 separator bytes.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for h := d.head; h != None; h = d.slot(h).next {
		n, err := w.Write(d.slot(h).text)
		written += int64(n)
		if err != nil {
			return written, err
		}
		if d.slot(h).next != None {
			n, err = w.Write([]byte{'\n'})
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// String returns the full document content.
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b) // strings.Builder writes cannot fail
	return b.String()
}

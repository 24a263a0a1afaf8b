package document

import (
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   int
	}{
		{"empty file", "", 1},
		{"single line no newline", "hello", 1},
		{"single line trailing newline", "hello\n", 2},
		{"two lines", "one\ntwo", 2},
		{"two lines trailing newline", "one\ntwo\n", 3},
		{"blank lines", "\n\n\n", 4},
		{"leading blank", "\nbody", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromReader(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("FromReader: %v", err)
			}
			if d.Count() != tt.lines {
				t.Errorf("expected %d lines, got %d", tt.lines, d.Count())
			}
			if got := d.String(); got != tt.content {
				t.Errorf("round trip mismatch: got %q, want %q", got, tt.content)
			}
		})
	}
}

func TestRoundTripSurvivesEdits(t *testing.T) {
	d := FromString("alpha\nbeta")

	// Edit, then verify serialization still has n-1 separators.
	d.Append(d.LineAt(1), []byte("!"))
	if got := d.String(); got != "alpha\nbeta!" {
		t.Errorf("got %q", got)
	}

	c := d.Create()
	d.LinkAfter(d.LineAt(1), c)
	if got := d.String(); got != "alpha\nbeta!\n" {
		t.Errorf("got %q", got)
	}
}

func TestWriteToByteCount(t *testing.T) {
	content := "one\ntwo\nthree"
	d := FromString(content)

	var b strings.Builder
	n, err := d.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(len(content)) {
		t.Errorf("WriteTo reported %d bytes, want %d", n, len(content))
	}
}

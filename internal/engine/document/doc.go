// Package document implements the editor's line storage: an ordered
// sequence of byte-buffer lines held in an arena and addressed by stable
// handles. The sequence is doubly linked through arena indices, giving
// O(1) neighbor access and O(1) removal, and is never empty: a document
// always holds at least one line.
package document

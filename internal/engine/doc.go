// Package engine bundles the document and the cursor into one editor
// state value and implements the character and line level edit
// operations on the pair. Every operation leaves the cursor valid for
// the document shape it produced.
package engine

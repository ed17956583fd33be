// Package todo holds the in-memory to-do list: an ordered sequence of items
// with stable identifiers, plus the single optional edit and drag slots.
package todo

import "strings"

// Item is one to-do entry.
type Item struct {
	// ID is an opaque identifier assigned at creation. It never changes and
	// is never reused while the store lives.
	ID string
	// Text is the entry as the user typed it.
	Text string
	// Completed is the check-box state.
	Completed bool
}

// EditState marks the one item currently being rewritten in place.
type EditState struct {
	ID    string
	Draft string
}

// DragState marks the item picked up for reordering.
type DragState struct {
	ID string
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SingleLine replaces line breaks in text with spaces. Item text is shown
// and exported one item per line.
func SingleLine(text string) string {
	return lineBreaks.Replace(text)
}

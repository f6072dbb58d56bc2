// Package service defines the store-agnostic interface for to-do operations.
package service

import "fmt"

// Item represents a single to-do entry.
type Item struct {
	ID        int
	Text      string
	Completed bool
}

// Mark returns the completion checkbox for the item: "[x]" or "[ ]".
func (i Item) Mark() string {
	if i.Completed {
		return "[x]"
	}
	return "[ ]"
}

// String formats the item as a status line.
// Format: "[x] {ID}: {TEXT}" for completed items, "[ ] {ID}: {TEXT}" otherwise.
func (i Item) String() string {
	return fmt.Sprintf("%s %d: %s", i.Mark(), i.ID, i.Text)
}

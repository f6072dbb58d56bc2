// Package service defines the store-agnostic interface for to-do operations.
package service

// Store defines the interface for to-do item storage.
// Commands only talk to this interface, never to a concrete backend.
type Store interface {
	// Add appends a new incomplete item whose ID is the current length of the store.
	// Trimming the text is the caller's job.
	Add(text string)

	// Complete marks the item with the given ID as completed.
	// Returns false and leaves the store untouched if no such item exists.
	// Completing an already completed item returns true.
	Complete(id int) bool

	// List returns one formatted status line per item, in insertion order.
	List() []string

	// Items returns a copy of all items in insertion order.
	Items() []Item

	// Len returns the number of items.
	Len() int
}

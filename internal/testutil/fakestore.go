// Package testutil provides testing utilities.
package testutil

import (
	"todo/internal/service"
)

// FakeStore is a recording implementation of service.Store for command tests.
// It behaves like the in-memory store and counts every call.
type FakeStore struct {
	items []service.Item

	AddCalls      []string
	CompleteCalls []int
	ListCalls     int
}

var _ service.Store = (*FakeStore)(nil)

// NewFakeStore creates a FakeStore pre-filled with the given texts.
func NewFakeStore(texts ...string) *FakeStore {
	f := &FakeStore{}
	for i, text := range texts {
		f.items = append(f.items, service.Item{ID: i, Text: text})
	}
	return f
}

// MutatingCalls returns the number of Add and Complete calls seen.
func (f *FakeStore) MutatingCalls() int {
	return len(f.AddCalls) + len(f.CompleteCalls)
}

// Add implements service.Store.
func (f *FakeStore) Add(text string) {
	f.AddCalls = append(f.AddCalls, text)
	f.items = append(f.items, service.Item{ID: len(f.items), Text: text})
}

// Complete implements service.Store.
func (f *FakeStore) Complete(id int) bool {
	f.CompleteCalls = append(f.CompleteCalls, id)
	if id < 0 || id >= len(f.items) {
		return false
	}
	f.items[id].Completed = true
	return true
}

// List implements service.Store.
func (f *FakeStore) List() []string {
	f.ListCalls++
	lines := make([]string, len(f.items))
	for i, item := range f.items {
		lines[i] = item.String()
	}
	return lines
}

// Items implements service.Store.
func (f *FakeStore) Items() []service.Item {
	result := make([]service.Item, len(f.items))
	copy(result, f.items)
	return result
}

// Len implements service.Store.
func (f *FakeStore) Len() int {
	return len(f.items)
}

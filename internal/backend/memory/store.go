// Package memory implements service.Store as an in-process slice.
package memory

import (
	"github.com/rs/zerolog"

	"todo/internal/service"
)

// Store is an in-memory, insertion-ordered to-do store.
// It lives exactly as long as the process and is not safe for concurrent use.
type Store struct {
	items []service.Item
	log   zerolog.Logger
}

var _ service.Store = (*Store)(nil)

// New creates an empty store. Pass zerolog.Nop() to disable logging.
func New(log zerolog.Logger) *Store {
	return &Store{log: log}
}

// Add implements service.Store.
func (s *Store) Add(text string) {
	item := service.Item{
		ID:   len(s.items),
		Text: text,
	}
	s.items = append(s.items, item)

	s.log.Debug().Int("id", item.ID).Str("text", item.Text).Msg("item added")
}

// Complete implements service.Store.
func (s *Store) Complete(id int) bool {
	if id < 0 || id >= len(s.items) {
		s.log.Debug().Int("id", id).Int("len", len(s.items)).Msg("complete: id out of range")
		return false
	}

	s.items[id].Completed = true
	s.log.Debug().Int("id", id).Msg("item completed")
	return true
}

// List implements service.Store.
func (s *Store) List() []string {
	lines := make([]string, len(s.items))
	for i, item := range s.items {
		lines[i] = item.String()
	}
	return lines
}

// Items implements service.Store.
func (s *Store) Items() []service.Item {
	result := make([]service.Item, len(s.items))
	copy(result, s.items)
	return result
}

// Len implements service.Store.
func (s *Store) Len() int {
	return len(s.items)
}

package store

import (
	"errors"
	"fmt"
	"sync"

	"flakytodo/internal/model"
)

// Verify at compile time that ItemStore implements all interfaces.
var (
	_ ItemReader = (*ItemStore)(nil)
	_ ItemWriter = (*ItemStore)(nil)
)

// ErrNotFound is returned when the referenced item id does not exist.
var ErrNotFound = errors.New("item not found")

// ItemStore is a concurrency-safe in-memory collection of items keyed by
// a monotonically increasing id.
//
// Two independent locks keep contention fine-grained: idMu serializes id
// allocation only, mu guards the record map. Allocating an id never blocks
// on, and is never blocked by, record reads or writes.
type ItemStore struct {
	idMu      sync.Mutex
	currentID int64

	mu    sync.RWMutex
	items map[int64]model.Item
}

// New creates an empty ItemStore.
func New() *ItemStore {
	return &ItemStore{items: make(map[int64]model.Item)}
}

// NewID returns the next unused id. Ids are unique and strictly increasing
// across the process lifetime, even under concurrent callers; a deleted
// item's id is never reassigned.
func (s *ItemStore) NewID() int64 {
	s.idMu.Lock()
	s.currentID++
	id := s.currentID
	s.idMu.Unlock()
	return id
}

// AddItem allocates a new id, builds the record from the caller-supplied
// fields, inserts it atomically, and returns the stored record.
//
// A duplicate id on insert cannot occur while NewID is the only id source;
// hitting it means the allocation path is broken, so it panics rather than
// being handled.
func (s *ItemStore) AddItem(summary, description string) model.Item {
	id := s.NewID()
	item := model.NewItem(id, summary, description)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; exists {
		panic(fmt.Sprintf("store: duplicate item id %d", id))
	}
	s.items[id] = item
	return item
}

// DeleteItem removes the record for id. The id is not reusable afterwards.
func (s *ItemStore) DeleteItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// FindItem returns the full record for id.
func (s *ItemStore) FindItem(id int64) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return model.Item{}, ErrNotFound
	}
	return item, nil
}

// AllItems returns a snapshot projection of every live item. The snapshot
// is consistent at a single instant; ordering is unspecified.
func (s *ItemStore) AllItems() []model.ItemSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ItemSummary, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Summarize())
	}
	return out
}

// Len returns the number of live items.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Package gallery stores rendered figures for serving over HTTP.
//
// A gallery maps opaque string IDs to rendered figure documents. The Store
// interface keeps the HTTP layer independent of the backing storage; the
// in-memory implementation in this package is sufficient for a single
// process serving its own renders.
//
// # Usage
//
//	store := gallery.NewMemStore()
//	item := gallery.Item{
//	    ID:    uuid.New().String(),
//	    Title: "ridge",
//	    SVG:   buf.Bytes(),
//	}
//	store.Set(ctx, item)
//
//	item, err := store.Get(ctx, id)
//	if errors.Is(err, gallery.ErrNotFound) {
//	    // 404
//	}
package gallery

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when no item with the requested ID exists.
var ErrNotFound = errors.New("not found")

// Item is one rendered figure.
type Item struct {
	ID        string
	Title     string
	SVG       []byte
	CreatedAt time.Time
}

// Store is the interface for gallery storage backends.
type Store interface {
	// Get retrieves an item by ID. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (Item, error)

	// Set stores an item, replacing any existing item with the same ID.
	// A zero CreatedAt is set to the current time.
	Set(ctx context.Context, item Item) error

	// Delete removes an item. Deleting a missing item is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all items ordered by creation time, oldest first.
	List(ctx context.Context) ([]Item, error)
}

// MemStore is an in-memory Store safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string]Item)}
}

// Get implements Store.
func (s *MemStore) Get(_ context.Context, id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return item, nil
}

// Set implements Store.
func (s *MemStore) Set(_ context.Context, item Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// List implements Store.
func (s *MemStore) List(_ context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

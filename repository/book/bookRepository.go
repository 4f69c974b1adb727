package bookrepo

import (
	"context"
	"errors"
	"sync"

	"bookrental/model"
)

var ErrNotFound = errors.New("book not found")

// Store holds the catalog in memory for the lifetime of the process.
// Records are handed out as copies so callers never share mutable state
// with the store; the only in-place update is the available-copies counter.
type Store struct {
	mu    sync.RWMutex
	books map[string]*model.Book
}

func New() *Store {
	return &Store{books: make(map[string]*model.Book)}
}

func (s *Store) Insert(ctx context.Context, b model.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := b
	s.books[b.ID] = &cp
}

func (s *Store) Get(ctx context.Context, id string) (*model.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[id]
	if !ok {
		return nil, false
	}
	cp := *b
	return &cp, true
}

// List returns a snapshot of the whole catalog. Order is unspecified;
// callers sort as needed.
func (s *Store) List(ctx context.Context) []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, *b)
	}
	return out
}

// AdjustAvailable moves the availability counter by delta, rejecting any
// move outside [0, totalCopies].
func (s *Store) AdjustAvailable(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return ErrNotFound
	}
	next := b.AvailableCopies + delta
	if next < 0 || next > b.TotalCopies {
		return errors.New("available copies out of range")
	}
	b.AvailableCopies = next
	return nil
}

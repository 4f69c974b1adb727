package rentalrepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"bookrental/model"
)

var ErrNotFound = errors.New("rental not found")

// Store is the rental ledger. Rentals are never deleted; the slice keeps
// insertion order so listings are deterministic.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*model.Rental
	order []*model.Rental
}

func New() *Store {
	return &Store{byID: make(map[string]*model.Rental)}
}

func (s *Store) Insert(ctx context.Context, r model.Rental) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := r
	s.byID[r.ID] = &cp
	s.order = append(s.order, &cp)
}

func (s *Store) Get(ctx context.Context, id string) (model.Rental, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return model.Rental{}, false
	}
	return *r, true
}

// Find returns all rentals matching pred, in insertion order.
func (s *Store) Find(ctx context.Context, pred func(model.Rental) bool) []model.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Rental
	for _, r := range s.order {
		if pred(*r) {
			out = append(out, *r)
		}
	}
	return out
}

// MarkReturned performs the one state transition a rental ever makes.
// The caller decides whether the transition is legal; the store only
// refuses unknown ids.
func (s *Store) MarkReturned(ctx context.Context, id string, returnedAt time.Time, lateFee float64) (model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return model.Rental{}, ErrNotFound
	}
	at := returnedAt
	r.IsReturned = true
	r.ReturnedAt = &at
	r.LateFee = lateFee
	return *r, nil
}

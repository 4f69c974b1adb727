package userrepo

import (
	"context"
	"errors"
	"strings"
	"sync"

	"bookrental/model"
)

var ErrEmailTaken = errors.New("email already registered")

type Store struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]*model.User
}

func New() *Store {
	return &Store{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

// Create enforces email uniqueness. Emails are indexed lowercased.
func (s *Store) Create(ctx context.Context, u model.User) error {
	key := strings.ToLower(u.Email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[key]; exists {
		return ErrEmailTaken
	}
	cp := u
	s.byID[u.ID] = &cp
	s.byEmail[key] = &cp
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (s *Store) ByEmail(ctx context.Context, email string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

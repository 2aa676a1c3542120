package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// UserStore keeps users in registration order with a username index.
type UserStore struct {
	mu         sync.RWMutex
	order      []uuid.UUID
	byID       map[uuid.UUID]domain.User
	byUsername map[string]uuid.UUID
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[uuid.UUID]domain.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

// GetByID returns the user with the given id.
func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByUsername returns the user with exactly this username.
func (s *UserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	u := s.byID[id]
	return &u, nil
}

// List returns every user in registration order.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// Create stores u. The username check and insert happen under one lock, so
// two concurrent registrations of the same name cannot both succeed.
func (s *UserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[u.Username]; taken {
		return nil, fmt.Errorf("user %s: %w", u.Username, domain.ErrDuplicateUsername)
	}
	if _, ok := s.byID[u.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}

	s.byID[u.ID] = *u
	s.byUsername[u.Username] = u.ID
	s.order = append(s.order, u.ID)

	created := *u
	return &created, nil
}

// Package memory implements the entry and user stores in process memory.
// It backs the "memory" storage driver and the in-process HTTP tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// EntryStore keeps entries in insertion order.
type EntryStore struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]domain.Entry
}

// NewEntryStore creates an empty EntryStore.
func NewEntryStore() *EntryStore {
	return &EntryStore{byID: make(map[uuid.UUID]domain.Entry)}
}

// List returns a copy of every entry in insertion order.
func (s *EntryStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// GetByID returns the entry with the given id.
func (s *EntryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

// Create stores e. Ids must be unique.
func (s *EntryStore) Create(_ context.Context, e *domain.Entry) (*domain.Entry, error) {
	if e.Likes < 0 || e.Likes > domain.MaxLikes {
		return nil, fmt.Errorf("entry %s: likes %d: %w", e.ID, e.Likes, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[e.ID]; ok {
		return nil, fmt.Errorf("entry %s: %w", e.ID, domain.ErrAlreadyExists)
	}
	s.byID[e.ID] = *e
	s.order = append(s.order, e.ID)

	created := *e
	return &created, nil
}

// SetLikes overwrites the like count.
func (s *EntryStore) SetLikes(_ context.Context, id uuid.UUID, likes int) (*domain.Entry, error) {
	if likes < 0 || likes > domain.MaxLikes {
		return nil, fmt.Errorf("entry %s: likes %d: %w", id, likes, domain.ErrValidation)
	}
	return s.update(id, func(e *domain.Entry) { e.Likes = likes })
}

// IncrementLikes adds delta to the like count under the store lock. A result
// outside [0, domain.MaxLikes] is rejected and leaves the entry unchanged.
func (s *EntryStore) IncrementLikes(_ context.Context, id uuid.UUID, delta int) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	if delta > domain.MaxLikes-e.Likes || delta < -e.Likes {
		return nil, fmt.Errorf("entry %s: likes %d%+d: %w", id, e.Likes, delta, domain.ErrValidation)
	}
	e.Likes += delta
	s.byID[id] = e
	return &e, nil
}

// Delete removes the entry. It reports false when the id was unknown.
func (s *EntryStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return true, nil
}

func (s *EntryStore) update(id uuid.UUID, fn func(e *domain.Entry)) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	fn(&e)
	s.byID[id] = e
	return &e, nil
}

package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// List returns every entry.
func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("entry.List: %w", err)
	}
	return entries, nil
}

// Get returns one entry or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("entry.Get: %w", err)
	}
	return e, nil
}

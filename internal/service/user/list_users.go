package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// List returns every user together with the entries they created. Users and
// entries are loaded concurrently.
func (s *Service) List(ctx context.Context) ([]domain.UserWithEntries, error) {
	var (
		users   []domain.User
		entries []domain.Entry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entries.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}

	byOwner := groupByOwner(entries)
	result := make([]domain.UserWithEntries, 0, len(users))
	for _, u := range users {
		result = append(result, domain.UserWithEntries{User: u, Entries: byOwner[u.ID]})
	}

	s.log.DebugContext(ctx, "users listed",
		slog.Int("users", len(users)),
		slog.Int("entries", len(entries)),
	)

	return result, nil
}

// Get returns one user with their entries or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.UserWithEntries, error) {
	var (
		u       *domain.User
		entries []domain.Entry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		u, err = s.users.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entries.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}

	return &domain.UserWithEntries{User: *u, Entries: groupByOwner(entries)[u.ID]}, nil
}

// groupByOwner buckets entries by creator, keeping store order within each bucket.
func groupByOwner(entries []domain.Entry) map[uuid.UUID][]domain.Entry {
	out := make(map[uuid.UUID][]domain.Entry)
	for _, e := range entries {
		out[e.OwnerID] = append(out[e.OwnerID], e)
	}
	return out
}

package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// entryRepo is the read side of the entry store.
type entryRepo interface {
	List(ctx context.Context) ([]domain.Entry, error)
}

// Service implements read operations over registered users.
type Service struct {
	log     *slog.Logger
	users   userRepo
	entries entryRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		entries: entries,
	}
}

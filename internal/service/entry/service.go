package entry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
	"github.com/heartmarshall/bloglist-backend/pkg/ctxutil"
)

// entryRepo is the EntryStore as seen by the entry service. Likes changes
// are single store operations so concurrent updates are never lost.
type entryRepo interface {
	List(ctx context.Context) ([]domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	SetLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Entry, error)
	IncrementLikes(ctx context.Context, id uuid.UUID, delta int) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides entry operations.
type Service struct {
	entries entryRepo
	log     *slog.Logger
}

// NewService creates a new entry service.
func NewService(log *slog.Logger, entries entryRepo) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "entry"),
	}
}

// identityFromCtx returns the caller's identity, or nil for anonymous callers.
func identityFromCtx(ctx context.Context) *domain.Identity {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &domain.Identity{UserID: userID, Username: ctxutil.UsernameFromCtx(ctx)}
}

package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// SetLikes overwrites the like count of an entry. Any caller may do this.
func (s *Service) SetLikes(ctx context.Context, id uuid.UUID, likes *int) (*domain.Entry, error) {
	if err := AuthorizeMutation(ActionUpdateLikes, identityFromCtx(ctx), nil); err != nil {
		return nil, err
	}

	if likes == nil {
		return nil, domain.NewValidationError("likes", domain.CodeMissingField, "likes is required")
	}
	if fe, ok := checkLikes(*likes); !ok {
		return nil, domain.NewValidationErrors([]domain.FieldError{fe})
	}

	updated, err := s.entries.SetLikes(ctx, id, *likes)
	if err != nil {
		return nil, fmt.Errorf("entry.SetLikes: %w", err)
	}

	s.log.DebugContext(ctx, "entry likes set",
		slog.String("entry_id", id.String()),
		slog.Int("likes", updated.Likes),
	)

	return updated, nil
}

// Like adds one like to an entry atomically. Any caller may do this.
func (s *Service) Like(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if err := AuthorizeMutation(ActionUpdateLikes, identityFromCtx(ctx), nil); err != nil {
		return nil, err
	}

	updated, err := s.entries.IncrementLikes(ctx, id, 1)
	if err != nil {
		return nil, fmt.Errorf("entry.Like: %w", err)
	}
	return updated, nil
}

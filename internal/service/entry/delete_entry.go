package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// Delete removes an entry. Only the identity that created it may do so.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	identity := identityFromCtx(ctx)
	if identity == nil {
		return domain.ErrUnauthorized
	}

	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("entry.Delete: %w", err)
	}

	if err := AuthorizeMutation(ActionDelete, identity, e); err != nil {
		s.log.WarnContext(ctx, "entry delete denied",
			slog.String("user_id", identity.UserID.String()),
			slog.String("entry_id", id.String()),
		)
		return err
	}

	removed, err := s.entries.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("entry.Delete: %w", err)
	}
	if !removed {
		return fmt.Errorf("entry.Delete: entry %s: %w", id, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", identity.UserID.String()),
		slog.String("entry_id", id.String()),
	)

	return nil
}

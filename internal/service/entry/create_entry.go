package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// Create validates the candidate and stores it owned by the caller.
func (s *Service) Create(ctx context.Context, candidate domain.EntryCandidate) (*domain.Entry, error) {
	identity := identityFromCtx(ctx)
	if err := AuthorizeMutation(ActionCreate, identity, nil); err != nil {
		return nil, err
	}

	e, err := ValidateCandidate(candidate)
	if err != nil {
		return nil, err
	}

	e.ID = uuid.New()
	e.OwnerID = identity.UserID
	e.CreatedAt = time.Now().UTC()

	created, err := s.entries.Create(ctx, &e)
	if err != nil {
		return nil, fmt.Errorf("entry.Create: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", identity.UserID.String()),
		slog.String("entry_id", created.ID.String()),
	)

	return created, nil
}

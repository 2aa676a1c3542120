package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// Register creates a new user with a bcrypt-hashed password.
// Returns ErrDuplicateUsername if the username is already taken. Validation
// and the duplicate check both run before anything is written.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Reject taken usernames before hashing
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Register get user: %w", err)
	}

	// Step 3: Hash password
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Persist. The store's uniqueness check still covers a concurrent
	// registration that slipped past step 2.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Name:         input.Name,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("username", created.Username),
	)

	return created, nil
}

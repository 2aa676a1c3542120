package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager issues and verifies access tokens.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ValidateAccessToken(token string) (*domain.Identity, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// Service implements registration, login and token authentication.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tx     txManager
	tokens tokenManager
	hasher passwordHasher
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	tokens tokenManager,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tx:     tx,
		tokens: tokens,
		hasher: hasher,
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bloglist-backend/internal/adapter/memory"
	"github.com/heartmarshall/bloglist-backend/internal/adapter/postgres"
	pgentry "github.com/heartmarshall/bloglist-backend/internal/adapter/postgres/entry"
	pguser "github.com/heartmarshall/bloglist-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bloglist-backend/internal/config"
	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// EntryStore is the full entry persistence contract shared by both drivers.
type EntryStore interface {
	List(ctx context.Context) ([]domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	SetLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Entry, error)
	IncrementLikes(ctx context.Context, id uuid.UUID, delta int) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserStore is the full user persistence contract shared by both drivers.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// TxRunner runs fn inside a transaction when the driver supports one.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores bundles the storage implementations selected by config.
type Stores struct {
	Driver  string
	Entries EntryStore
	Users   UserStore
	Tx      TxRunner
	Pinger  Pinger
	close   func()
}

// Close releases driver resources.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewMemoryStores returns empty in-process stores.
func NewMemoryStores() *Stores {
	return &Stores{
		Driver:  config.DriverMemory,
		Entries: memory.NewEntryStore(),
		Users:   memory.NewUserStore(),
		Tx:      memory.TxManager{},
		Pinger:  memory.Pinger{},
	}
}

// NewPostgresStores builds stores on an existing pool. The caller keeps
// ownership of the pool.
func NewPostgresStores(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Driver:  config.DriverPostgres,
		Entries: pgentry.New(pool),
		Users:   pguser.New(pool),
		Tx:      postgres.NewTxManager(pool),
		Pinger:  pool,
	}
}

// OpenStores connects to the configured driver. For postgres it opens the
// pool and, when enabled, applies pending migrations.
func OpenStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.WarnContext(ctx, "using in-memory storage, data is lost on restart")
		return NewMemoryStores(), nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("app: connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("app: %w", err)
			}
		}
		stores := NewPostgresStores(pool)
		stores.close = pool.Close
		return stores, nil
	default:
		return nil, fmt.Errorf("app: unknown storage driver %q", cfg.Storage.Driver)
	}
}

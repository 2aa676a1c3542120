// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "name", "password_hash", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// GetByUsername returns a user by username. The match is exact.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}
	return r.getOne(ctx, uuid.Nil, query, args)
}

// List returns every user in registration order.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	query, args, err := psql.Select(columns...).From(table).OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row))
	}
	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A taken username yields domain.ErrDuplicateUsername.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.Name, u.PasswordHash, u.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	created, err := r.getOne(ctx, u.ID, query, args)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("user %s: %w", u.Username, domain.ErrDuplicateUsername)
	}
	return created, err
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

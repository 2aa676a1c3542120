// Package entry implements the entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

const table = "entries"

var columns = []string{"id", "title", "author", "url", "likes", "user_id", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// row mirrors the entries table.
type row struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Author    string    `db:"author"`
	URL       string    `db:"url"`
	Likes     int       `db:"likes"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Entry {
	return domain.Entry{
		ID:        r.ID,
		Title:     r.Title,
		Author:    r.Author,
		URL:       r.URL,
		Likes:     r.Likes,
		OwnerID:   r.UserID,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns every entry in creation order.
func (r *Repo) List(ctx context.Context) ([]domain.Entry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", uuid.Nil)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, rw := range rows {
		entries = append(entries, rw.toDomain())
	}
	return entries, nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// Create inserts a new entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(e.ID, e.Title, e.Author, e.URL, e.Likes, e.OwnerID, e.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	return r.getOne(ctx, e.ID, query, args)
}

// SetLikes overwrites the like count in a single statement.
func (r *Repo) SetLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Entry, error) {
	query, args, err := psql.Update(table).
		Set("likes", likes).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set likes query: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// IncrementLikes adds delta to the like count in a single statement, so
// concurrent increments are never lost.
func (r *Repo) IncrementLikes(ctx context.Context, id uuid.UUID, delta int) (*domain.Entry, error) {
	query, args, err := psql.Update(table).
		Set("likes", sq.Expr("likes + ?", delta)).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build increment likes query: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// Delete removes an entry. It reports false when no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "entry", id)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Entry, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "entry", id)
	}

	e := rw.toDomain()
	return &e, nil
}

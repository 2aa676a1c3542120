package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceho",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedEntry inserts an entry owned by ownerID.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, author string, likes int) domain.Entry {
	t.Helper()

	suffix := uniqueSuffix()
	entry := domain.Entry{
		ID:        uuid.New(),
		Title:     "Entry " + suffix,
		Author:    author,
		URL:       "https://example.com/" + suffix,
		Likes:     likes,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (id, title, author, url, likes, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Title, entry.Author, entry.URL, entry.Likes, entry.OwnerID, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return entry
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash holds the bcrypt hash only.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is what a verified access token vouches for. It is built from
// token claims alone; other user fields must be read from the user store.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// UserWithEntries pairs a user with the entries they created.
type UserWithEntries struct {
	User    User
	Entries []Entry
}

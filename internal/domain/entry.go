package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxLikes is the largest like count an entry can hold. It matches the
// INTEGER column the postgres store keeps likes in.
const MaxLikes = math.MaxInt32

// Entry is a shared bookmark. Only Likes changes after creation.
type Entry struct {
	ID        uuid.UUID
	Title     string
	Author    string
	URL       string
	Likes     int
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// EntryCandidate is unvalidated entry input. A nil field means the caller
// did not send it.
type EntryCandidate struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

package rest

import (
	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// entryResponse is the public form of an entry. The owner is not exposed.
type entryResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func toEntryResponse(e domain.Entry) entryResponse {
	return entryResponse{
		ID:     e.ID.String(),
		Title:  e.Title,
		Author: e.Author,
		URL:    e.URL,
		Likes:  e.Likes,
	}
}

func toEntryResponses(entries []domain.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

type userResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Blogs    []entryResponse `json:"blogs"`
}

func toUserResponse(u domain.User, entries []domain.Entry) userResponse {
	return userResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Blogs:    toEntryResponses(entries),
	}
}

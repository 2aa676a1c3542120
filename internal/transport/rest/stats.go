package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
	"github.com/heartmarshall/bloglist-backend/internal/service/stats"
)

type statsService interface {
	Summary(ctx context.Context) (*stats.Summary, error)
	MostPopular(ctx context.Context) (*domain.Entry, error)
	MostProlificAuthor(ctx context.Context) (*stats.AuthorCount, error)
	MostLikedAuthor(ctx context.Context) (*stats.AuthorLikes, error)
}

// StatsHandler serves /api/stats.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type authorCountResponse struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type authorLikesResponse struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type summaryResponse struct {
	Entries            int                  `json:"entries"`
	TotalLikes         int                  `json:"totalLikes"`
	MostPopular        *entryResponse       `json:"mostPopular"`
	MostProlificAuthor *authorCountResponse `json:"mostProlificAuthor"`
	MostLikedAuthor    *authorLikesResponse `json:"mostLikedAuthor"`
}

// Summary handles GET /api/stats. Reducer fields are null when there are no entries.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := summaryResponse{Entries: sum.Entries, TotalLikes: sum.TotalLikes}
	if sum.MostPopular != nil {
		e := toEntryResponse(*sum.MostPopular)
		resp.MostPopular = &e
	}
	if sum.MostProlificAuthor != nil {
		resp.MostProlificAuthor = &authorCountResponse{
			Author: sum.MostProlificAuthor.Author,
			Blogs:  sum.MostProlificAuthor.Count,
		}
	}
	if sum.MostLikedAuthor != nil {
		resp.MostLikedAuthor = &authorLikesResponse{
			Author: sum.MostLikedAuthor.Author,
			Likes:  sum.MostLikedAuthor.Likes,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// MostPopular handles GET /api/stats/most-popular.
func (h *StatsHandler) MostPopular(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.MostPopular(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// MostProlificAuthor handles GET /api/stats/most-prolific-author.
func (h *StatsHandler) MostProlificAuthor(w http.ResponseWriter, r *http.Request) {
	ac, err := h.svc.MostProlificAuthor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authorCountResponse{Author: ac.Author, Blogs: ac.Count})
}

// MostLikedAuthor handles GET /api/stats/most-liked-author.
func (h *StatsHandler) MostLikedAuthor(w http.ResponseWriter, r *http.Request) {
	al, err := h.svc.MostLikedAuthor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authorLikesResponse{Author: al.Author, Likes: al.Likes})
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// entryService defines the minimal interface needed by EntryHandler.
type entryService interface {
	List(ctx context.Context) ([]domain.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, candidate domain.EntryCandidate) (*domain.Entry, error)
	SetLikes(ctx context.Context, id uuid.UUID, likes *int) (*domain.Entry, error)
	Like(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryHandler serves /api/blogs.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

type createEntryRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

type updateLikesRequest struct {
	Likes *int `json:"likes"`
}

// List handles GET /api/blogs.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Get handles GET /api/blogs/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Create handles POST /api/blogs.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.Create(r.Context(), domain.EntryCandidate{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(*e))
}

// UpdateLikes handles PUT /api/blogs/{id}. Only likes can change.
func (h *EntryHandler) UpdateLikes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateLikesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.SetLikes(r.Context(), id, req.Likes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Like handles POST /api/blogs/{id}/like.
func (h *EntryHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.svc.Like(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Delete handles DELETE /api/blogs/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// bookmarkService defines the minimal interface needed by BookmarkHandler.
type bookmarkService interface {
	Toggle(ctx context.Context, postSlug string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.PostWithContent, error)
}

// BookmarkHandler serves bookmark REST endpoints.
type BookmarkHandler struct {
	svc bookmarkService
	log *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(svc bookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, log: logger.With("handler", "bookmark")}
}

// Toggle flips the caller's bookmark on a post.
// POST /api/posts/{slug}/bookmark
func (h *BookmarkHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	bookmarked, err := h.svc.Toggle(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// List returns the caller's bookmarked posts.
// GET /api/bookmarks?limit=&offset=
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPage(posts, len(posts)))
}

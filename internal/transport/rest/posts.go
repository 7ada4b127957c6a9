package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/service/post"
)

// postService defines the minimal interface needed by PostHandler.
type postService interface {
	CreatePost(ctx context.Context, input post.CreatePostInput) (*domain.Post, error)
	EditPost(ctx context.Context, input post.EditPostInput) (*domain.Post, error)
	PublishPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ArchivePost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error)
	ListDashboard(ctx context.Context, input post.ListInput) ([]*domain.PostWithContent, int, error)
	ListArchived(ctx context.Context, input post.ListInput) ([]*domain.PostWithContent, int, error)
	ListRevisions(ctx context.Context, postID uuid.UUID) ([]*domain.Revision, error)
	RecentActivity(ctx context.Context, input post.ListInput) ([]*domain.ActivityRecord, error)
}

// PostHandler serves post REST endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

// Get returns one post with its current content, subject to visibility.
// GET /api/posts/{slug}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostDetailResponse(p))
}

type createPostRequest struct {
	SectionID  string `json:"sectionId"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	Note       string `json:"note"`
	Publish    bool   `json:"publish"`
	IsFeatured bool   `json:"isFeatured"`
	Order      int    `json:"order"`
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sectionID, err := uuid.Parse(req.SectionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sectionId")
		return
	}

	created, err := h.svc.CreatePost(r.Context(), post.CreatePostInput{
		SectionID:  sectionID,
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		Note:       req.Note,
		Publish:    req.Publish,
		IsFeatured: req.IsFeatured,
		Order:      req.Order,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostLifecycleResponse(created))
}

type editPostRequest struct {
	SectionID  *string `json:"sectionId"`
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Summary    *string `json:"summary"`
	Content    *string `json:"content"`
	Note       string  `json:"note"`
	Status     *string `json:"status"`
	IsFeatured *bool   `json:"isFeatured"`
	Order      *int    `json:"order"`
}

// Edit handles PATCH /api/posts/{id}.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req editPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := post.EditPostInput{
		ID:         id,
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		Note:       req.Note,
		IsFeatured: req.IsFeatured,
		Order:      req.Order,
	}
	if req.SectionID != nil {
		sectionID, err := uuid.Parse(*req.SectionID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid sectionId")
			return
		}
		input.SectionID = &sectionID
	}
	if req.Status != nil {
		status := domain.PostStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.EditPost(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostLifecycleResponse(updated))
}

// Publish handles POST /api/posts/{id}/publish.
func (h *PostHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.PublishPost)
}

// Archive handles POST /api/posts/{id}/archive.
func (h *PostHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ArchivePost)
}

func (h *PostHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Post, error)) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	updated, err := op(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostLifecycleResponse(updated))
}

// Delete handles DELETE /api/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Dashboard lists drafts and published posts for the editor dashboard.
// GET /api/dashboard/posts?limit=&offset=
func (h *PostHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	posts, total, err := h.svc.ListDashboard(r.Context(), post.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPage(posts, total))
}

// Archived lists archived posts.
// GET /api/dashboard/archive?limit=&offset=
func (h *PostHandler) Archived(w http.ResponseWriter, r *http.Request) {
	posts, total, err := h.svc.ListArchived(r.Context(), post.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPage(posts, total))
}

// Revisions lists a post's revision history, newest first.
// GET /api/posts/{id}/revisions
func (h *PostHandler) Revisions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	revs, err := h.svc.ListRevisions(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]revisionResponse, 0, len(revs))
	for _, rev := range revs {
		resp = append(resp, toRevisionResponse(rev))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Activity lists recent publisher actions.
// GET /api/dashboard/activity?limit=&offset=
func (h *PostHandler) Activity(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.RecentActivity(r.Context(), post.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]activityResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toActivityResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// toPostLifecycleResponse projects a bare post (no joined content) onto the
// card shape used by mutation responses.
func toPostLifecycleResponse(p *domain.Post) postResponse {
	return toPostResponse(&domain.PostWithContent{Post: *p})
}

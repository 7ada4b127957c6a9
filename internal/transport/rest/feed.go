package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/service/feed"
)

// feedService defines the minimal interface needed by FeedHandler.
type feedService interface {
	ListInSection(ctx context.Context, sectionSlug, query string, page int) (*feed.SectionFeed, error)
	Search(ctx context.Context, query string, catalog *domain.Catalog, page int) ([]*domain.PostWithContent, int, error)
	QuickSearch(ctx context.Context, query string, catalog *domain.Catalog, sectionSlug string) ([]feed.QuickHit, error)
	LatestPublished(ctx context.Context, limit int) ([]*domain.PostWithContent, error)
}

// FeedHandler serves the reader-facing listing and search endpoints.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

type sectionFeedResponse struct {
	Section  sectionResponse            `json:"section"`
	Children []sectionResponse          `json:"children"`
	Posts    pageResponse[postResponse] `json:"posts"`
	Page     int                        `json:"page"`
	PageSize int                        `json:"pageSize"`
}

// Section returns one page of a section's feed.
// GET /api/sections/{slug}/posts?query=&page=
func (h *FeedHandler) Section(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListInSection(r.Context(),
		r.PathValue("slug"),
		r.URL.Query().Get("query"),
		queryInt(r, "page", 1),
	)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	children := make([]sectionResponse, 0, len(result.Children))
	for _, c := range result.Children {
		children = append(children, toSectionResponse(c))
	}
	writeJSON(w, http.StatusOK, sectionFeedResponse{
		Section:  toSectionResponse(result.Section),
		Children: children,
		Posts:    toPostPage(result.Posts, result.Total),
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// Search returns published posts matching the query.
// GET /api/search?query=&catalog=&page=
func (h *FeedHandler) Search(w http.ResponseWriter, r *http.Request) {
	posts, total, err := h.svc.Search(r.Context(),
		r.URL.Query().Get("query"),
		catalogFilter(r),
		queryInt(r, "page", 1),
	)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPage(posts, total))
}

type quickHitResponse struct {
	Post    postResponse `json:"post"`
	Snippet string       `json:"snippet,omitempty"`
}

// QuickSearch returns autocomplete hits with highlighted snippets.
// GET /api/search/quick?query=&catalog=&section=
func (h *FeedHandler) QuickSearch(w http.ResponseWriter, r *http.Request) {
	hits, err := h.svc.QuickSearch(r.Context(),
		r.URL.Query().Get("query"),
		catalogFilter(r),
		r.URL.Query().Get("section"),
	)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]quickHitResponse, 0, len(hits))
	for _, hit := range hits {
		resp = append(resp, quickHitResponse{
			Post:    toPostResponse(hit.Post),
			Snippet: hit.Snippet,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Home returns the latest published posts. Member-gated at the router.
// GET /api/home?limit=
func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.LatestPublished(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPage(posts, len(posts)))
}

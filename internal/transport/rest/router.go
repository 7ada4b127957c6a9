package rest

import (
	"net/http"

	"github.com/mkholodov/wuguan-backend/internal/transport/middleware"
)

// Handlers bundles every REST handler for the router.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Sections  *SectionHandler
	Posts     *PostHandler
	Feed      *FeedHandler
	Bookmarks *BookmarkHandler
	Profile   *ProfileHandler
}

// NewRouter assembles the route table. Authorization beyond "must be signed
// in" lives in the services; the router only gates the member-only surfaces
// the way the original site hid everything behind login.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /confirm-email", h.Profile.ConfirmEmail)

	// Public catalog surfaces. Visibility filtering happens per role inside
	// the services, so the same routes serve anonymous and signed-in users.
	mux.HandleFunc("GET /api/sections", h.Sections.Tree)
	mux.HandleFunc("GET /api/sections/{slug}", h.Sections.Get)
	mux.HandleFunc("GET /api/sections/{slug}/posts", h.Feed.Section)
	mux.HandleFunc("GET /api/posts/{slug}", h.Posts.Get)
	mux.HandleFunc("GET /api/search", h.Feed.Search)
	mux.HandleFunc("GET /api/search/quick", h.Feed.QuickSearch)

	// Member-gated surfaces.
	mux.Handle("GET /api/home", middleware.RequireAuth(http.HandlerFunc(h.Feed.Home)))
	mux.Handle("GET /api/bookmarks", middleware.RequireAuth(http.HandlerFunc(h.Bookmarks.List)))
	mux.Handle("POST /api/posts/{slug}/bookmark", middleware.RequireAuth(http.HandlerFunc(h.Bookmarks.Toggle)))
	mux.Handle("GET /api/profile", middleware.RequireAuth(http.HandlerFunc(h.Profile.Get)))
	mux.Handle("PATCH /api/profile", middleware.RequireAuth(http.HandlerFunc(h.Profile.Update)))
	mux.Handle("POST /api/profile/resend-confirmation", middleware.RequireAuth(http.HandlerFunc(h.Profile.ResendConfirmation)))

	// Publisher surfaces; the services reject non-publishers.
	mux.HandleFunc("POST /api/sections", h.Sections.Create)
	mux.HandleFunc("PATCH /api/sections/{id}", h.Sections.Update)
	mux.HandleFunc("DELETE /api/sections/{id}", h.Sections.Delete)
	mux.HandleFunc("POST /api/posts", h.Posts.Create)
	mux.HandleFunc("PATCH /api/posts/{id}", h.Posts.Edit)
	mux.HandleFunc("POST /api/posts/{id}/publish", h.Posts.Publish)
	mux.HandleFunc("POST /api/posts/{id}/archive", h.Posts.Archive)
	mux.HandleFunc("DELETE /api/posts/{id}", h.Posts.Delete)
	mux.HandleFunc("GET /api/posts/{id}/revisions", h.Posts.Revisions)
	mux.HandleFunc("GET /api/dashboard/sections", h.Sections.Overview)
	mux.HandleFunc("GET /api/dashboard/posts", h.Posts.Dashboard)
	mux.HandleFunc("GET /api/dashboard/archive", h.Posts.Archived)
	mux.HandleFunc("GET /api/dashboard/activity", h.Posts.Activity)

	return mux
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/service/section"
)

// sectionService defines the minimal interface needed by SectionHandler.
type sectionService interface {
	CreateSection(ctx context.Context, input section.CreateSectionInput) (*domain.Section, error)
	UpdateSection(ctx context.Context, input section.UpdateSectionInput) (*domain.Section, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*domain.Section, error)
	Tree(ctx context.Context, catalog *domain.Catalog) ([]*domain.SectionNode, error)
	Ancestors(ctx context.Context, id uuid.UUID) ([]*domain.Section, error)
	Overview(ctx context.Context) ([]*domain.SectionOverview, error)
}

// SectionHandler serves section REST endpoints.
type SectionHandler struct {
	svc sectionService
	log *slog.Logger
}

// NewSectionHandler creates a SectionHandler.
func NewSectionHandler(svc sectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{svc: svc, log: logger.With("handler", "section")}
}

// catalogFilter parses the optional ?catalog= query parameter.
func catalogFilter(r *http.Request) *domain.Catalog {
	v := r.URL.Query().Get("catalog")
	if v == "" {
		return nil
	}
	c := domain.Catalog(v)
	return &c
}

// Tree returns the section forest for the sidebar.
// GET /api/sections?catalog=taiji
func (h *SectionHandler) Tree(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.svc.Tree(r.Context(), catalogFilter(r))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]sectionNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		resp = append(resp, toSectionNodeResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one section with its breadcrumb chain.
// GET /api/sections/{slug}
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sec, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ancestors, err := h.svc.Ancestors(r.Context(), sec.ID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	crumbs := make([]sectionResponse, 0, len(ancestors))
	for _, a := range ancestors {
		crumbs = append(crumbs, toSectionResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"section":   toSectionResponse(sec),
		"ancestors": crumbs,
	})
}

// Overview returns every section with its post count for the management
// screen. GET /api/dashboard/sections
func (h *SectionHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]sectionOverviewResponse, 0, len(overview))
	for _, o := range overview {
		resp = append(resp, sectionOverviewResponse{
			Section:   toSectionResponse(&o.Section),
			PostCount: o.PostCount,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type createSectionRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Catalog     string  `json:"catalog"`
	Order       int     `json:"order"`
	ParentID    *string `json:"parentId"`
}

// Create handles POST /api/sections.
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := section.CreateSectionInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Catalog:     domain.Catalog(req.Catalog),
		Order:       req.Order,
	}
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parentId")
			return
		}
		input.ParentID = &id
	}

	sec, err := h.svc.CreateSection(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSectionResponse(sec))
}

type updateSectionRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Catalog     *string `json:"catalog"`
	Order       *int    `json:"order"`
	ParentID    *string `json:"parentId"`
	// DetachParent promotes the section to a root; it cannot be expressed
	// through parentId because an absent field means "leave unchanged".
	DetachParent bool `json:"detachParent"`
}

// Update handles PATCH /api/sections/{id}.
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	var req updateSectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := section.UpdateSectionInput{
		ID:          id,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Order:       req.Order,
	}
	if req.Catalog != nil {
		c := domain.Catalog(*req.Catalog)
		input.Catalog = &c
	}
	switch {
	case req.DetachParent:
		var detached *uuid.UUID
		input.ParentID = &detached
	case req.ParentID != nil:
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parentId")
			return
		}
		p := &parentID
		input.ParentID = &p
	}

	sec, err := h.svc.UpdateSection(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSectionResponse(sec))
}

// Delete handles DELETE /api/sections/{id}.
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := h.svc.DeleteSection(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

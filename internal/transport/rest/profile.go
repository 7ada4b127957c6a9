package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/service/profile"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, input profile.UpdateInput) (*domain.Profile, error)
	ResendConfirmation(ctx context.Context) error
	ConfirmEmail(ctx context.Context, token string) error
}

// ProfileHandler serves notification profile REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	NotifyEmail    *string `json:"notifyEmail,omitempty"`
	EmailConfirmed bool    `json:"emailConfirmed"`
	NotifyNewPosts bool    `json:"notifyNewPosts"`
	NotifyUpdates  bool    `json:"notifyUpdates"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		NotifyEmail:    p.NotifyEmail,
		EmailConfirmed: p.EmailConfirmed,
		NotifyNewPosts: p.NotifyNewPosts,
		NotifyUpdates:  p.NotifyUpdates,
	}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

type updateProfileRequest struct {
	NotifyEmail    *string `json:"notifyEmail"`
	NotifyNewPosts *bool   `json:"notifyNewPosts"`
	NotifyUpdates  *bool   `json:"notifyUpdates"`
}

// Update handles PATCH /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), profile.UpdateInput{
		NotifyEmail:    req.NotifyEmail,
		NotifyNewPosts: req.NotifyNewPosts,
		NotifyUpdates:  req.NotifyUpdates,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// ResendConfirmation handles POST /api/profile/resend-confirmation.
func (h *ProfileHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResendConfirmation(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

// ConfirmEmail handles the link from the confirmation mail.
// GET /confirm-email?token=
func (h *ProfileHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := h.svc.ConfirmEmail(r.Context(), token); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}

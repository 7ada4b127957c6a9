// Package profile implements notification profiles and the e-mail
// confirmation loop: an address only receives notifications after its owner
// has clicked a signed confirmation link.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	SetConfirmed(ctx context.Context, userID uuid.UUID, confirmed bool) error
}

// tokens issues and checks the signed e-mail confirmation tokens.
type tokens interface {
	GenerateEmailToken(userID uuid.UUID, email string) (string, error)
	ValidateEmailToken(token string) (uuid.UUID, string, error)
}

type sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service provides profile operations for signed-in users.
type Service struct {
	profiles profileRepo
	tokens   tokens
	sender   sender
	siteURL  string
	log      *slog.Logger
}

// NewService creates a new Profile service.
func NewService(log *slog.Logger, profiles profileRepo, tokens tokens, sender sender, siteURL string) *Service {
	return &Service{
		profiles: profiles,
		tokens:   tokens,
		sender:   sender,
		siteURL:  siteURL,
		log:      log.With("service", "profile"),
	}
}

// requireMember resolves the signed-in caller from the context.
func requireMember(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !ok || !role.IsAuthenticated() {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// getOrCreate loads the caller's profile, creating the default one on first
// touch.
func (s *Service) getOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	created, err := s.profiles.Upsert(ctx, &domain.Profile{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("create default profile: %w", err)
	}
	return created, nil
}

// sendConfirmation mails a signed confirmation link for the address. Unlike
// post notifications, a failure here propagates: the caller must know the
// confirmation mail did not go out.
func (s *Service) sendConfirmation(ctx context.Context, userID uuid.UUID, email string) error {
	token, err := s.tokens.GenerateEmailToken(userID, email)
	if err != nil {
		return fmt.Errorf("generate confirmation token: %w", err)
	}

	link := s.siteURL + "/confirm-email?token=" + token
	body := "Please confirm your notification address by opening the link below.\r\n\r\n" + link + "\r\n"

	if err := s.sender.Send(ctx, email, "Confirm your e-mail address", body); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}

	s.log.InfoContext(ctx, "confirmation mail sent",
		slog.String("user_id", userID.String()),
	)
	return nil
}

package profile

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

const maxEmailLen = 254

// UpdateInput holds partial-update parameters for the caller's profile.
// nil fields are left unchanged. Setting NotifyEmail to an empty string
// clears the address.
type UpdateInput struct {
	NotifyEmail    *string
	NotifyNewPosts *bool
	NotifyUpdates  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.NotifyEmail != nil {
		email := strings.TrimSpace(*i.NotifyEmail)
		if len(email) > maxEmailLen {
			errs = append(errs, domain.FieldError{Field: "notify_email", Message: "too long"})
		}
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				errs = append(errs, domain.FieldError{Field: "notify_email", Message: "invalid address"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Get returns the caller's profile, creating the default one on first access.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	userID, err := requireMember(ctx)
	if err != nil {
		return nil, err
	}
	return s.getOrCreate(ctx, userID)
}

// Update applies the given changes to the caller's profile. Changing the
// notification address drops its confirmed state and sends a fresh
// confirmation mail; a mail delivery failure fails the whole update.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Profile, error) {
	userID, err := requireMember(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	emailChanged := false
	if input.NotifyEmail != nil {
		email := strings.TrimSpace(*input.NotifyEmail)
		switch {
		case email == "":
			emailChanged = current.NotifyEmail != nil
			current.NotifyEmail = nil
		case current.NotifyEmail == nil || *current.NotifyEmail != email:
			emailChanged = true
			current.NotifyEmail = &email
		}
		if emailChanged {
			current.EmailConfirmed = false
		}
	}
	if input.NotifyNewPosts != nil {
		current.NotifyNewPosts = *input.NotifyNewPosts
	}
	if input.NotifyUpdates != nil {
		current.NotifyUpdates = *input.NotifyUpdates
	}

	saved, err := s.profiles.Upsert(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	if emailChanged && saved.NotifyEmail != nil {
		if err := s.sendConfirmation(ctx, userID, *saved.NotifyEmail); err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("email_changed", emailChanged),
	)

	return saved, nil
}

// ResendConfirmation sends the confirmation mail again for an address that
// is set but not yet confirmed.
func (s *Service) ResendConfirmation(ctx context.Context) error {
	userID, err := requireMember(ctx)
	if err != nil {
		return err
	}

	p, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if p.NotifyEmail == nil || *p.NotifyEmail == "" {
		return domain.NewValidationError("notify_email", "no address to confirm")
	}
	if p.EmailConfirmed {
		return domain.NewValidationError("notify_email", "address already confirmed")
	}

	return s.sendConfirmation(ctx, userID, *p.NotifyEmail)
}

// ConfirmEmail validates a confirmation token and marks the address
// confirmed. The token must still match the address currently on the
// profile: changing the address after requesting confirmation voids
// outstanding links. No authentication is required; the signed token itself
// identifies the user.
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	userID, email, err := s.tokens.ValidateEmailToken(token)
	if err != nil {
		return domain.NewValidationError("token", "invalid or expired confirmation token")
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	if p.NotifyEmail == nil || *p.NotifyEmail != email {
		return domain.NewValidationError("token", "token does not match the current address")
	}
	if p.EmailConfirmed {
		return nil
	}

	if err := s.profiles.SetConfirmed(ctx, userID, true); err != nil {
		return fmt.Errorf("confirm address: %w", err)
	}

	s.log.InfoContext(ctx, "e-mail address confirmed",
		slog.String("user_id", userID.String()),
	)
	return nil
}

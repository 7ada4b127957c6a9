// Package auth implements password login and access token validation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	authpkg "github.com/mkholodov/wuguan-backend/internal/auth"
	"github.com/mkholodov/wuguan-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// tokenManager issues and checks access tokens.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service provides authentication operations.
type Service struct {
	users  userRepo
	tokens tokenManager
	log    *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, tokens tokenManager) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "auth"),
	}
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  *domain.User
}

// LoginWithPassword checks the credentials and returns a signed access
// token. A wrong username and a wrong password are indistinguishable to the
// caller.
func (s *Service) LoginWithPassword(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.NewValidationError("credentials", "username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn roughly the same time as a real compare would.
			authpkg.CheckPassword("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", password)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !authpkg.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &Session{Token: token, User: user}, nil
}

// ValidateToken resolves an access token to a user ID and role. Used by the
// HTTP auth middleware.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error) {
	userID, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.RoleAnonymous, domain.ErrUnauthorized
	}
	return userID, domain.Role(role), nil
}

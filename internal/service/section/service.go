// Package section implements taxonomy management: a three-level forest of
// sections partitioned by catalog.
package section

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

type sectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Section, error)
	ListAll(ctx context.Context) ([]*domain.Section, error)
	ListRoots(ctx context.Context, catalog *domain.Catalog) ([]*domain.Section, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	CountChildren(ctx context.Context, id uuid.UUID) (int, error)
	Create(ctx context.Context, s *domain.Section) (*domain.Section, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SectionUpdateParams) (*domain.Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type postCounter interface {
	CountBySection(ctx context.Context, sectionID uuid.UUID) (int, error)
}

// Service provides section management operations.
type Service struct {
	sections sectionRepo
	posts    postCounter
	log      *slog.Logger
}

// NewService creates a new Section service.
func NewService(
	log *slog.Logger,
	sections sectionRepo,
	posts postCounter,
) *Service {
	return &Service{
		sections: sections,
		posts:    posts,
		log:      log.With("service", "section"),
	}
}

// requirePublisher resolves the caller from the context and rejects anyone
// below publisher.
func requirePublisher(ctx context.Context) error {
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !role.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !role.IsPublisher() {
		return domain.ErrForbidden
	}
	return nil
}

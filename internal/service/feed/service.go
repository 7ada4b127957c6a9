// Package feed implements the read side of the catalog: section feeds,
// search and the home page listing, resolved against the viewer's role.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

type sectionRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Section, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Section, error)
}

type postLister interface {
	List(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error)
}

// Options hold the listing knobs, normally sourced from ContentConfig.
type Options struct {
	PageSize         int
	QuickSearchLimit int
	SnippetRadius    int
}

const (
	defaultPageSize         = 10
	defaultQuickSearchLimit = 5
)

// Service answers read-only listing and search queries.
type Service struct {
	sections sectionRepo
	posts    postLister
	opts     Options
	log      *slog.Logger
}

// NewService creates a new Feed service.
func NewService(log *slog.Logger, sections sectionRepo, posts postLister, opts Options) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.QuickSearchLimit <= 0 {
		opts.QuickSearchLimit = defaultQuickSearchLimit
	}
	return &Service{
		sections: sections,
		posts:    posts,
		opts:     opts,
		log:      log.With("service", "feed"),
	}
}

// visibleStatuses maps a viewer role to the post statuses it may list.
// Publishers browse archived posts alongside published ones; everyone else
// sees published only. Drafts never appear in listings.
func visibleStatuses(role domain.Role) []domain.PostStatus {
	if role.IsPublisher() {
		return []domain.PostStatus{domain.PostStatusPublished, domain.PostStatusArchived}
	}
	return []domain.PostStatus{domain.PostStatusPublished}
}

func roleFrom(ctx context.Context) domain.Role {
	return domain.Role(ctxutil.RoleFromCtx(ctx))
}

// subtreeIDs collects the section's own ID plus every descendant's, walking
// the (bounded-depth) tree breadth-first.
func (s *Service) subtreeIDs(ctx context.Context, root *domain.Section) ([]uuid.UUID, error) {
	ids := []uuid.UUID{root.ID}
	queue := []uuid.UUID{root.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		children, err := s.sections.ListChildren(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}
	return ids, nil
}

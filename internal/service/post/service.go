// Package post implements the post lifecycle: drafts, revisions, publishing,
// archiving and removal, with every action recorded in the activity log.
package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/internal/sanitize"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetDetailBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error)
	List(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	SetCurrentRevision(ctx context.Context, postID, revisionID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type revisionRepo interface {
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Revision, error)
	Create(ctx context.Context, rev *domain.Revision) (*domain.Revision, error)
}

type sectionGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
}

type activityRepo interface {
	Log(ctx context.Context, rec *domain.ActivityRecord) error
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.ActivityRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// notifier receives lifecycle events strictly after their transaction has
// committed.
type notifier interface {
	PostCreated(ctx context.Context, post *domain.Post)
	PostRevised(ctx context.Context, post *domain.Post)
}

// Service provides post lifecycle operations.
type Service struct {
	posts     postRepo
	revisions revisionRepo
	sections  sectionGetter
	activity  activityRepo
	tx        txManager
	notifier  notifier
	sanitizer *sanitize.Sanitizer
	log       *slog.Logger
}

// NewService creates a new Post service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	revisions revisionRepo,
	sections sectionGetter,
	activity activityRepo,
	tx txManager,
	notifier notifier,
) *Service {
	return &Service{
		posts:     posts,
		revisions: revisions,
		sections:  sections,
		activity:  activity,
		tx:        tx,
		notifier:  notifier,
		sanitizer: sanitize.New(),
		log:       log.With("service", "post"),
	}
}

// requirePublisher resolves the caller from the context and rejects anyone
// below publisher. Returns the caller's user ID.
func requirePublisher(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !ok || !role.IsAuthenticated() {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !role.IsPublisher() {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// logActivity writes one audit record with title and section snapshots.
func (s *Service) logActivity(ctx context.Context, post *domain.Post, sectionTitle string, action domain.ActivityAction, userID uuid.UUID) error {
	postID := post.ID
	return s.activity.Log(ctx, &domain.ActivityRecord{
		PostID:       &postID,
		Title:        post.Title,
		SectionTitle: sectionTitle,
		Action:       action,
		UserID:       &userID,
	})
}

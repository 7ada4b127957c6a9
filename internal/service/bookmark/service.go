// Package bookmark implements the member-facing bookmark toggle and listing.
package bookmark

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

type bookmarkRepo interface {
	Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	Create(ctx context.Context, userID, postID uuid.UUID) error
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	ListPosts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.PostWithContent, error)
}

type postGetter interface {
	GetDetailBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error)
}

const defaultPageSize = 10

// Service provides bookmark operations for signed-in members.
type Service struct {
	bookmarks bookmarkRepo
	posts     postGetter
	log       *slog.Logger
}

// NewService creates a new Bookmark service.
func NewService(log *slog.Logger, bookmarks bookmarkRepo, posts postGetter) *Service {
	return &Service{
		bookmarks: bookmarks,
		posts:     posts,
		log:       log.With("service", "bookmark"),
	}
}

// requireMember resolves the signed-in caller from the context.
func requireMember(ctx context.Context) (uuid.UUID, domain.Role, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !ok || !role.IsAuthenticated() {
		return uuid.Nil, domain.RoleAnonymous, domain.ErrUnauthorized
	}
	return userID, role, nil
}

// Toggle flips the caller's bookmark on a post and reports the resulting
// state: true when the bookmark now exists. The post must be visible to the
// caller; a hidden post behaves as missing.
func (s *Service) Toggle(ctx context.Context, postSlug string) (bool, error) {
	userID, role, err := requireMember(ctx)
	if err != nil {
		return false, err
	}

	post, err := s.posts.GetDetailBySlug(ctx, postSlug)
	if err != nil {
		return false, fmt.Errorf("get post: %w", err)
	}
	if !post.VisibleTo(role) {
		return false, fmt.Errorf("post %s: %w", postSlug, domain.ErrNotFound)
	}

	exists, err := s.bookmarks.Exists(ctx, userID, post.ID)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}

	if exists {
		if err := s.bookmarks.Delete(ctx, userID, post.ID); err != nil {
			return false, fmt.Errorf("remove bookmark: %w", err)
		}
	} else {
		if err := s.bookmarks.Create(ctx, userID, post.ID); err != nil {
			return false, fmt.Errorf("add bookmark: %w", err)
		}
	}

	s.log.InfoContext(ctx, "bookmark toggled",
		slog.String("post_id", post.ID.String()),
		slog.Bool("bookmarked", !exists),
	)

	return !exists, nil
}

// List returns the caller's bookmarked posts, newest bookmark first. Posts
// that have since left the published state are filtered out.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.PostWithContent, error) {
	userID, _, err := requireMember(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.bookmarks.ListPosts(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return posts, nil
}

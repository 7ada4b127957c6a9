package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

// GetBySlug returns a post with its current content, subject to visibility:
// publishers see every status, everyone else only published posts. Hidden
// posts are indistinguishable from missing ones.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.PostWithContent, error) {
	post, err := s.posts.GetDetailBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !post.VisibleTo(role) {
		return nil, fmt.Errorf("post %s: %w", slug, domain.ErrNotFound)
	}

	return post, nil
}

// ListDashboard returns drafts and published posts, most recently touched
// first. Archived posts live on their own screen, see ListArchived.
// Publisher only.
func (s *Service) ListDashboard(ctx context.Context, input ListInput) ([]*domain.PostWithContent, int, error) {
	if _, err := requirePublisher(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	posts, total, err := s.posts.List(ctx, domain.PostFilter{
		Statuses: []domain.PostStatus{domain.PostStatusDraft, domain.PostStatusPublished},
		Order:    domain.PostOrderRecent,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list dashboard posts: %w", err)
	}
	return posts, total, nil
}

// ListArchived returns archived posts, most recently touched first.
// Publisher only.
func (s *Service) ListArchived(ctx context.Context, input ListInput) ([]*domain.PostWithContent, int, error) {
	if _, err := requirePublisher(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	posts, total, err := s.posts.List(ctx, domain.PostFilter{
		Statuses: []domain.PostStatus{domain.PostStatusArchived},
		Order:    domain.PostOrderRecent,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list archived posts: %w", err)
	}
	return posts, total, nil
}

// ListRevisions returns a post's revision history, newest first.
// Publisher only.
func (s *Service) ListRevisions(ctx context.Context, postID uuid.UUID) ([]*domain.Revision, error) {
	if _, err := requirePublisher(ctx); err != nil {
		return nil, err
	}
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}

	revs, err := s.revisions.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	return revs, nil
}

// RecentActivity returns the newest activity records. Publisher only.
func (s *Service) RecentActivity(ctx context.Context, input ListInput) ([]*domain.ActivityRecord, error) {
	if _, err := requirePublisher(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	records, err := s.activity.ListRecent(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	return records, nil
}

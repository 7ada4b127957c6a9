package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// ArchivePost moves a published post out of member-facing listings. The
// featured flag is dropped; PublishedAt is kept so a later republication
// does not rewrite history.
func (s *Service) ArchivePost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	userID, err := requirePublisher(ctx)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if post.Status == domain.PostStatusArchived {
		return post, nil
	}

	section, err := s.sections.GetByID(ctx, post.SectionID)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	post.Status = domain.PostStatusArchived
	post.IsFeatured = false

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.posts.Update(txCtx, post)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if err := s.logActivity(txCtx, updated, section.Title, domain.ActivityActionArchive, userID); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post archived",
		slog.String("post_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
	)

	return updated, nil
}

package post

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// PublishPost moves a draft or archived post to the published state.
// PublishedAt is set on the first publication only and never moves
// afterwards. Publishing creates no revision, so no notification is sent.
func (s *Service) PublishPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
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
	if post.IsPublished() {
		return post, nil
	}

	section, err := s.sections.GetByID(ctx, post.SectionID)
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	post.Status = domain.PostStatusPublished
	if post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.posts.Update(txCtx, post)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if err := s.logActivity(txCtx, updated, section.Title, domain.ActivityActionPublish, userID); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post published",
		slog.String("post_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
	)

	return updated, nil
}

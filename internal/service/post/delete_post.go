package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

// DeletePost removes a post along with its revisions and bookmarks. The
// activity history survives with its post reference nulled by storage; the
// delete record is written before the removal so it carries the title and
// section snapshots.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	userID, err := requirePublisher(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load post: %w", err)
	}
	section, err := s.sections.GetByID(ctx, post.SectionID)
	if err != nil {
		return fmt.Errorf("load section: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Logged before the removal; the FK nulls the post reference when
		// the row goes.
		if err := s.logActivity(txCtx, post, section.Title, domain.ActivityActionDelete, userID); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		if err := s.posts.Delete(txCtx, post.ID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("post_id", id.String()),
		slog.String("slug", post.Slug),
	)

	return nil
}
